package engine

import "math"

// ScorePlan computes the four objective scores and the weighted
// composite for a finished plan. All scorers are pure and
// order-independent over tables; calling ScorePlan twice on the same
// plan yields identical results.
func ScorePlan(plan SeatingPlan, guests []Guest, weights ObjectiveWeights) PlanMetrics {
	byID := guestIndex(guests)
	m := PlanMetrics{
		Novelty:     noveltyScore(plan, byID),
		Diversity:   diversityScore(plan, byID),
		Balance:     balanceScore(plan, byID),
		Transaction: transactionScore(plan, byID),
	}
	m.Composite = Composite(m, weights)
	return m
}

// Composite is the dot product of the objective scores with the
// caller-supplied weights. Weights are consumed as given; the engine
// does not renormalize.
func Composite(m PlanMetrics, w ObjectiveWeights) float64 {
	return m.Novelty*w.Novelty + m.Diversity*w.Diversity + m.Balance*w.Balance + m.Transaction*w.Transaction
}

// noveltyScore rewards seating people next to strangers. Every
// co-seated unordered pair starts at 1.0 and loses 0.4 for a shared
// company, 0.3 for a shared department and 0.3 when either guest lists
// the other as a known connection, floored at zero. The score is the
// mean over all pairs, 1.0 when no pairs exist.
func noveltyScore(plan SeatingPlan, byID map[string]Guest) float64 {
	sum, pairs := 0.0, 0
	for _, t := range plan.Tables {
		for i := 0; i < len(t.GuestIDs); i++ {
			for j := i + 1; j < len(t.GuestIDs); j++ {
				a, okA := byID[t.GuestIDs[i]]
				b, okB := byID[t.GuestIDs[j]]
				if !okA || !okB {
					continue
				}
				sum += pairNovelty(a, b)
				pairs++
			}
		}
	}
	if pairs == 0 {
		return 1.0
	}
	return sum / float64(pairs)
}

func pairNovelty(a, b Guest) float64 {
	score := 1.0
	if a.Company != "" && a.Company == b.Company {
		score -= 0.4
	}
	if a.Department != "" && a.Department == b.Department {
		score -= 0.3
	}
	if knowsEither(a, b) {
		score -= 0.3
	}
	return math.Max(score, 0)
}

// knowsEither interprets the known-connection relation symmetrically
// even when only one side recorded it.
func knowsEither(a, b Guest) bool {
	for _, id := range a.KnownConnections {
		if id == b.ID {
			return true
		}
	}
	for _, id := range b.KnownConnections {
		if id == a.ID {
			return true
		}
	}
	return false
}

// diversityScore averages, per non-empty table, the distinct-company
// and distinct-department ratios. Missing fields do not count as a
// distinct value; the denominator stays the table size.
func diversityScore(plan SeatingPlan, byID map[string]Guest) float64 {
	sum, tables := 0.0, 0
	for _, t := range plan.Tables {
		if len(t.GuestIDs) == 0 {
			continue
		}
		companies := make(map[string]bool)
		departments := make(map[string]bool)
		for _, id := range t.GuestIDs {
			g, ok := byID[id]
			if !ok {
				continue
			}
			if g.Company != "" {
				companies[g.Company] = true
			}
			if g.Department != "" {
				departments[g.Department] = true
			}
		}
		size := float64(len(t.GuestIDs))
		sum += (float64(len(companies))/size + float64(len(departments))/size) / 2
		tables++
	}
	if tables == 0 {
		return 1.0
	}
	return sum / float64(tables)
}

// balanceScore averages a seniority-evenness term with a guest-type
// mix term per non-empty table. Evenness measures each present level's
// deviation from the ideal even share across the four levels; tables
// with no seniority data score a neutral 0.5 on that term.
func balanceScore(plan SeatingPlan, byID map[string]Guest) float64 {
	sum, tables := 0.0, 0
	for _, t := range plan.Tables {
		if len(t.GuestIDs) == 0 {
			continue
		}
		sum += (seniorityEvenness(t.GuestIDs, byID) + typeMix(t.GuestIDs, byID)) / 2
		tables++
	}
	if tables == 0 {
		return 1.0
	}
	return sum / float64(tables)
}

func seniorityEvenness(ids []string, byID map[string]Guest) float64 {
	counts := make(map[string]int)
	total := 0
	for _, id := range ids {
		g, ok := byID[id]
		if !ok || g.Seniority == "" {
			continue
		}
		counts[g.Seniority]++
		total++
	}
	if total == 0 {
		return 0.5
	}
	ideal := 1.0 / float64(len(SeniorityLevels))
	sum, present := 0.0, 0
	for _, level := range SeniorityLevels {
		n := counts[level]
		if n == 0 {
			continue
		}
		share := float64(n) / float64(total)
		sum += 1 - math.Abs(share-ideal)
		present++
	}
	return sum / float64(present)
}

func typeMix(ids []string, byID map[string]Guest) float64 {
	types := make(map[string]bool)
	for _, id := range ids {
		if g, ok := byID[id]; ok && g.GuestType != "" {
			types[g.GuestType] = true
		}
	}
	if len(types) > 1 {
		return 1.0
	}
	return 0.5
}

// transactionScore rewards tables where deals can happen: buyers and
// sellers together, ideally with a catalyst and in even proportion.
// Same-company seller clusters and one-sided tables are penalized.
// Per-table scores are clamped to [0,1] and averaged over non-empty
// tables; an empty plan scores the neutral 0.5.
func transactionScore(plan SeatingPlan, byID map[string]Guest) float64 {
	sum, tables := 0.0, 0
	for _, t := range plan.Tables {
		if len(t.GuestIDs) == 0 {
			continue
		}
		sum += tableTransaction(t.GuestIDs, byID)
		tables++
	}
	if tables == 0 {
		return 0.5
	}
	return sum / float64(tables)
}

func tableTransaction(ids []string, byID map[string]Guest) float64 {
	buyers, sellers, catalysts := 0, 0, 0
	sellerCompanies := make(map[string]int)
	for _, id := range ids {
		g, ok := byID[id]
		if !ok {
			continue
		}
		switch g.GuestType {
		case GuestTypeBuyer:
			buyers++
		case GuestTypeSeller:
			sellers++
			if g.Company != "" {
				sellerCompanies[g.Company]++
			}
		case GuestTypeCatalyst:
			catalysts++
		}
	}

	score := 0.5
	if buyers > 0 && sellers > 0 {
		score += 0.4
		ratio := float64(min(buyers, sellers)) / float64(max(buyers, sellers))
		score += 0.2 * ratio
	}
	if catalysts > 0 && (buyers > 0 || sellers > 0) {
		score += 0.2
	}
	for _, n := range sellerCompanies {
		if n >= 2 {
			score -= 0.3
			break
		}
	}
	if (sellers > 0 && buyers == 0) || (buyers > 0 && sellers == 0) {
		score -= 0.2
	}
	return math.Min(math.Max(score, 0), 1)
}
