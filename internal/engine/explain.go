package engine

import (
	"fmt"
	"sort"
	"strings"
)

// sortedKeys keeps reason-code emission deterministic regardless of
// map iteration order.
func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reason code tags emitted by Explain.
const (
	ReasonCompanyMix      = "COMPANY_MIX"
	ReasonCompanyCluster  = "COMPANY_CLUSTER"
	ReasonDepartmentMix   = "DEPARTMENT_MIX"
	ReasonSenioritySpread = "SENIORITY_SPREAD"
	ReasonBuyerSeller     = "BUYER_SELLER_MATCH"
	ReasonCatalyst        = "CATALYST_PRESENT"
	ReasonSellerOverlap   = "SELLER_OVERLAP"
	ReasonGroupSeated     = "GROUP_SEATED"
)

// Explain derives per-table explanation strings, structured reason
// codes and one overall summary from a finished plan and its metrics.
// The output is static templated text; richer narrative belongs to a
// downstream text-generation collaborator consuming the reason codes.
func Explain(plan SeatingPlan, guests []Guest, metrics PlanMetrics, constraints []Constraint) ([]string, []ReasonCode, string) {
	byID := guestIndex(guests)

	var summaries []string
	var codes []ReasonCode
	for _, t := range plan.Tables {
		if len(t.GuestIDs) == 0 {
			continue
		}
		tableCodes := explainTable(t, byID)
		codes = append(codes, tableCodes...)
		summaries = append(summaries, tableSummary(t, tableCodes))
	}
	codes = append(codes, explainGroups(plan, constraints)...)

	return summaries, codes, overallSummary(plan, metrics, codes)
}

// explainTable emits the reason codes for one table.
func explainTable(t Table, byID map[string]Guest) []ReasonCode {
	companies := make(map[string][]string)
	departments := make(map[string]bool)
	seniorities := make(map[string]bool)
	sellerCompanies := make(map[string][]string)
	buyers, sellers := 0, 0
	var catalysts []Guest

	for _, id := range t.GuestIDs {
		g, ok := byID[id]
		if !ok {
			continue
		}
		if g.Company != "" {
			companies[g.Company] = append(companies[g.Company], g.ID)
		}
		if g.Department != "" {
			departments[g.Department] = true
		}
		if g.Seniority != "" {
			seniorities[g.Seniority] = true
		}
		switch g.GuestType {
		case GuestTypeBuyer:
			buyers++
		case GuestTypeSeller:
			sellers++
			if g.Company != "" {
				sellerCompanies[g.Company] = append(sellerCompanies[g.Company], g.ID)
			}
		case GuestTypeCatalyst:
			catalysts = append(catalysts, g)
		}
	}

	var codes []ReasonCode
	if len(companies) > 1 {
		codes = append(codes, ReasonCode{
			Tag:         ReasonCompanyMix,
			TableLabel:  t.Label,
			Description: fmt.Sprintf("%d different companies are represented", len(companies)),
			Impact:      ImpactPositive,
			Objective:   "diversity",
		})
	}
	for _, company := range sortedKeys(companies) {
		ids := companies[company]
		if len(ids) >= 3 {
			codes = append(codes, ReasonCode{
				Tag:         ReasonCompanyCluster,
				TableLabel:  t.Label,
				GuestIDs:    ids,
				Description: fmt.Sprintf("%d guests from %s sit together", len(ids), company),
				Impact:      ImpactNegative,
				Objective:   "novelty",
			})
		}
	}
	if len(departments) > 2 {
		codes = append(codes, ReasonCode{
			Tag:         ReasonDepartmentMix,
			TableLabel:  t.Label,
			Description: fmt.Sprintf("%d departments are represented", len(departments)),
			Impact:      ImpactPositive,
			Objective:   "diversity",
		})
	}
	if len(seniorities) > 2 {
		codes = append(codes, ReasonCode{
			Tag:         ReasonSenioritySpread,
			TableLabel:  t.Label,
			Description: fmt.Sprintf("%d seniority levels are represented", len(seniorities)),
			Impact:      ImpactPositive,
			Objective:   "balance",
		})
	}
	if buyers > 0 && sellers > 0 {
		codes = append(codes, ReasonCode{
			Tag:         ReasonBuyerSeller,
			TableLabel:  t.Label,
			Description: fmt.Sprintf("%d buyers and %d sellers can meet", buyers, sellers),
			Impact:      ImpactPositive,
			Objective:   "transaction",
		})
	}
	for _, g := range catalysts {
		codes = append(codes, ReasonCode{
			Tag:         ReasonCatalyst,
			TableLabel:  t.Label,
			GuestIDs:    []string{g.ID},
			Description: fmt.Sprintf("%s can broker introductions at this table", g.FullName),
			Impact:      ImpactPositive,
			Objective:   "transaction",
		})
	}
	for _, company := range sortedKeys(sellerCompanies) {
		ids := sellerCompanies[company]
		if len(ids) >= 2 {
			codes = append(codes, ReasonCode{
				Tag:         ReasonSellerOverlap,
				TableLabel:  t.Label,
				GuestIDs:    ids,
				Description: fmt.Sprintf("multiple sellers from %s compete at the same table", company),
				Impact:      ImpactNegative,
				Objective:   "transaction",
			})
		}
	}
	return codes
}

// explainGroups emits a neutral code for every must-sit-together group
// that ended up fully satisfied.
func explainGroups(plan SeatingPlan, constraints []Constraint) []ReasonCode {
	seatOf := plan.GuestToTable()
	var codes []ReasonCode
	for _, c := range constraints {
		if c.Kind != MustSitTogether {
			continue
		}
		table := -1
		satisfied := true
		for _, id := range c.GuestIDs {
			ti, ok := seatOf[id]
			if !ok {
				satisfied = false
				break
			}
			if table == -1 {
				table = ti
			} else if ti != table {
				satisfied = false
				break
			}
		}
		if satisfied && table >= 0 {
			codes = append(codes, ReasonCode{
				Tag:         ReasonGroupSeated,
				TableLabel:  plan.Tables[table].Label,
				GuestIDs:    c.GuestIDs,
				Description: fmt.Sprintf("requested group of %d sits together", len(c.GuestIDs)),
				Impact:      ImpactNeutral,
			})
		}
	}
	return codes
}

// tableSummary joins a table's reason descriptions into one line.
func tableSummary(t Table, codes []ReasonCode) string {
	if len(codes) == 0 {
		return fmt.Sprintf("%s: %d guests seated.", t.Label, len(t.GuestIDs))
	}
	parts := make([]string, len(codes))
	for i, rc := range codes {
		parts[i] = rc.Description
	}
	return fmt.Sprintf("%s (%d guests): %s.", t.Label, len(t.GuestIDs), strings.Join(parts, "; "))
}

// overallSummary reports the weighted score, the strongest objective
// when one clearly leads, and a rough positive/negative balance.
func overallSummary(plan SeatingPlan, metrics PlanMetrics, codes []ReasonCode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Overall seating score: %.0f%%.", metrics.Composite*100)

	name, score := bestObjective(metrics)
	if score >= 0.7 {
		fmt.Fprintf(&b, " Strongest objective: %s (%.0f%%).", name, score*100)
	}

	positive, negative := 0, 0
	for _, rc := range codes {
		switch rc.Impact {
		case ImpactPositive:
			positive++
		case ImpactNegative:
			negative++
		}
	}
	if negative == 0 || positive >= 2*negative {
		b.WriteString(" The plan is well balanced across tables.")
	} else {
		b.WriteString(" The plan carries constraint trade-offs worth reviewing.")
	}

	fmt.Fprintf(&b, " %d guests across %d tables.", plan.SeatedCount(), plan.OccupiedTables())
	return b.String()
}

func bestObjective(m PlanMetrics) (string, float64) {
	name, score := "novelty", m.Novelty
	if m.Diversity > score {
		name, score = "diversity", m.Diversity
	}
	if m.Balance > score {
		name, score = "balance", m.Balance
	}
	if m.Transaction > score {
		name, score = "transaction", m.Transaction
	}
	return name, score
}
