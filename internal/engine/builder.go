package engine

import "math/rand"

// conflictSet maps a guest id to the set of guests it must not share a
// table with, derived from every must-not-sit-together constraint.
// Members of the same constraint are mutually conflicting.
func conflictSet(constraints []Constraint) map[string]map[string]bool {
	conflicts := make(map[string]map[string]bool)
	add := func(a, b string) {
		if conflicts[a] == nil {
			conflicts[a] = make(map[string]bool)
		}
		conflicts[a][b] = true
	}
	for _, c := range constraints {
		if c.Kind != MustNotSitTogether {
			continue
		}
		for i, a := range c.GuestIDs {
			for j, b := range c.GuestIDs {
				if i != j {
					add(a, b)
				}
			}
		}
	}
	return conflicts
}

// BuildInitialPlan produces the initial candidate assignment.
//
// Hard grouping constraints are resolved before random distribution:
// each must-sit-together group goes, in input order, to the first table
// with room for the whole group. The remaining guests are shuffled with
// the seeded source and dealt round-robin, skipping tables that are
// full or hold a must-not conflict. A guest that fits nowhere cleanly
// is force-placed into the first table with spare capacity so that
// everyone is seated whenever raw capacity allows; residual conflicts
// are left for the repair pass.
func BuildInitialPlan(guests []Guest, constraints []Constraint, tableCount, seatsPerTable int, rng *rand.Rand) SeatingPlan {
	plan := SeatingPlan{Tables: make([]Table, tableCount)}
	for i := range plan.Tables {
		plan.Tables[i] = Table{Label: tableLabel(i)}
	}

	placed := make(map[string]bool, len(guests))
	known := make(map[string]bool, len(guests))
	for _, g := range guests {
		known[g.ID] = true
	}

	// Phase 1: must-sit-together groups, in input order.
	for _, c := range constraints {
		if c.Kind != MustSitTogether {
			continue
		}
		members := make([]string, 0, len(c.GuestIDs))
		for _, id := range c.GuestIDs {
			if known[id] && !placed[id] {
				members = append(members, id)
			}
		}
		if len(members) == 0 {
			continue
		}
		for ti := range plan.Tables {
			if seatsPerTable-len(plan.Tables[ti].GuestIDs) < len(members) {
				continue
			}
			for _, id := range members {
				plan.Tables[ti].GuestIDs = append(plan.Tables[ti].GuestIDs, id)
				placed[id] = true
			}
			break
		}
		// No table had room for the whole group: skip it here and let
		// the round-robin pass seat the members individually.
	}

	// Phase 2: shuffle the rest (Fisher-Yates, seed-reproducible).
	rest := make([]string, 0, len(guests))
	for _, g := range guests {
		if !placed[g.ID] {
			rest = append(rest, g.ID)
		}
	}
	for i := len(rest) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		rest[i], rest[j] = rest[j], rest[i]
	}

	// Phase 3: round-robin fill honoring must-not conflicts.
	conflicts := conflictSet(constraints)
	cursor := 0
	for _, id := range rest {
		seated := false
		for attempt := 0; attempt < tableCount; attempt++ {
			ti := (cursor + attempt) % tableCount
			t := &plan.Tables[ti]
			if len(t.GuestIDs) >= seatsPerTable {
				continue
			}
			if tableHasConflict(t.GuestIDs, id, conflicts) {
				continue
			}
			t.GuestIDs = append(t.GuestIDs, id)
			seated = true
			break
		}
		if !seated {
			// Last resort: accept the conflict so the guest still sits.
			for ti := range plan.Tables {
				if len(plan.Tables[ti].GuestIDs) < seatsPerTable {
					plan.Tables[ti].GuestIDs = append(plan.Tables[ti].GuestIDs, id)
					break
				}
			}
		}
		cursor = (cursor + 1) % tableCount
	}

	return plan
}

// tableHasConflict reports whether seating candidate at a table with
// the given occupants would break a must-not relation.
func tableHasConflict(occupants []string, candidate string, conflicts map[string]map[string]bool) bool {
	set := conflicts[candidate]
	if set == nil {
		return false
	}
	for _, id := range occupants {
		if set[id] {
			return true
		}
	}
	return false
}
