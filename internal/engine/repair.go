package engine

// RepairPlan reduces must-not-sit-together violations left behind by
// the builder's forced placements. For each such constraint and table,
// excess members (beyond the first) are relocated, starting from the
// end of the violating list, to any other table that has capacity and
// holds no member of the same constraint. A member with nowhere to go
// stays put; the residual violation is surfaced by final validation.
// Must-sit-together groups are never reconsidered here.
func RepairPlan(plan *SeatingPlan, constraints []Constraint, seatsPerTable int) {
	for _, c := range constraints {
		if c.Kind != MustNotSitTogether {
			continue
		}
		member := make(map[string]bool, len(c.GuestIDs))
		for _, id := range c.GuestIDs {
			member[id] = true
		}
		for ti := range plan.Tables {
			offenders := memberPositions(plan.Tables[ti].GuestIDs, member)
			for len(offenders) > 1 {
				pos := offenders[len(offenders)-1]
				id := plan.Tables[ti].GuestIDs[pos]
				dest := findRepairTable(plan, ti, member, seatsPerTable)
				if dest < 0 {
					break
				}
				plan.Tables[ti].GuestIDs = append(plan.Tables[ti].GuestIDs[:pos], plan.Tables[ti].GuestIDs[pos+1:]...)
				plan.Tables[dest].GuestIDs = append(plan.Tables[dest].GuestIDs, id)
				offenders = memberPositions(plan.Tables[ti].GuestIDs, member)
			}
		}
	}
}

// memberPositions returns the indices within ids that belong to the
// constraint's member set, in seating order.
func memberPositions(ids []string, member map[string]bool) []int {
	var out []int
	for i, id := range ids {
		if member[id] {
			out = append(out, i)
		}
	}
	return out
}

// findRepairTable locates a table other than from with spare capacity
// and no member of the constraint, or -1 when none exists.
func findRepairTable(plan *SeatingPlan, from int, member map[string]bool, seatsPerTable int) int {
	for ti := range plan.Tables {
		if ti == from || len(plan.Tables[ti].GuestIDs) >= seatsPerTable {
			continue
		}
		clash := false
		for _, id := range plan.Tables[ti].GuestIDs {
			if member[id] {
				clash = true
				break
			}
		}
		if !clash {
			return ti
		}
	}
	return -1
}
