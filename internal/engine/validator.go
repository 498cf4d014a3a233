package engine

import (
	"fmt"
	"strings"
)

// ValidatePlan checks a candidate plan against every constraint and
// returns validity plus the list of violations found. It performs no
// mutation, so it doubles as the acceptance gate inside the search
// loop. Constraint references to unknown guest ids are ignored; they
// simply never appear in the seat lookup.
//
// Must-not-sit-together checks stop at the first offending table per
// constraint; the per-table count checks enumerate every table.
func ValidatePlan(plan SeatingPlan, constraints []Constraint, guests []Guest) (bool, []Violation) {
	byID := guestIndex(guests)
	seatOf := plan.GuestToTable()

	var violations []Violation
	for _, c := range constraints {
		switch c.Kind {
		case MustSitTogether:
			violations = append(violations, checkTogether(c, plan, seatOf)...)
		case MustNotSitTogether:
			if v, ok := checkApart(c, plan); ok {
				violations = append(violations, v)
			}
		case MaxSellersPerTable:
			violations = append(violations, checkTypeCount(c, plan, byID, GuestTypeSeller, true)...)
		case MinBuyersPerTable:
			violations = append(violations, checkTypeCount(c, plan, byID, GuestTypeBuyer, false)...)
		}
	}
	return len(violations) == 0, violations
}

// checkTogether verifies that all seated members of a group share one
// table. Spanning two or more tables is a violation.
func checkTogether(c Constraint, plan SeatingPlan, seatOf map[string]int) []Violation {
	tables := make(map[int]bool)
	var seated []string
	for _, id := range c.GuestIDs {
		if ti, ok := seatOf[id]; ok {
			tables[ti] = true
			seated = append(seated, id)
		}
	}
	if len(tables) <= 1 {
		return nil
	}
	labels := make([]string, 0, len(tables))
	for ti := range plan.Tables {
		if tables[ti] {
			labels = append(labels, plan.Tables[ti].Label)
		}
	}
	return []Violation{{
		ConstraintID: c.ID,
		Kind:         MustSitTogether,
		TableLabels:  labels,
		GuestIDs:     seated,
		Message:      fmt.Sprintf("group must sit together but spans %s", strings.Join(labels, ", ")),
	}}
}

// checkApart reports the first table holding more than one member of a
// must-not group.
func checkApart(c Constraint, plan SeatingPlan) (Violation, bool) {
	member := make(map[string]bool, len(c.GuestIDs))
	for _, id := range c.GuestIDs {
		member[id] = true
	}
	for _, t := range plan.Tables {
		var present []string
		for _, id := range t.GuestIDs {
			if member[id] {
				present = append(present, id)
			}
		}
		if len(present) > 1 {
			return Violation{
				ConstraintID: c.ID,
				Kind:         MustNotSitTogether,
				TableLabels:  []string{t.Label},
				GuestIDs:     present,
				Message:      fmt.Sprintf("%d guests who must sit apart share %s", len(present), t.Label),
			}, true
		}
	}
	return Violation{}, false
}

// checkTypeCount enforces the table-global seller ceiling or buyer
// floor. The constraint's GuestIDs are intentionally not consulted:
// the check applies to whole tables. Empty tables are exempt from the
// buyer floor.
func checkTypeCount(c Constraint, plan SeatingPlan, byID map[string]Guest, guestType string, isMax bool) []Violation {
	threshold := c.EffectiveThreshold()
	var violations []Violation
	for _, t := range plan.Tables {
		if len(t.GuestIDs) == 0 {
			continue
		}
		count := 0
		var matched []string
		for _, id := range t.GuestIDs {
			if g, ok := byID[id]; ok && g.GuestType == guestType {
				count++
				matched = append(matched, id)
			}
		}
		if isMax && count > threshold {
			violations = append(violations, Violation{
				ConstraintID: c.ID,
				Kind:         c.Kind,
				TableLabels:  []string{t.Label},
				GuestIDs:     matched,
				Message:      fmt.Sprintf("%s has %d sellers, maximum is %d", t.Label, count, threshold),
			})
		}
		if !isMax && count < threshold {
			violations = append(violations, Violation{
				ConstraintID: c.ID,
				Kind:         c.Kind,
				TableLabels:  []string{t.Label},
				GuestIDs:     matched,
				Message:      fmt.Sprintf("%s has %d buyers, minimum is %d", t.Label, count, threshold),
			})
		}
	}
	return violations
}
