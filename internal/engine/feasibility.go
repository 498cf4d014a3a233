package engine

import "fmt"

// Feasible performs the static pre-flight check run once before any
// assignment attempt. It verifies raw capacity and that every
// must-sit-together group fits a single table. All other constraint
// kinds are enforced dynamically during assignment and search.
// On failure it returns false plus a human-readable reason.
func Feasible(guestCount int, constraints []Constraint, tableCount, seatsPerTable int) (bool, string) {
	capacity := tableCount * seatsPerTable
	if guestCount > capacity {
		return false, fmt.Sprintf("not enough seats: %d guests but only %d seats (%d tables x %d)",
			guestCount, capacity, tableCount, seatsPerTable)
	}
	for _, c := range constraints {
		if c.Kind != MustSitTogether {
			continue
		}
		if len(c.GuestIDs) > seatsPerTable {
			return false, fmt.Sprintf("must-sit-together group of %d guests exceeds table capacity %d",
				len(c.GuestIDs), seatsPerTable)
		}
	}
	return true, ""
}
