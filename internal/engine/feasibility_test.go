package engine_test

import (
	"testing"

	"github.com/planwise/seatplanner/internal/engine"
	"github.com/stretchr/testify/require"
)

// TestFeasible_CapacityOK verifies that any input fitting the raw
// capacity with no oversized group is feasible.
func TestFeasible_CapacityOK(t *testing.T) {
	ok, reason := engine.Feasible(10, nil, 3, 4)
	require.True(t, ok)
	require.Empty(t, reason)
}

// TestFeasible_TooManyGuests verifies the capacity check reports both
// counts.
func TestFeasible_TooManyGuests(t *testing.T) {
	ok, reason := engine.Feasible(13, nil, 3, 4)
	require.False(t, ok)
	require.Contains(t, reason, "13 guests")
	require.Contains(t, reason, "12 seats")
}

// TestFeasible_OversizedGroup covers the spec scenario of a 3-guest
// must-sit-together group with 2 seats per table.
func TestFeasible_OversizedGroup(t *testing.T) {
	constraints := []engine.Constraint{{
		ID:       "c1",
		Kind:     engine.MustSitTogether,
		GuestIDs: []string{"g1", "g2", "g3"},
	}}
	ok, reason := engine.Feasible(3, constraints, 2, 2)
	require.False(t, ok)
	require.Contains(t, reason, "3 guests")
	require.Contains(t, reason, "capacity 2")
}

// TestFeasible_OtherKindsIgnored checks that only must-sit-together
// groups participate in the structural pre-check.
func TestFeasible_OtherKindsIgnored(t *testing.T) {
	constraints := []engine.Constraint{{
		ID:       "c1",
		Kind:     engine.MustNotSitTogether,
		GuestIDs: []string{"g1", "g2", "g3", "g4", "g5"},
	}}
	ok, _ := engine.Feasible(5, constraints, 3, 2)
	require.True(t, ok)
}
