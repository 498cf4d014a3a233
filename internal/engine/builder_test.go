package engine_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/planwise/seatplanner/internal/engine"
	"github.com/stretchr/testify/require"
)

// makeGuests builds n plain guests with ids g1..gn.
func makeGuests(n int) []engine.Guest {
	out := make([]engine.Guest, n)
	for i := range out {
		out[i] = engine.Guest{
			ID:        fmt.Sprintf("g%d", i+1),
			FullName:  fmt.Sprintf("Guest %d", i+1),
			GuestType: engine.GuestTypeNeutral,
		}
	}
	return out
}

// requireInvariants asserts the two structural plan invariants: no
// guest is seated twice and no table exceeds its capacity.
func requireInvariants(t *testing.T, plan engine.SeatingPlan, seatsPerTable int) {
	t.Helper()
	seen := map[string]bool{}
	for _, table := range plan.Tables {
		require.LessOrEqual(t, len(table.GuestIDs), seatsPerTable)
		for _, id := range table.GuestIDs {
			require.False(t, seen[id], "guest %s seated twice", id)
			seen[id] = true
		}
	}
}

func TestBuildInitialPlan_SeatsEveryone(t *testing.T) {
	guests := makeGuests(10)
	rng := rand.New(rand.NewSource(1))
	plan := engine.BuildInitialPlan(guests, nil, 3, 4, rng)

	require.Len(t, plan.Tables, 3)
	require.Equal(t, 10, plan.SeatedCount())
	requireInvariants(t, plan, 4)
}

func TestBuildInitialPlan_GroupStaysTogether(t *testing.T) {
	guests := makeGuests(8)
	constraints := []engine.Constraint{{
		ID:       "grp",
		Kind:     engine.MustSitTogether,
		GuestIDs: []string{"g1", "g2", "g3"},
	}}
	rng := rand.New(rand.NewSource(7))
	plan := engine.BuildInitialPlan(guests, constraints, 2, 4, rng)

	seatOf := plan.GuestToTable()
	require.Equal(t, seatOf["g1"], seatOf["g2"])
	require.Equal(t, seatOf["g2"], seatOf["g3"])
	require.Equal(t, 8, plan.SeatedCount())
	requireInvariants(t, plan, 4)
}

func TestBuildInitialPlan_AvoidsConflictsWhenPossible(t *testing.T) {
	guests := makeGuests(2)
	constraints := []engine.Constraint{{
		ID:       "apart",
		Kind:     engine.MustNotSitTogether,
		GuestIDs: []string{"g1", "g2"},
	}}
	rng := rand.New(rand.NewSource(3))
	plan := engine.BuildInitialPlan(guests, constraints, 2, 2, rng)

	seatOf := plan.GuestToTable()
	require.NotEqual(t, seatOf["g1"], seatOf["g2"])
	require.Equal(t, 2, plan.SeatedCount())
}

// TestBuildInitialPlan_ForcedPlacement: with a single table the
// conflicting pair must still be seated.
func TestBuildInitialPlan_ForcedPlacement(t *testing.T) {
	guests := makeGuests(2)
	constraints := []engine.Constraint{{
		ID:       "apart",
		Kind:     engine.MustNotSitTogether,
		GuestIDs: []string{"g1", "g2"},
	}}
	rng := rand.New(rand.NewSource(5))
	plan := engine.BuildInitialPlan(guests, constraints, 1, 4, rng)

	require.Equal(t, 2, plan.SeatedCount())
}

func TestBuildInitialPlan_SeedReproducible(t *testing.T) {
	guests := makeGuests(12)
	a := engine.BuildInitialPlan(guests, nil, 3, 4, rand.New(rand.NewSource(99)))
	b := engine.BuildInitialPlan(guests, nil, 3, 4, rand.New(rand.NewSource(99)))
	require.Equal(t, a, b)
}

func TestRepairPlan_MovesConflictingGuest(t *testing.T) {
	constraints := []engine.Constraint{{
		ID:       "apart",
		Kind:     engine.MustNotSitTogether,
		GuestIDs: []string{"g1", "g2"},
	}}
	plan := engine.SeatingPlan{Tables: []engine.Table{
		{Label: "Table 1", GuestIDs: []string{"g1", "g2"}},
		{Label: "Table 2", GuestIDs: []string{"g3"}},
	}}
	engine.RepairPlan(&plan, constraints, 2)

	seatOf := plan.GuestToTable()
	require.NotEqual(t, seatOf["g1"], seatOf["g2"])
	require.Equal(t, 3, plan.SeatedCount())
}

// TestRepairPlan_NoDestination: when every other table conflicts or is
// full, the violation remains and nobody is unseated.
func TestRepairPlan_NoDestination(t *testing.T) {
	constraints := []engine.Constraint{{
		ID:       "apart",
		Kind:     engine.MustNotSitTogether,
		GuestIDs: []string{"g1", "g2", "g3"},
	}}
	plan := engine.SeatingPlan{Tables: []engine.Table{
		{Label: "Table 1", GuestIDs: []string{"g1", "g2"}},
		{Label: "Table 2", GuestIDs: []string{"g3"}},
	}}
	engine.RepairPlan(&plan, constraints, 2)

	require.Equal(t, 3, plan.SeatedCount())
	ok, violations := engine.ValidatePlan(plan, constraints, makeGuests(3))
	require.False(t, ok)
	require.NotEmpty(t, violations)
}
