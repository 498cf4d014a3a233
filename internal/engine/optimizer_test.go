package engine_test

import (
	"math/rand"
	"testing"

	"github.com/planwise/seatplanner/internal/engine"
	"github.com/stretchr/testify/require"
)

func mixerGuests() []engine.Guest {
	return []engine.Guest{
		{ID: "g1", FullName: "Ada", Company: "Acme", GuestType: engine.GuestTypeBuyer},
		{ID: "g2", FullName: "Ben", Company: "Globex", GuestType: engine.GuestTypeBuyer},
		{ID: "g3", FullName: "Cleo", Company: "Initech", GuestType: engine.GuestTypeSeller},
		{ID: "g4", FullName: "Dev", Company: "Umbrella", GuestType: engine.GuestTypeSeller},
	}
}

// TestOptimize_BuyerSellerScenario: 2 buyers, 2 sellers, 2 tables of
// 2, equal weights. The optimizer must seat everyone and pair a buyer
// with a seller at each table, pushing transaction above 0.5.
func TestOptimize_BuyerSellerScenario(t *testing.T) {
	res := engine.Optimize(mixerGuests(), nil, engine.EqualWeights, engine.Config{
		TableCount:    2,
		SeatsPerTable: 2,
	})

	require.True(t, res.Feasible)
	require.Equal(t, 4, res.Plan.SeatedCount())
	require.Greater(t, res.Metrics.Transaction, 0.5)

	for _, table := range res.Plan.Tables {
		require.Len(t, table.GuestIDs, 2)
	}
}

func TestOptimize_Infeasible(t *testing.T) {
	res := engine.Optimize(makeGuests(5), nil, engine.EqualWeights, engine.Config{
		TableCount:    1,
		SeatsPerTable: 4,
	})

	require.False(t, res.Feasible)
	require.Empty(t, res.Plan.Tables)
	require.Zero(t, res.Iterations)
	require.Equal(t, engine.PlanMetrics{}, res.Metrics)
	require.Len(t, res.Warnings, 1)
	require.Contains(t, res.Warnings[0], "infeasible")
}

// TestOptimize_ResidualViolation: a must-not pair with only one table
// cannot be repaired; both guests stay seated and the result is
// reported infeasible.
func TestOptimize_ResidualViolation(t *testing.T) {
	guests := makeGuests(2)
	constraints := []engine.Constraint{{
		ID:       "apart",
		Kind:     engine.MustNotSitTogether,
		GuestIDs: []string{"g1", "g2"},
	}}
	res := engine.Optimize(guests, constraints, engine.EqualWeights, engine.Config{
		TableCount:    1,
		SeatsPerTable: 2,
	})

	require.False(t, res.Feasible)
	require.Equal(t, 2, res.Plan.SeatedCount())
	require.NotEmpty(t, res.Warnings)
}

func TestOptimize_Deterministic(t *testing.T) {
	guests := []engine.Guest{
		{ID: "g1", FullName: "Ada", Company: "Acme", Department: "Sales", Seniority: engine.SeniorityJunior, GuestType: engine.GuestTypeBuyer},
		{ID: "g2", FullName: "Ben", Company: "Acme", Department: "Legal", Seniority: engine.SeniorityMid, GuestType: engine.GuestTypeSeller},
		{ID: "g3", FullName: "Cleo", Company: "Globex", Department: "Ops", Seniority: engine.SenioritySenior, GuestType: engine.GuestTypeBuyer},
		{ID: "g4", FullName: "Dev", Company: "Globex", Department: "Sales", Seniority: engine.SeniorityExecutive, GuestType: engine.GuestTypeSeller},
		{ID: "g5", FullName: "Eve", Company: "Initech", Department: "Legal", GuestType: engine.GuestTypeCatalyst},
		{ID: "g6", FullName: "Fay", Company: "Umbrella", Department: "Ops", GuestType: engine.GuestTypeNeutral},
	}
	constraints := []engine.Constraint{{
		ID:       "apart",
		Kind:     engine.MustNotSitTogether,
		GuestIDs: []string{"g1", "g2"},
	}}
	cfg := engine.Config{TableCount: 2, SeatsPerTable: 3, Seed: 1234}

	a := engine.Optimize(guests, constraints, engine.EqualWeights, cfg)
	b := engine.Optimize(guests, constraints, engine.EqualWeights, cfg)
	require.Equal(t, a, b)
}

// TestOptimize_Monotonic: the returned composite is never below the
// initial (post-repair) plan's composite for the same seed.
func TestOptimize_Monotonic(t *testing.T) {
	guests := mixerGuests()
	cfg := engine.Config{TableCount: 2, SeatsPerTable: 2, Seed: engine.DefaultSeed}

	rng := rand.New(rand.NewSource(cfg.Seed))
	initial := engine.BuildInitialPlan(guests, nil, cfg.TableCount, cfg.SeatsPerTable, rng)
	baseline := engine.ScorePlan(initial, guests, engine.EqualWeights)

	res := engine.Optimize(guests, nil, engine.EqualWeights, cfg)
	require.GreaterOrEqual(t, res.Metrics.Composite, baseline.Composite)
}

func TestOptimize_InvariantsHold(t *testing.T) {
	guests := makeGuests(11)
	res := engine.Optimize(guests, nil, engine.EqualWeights, engine.Config{
		TableCount:    4,
		SeatsPerTable: 3,
	})

	require.True(t, res.Feasible)
	require.Equal(t, 11, res.Plan.SeatedCount())
	requireInvariants(t, res.Plan, 3)
}

func TestOptimize_IterationBudget(t *testing.T) {
	res := engine.Optimize(mixerGuests(), nil, engine.EqualWeights, engine.Config{
		TableCount:    2,
		SeatsPerTable: 2,
		MaxIterations: 1,
	})

	require.LessOrEqual(t, res.Iterations, 1)
	require.Equal(t, 4, res.Plan.SeatedCount())
}
