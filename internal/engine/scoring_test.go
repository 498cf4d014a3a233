package engine_test

import (
	"testing"

	"github.com/planwise/seatplanner/internal/engine"
	"github.com/stretchr/testify/require"
)

func TestScorePlan_NoveltyStrangers(t *testing.T) {
	guests := []engine.Guest{
		{ID: "g1", Company: "Acme", Department: "Sales"},
		{ID: "g2", Company: "Globex", Department: "Legal"},
	}
	plan := engine.SeatingPlan{Tables: []engine.Table{
		{Label: "Table 1", GuestIDs: []string{"g1", "g2"}},
	}}
	m := engine.ScorePlan(plan, guests, engine.EqualWeights)
	require.InDelta(t, 1.0, m.Novelty, 1e-9)
}

func TestScorePlan_NoveltyPenalties(t *testing.T) {
	guests := []engine.Guest{
		{ID: "g1", Company: "Acme", Department: "Sales", KnownConnections: []string{"g2"}},
		{ID: "g2", Company: "Acme", Department: "Sales"},
	}
	plan := engine.SeatingPlan{Tables: []engine.Table{
		{Label: "Table 1", GuestIDs: []string{"g1", "g2"}},
	}}
	m := engine.ScorePlan(plan, guests, engine.EqualWeights)
	// 1.0 - 0.4 (company) - 0.3 (department) - 0.3 (known) = 0, floored.
	require.InDelta(t, 0.0, m.Novelty, 1e-9)
}

// One-way known connections count against both directions.
func TestScorePlan_NoveltyAsymmetricConnection(t *testing.T) {
	guests := []engine.Guest{
		{ID: "g1"},
		{ID: "g2", KnownConnections: []string{"g1"}},
	}
	plan := engine.SeatingPlan{Tables: []engine.Table{
		{Label: "Table 1", GuestIDs: []string{"g1", "g2"}},
	}}
	m := engine.ScorePlan(plan, guests, engine.EqualWeights)
	require.InDelta(t, 0.7, m.Novelty, 1e-9)
}

func TestScorePlan_EmptyPlanDefaults(t *testing.T) {
	m := engine.ScorePlan(engine.SeatingPlan{}, nil, engine.EqualWeights)
	require.InDelta(t, 1.0, m.Novelty, 1e-9)
	require.InDelta(t, 1.0, m.Diversity, 1e-9)
	require.InDelta(t, 1.0, m.Balance, 1e-9)
	require.InDelta(t, 0.5, m.Transaction, 1e-9)
}

func TestScorePlan_DiversityRatios(t *testing.T) {
	guests := []engine.Guest{
		{ID: "g1", Company: "Acme", Department: "Sales"},
		{ID: "g2", Company: "Globex", Department: "Sales"},
	}
	plan := engine.SeatingPlan{Tables: []engine.Table{
		{Label: "Table 1", GuestIDs: []string{"g1", "g2"}},
	}}
	m := engine.ScorePlan(plan, guests, engine.EqualWeights)
	// companies 2/2 = 1.0, departments 1/2 = 0.5 -> 0.75
	require.InDelta(t, 0.75, m.Diversity, 1e-9)
}

func TestScorePlan_BalanceNoSeniorityData(t *testing.T) {
	guests := []engine.Guest{
		{ID: "g1", GuestType: engine.GuestTypeBuyer},
		{ID: "g2", GuestType: engine.GuestTypeSeller},
	}
	plan := engine.SeatingPlan{Tables: []engine.Table{
		{Label: "Table 1", GuestIDs: []string{"g1", "g2"}},
	}}
	m := engine.ScorePlan(plan, guests, engine.EqualWeights)
	// seniority term 0.5 (no data), type mix 1.0 -> 0.75
	require.InDelta(t, 0.75, m.Balance, 1e-9)
}

func TestScorePlan_TransactionPairedTable(t *testing.T) {
	guests := []engine.Guest{
		{ID: "g1", GuestType: engine.GuestTypeBuyer, Company: "A"},
		{ID: "g2", GuestType: engine.GuestTypeSeller, Company: "B"},
	}
	plan := engine.SeatingPlan{Tables: []engine.Table{
		{Label: "Table 1", GuestIDs: []string{"g1", "g2"}},
	}}
	m := engine.ScorePlan(plan, guests, engine.EqualWeights)
	// 0.5 + 0.4 + 0.2*1 = 1.1 clamped to 1.0
	require.InDelta(t, 1.0, m.Transaction, 1e-9)
}

func TestScorePlan_TransactionOneSided(t *testing.T) {
	guests := []engine.Guest{
		{ID: "g1", GuestType: engine.GuestTypeSeller, Company: "A"},
		{ID: "g2", GuestType: engine.GuestTypeSeller, Company: "A"},
	}
	plan := engine.SeatingPlan{Tables: []engine.Table{
		{Label: "Table 1", GuestIDs: []string{"g1", "g2"}},
	}}
	m := engine.ScorePlan(plan, guests, engine.EqualWeights)
	// 0.5 - 0.3 (same-company sellers) - 0.2 (no buyers) = 0.0
	require.InDelta(t, 0.0, m.Transaction, 1e-9)
}

func TestScorePlan_Idempotent(t *testing.T) {
	guests := []engine.Guest{
		{ID: "g1", Company: "Acme", Department: "Sales", Seniority: engine.SeniorityJunior, GuestType: engine.GuestTypeBuyer},
		{ID: "g2", Company: "Globex", Department: "Legal", Seniority: engine.SenioritySenior, GuestType: engine.GuestTypeSeller},
		{ID: "g3", Company: "Initech", Department: "Ops", GuestType: engine.GuestTypeCatalyst},
	}
	plan := engine.SeatingPlan{Tables: []engine.Table{
		{Label: "Table 1", GuestIDs: []string{"g1", "g2", "g3"}},
	}}
	first := engine.ScorePlan(plan, guests, engine.EqualWeights)
	second := engine.ScorePlan(plan, guests, engine.EqualWeights)
	require.Equal(t, first, second)
}

// Composite is a plain dot product with no renormalization.
func TestComposite_NoRenormalization(t *testing.T) {
	m := engine.PlanMetrics{Novelty: 1, Diversity: 1, Balance: 1, Transaction: 1}
	w := engine.ObjectiveWeights{Novelty: 2, Diversity: 2, Balance: 2, Transaction: 2}
	require.InDelta(t, 8.0, engine.Composite(m, w), 1e-9)
}
