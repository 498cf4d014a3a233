package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/planwise/seatplanner/internal/engine"
	"github.com/planwise/seatplanner/internal/model"
)

func TestNormalizeWeights_NilDefaultsToEqual(t *testing.T) {
	w, err := normalizeWeights(nil)
	require.NoError(t, err)
	require.Equal(t, engine.EqualWeights, w)
}

func TestNormalizeWeights_AllZeroDefaultsToEqual(t *testing.T) {
	w, err := normalizeWeights(&engine.ObjectiveWeights{})
	require.NoError(t, err)
	require.Equal(t, engine.EqualWeights, w)
}

func TestNormalizeWeights_ScalesToUnitSum(t *testing.T) {
	w, err := normalizeWeights(&engine.ObjectiveWeights{Novelty: 2, Diversity: 1, Balance: 1, Transaction: 0})
	require.NoError(t, err)
	require.Equal(t, engine.ObjectiveWeights{Novelty: 0.5, Diversity: 0.25, Balance: 0.25, Transaction: 0}, w)
}

func TestNormalizeWeights_RejectsNegative(t *testing.T) {
	_, err := normalizeWeights(&engine.ObjectiveWeights{Novelty: -1, Diversity: 1, Balance: 1, Transaction: 1})
	require.Error(t, err)
}

func TestRenderReport_ContainsTablesAndScores(t *testing.T) {
	ev := model.Event{Name: "Q3 Mixer", TableCount: 2, SeatsPerTable: 2}
	p := model.SeatingPlanVersion{
		Version:    3,
		Feasible:   true,
		Iterations: 12,
		Novelty:    0.8, Diversity: 0.7, Balance: 0.6, Transaction: 0.5, Composite: 0.65,
		Summary:   "Overall seating score: 65%.",
		Seed:      42,
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	plan := engine.SeatingPlan{Tables: []engine.Table{
		{Label: "Table 1", GuestIDs: []string{"1", "2"}},
		{Label: "Table 2", GuestIDs: nil},
	}}
	reasons := reasonsPayload{TableSummaries: []string{"Table 1 (2 guests): 2 companies represented."}}
	names := map[string]string{"1": "Ada Park", "2": "Ben Ortiz"}

	out := renderReport(ev, p, plan, reasons, []string{"unresolved constraint: x"}, names)

	require.Contains(t, out, `Seating plan for "Q3 Mixer" (version 3)`)
	require.Contains(t, out, "Table 1: Ada Park, Ben Ortiz")
	require.Contains(t, out, "Table 2: (empty)")
	require.Contains(t, out, "2 companies represented")
	require.Contains(t, out, "unresolved constraint: x")
	require.Contains(t, out, "composite 0.65")
	require.Contains(t, out, "Overall seating score: 65%.")
}

func TestRenderReport_FallsBackToIDs(t *testing.T) {
	ev := model.Event{Name: "Dinner"}
	plan := engine.SeatingPlan{Tables: []engine.Table{{Label: "Table 1", GuestIDs: []string{"9"}}}}

	out := renderReport(ev, model.SeatingPlanVersion{Version: 1}, plan, reasonsPayload{}, nil, nil)

	require.Contains(t, out, "Table 1: 9")
}
