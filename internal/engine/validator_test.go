package engine_test

import (
	"testing"

	"github.com/planwise/seatplanner/internal/engine"
	"github.com/stretchr/testify/require"
)

func TestValidatePlan_TogetherSatisfied(t *testing.T) {
	guests := makeGuests(4)
	constraints := []engine.Constraint{{
		ID:       "grp",
		Kind:     engine.MustSitTogether,
		GuestIDs: []string{"g1", "g2"},
	}}
	plan := engine.SeatingPlan{Tables: []engine.Table{
		{Label: "Table 1", GuestIDs: []string{"g1", "g2"}},
		{Label: "Table 2", GuestIDs: []string{"g3", "g4"}},
	}}
	ok, violations := engine.ValidatePlan(plan, constraints, guests)
	require.True(t, ok)
	require.Empty(t, violations)
}

func TestValidatePlan_TogetherSplit(t *testing.T) {
	guests := makeGuests(4)
	constraints := []engine.Constraint{{
		ID:       "grp",
		Kind:     engine.MustSitTogether,
		GuestIDs: []string{"g1", "g3"},
	}}
	plan := engine.SeatingPlan{Tables: []engine.Table{
		{Label: "Table 1", GuestIDs: []string{"g1", "g2"}},
		{Label: "Table 2", GuestIDs: []string{"g3", "g4"}},
	}}
	ok, violations := engine.ValidatePlan(plan, constraints, guests)
	require.False(t, ok)
	require.Len(t, violations, 1)
	require.Equal(t, "grp", violations[0].ConstraintID)
	require.Equal(t, engine.MustSitTogether, violations[0].Kind)
	require.Len(t, violations[0].TableLabels, 2)
}

// TestValidatePlan_ApartViolated seats a must-not pair deliberately at
// the same table and expects a violation naming that constraint.
func TestValidatePlan_ApartViolated(t *testing.T) {
	guests := makeGuests(3)
	constraints := []engine.Constraint{{
		ID:       "apart",
		Kind:     engine.MustNotSitTogether,
		GuestIDs: []string{"g1", "g2"},
	}}
	plan := engine.SeatingPlan{Tables: []engine.Table{
		{Label: "Table 1", GuestIDs: []string{"g1", "g2"}},
		{Label: "Table 2", GuestIDs: []string{"g3"}},
	}}
	ok, violations := engine.ValidatePlan(plan, constraints, guests)
	require.False(t, ok)
	require.Len(t, violations, 1)
	require.Equal(t, "apart", violations[0].ConstraintID)
	require.ElementsMatch(t, []string{"g1", "g2"}, violations[0].GuestIDs)
}

// TestValidatePlan_ApartFirstMatchOnly: only the first offending table
// is reported per must-not constraint.
func TestValidatePlan_ApartFirstMatchOnly(t *testing.T) {
	guests := makeGuests(4)
	constraints := []engine.Constraint{{
		ID:       "apart",
		Kind:     engine.MustNotSitTogether,
		GuestIDs: []string{"g1", "g2", "g3", "g4"},
	}}
	plan := engine.SeatingPlan{Tables: []engine.Table{
		{Label: "Table 1", GuestIDs: []string{"g1", "g2"}},
		{Label: "Table 2", GuestIDs: []string{"g3", "g4"}},
	}}
	_, violations := engine.ValidatePlan(plan, constraints, guests)
	require.Len(t, violations, 1)
	require.Equal(t, []string{"Table 1"}, violations[0].TableLabels)
}

func TestValidatePlan_SellerCeiling(t *testing.T) {
	guests := []engine.Guest{
		{ID: "g1", GuestType: engine.GuestTypeSeller},
		{ID: "g2", GuestType: engine.GuestTypeSeller},
		{ID: "g3", GuestType: engine.GuestTypeSeller},
		{ID: "g4", GuestType: engine.GuestTypeBuyer},
	}
	constraints := []engine.Constraint{{ID: "max", Kind: engine.MaxSellersPerTable}}
	plan := engine.SeatingPlan{Tables: []engine.Table{
		{Label: "Table 1", GuestIDs: []string{"g1", "g2", "g3", "g4"}},
	}}
	ok, violations := engine.ValidatePlan(plan, constraints, guests)
	require.False(t, ok)
	require.Len(t, violations, 1)
	require.Contains(t, violations[0].Message, "3 sellers")
	require.ElementsMatch(t, []string{"g1", "g2", "g3"}, violations[0].GuestIDs)
}

// TestValidatePlan_BuyerFloor: empty tables are exempt; occupied ones
// below the minimum are flagged.
func TestValidatePlan_BuyerFloor(t *testing.T) {
	guests := []engine.Guest{
		{ID: "g1", GuestType: engine.GuestTypeSeller},
		{ID: "g2", GuestType: engine.GuestTypeBuyer},
	}
	constraints := []engine.Constraint{{ID: "min", Kind: engine.MinBuyersPerTable}}
	plan := engine.SeatingPlan{Tables: []engine.Table{
		{Label: "Table 1", GuestIDs: []string{"g1"}},
		{Label: "Table 2", GuestIDs: []string{"g2"}},
		{Label: "Table 3"},
	}}
	ok, violations := engine.ValidatePlan(plan, constraints, guests)
	require.False(t, ok)
	require.Len(t, violations, 1)
	require.Equal(t, []string{"Table 1"}, violations[0].TableLabels)
}

// TestValidatePlan_UnknownGuestIgnored: references to guests that are
// not seated anywhere never trigger violations.
func TestValidatePlan_UnknownGuestIgnored(t *testing.T) {
	guests := makeGuests(2)
	constraints := []engine.Constraint{{
		ID:       "grp",
		Kind:     engine.MustSitTogether,
		GuestIDs: []string{"g1", "ghost"},
	}}
	plan := engine.SeatingPlan{Tables: []engine.Table{
		{Label: "Table 1", GuestIDs: []string{"g1", "g2"}},
	}}
	ok, _ := engine.ValidatePlan(plan, constraints, guests)
	require.True(t, ok)
}
