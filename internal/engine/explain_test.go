package engine_test

import (
	"testing"

	"github.com/planwise/seatplanner/internal/engine"
	"github.com/stretchr/testify/require"
)

func explainFixture() ([]engine.Guest, engine.SeatingPlan) {
	guests := []engine.Guest{
		{ID: "g1", FullName: "Ada", Company: "Acme", Department: "Sales", Seniority: engine.SeniorityJunior, GuestType: engine.GuestTypeBuyer},
		{ID: "g2", FullName: "Ben", Company: "Globex", Department: "Legal", Seniority: engine.SeniorityMid, GuestType: engine.GuestTypeSeller},
		{ID: "g3", FullName: "Cleo", Company: "Initech", Department: "Ops", Seniority: engine.SenioritySenior, GuestType: engine.GuestTypeCatalyst},
	}
	plan := engine.SeatingPlan{Tables: []engine.Table{
		{Label: "Table 1", GuestIDs: []string{"g1", "g2", "g3"}},
		{Label: "Table 2"},
	}}
	return guests, plan
}

func findCodes(codes []engine.ReasonCode, tag string) []engine.ReasonCode {
	var out []engine.ReasonCode
	for _, rc := range codes {
		if rc.Tag == tag {
			out = append(out, rc)
		}
	}
	return out
}

func TestExplain_PositiveReasons(t *testing.T) {
	guests, plan := explainFixture()
	metrics := engine.ScorePlan(plan, guests, engine.EqualWeights)

	summaries, codes, summary := engine.Explain(plan, guests, metrics, nil)

	require.Len(t, summaries, 1, "empty tables get no summary")
	require.NotEmpty(t, summary)

	require.Len(t, findCodes(codes, engine.ReasonCompanyMix), 1)
	require.Len(t, findCodes(codes, engine.ReasonDepartmentMix), 1)
	require.Len(t, findCodes(codes, engine.ReasonSenioritySpread), 1)
	require.Len(t, findCodes(codes, engine.ReasonBuyerSeller), 1)

	catalyst := findCodes(codes, engine.ReasonCatalyst)
	require.Len(t, catalyst, 1)
	require.Equal(t, []string{"g3"}, catalyst[0].GuestIDs)
	require.Equal(t, engine.ImpactPositive, catalyst[0].Impact)
}

func TestExplain_NegativeReasons(t *testing.T) {
	guests := []engine.Guest{
		{ID: "g1", Company: "Acme", GuestType: engine.GuestTypeSeller},
		{ID: "g2", Company: "Acme", GuestType: engine.GuestTypeSeller},
		{ID: "g3", Company: "Acme", GuestType: engine.GuestTypeNeutral},
	}
	plan := engine.SeatingPlan{Tables: []engine.Table{
		{Label: "Table 1", GuestIDs: []string{"g1", "g2", "g3"}},
	}}
	metrics := engine.ScorePlan(plan, guests, engine.EqualWeights)

	_, codes, _ := engine.Explain(plan, guests, metrics, nil)

	cluster := findCodes(codes, engine.ReasonCompanyCluster)
	require.Len(t, cluster, 1)
	require.Equal(t, engine.ImpactNegative, cluster[0].Impact)

	overlap := findCodes(codes, engine.ReasonSellerOverlap)
	require.Len(t, overlap, 1)
	require.ElementsMatch(t, []string{"g1", "g2"}, overlap[0].GuestIDs)
}

func TestExplain_GroupSeated(t *testing.T) {
	guests, plan := explainFixture()
	constraints := []engine.Constraint{{
		ID:       "grp",
		Kind:     engine.MustSitTogether,
		GuestIDs: []string{"g1", "g2"},
	}}
	metrics := engine.ScorePlan(plan, guests, engine.EqualWeights)

	_, codes, _ := engine.Explain(plan, guests, metrics, constraints)

	seated := findCodes(codes, engine.ReasonGroupSeated)
	require.Len(t, seated, 1)
	require.Equal(t, engine.ImpactNeutral, seated[0].Impact)
	require.Equal(t, "Table 1", seated[0].TableLabel)
}

func TestExplain_SummaryContents(t *testing.T) {
	guests, plan := explainFixture()
	metrics := engine.ScorePlan(plan, guests, engine.EqualWeights)

	_, _, summary := engine.Explain(plan, guests, metrics, nil)

	require.Contains(t, summary, "%")
	require.Contains(t, summary, "3 guests")
	require.Contains(t, summary, "1 tables")
}
