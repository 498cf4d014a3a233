package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/planwise/seatplanner/internal/model"
)

func TestSplitCSV(t *testing.T) {
	require.Nil(t, model.SplitCSV(""))
	require.Nil(t, model.SplitCSV("  ,  "))
	require.Equal(t, []string{"a", "b"}, model.SplitCSV(" a , b ,"))
}

func TestGuestEngineConversion(t *testing.T) {
	g := model.Guest{
		ID:               7,
		FullName:         "Ada Park",
		Company:          "Acme",
		Seniority:        "SENIOR",
		GuestType:        "BUYER",
		Tags:             "vip,speaker",
		KnownConnections: "3,5",
	}
	eg := g.Engine()
	require.Equal(t, "7", eg.ID)
	require.Equal(t, "Acme", eg.Company)
	require.Equal(t, []string{"vip", "speaker"}, eg.Tags)
	require.Equal(t, []string{"3", "5"}, eg.KnownConnections)
}

func TestValidConstraintKind(t *testing.T) {
	require.True(t, model.ValidConstraintKind("MUST_SIT_TOGETHER"))
	require.True(t, model.ValidConstraintKind("MIN_BUYERS_PER_TABLE"))
	require.False(t, model.ValidConstraintKind("SIT_NEAR_WINDOW"))
}
