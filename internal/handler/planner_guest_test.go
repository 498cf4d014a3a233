package handler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/planwise/seatplanner/internal/engine"
)

func TestNormalizeGuestAttrs_Canonicalizes(t *testing.T) {
	s, gt, err := normalizeGuestAttrs(" senior ", "buyer")
	require.NoError(t, err)
	require.Equal(t, engine.SenioritySenior, s)
	require.Equal(t, engine.GuestTypeBuyer, gt)
}

func TestNormalizeGuestAttrs_EmptyDefaults(t *testing.T) {
	s, gt, err := normalizeGuestAttrs("", "")
	require.NoError(t, err)
	require.Equal(t, "", s)
	require.Equal(t, engine.GuestTypeNeutral, gt)
}

func TestNormalizeGuestAttrs_RejectsUnknown(t *testing.T) {
	_, _, err := normalizeGuestAttrs("INTERN", "")
	require.Error(t, err)

	_, _, err = normalizeGuestAttrs("", "SPONSOR")
	require.Error(t, err)
}

func TestSplitMultiCell(t *testing.T) {
	require.Equal(t, "a,b,c", splitMultiCell("a; b ;;c"))
	require.Equal(t, "", splitMultiCell("  "))
	require.Equal(t, "vip", splitMultiCell("vip"))
}
