package model

import (
	"fmt"
	"time"

	"github.com/planwise/seatplanner/internal/engine"
)

// Constraint mirrors a row of the `constraints` table. Kind matches
// the engine's constraint kinds; GuestIDs is a comma-separated list
// of guest ids. For the per-table kinds (max sellers, min buyers) the
// guest list is carried for future scoping but the check is
// table-global.
//
// Fields:
//  ID        – primary key identifier.
//  EventID   – event this constraint belongs to.
//  Kind      – constraint discriminator.
//  GuestIDs  – comma-separated guest ids.
//  Threshold – numeric threshold for the per-table kinds (0 = default).
//  Priority  – advisory importance, informational only.
//  CreatedAt – creation timestamp.
type Constraint struct {
	ID        uint64    `json:"id"`         // constraints.id
	EventID   uint64    `json:"event_id"`   // constraints.event_id
	Kind      string    `json:"kind"`       // constraints.kind
	GuestIDs  string    `json:"guest_ids"`  // constraints.guest_ids (CSV)
	Threshold int       `json:"threshold"`  // constraints.threshold
	Priority  int       `json:"priority"`   // constraints.priority
	CreatedAt time.Time `json:"created_at"` // constraints.created_at
}

// Engine converts the row into the engine's constraint value type.
func (c Constraint) Engine() engine.Constraint {
	return engine.Constraint{
		ID:        fmt.Sprintf("%d", c.ID),
		Kind:      engine.ConstraintKind(c.Kind),
		GuestIDs:  SplitCSV(c.GuestIDs),
		Threshold: c.Threshold,
		Priority:  c.Priority,
	}
}

// ValidConstraintKind reports whether kind is one of the supported
// discriminators.
func ValidConstraintKind(kind string) bool {
	switch engine.ConstraintKind(kind) {
	case engine.MustSitTogether, engine.MustNotSitTogether,
		engine.MaxSellersPerTable, engine.MinBuyersPerTable:
		return true
	}
	return false
}
