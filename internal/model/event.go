package model

import "time"

// Event describes one networking event owned by a planner. The table
// geometry (table count and seats per table) lives here because it is
// fixed per event and feeds the optimization engine as configuration.
//
// Fields:
//  ID            – primary key identifier.
//  OwnerID       – planner who created the event.
//  Name          – display name of the event.
//  TableCount    – number of tables available at the venue.
//  SeatsPerTable – fixed capacity of each table.
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type Event struct {
	ID            uint64    `json:"id"`              // events.id
	OwnerID       uint64    `json:"owner_id"`        // events.owner_id
	Name          string    `json:"name"`            // events.name
	TableCount    int       `json:"table_count"`     // events.table_count
	SeatsPerTable int       `json:"seats_per_table"` // events.seats_per_table
	CreatedAt     time.Time `json:"created_at"`      // events.created_at
	UpdatedAt     time.Time `json:"updated_at"`      // events.updated_at
}
