// Package queue defines message payloads exchanged over the message broker.
package queue

// PlanGeneratedEvent is published when a seating plan version is
// produced and stored. It carries enough detail for downstream
// consumers to log or notify without touching the primary database.
type PlanGeneratedEvent struct {
	EventID     uint64  `json:"event_id"`
	EventName   string  `json:"event_name"`
	Version     uint32  `json:"version"`
	Composite   float64 `json:"composite_score"`
	Feasible    bool    `json:"feasible"`
	GuestCount  int     `json:"guest_count"`
	TableCount  int     `json:"table_count"`
	GeneratedAt string  `json:"generated_at"`
}
