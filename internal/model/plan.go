package model

import "time"

// SeatingPlanVersion mirrors a row of the `seating_plans` table. Each
// optimization run appends a new version for its event; the plan and
// explanation payloads are stored as JSON blobs so regenerations never
// overwrite history.
//
// Fields:
//  ID          – primary key identifier.
//  EventID     – event this plan belongs to.
//  Version     – monotonically increasing per event.
//  Feasible    – final validation verdict of the run.
//  Iterations  – local-search iterations consumed.
//  Novelty, Diversity, Balance, Transaction, Composite – objective scores.
//  PlanJSON    – serialized engine.SeatingPlan.
//  ReasonsJSON – serialized reason codes and table summaries.
//  WarningsJSON – serialized warning strings.
//  Summary     – overall one-line summary text.
//  Seed        – random seed the run used.
//  CreatedAt   – creation timestamp.
type SeatingPlanVersion struct {
	ID           uint64    `json:"id"`          // seating_plans.id
	EventID      uint64    `json:"event_id"`    // seating_plans.event_id
	Version      int       `json:"version"`     // seating_plans.version
	Feasible     bool      `json:"feasible"`    // seating_plans.feasible
	Iterations   int       `json:"iterations"`  // seating_plans.iterations
	Novelty      float64   `json:"novelty"`     // seating_plans.novelty
	Diversity    float64   `json:"diversity"`   // seating_plans.diversity
	Balance      float64   `json:"balance"`     // seating_plans.balance
	Transaction  float64   `json:"transaction"` // seating_plans.transaction
	Composite    float64   `json:"composite"`   // seating_plans.composite
	PlanJSON     string    `json:"-"`           // seating_plans.plan_json
	ReasonsJSON  string    `json:"-"`           // seating_plans.reasons_json
	WarningsJSON string    `json:"-"`           // seating_plans.warnings_json
	Summary      string    `json:"summary"`     // seating_plans.summary
	Seed         int64     `json:"seed"`        // seating_plans.seed
	CreatedAt    time.Time `json:"created_at"`  // seating_plans.created_at
}
