// Package engine contains the seating optimization core: feasibility
// checking, constraint validation, greedy assignment with repair,
// multi-objective scoring, local search and explanation generation.
// The engine is pure computation: it receives in-memory guest and
// constraint records and returns an in-memory result. Persistence,
// authentication and HTTP transport live in the surrounding layers.
package engine

import "fmt"

// Seniority levels, ordered from most junior to most senior. A guest
// may also leave seniority unset.
const (
	SeniorityJunior    = "JUNIOR"
	SeniorityMid       = "MID"
	SenioritySenior    = "SENIOR"
	SeniorityExecutive = "EXECUTIVE"
)

// Guest type tags. Transaction scoring treats buyers, sellers and
// catalysts specially; NEUTRAL guests only contribute to the other
// objectives.
const (
	GuestTypeBuyer    = "BUYER"
	GuestTypeSeller   = "SELLER"
	GuestTypeCatalyst = "CATALYST"
	GuestTypeNeutral  = "NEUTRAL"
)

// SeniorityLevels lists the four recognized levels in order.
var SeniorityLevels = []string{SeniorityJunior, SeniorityMid, SenioritySenior, SeniorityExecutive}

// Guest is one attendee as seen by the engine. Records are assumed to
// be shape-validated upstream and are immutable for the duration of a
// run. KnownConnections may be stored one-way; the engine interprets
// the relation bidirectionally.
type Guest struct {
	ID               string
	FullName         string
	Company          string
	Department       string
	JobTitle         string
	Seniority        string // one of SeniorityLevels, or empty when unknown
	GuestType        string // BUYER, SELLER, CATALYST or NEUTRAL
	Tags             []string
	KnownConnections []string // guest ids this guest already knows
}

// ConstraintKind discriminates the supported placement rules.
type ConstraintKind string

const (
	MustSitTogether    ConstraintKind = "MUST_SIT_TOGETHER"
	MustNotSitTogether ConstraintKind = "MUST_NOT_SIT_TOGETHER"
	MaxSellersPerTable ConstraintKind = "MAX_SELLERS_PER_TABLE"
	MinBuyersPerTable  ConstraintKind = "MIN_BUYERS_PER_TABLE"
)

// Default thresholds applied when a per-table constraint carries no
// explicit value.
const (
	DefaultMaxSellers = 2
	DefaultMinBuyers  = 1
)

// Constraint is a placement rule supplied by the caller. For the two
// per-table kinds the GuestIDs field is carried but not consulted: the
// checks are table-global. Priority is advisory metadata; no tie-break
// logic depends on it.
type Constraint struct {
	ID        string
	Kind      ConstraintKind
	GuestIDs  []string
	Threshold int
	Priority  int
}

// EffectiveThreshold returns the constraint threshold, substituting the
// kind-specific default when the stored value is not positive.
func (c Constraint) EffectiveThreshold() int {
	if c.Threshold > 0 {
		return c.Threshold
	}
	switch c.Kind {
	case MaxSellersPerTable:
		return DefaultMaxSellers
	case MinBuyersPerTable:
		return DefaultMinBuyers
	}
	return 0
}

// ObjectiveWeights holds the relative importance of the four soft
// objectives. The engine consumes the weights as given; callers are
// responsible for any normalization.
type ObjectiveWeights struct {
	Novelty     float64 `json:"novelty"`
	Diversity   float64 `json:"diversity"`
	Balance     float64 `json:"balance"`
	Transaction float64 `json:"transaction"`
}

// EqualWeights gives each objective the same influence.
var EqualWeights = ObjectiveWeights{Novelty: 0.25, Diversity: 0.25, Balance: 0.25, Transaction: 0.25}

// Table is one table of the plan: a stable label plus the ordered ids
// of the guests seated there. Capacity is an external parameter and is
// not stored on the table.
type Table struct {
	Label    string   `json:"label"`
	GuestIDs []string `json:"guest_ids"`
}

// SeatingPlan is the full table-by-table assignment for one run.
// Invariant: a guest id appears in at most one table's list.
type SeatingPlan struct {
	Tables []Table `json:"tables"`
}

// Clone returns a deep copy. The search loop mutates trial clones only,
// so a rejected move leaves no residue in the accepted plan.
func (p SeatingPlan) Clone() SeatingPlan {
	out := SeatingPlan{Tables: make([]Table, len(p.Tables))}
	for i, t := range p.Tables {
		ids := make([]string, len(t.GuestIDs))
		copy(ids, t.GuestIDs)
		out.Tables[i] = Table{Label: t.Label, GuestIDs: ids}
	}
	return out
}

// GuestToTable maps each seated guest id to its table index.
func (p SeatingPlan) GuestToTable() map[string]int {
	m := make(map[string]int)
	for ti, t := range p.Tables {
		for _, id := range t.GuestIDs {
			m[id] = ti
		}
	}
	return m
}

// SeatedCount returns the number of guests placed at any table.
func (p SeatingPlan) SeatedCount() int {
	n := 0
	for _, t := range p.Tables {
		n += len(t.GuestIDs)
	}
	return n
}

// OccupiedTables returns the number of non-empty tables.
func (p SeatingPlan) OccupiedTables() int {
	n := 0
	for _, t := range p.Tables {
		if len(t.GuestIDs) > 0 {
			n++
		}
	}
	return n
}

// PlanMetrics holds the four objective scores in [0,1] plus the
// weighted composite. Metrics are always derived fresh from a plan
// snapshot and never mutated in place.
type PlanMetrics struct {
	Novelty     float64 `json:"novelty"`
	Diversity   float64 `json:"diversity"`
	Balance     float64 `json:"balance"`
	Transaction float64 `json:"transaction"`
	Composite   float64 `json:"composite"`
}

// Impact classifies a reason code's effect on plan quality.
type Impact string

const (
	ImpactPositive Impact = "POSITIVE"
	ImpactNegative Impact = "NEGATIVE"
	ImpactNeutral  Impact = "NEUTRAL"
)

// ReasonCode is a structured, attributable explanation unit. It is
// purely descriptive and has no effect on scoring.
type ReasonCode struct {
	Tag         string   `json:"tag"`
	TableLabel  string   `json:"table,omitempty"`
	GuestIDs    []string `json:"guest_ids,omitempty"`
	Description string   `json:"description"`
	Impact      Impact   `json:"impact"`
	Objective   string   `json:"objective,omitempty"` // novelty, diversity, balance or transaction
}

// Violation describes one failed constraint check.
type Violation struct {
	ConstraintID string         `json:"constraint_id"`
	Kind         ConstraintKind `json:"kind"`
	TableLabels  []string       `json:"tables"`
	GuestIDs     []string       `json:"guest_ids"`
	Message      string         `json:"message"`
}

// Config bounds one optimization run. Zero values fall back to the
// package defaults so an empty Config is usable.
type Config struct {
	TableCount    int
	SeatsPerTable int
	MaxIterations int
	Seed          int64
}

// Engine defaults. The fixed seed keeps regenerated plans reproducible
// unless the caller explicitly varies it.
const (
	DefaultMaxIterations = 1000
	DefaultSeed          = 42
)

// OptimizationResult is the terminal output bundle of one run.
type OptimizationResult struct {
	Plan           SeatingPlan  `json:"plan"`
	Metrics        PlanMetrics  `json:"metrics"`
	TableSummaries []string     `json:"table_summaries"`
	ReasonCodes    []ReasonCode `json:"reason_codes"`
	Summary        string       `json:"summary"`
	Warnings       []string     `json:"warnings"`
	Feasible       bool         `json:"feasible"`
	Iterations     int          `json:"iterations"`
}

// tableLabel produces the stable label for a table index.
func tableLabel(i int) string {
	return fmt.Sprintf("Table %d", i+1)
}

// guestIndex builds an id -> record lookup for scoring and validation.
func guestIndex(guests []Guest) map[string]Guest {
	m := make(map[string]Guest, len(guests))
	for _, g := range guests {
		m[g.ID] = g
	}
	return m
}
