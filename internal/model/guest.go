package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/planwise/seatplanner/internal/engine"
)

// Guest mirrors a row of the `guests` table. List-valued attributes
// (tags, known connections) are stored as comma-separated strings to
// keep the schema flat; Engine() splits them when handing records to
// the optimizer.
//
// Fields:
//  ID               – primary key identifier.
//  EventID          – event this guest belongs to.
//  FullName         – display name.
//  Company          – employer, may be empty.
//  Department       – department within the company, may be empty.
//  JobTitle         – free-form title, may be empty.
//  Seniority        – JUNIOR, MID, SENIOR, EXECUTIVE or empty.
//  GuestType        – BUYER, SELLER, CATALYST or NEUTRAL.
//  Tags             – comma-separated free-form tags.
//  KnownConnections – comma-separated guest ids this guest knows.
//  CreatedAt        – creation timestamp.
//  UpdatedAt        – last update timestamp.
type Guest struct {
	ID               uint64    `json:"id"`                // guests.id
	EventID          uint64    `json:"event_id"`          // guests.event_id
	FullName         string    `json:"full_name"`         // guests.full_name
	Company          string    `json:"company"`           // guests.company
	Department       string    `json:"department"`        // guests.department
	JobTitle         string    `json:"job_title"`         // guests.job_title
	Seniority        string    `json:"seniority"`         // guests.seniority
	GuestType        string    `json:"guest_type"`        // guests.guest_type
	Tags             string    `json:"tags"`              // guests.tags (CSV)
	KnownConnections string    `json:"known_connections"` // guests.known_connections (CSV of guest ids)
	CreatedAt        time.Time `json:"created_at"`        // guests.created_at
	UpdatedAt        time.Time `json:"updated_at"`        // guests.updated_at
}

// Engine converts the row into the value type the optimization engine
// consumes. Guest ids become opaque strings.
func (g Guest) Engine() engine.Guest {
	return engine.Guest{
		ID:               fmt.Sprintf("%d", g.ID),
		FullName:         g.FullName,
		Company:          g.Company,
		Department:       g.Department,
		JobTitle:         g.JobTitle,
		Seniority:        g.Seniority,
		GuestType:        g.GuestType,
		Tags:             SplitCSV(g.Tags),
		KnownConnections: SplitCSV(g.KnownConnections),
	}
}

// SplitCSV splits a comma-separated column into trimmed, non-empty
// values. An empty column yields nil.
func SplitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinCSV is the inverse of SplitCSV.
func JoinCSV(vals []string) string {
	return strings.Join(vals, ",")
}
