package repository

import (
	"context"
	"database/sql"

	"github.com/planwise/seatplanner/internal/model"
)

// PlanRepo persists seating plan versions. Every optimization run
// appends a new version for its event; nothing is updated in place.
type PlanRepo struct{ DB *sql.DB }

func NewPlanRepo(db *sql.DB) *PlanRepo { return &PlanRepo{DB: db} }

const planColumns = "id, event_id, version, feasible, iterations, novelty, diversity, balance, transaction_score, composite, plan_json, reasons_json, warnings_json, summary, seed, created_at"

func scanPlan(row interface{ Scan(...any) error }) (model.SeatingPlanVersion, error) {
	var p model.SeatingPlanVersion
	err := row.Scan(&p.ID, &p.EventID, &p.Version, &p.Feasible, &p.Iterations,
		&p.Novelty, &p.Diversity, &p.Balance, &p.Transaction, &p.Composite,
		&p.PlanJSON, &p.ReasonsJSON, &p.WarningsJSON, &p.Summary, &p.Seed, &p.CreatedAt)
	return p, err
}

// Create appends a plan version, assigning the next version number
// for the event inside a transaction.
func (r *PlanRepo) Create(ctx context.Context, p *model.SeatingPlanVersion) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var latest sql.NullInt64
	if err := tx.QueryRowContext(ctx,
		"SELECT MAX(version) FROM seating_plans WHERE event_id=?", p.EventID).Scan(&latest); err != nil {
		return err
	}
	p.Version = int(latest.Int64) + 1

	res, err := tx.ExecContext(ctx,
		`INSERT INTO seating_plans
		 (event_id, version, feasible, iterations, novelty, diversity, balance, transaction_score, composite, plan_json, reasons_json, warnings_json, summary, seed)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		p.EventID, p.Version, p.Feasible, p.Iterations,
		p.Novelty, p.Diversity, p.Balance, p.Transaction, p.Composite,
		p.PlanJSON, p.ReasonsJSON, p.WarningsJSON, p.Summary, p.Seed)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return tx.Commit()
}

// Latest returns the newest plan version for an event.
func (r *PlanRepo) Latest(ctx context.Context, eventID uint64) (model.SeatingPlanVersion, error) {
	p, err := scanPlan(r.DB.QueryRowContext(ctx,
		"SELECT "+planColumns+" FROM seating_plans WHERE event_id=? ORDER BY version DESC LIMIT 1", eventID))
	if err == sql.ErrNoRows {
		return p, ErrNotFound
	}
	return p, err
}

// ListVersions returns version metadata for an event, newest first.
// Payload columns are included so callers can render any version.
func (r *PlanRepo) ListVersions(ctx context.Context, eventID uint64) ([]model.SeatingPlanVersion, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+planColumns+" FROM seating_plans WHERE event_id=? ORDER BY version DESC", eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SeatingPlanVersion
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
