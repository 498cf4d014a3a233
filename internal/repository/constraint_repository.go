package repository

import (
	"context"
	"database/sql"

	"github.com/planwise/seatplanner/internal/model"
)

// ConstraintRepo encapsulates database operations for constraints.
type ConstraintRepo struct{ DB *sql.DB }

func NewConstraintRepo(db *sql.DB) *ConstraintRepo { return &ConstraintRepo{DB: db} }

// Create inserts a constraint and populates its ID.
func (r *ConstraintRepo) Create(ctx context.Context, c *model.Constraint) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO constraints (event_id, kind, guest_ids, threshold, priority) VALUES (?,?,?,?,?)",
		c.EventID, c.Kind, c.GuestIDs, c.Threshold, c.Priority)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// GetByID fetches one constraint.
func (r *ConstraintRepo) GetByID(ctx context.Context, id uint64) (model.Constraint, error) {
	var c model.Constraint
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, event_id, kind, guest_ids, threshold, priority, created_at FROM constraints WHERE id=? LIMIT 1",
		id).Scan(&c.ID, &c.EventID, &c.Kind, &c.GuestIDs, &c.Threshold, &c.Priority, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return c, ErrNotFound
	}
	return c, err
}

// ListByEvent returns the constraints of an event in insertion order.
// Insertion order matters: the assignment builder resolves
// must-sit-together groups in this order.
func (r *ConstraintRepo) ListByEvent(ctx context.Context, eventID uint64) ([]model.Constraint, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, event_id, kind, guest_ids, threshold, priority, created_at FROM constraints WHERE event_id=? ORDER BY id",
		eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Constraint
	for rows.Next() {
		var c model.Constraint
		if err := rows.Scan(&c.ID, &c.EventID, &c.Kind, &c.GuestIDs, &c.Threshold, &c.Priority, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Delete removes one constraint.
func (r *ConstraintRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM constraints WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
