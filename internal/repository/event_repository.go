package repository

import (
	"context"
	"database/sql"

	"github.com/planwise/seatplanner/internal/model"
)

// EventRepo encapsulates database operations for events.
type EventRepo struct{ DB *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{DB: db} }

// Create inserts an event and populates its ID.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO events (owner_id, name, table_count, seats_per_table) VALUES (?,?,?,?)",
		e.OwnerID, e.Name, e.TableCount, e.SeatsPerTable)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	return nil
}

// GetByIDAndOwner fetches one event, enforcing ownership. ErrNotFound
// is returned both for missing rows and rows owned by someone else so
// that handlers do not leak existence.
func (r *EventRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (model.Event, error) {
	var e model.Event
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, owner_id, name, table_count, seats_per_table, created_at, updated_at FROM events WHERE id=? AND owner_id=? LIMIT 1",
		id, ownerID).Scan(&e.ID, &e.OwnerID, &e.Name, &e.TableCount, &e.SeatsPerTable, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return e, ErrNotFound
	}
	return e, err
}

// ListByOwner returns all events belonging to a planner, newest first.
func (r *EventRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Event, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, owner_id, name, table_count, seats_per_table, created_at, updated_at FROM events WHERE owner_id=? ORDER BY id DESC",
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Name, &e.TableCount, &e.SeatsPerTable, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Update changes the mutable fields of an event the owner controls.
func (r *EventRepo) Update(ctx context.Context, id, ownerID uint64, name string, tableCount, seatsPerTable int) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE events SET name=?, table_count=?, seats_per_table=? WHERE id=? AND owner_id=?",
		name, tableCount, seatsPerTable, id, ownerID)
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

// Delete removes an event together with its guests, constraints and
// plan versions. The dependent deletes run first so the operation
// works without ON DELETE CASCADE.
func (r *EventRepo) Delete(ctx context.Context, id, ownerID uint64) error {
	if _, err := r.GetByIDAndOwner(ctx, id, ownerID); err != nil {
		return err
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, q := range []string{
		"DELETE FROM seating_plans WHERE event_id=?",
		"DELETE FROM constraints WHERE event_id=?",
		"DELETE FROM guests WHERE event_id=?",
		"DELETE FROM events WHERE id=?",
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}
