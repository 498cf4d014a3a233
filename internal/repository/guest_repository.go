package repository

import (
	"context"
	"database/sql"

	"github.com/planwise/seatplanner/internal/model"
)

// GuestRepo encapsulates database operations for guests.
type GuestRepo struct{ DB *sql.DB }

func NewGuestRepo(db *sql.DB) *GuestRepo { return &GuestRepo{DB: db} }

const guestColumns = "id, event_id, full_name, company, department, job_title, seniority, guest_type, tags, known_connections, created_at, updated_at"

func scanGuest(row interface{ Scan(...any) error }) (model.Guest, error) {
	var g model.Guest
	err := row.Scan(&g.ID, &g.EventID, &g.FullName, &g.Company, &g.Department, &g.JobTitle,
		&g.Seniority, &g.GuestType, &g.Tags, &g.KnownConnections, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

// Create inserts a guest and populates its ID.
func (r *GuestRepo) Create(ctx context.Context, g *model.Guest) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO guests (event_id, full_name, company, department, job_title, seniority, guest_type, tags, known_connections) VALUES (?,?,?,?,?,?,?,?,?)",
		g.EventID, g.FullName, g.Company, g.Department, g.JobTitle, g.Seniority, g.GuestType, g.Tags, g.KnownConnections)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	g.ID = uint64(id)
	return nil
}

// CreateBulk inserts multiple guests in one statement. Used by the
// CSV import endpoint. IDs of the passed structs are not populated.
func (r *GuestRepo) CreateBulk(ctx context.Context, guests []model.Guest) error {
	if len(guests) == 0 {
		return nil
	}
	query := "INSERT INTO guests (event_id, full_name, company, department, job_title, seniority, guest_type, tags, known_connections) VALUES "
	args := make([]any, 0, len(guests)*9)
	for i, g := range guests {
		if i > 0 {
			query += ","
		}
		query += "(?,?,?,?,?,?,?,?,?)"
		args = append(args, g.EventID, g.FullName, g.Company, g.Department, g.JobTitle, g.Seniority, g.GuestType, g.Tags, g.KnownConnections)
	}
	_, err := r.DB.ExecContext(ctx, query, args...)
	return err
}

// GetByID fetches one guest.
func (r *GuestRepo) GetByID(ctx context.Context, id uint64) (model.Guest, error) {
	g, err := scanGuest(r.DB.QueryRowContext(ctx,
		"SELECT "+guestColumns+" FROM guests WHERE id=? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return g, ErrNotFound
	}
	return g, err
}

// ListByEvent returns the guests of an event in insertion order.
func (r *GuestRepo) ListByEvent(ctx context.Context, eventID uint64) ([]model.Guest, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+guestColumns+" FROM guests WHERE event_id=? ORDER BY id", eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Guest
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Update rewrites a guest's descriptive fields.
func (r *GuestRepo) Update(ctx context.Context, g model.Guest) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE guests SET full_name=?, company=?, department=?, job_title=?, seniority=?, guest_type=?, tags=?, known_connections=? WHERE id=?",
		g.FullName, g.Company, g.Department, g.JobTitle, g.Seniority, g.GuestType, g.Tags, g.KnownConnections, g.ID)
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

// Delete removes one guest.
func (r *GuestRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM guests WHERE id=?", id)
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
