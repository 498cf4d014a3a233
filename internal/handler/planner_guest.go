package handler

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/planwise/seatplanner/internal/engine"
	"github.com/planwise/seatplanner/internal/model"
	"github.com/planwise/seatplanner/internal/repository"
)

type guestBody struct {
	FullName         string   `json:"full_name"`
	Company          string   `json:"company"`
	Department       string   `json:"department"`
	JobTitle         string   `json:"job_title"`
	Seniority        string   `json:"seniority"`
	GuestType        string   `json:"guest_type"`
	Tags             []string `json:"tags"`
	KnownConnections []string `json:"known_connections"`
}

// normalizeGuestAttrs validates and canonicalizes the enum-like guest
// attributes. Seniority may be empty (unknown); guest type defaults to
// NEUTRAL.
func normalizeGuestAttrs(seniority, guestType string) (string, string, error) {
	s := strings.ToUpper(strings.TrimSpace(seniority))
	switch s {
	case "", engine.SeniorityJunior, engine.SeniorityMid, engine.SenioritySenior, engine.SeniorityExecutive:
	default:
		return "", "", fmt.Errorf("invalid seniority %q", seniority)
	}
	t := strings.ToUpper(strings.TrimSpace(guestType))
	switch t {
	case "":
		t = engine.GuestTypeNeutral
	case engine.GuestTypeBuyer, engine.GuestTypeSeller, engine.GuestTypeCatalyst, engine.GuestTypeNeutral:
	default:
		return "", "", fmt.Errorf("invalid guest_type %q", guestType)
	}
	return s, t, nil
}

// eventForOwner loads an event and enforces ownership, translating
// repository errors into HTTP responses. When it returns false the
// response has already been written and the handler must return nil.
func (h *PlannerHandler) eventForOwner(ctx context.Context, c echo.Context, eventID uint64) (model.Event, bool) {
	ownerID, err := getUserID(c)
	if err != nil {
		_ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		return model.Event{}, false
	}
	ev, err := h.Events.GetByIDAndOwner(ctx, eventID, ownerID)
	if err != nil {
		if err == repository.ErrNotFound {
			_ = c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		} else {
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
		return model.Event{}, false
	}
	return ev, true
}

// CreateGuest handles POST /v1/events/:id/guests.
func (h *PlannerHandler) CreateGuest(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body guestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.FullName)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "full_name is required"})
	}
	seniority, guestType, err := normalizeGuestAttrs(body.Seniority, body.GuestType)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, ok := h.eventForOwner(ctx, c, eventID); !ok {
		return nil
	}
	g := &model.Guest{
		EventID:          eventID,
		FullName:         name,
		Company:          strings.TrimSpace(body.Company),
		Department:       strings.TrimSpace(body.Department),
		JobTitle:         strings.TrimSpace(body.JobTitle),
		Seniority:        seniority,
		GuestType:        guestType,
		Tags:             model.JoinCSV(body.Tags),
		KnownConnections: model.JoinCSV(body.KnownConnections),
	}
	if err := h.Guests.Create(ctx, g); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create guest"})
	}
	return c.JSON(http.StatusCreated, g)
}

// ListGuests handles GET /v1/events/:id/guests.
func (h *PlannerHandler) ListGuests(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, ok := h.eventForOwner(ctx, c, eventID); !ok {
		return nil
	}
	items, err := h.Guests.ListByEvent(ctx, eventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// UpdateGuest handles PATCH /v1/guests/:id. Ownership is checked via
// the guest's event.
func (h *PlannerHandler) UpdateGuest(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body guestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	g, err := h.Guests.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "guest not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if _, ok := h.eventForOwner(ctx, c, g.EventID); !ok {
		return nil
	}

	if n := strings.TrimSpace(body.FullName); n != "" {
		g.FullName = n
	}
	seniority, guestType, err := normalizeGuestAttrs(body.Seniority, body.GuestType)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	g.Company = strings.TrimSpace(body.Company)
	g.Department = strings.TrimSpace(body.Department)
	g.JobTitle = strings.TrimSpace(body.JobTitle)
	g.Seniority = seniority
	g.GuestType = guestType
	g.Tags = model.JoinCSV(body.Tags)
	g.KnownConnections = model.JoinCSV(body.KnownConnections)

	if err := h.Guests.Update(ctx, g); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "guest not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, g)
}

// DeleteGuest handles DELETE /v1/guests/:id.
func (h *PlannerHandler) DeleteGuest(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	g, err := h.Guests.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "guest not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if _, ok := h.eventForOwner(ctx, c, g.EventID); !ok {
		return nil
	}
	if err := h.Guests.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "guest not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// csvHeader is the expected column order for guest imports. Multi-value
// cells (tags, known_connections) use ";" between values since "," is
// the CSV field separator.
var csvHeader = []string{"full_name", "company", "department", "job_title", "seniority", "guest_type", "tags", "known_connections"}

// ImportGuests handles POST /v1/events/:id/guests/import. The request
// body is a CSV document with a header row matching csvHeader. Rows
// are validated and inserted in one bulk statement; any bad row fails
// the whole import so partial lists never reach the optimizer.
func (h *PlannerHandler) ImportGuests(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if _, ok := h.eventForOwner(ctx, c, eventID); !ok {
		return nil
	}

	r := csv.NewReader(c.Request().Body)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "empty or unreadable csv"})
	}
	if len(header) != len(csvHeader) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("expected %d columns: %s", len(csvHeader), strings.Join(csvHeader, ","))})
	}
	for i, col := range header {
		if strings.ToLower(strings.TrimSpace(col)) != csvHeader[i] {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("column %d must be %q", i+1, csvHeader[i])})
		}
	}

	var guests []model.Guest
	line := 1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("line %d: malformed csv", line)})
		}
		name := strings.TrimSpace(rec[0])
		if name == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("line %d: full_name is required", line)})
		}
		seniority, guestType, err := normalizeGuestAttrs(rec[4], rec[5])
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("line %d: %v", line, err)})
		}
		guests = append(guests, model.Guest{
			EventID:          eventID,
			FullName:         name,
			Company:          strings.TrimSpace(rec[1]),
			Department:       strings.TrimSpace(rec[2]),
			JobTitle:         strings.TrimSpace(rec[3]),
			Seniority:        seniority,
			GuestType:        guestType,
			Tags:             splitMultiCell(rec[6]),
			KnownConnections: splitMultiCell(rec[7]),
		})
	}
	if len(guests) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "csv has no data rows"})
	}

	if err := h.Guests.CreateBulk(ctx, guests); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "import failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"imported": len(guests)})
}

// splitMultiCell converts a ";"-separated CSV cell into the
// comma-separated storage form.
func splitMultiCell(cell string) string {
	var out []string
	for _, p := range strings.Split(cell, ";") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return model.JoinCSV(out)
}
