package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/planwise/seatplanner/internal/engine"
	"github.com/planwise/seatplanner/internal/model"
	"github.com/planwise/seatplanner/internal/repository"
)

// CreateConstraint handles POST /v1/events/:id/constraints.
func (h *PlannerHandler) CreateConstraint(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Kind      string   `json:"kind"`
		GuestIDs  []string `json:"guest_ids"`
		Threshold int      `json:"threshold"`
		Priority  int      `json:"priority"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	kind := strings.ToUpper(strings.TrimSpace(body.Kind))
	if !model.ValidConstraintKind(kind) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown constraint kind"})
	}
	// The pairing kinds are meaningless without at least two guests.
	switch engine.ConstraintKind(kind) {
	case engine.MustSitTogether, engine.MustNotSitTogether:
		if len(body.GuestIDs) < 2 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "at least two guest_ids required"})
		}
	}
	if body.Threshold < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "threshold must not be negative"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, ok := h.eventForOwner(ctx, c, eventID); !ok {
		return nil
	}
	con := &model.Constraint{
		EventID:   eventID,
		Kind:      kind,
		GuestIDs:  model.JoinCSV(body.GuestIDs),
		Threshold: body.Threshold,
		Priority:  body.Priority,
	}
	if err := h.Constraints.Create(ctx, con); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create constraint"})
	}
	return c.JSON(http.StatusCreated, con)
}

// ListConstraints handles GET /v1/events/:id/constraints.
func (h *PlannerHandler) ListConstraints(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, ok := h.eventForOwner(ctx, c, eventID); !ok {
		return nil
	}
	items, err := h.Constraints.ListByEvent(ctx, eventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// DeleteConstraint handles DELETE /v1/constraints/:id.
func (h *PlannerHandler) DeleteConstraint(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	con, err := h.Constraints.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "constraint not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if _, ok := h.eventForOwner(ctx, c, con.EventID); !ok {
		return nil
	}
	if err := h.Constraints.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "constraint not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
