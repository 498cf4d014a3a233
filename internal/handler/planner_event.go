package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/planwise/seatplanner/internal/model"
	"github.com/planwise/seatplanner/internal/repository"
)

// CreateEvent handles POST /v1/events. Table geometry is fixed at
// creation time because every stored plan version depends on it.
func (h *PlannerHandler) CreateEvent(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Name          string `json:"name"`
		TableCount    int    `json:"table_count"`
		SeatsPerTable int    `json:"seats_per_table"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if body.TableCount < 1 || body.SeatsPerTable < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "table_count and seats_per_table must be positive"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ev := &model.Event{
		OwnerID:       ownerID,
		Name:          name,
		TableCount:    body.TableCount,
		SeatsPerTable: body.SeatsPerTable,
	}
	if err := h.Events.Create(ctx, ev); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create event"})
	}
	return c.JSON(http.StatusCreated, ev)
}

// ListEvents handles GET /v1/events.
func (h *PlannerHandler) ListEvents(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Events.ListByOwner(ctx, ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetEvent handles GET /v1/events/:id.
func (h *PlannerHandler) GetEvent(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ev, err := h.Events.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, ev)
}

// UpdateEvent handles PATCH /v1/events/:id. Omitted fields keep their
// current value. Shrinking the geometry is allowed; the next
// optimization run will report infeasibility if guests no longer fit.
func (h *PlannerHandler) UpdateEvent(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Name          *string `json:"name"`
		TableCount    *int    `json:"table_count"`
		SeatsPerTable *int    `json:"seats_per_table"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ev, err := h.Events.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if body.Name != nil {
		if n := strings.TrimSpace(*body.Name); n != "" {
			ev.Name = n
		}
	}
	if body.TableCount != nil {
		if *body.TableCount < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "table_count must be positive"})
		}
		ev.TableCount = *body.TableCount
	}
	if body.SeatsPerTable != nil {
		if *body.SeatsPerTable < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "seats_per_table must be positive"})
		}
		ev.SeatsPerTable = *body.SeatsPerTable
	}
	if err := h.Events.Update(ctx, id, ownerID, ev.Name, ev.TableCount, ev.SeatsPerTable); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	updated, _ := h.Events.GetByIDAndOwner(ctx, id, ownerID)
	return c.JSON(http.StatusOK, updated)
}

// DeleteEvent handles DELETE /v1/events/:id and removes the event with
// its guests, constraints and plan history.
func (h *PlannerHandler) DeleteEvent(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Events.Delete(ctx, id, ownerID); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
