package handler // handler defines http handlers

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/planwise/seatplanner/internal/repository"
)

// PlannerHandler bundles the repositories behind the event, guest,
// constraint and plan endpoints.
type PlannerHandler struct {
	Events      *repository.EventRepo
	Guests      *repository.GuestRepo
	Constraints *repository.ConstraintRepo
	Plans       *repository.PlanRepo
	MaxIter     int // default iteration budget, 0 keeps the engine default
}

// NewPlannerHandler constructs a PlannerHandler and panics if any
// dependency is nil.
func NewPlannerHandler(events *repository.EventRepo, guests *repository.GuestRepo, constraints *repository.ConstraintRepo, plans *repository.PlanRepo, maxIter int) *PlannerHandler {
	if events == nil || guests == nil || constraints == nil || plans == nil {
		panic("nil repository passed to NewPlannerHandler")
	}
	return &PlannerHandler{
		Events:      events,
		Guests:      guests,
		Constraints: constraints,
		Plans:       plans,
		MaxIter:     maxIter,
	}
}

// getUserID extracts the user_id stored by the JWT middleware and
// converts it to uint64. MapClaims stores numbers as float64, so a
// few representations are accepted.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses a numeric :id (or other named) path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
