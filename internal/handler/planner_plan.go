package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/planwise/seatplanner/internal/engine"
	"github.com/planwise/seatplanner/internal/model"
	"github.com/planwise/seatplanner/internal/queue"
	"github.com/planwise/seatplanner/internal/repository"
	queue_publisher "github.com/planwise/seatplanner/internal/service"
)

type generatePlanReq struct {
	Weights       *engine.ObjectiveWeights `json:"weights"`
	Seed          *int64                   `json:"seed"`
	Regenerate    bool                     `json:"regenerate"`
	MaxIterations int                      `json:"max_iterations"`
}

// reasonsPayload is the shape stored in seating_plans.reasons_json.
type reasonsPayload struct {
	TableSummaries []string            `json:"table_summaries"`
	ReasonCodes    []engine.ReasonCode `json:"reason_codes"`
}

// normalizeWeights scales non-negative weights to sum to one. Absent
// or all-zero weights fall back to equal weights; a negative weight is
// rejected. The engine itself consumes weights as given.
func normalizeWeights(w *engine.ObjectiveWeights) (engine.ObjectiveWeights, error) {
	if w == nil {
		return engine.EqualWeights, nil
	}
	if w.Novelty < 0 || w.Diversity < 0 || w.Balance < 0 || w.Transaction < 0 {
		return engine.ObjectiveWeights{}, fmt.Errorf("weights must not be negative")
	}
	sum := w.Novelty + w.Diversity + w.Balance + w.Transaction
	if sum == 0 {
		return engine.EqualWeights, nil
	}
	return engine.ObjectiveWeights{
		Novelty:     w.Novelty / sum,
		Diversity:   w.Diversity / sum,
		Balance:     w.Balance / sum,
		Transaction: w.Transaction / sum,
	}, nil
}

// GeneratePlan handles POST /v1/events/:id/plan. It runs the
// optimization synchronously, appends a new plan version and publishes
// a plan.generated message. Regenerate switches to a time-derived seed
// so a planner can ask for a different layout; otherwise the fixed
// default keeps runs reproducible.
func (h *PlannerHandler) GeneratePlan(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body generatePlanReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	weights, err := normalizeWeights(body.Weights)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if body.MaxIterations < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "max_iterations must not be negative"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	ev, ok := h.eventForOwner(ctx, c, eventID)
	if !ok {
		return nil
	}
	guestRows, err := h.Guests.ListByEvent(ctx, eventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if len(guestRows) == 0 {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "event has no guests"})
	}
	constraintRows, err := h.Constraints.ListByEvent(ctx, eventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	guests := make([]engine.Guest, len(guestRows))
	for i, g := range guestRows {
		guests[i] = g.Engine()
	}
	constraints := make([]engine.Constraint, len(constraintRows))
	for i, con := range constraintRows {
		constraints[i] = con.Engine()
	}

	seed := int64(engine.DefaultSeed)
	switch {
	case body.Seed != nil:
		seed = *body.Seed
	case body.Regenerate:
		seed = time.Now().UnixNano()
	}
	maxIter := body.MaxIterations
	if maxIter == 0 {
		maxIter = h.MaxIter // 0 keeps the engine default
	}

	result := engine.Optimize(guests, constraints, weights, engine.Config{
		TableCount:    ev.TableCount,
		SeatsPerTable: ev.SeatsPerTable,
		MaxIterations: maxIter,
		Seed:          seed,
	})

	planJSON, err := json.Marshal(result.Plan)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "encode plan failed"})
	}
	reasonsJSON, err := json.Marshal(reasonsPayload{
		TableSummaries: result.TableSummaries,
		ReasonCodes:    result.ReasonCodes,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "encode reasons failed"})
	}
	warningsJSON, err := json.Marshal(result.Warnings)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "encode warnings failed"})
	}

	version := &model.SeatingPlanVersion{
		EventID:      eventID,
		Feasible:     result.Feasible,
		Iterations:   result.Iterations,
		Novelty:      result.Metrics.Novelty,
		Diversity:    result.Metrics.Diversity,
		Balance:      result.Metrics.Balance,
		Transaction:  result.Metrics.Transaction,
		Composite:    result.Metrics.Composite,
		PlanJSON:     string(planJSON),
		ReasonsJSON:  string(reasonsJSON),
		WarningsJSON: string(warningsJSON),
		Summary:      result.Summary,
		Seed:         seed,
	}
	if err := h.Plans.Create(ctx, version); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save plan failed"})
	}

	// Broker failures are logged by the publisher and must not fail
	// the request; the plan is already stored.
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pubCancel()
		_ = queue_publisher.PublishPlanGenerated(pubCtx, queue.PlanGeneratedEvent{
			EventID:     eventID,
			EventName:   ev.Name,
			Version:     uint32(version.Version),
			Composite:   result.Metrics.Composite,
			Feasible:    result.Feasible,
			GuestCount:  len(guests),
			TableCount:  ev.TableCount,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}()

	return c.JSON(http.StatusCreated, echo.Map{
		"version": version,
		"result":  result,
	})
}

// GetLatestPlan handles GET /v1/events/:id/plan and returns the newest
// stored version with its payloads expanded.
func (h *PlannerHandler) GetLatestPlan(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, ok := h.eventForOwner(ctx, c, eventID); !ok {
		return nil
	}
	p, err := h.Plans.Latest(ctx, eventID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no plan generated yet"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"version":  p,
		"plan":     json.RawMessage(p.PlanJSON),
		"reasons":  json.RawMessage(p.ReasonsJSON),
		"warnings": json.RawMessage(p.WarningsJSON),
	})
}

// ListPlanVersions handles GET /v1/events/:id/plan/versions. Payload
// blobs are excluded from the JSON encoding, leaving score metadata.
func (h *PlannerHandler) ListPlanVersions(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, ok := h.eventForOwner(ctx, c, eventID); !ok {
		return nil
	}
	items, err := h.Plans.ListVersions(ctx, eventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// PlanReport handles GET /v1/events/:id/plan/report and renders the
// latest plan as plain text for printing or email.
func (h *PlannerHandler) PlanReport(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ev, ok := h.eventForOwner(ctx, c, eventID)
	if !ok {
		return nil
	}
	p, err := h.Plans.Latest(ctx, eventID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no plan generated yet"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	var plan engine.SeatingPlan
	var reasons reasonsPayload
	var warnings []string
	if err := json.Unmarshal([]byte(p.PlanJSON), &plan); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "decode plan failed"})
	}
	if err := json.Unmarshal([]byte(p.ReasonsJSON), &reasons); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "decode reasons failed"})
	}
	_ = json.Unmarshal([]byte(p.WarningsJSON), &warnings)

	// Resolve guest ids to display names for the printout.
	names := map[string]string{}
	if guestRows, err := h.Guests.ListByEvent(ctx, eventID); err == nil {
		for _, g := range guestRows {
			names[fmt.Sprintf("%d", g.ID)] = g.FullName
		}
	}

	return c.String(http.StatusOK, renderReport(ev, p, plan, reasons, warnings, names))
}

// renderReport formats a stored plan as a plain-text report. Guests
// whose names cannot be resolved (deleted after the run) fall back to
// their id.
func renderReport(ev model.Event, p model.SeatingPlanVersion, plan engine.SeatingPlan, reasons reasonsPayload, warnings []string, names map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Seating plan for %q (version %d)\n", ev.Name, p.Version)
	fmt.Fprintf(&b, "Generated: %s | seed %d | %d iterations | feasible: %t\n",
		p.CreatedAt.UTC().Format(time.RFC3339), p.Seed, p.Iterations, p.Feasible)
	fmt.Fprintf(&b, "Scores: novelty %.2f, diversity %.2f, balance %.2f, transaction %.2f, composite %.2f\n\n",
		p.Novelty, p.Diversity, p.Balance, p.Transaction, p.Composite)

	// Summaries cover occupied tables only, in table order.
	si := 0
	for _, t := range plan.Tables {
		if len(t.GuestIDs) == 0 {
			fmt.Fprintf(&b, "%s: (empty)\n", t.Label)
			continue
		}
		display := make([]string, len(t.GuestIDs))
		for i, id := range t.GuestIDs {
			if n, ok := names[id]; ok && n != "" {
				display[i] = n
			} else {
				display[i] = id
			}
		}
		fmt.Fprintf(&b, "%s: %s\n", t.Label, strings.Join(display, ", "))
		if si < len(reasons.TableSummaries) && reasons.TableSummaries[si] != "" {
			fmt.Fprintf(&b, "  %s\n", reasons.TableSummaries[si])
		}
		si++
	}

	if len(warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, w := range warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}

	if p.Summary != "" {
		b.WriteString("\n")
		b.WriteString(p.Summary)
		b.WriteString("\n")
	}
	return b.String()
}
