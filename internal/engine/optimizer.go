package engine

import (
	"fmt"
	"math/rand"
)

// Optimize runs one complete optimization: feasibility check, greedy
// initial assignment, repair, then bounded first-improvement local
// search over pairwise swaps and single moves. The result is the best
// plan found, its metrics, explanations and any warnings.
//
// The search is deterministic for a fixed seed: the shuffle source is
// seeded explicitly and moves are tried in fixed table/guest order,
// accepting the first candidate that both validates and strictly
// improves the weighted composite. It never backtracks past an
// accepted state.
func Optimize(guests []Guest, constraints []Constraint, weights ObjectiveWeights, cfg Config) OptimizationResult {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if cfg.Seed == 0 {
		cfg.Seed = DefaultSeed
	}

	if ok, reason := Feasible(len(guests), constraints, cfg.TableCount, cfg.SeatsPerTable); !ok {
		return OptimizationResult{
			Plan:     SeatingPlan{},
			Warnings: []string{"infeasible: " + reason},
			Feasible: false,
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	plan := BuildInitialPlan(guests, constraints, cfg.TableCount, cfg.SeatsPerTable, rng)
	if ok, _ := ValidatePlan(plan, constraints, guests); !ok {
		RepairPlan(&plan, constraints, cfg.SeatsPerTable)
	}

	warnings := collectDataWarnings(guests, plan)
	metrics := ScorePlan(plan, guests, weights)

	iterations := 0
	for iterations < cfg.MaxIterations {
		next, nextMetrics, improved := improveOnce(plan, metrics, guests, constraints, weights, cfg.SeatsPerTable)
		if !improved {
			break // converged
		}
		plan, metrics = next, nextMetrics
		iterations++
	}

	valid, violations := ValidatePlan(plan, constraints, guests)
	for _, v := range violations {
		warnings = append(warnings, "unresolved constraint: "+v.Message)
	}

	tableSummaries, codes, summary := Explain(plan, guests, metrics, constraints)
	return OptimizationResult{
		Plan:           plan,
		Metrics:        metrics,
		TableSummaries: tableSummaries,
		ReasonCodes:    codes,
		Summary:        summary,
		Warnings:       warnings,
		Feasible:       valid,
		Iterations:     iterations,
	}
}

// improveOnce scans the swap neighborhood, then the move neighborhood,
// and returns the first strictly improving valid plan. Trials run on
// clones so a rejected candidate leaves no partial mutation behind.
func improveOnce(plan SeatingPlan, current PlanMetrics, guests []Guest, constraints []Constraint, weights ObjectiveWeights, seatsPerTable int) (SeatingPlan, PlanMetrics, bool) {
	// Phase 1: pairwise swaps across every distinct pair of tables.
	for ti := 0; ti < len(plan.Tables); ti++ {
		for tj := ti + 1; tj < len(plan.Tables); tj++ {
			for gi := range plan.Tables[ti].GuestIDs {
				for gj := range plan.Tables[tj].GuestIDs {
					trial := plan.Clone()
					trial.Tables[ti].GuestIDs[gi], trial.Tables[tj].GuestIDs[gj] =
						trial.Tables[tj].GuestIDs[gj], trial.Tables[ti].GuestIDs[gi]
					if m, ok := acceptable(trial, current, guests, constraints, weights); ok {
						return trial, m, true
					}
				}
			}
		}
	}

	// Phase 2: single moves to tables with spare capacity.
	for ti := 0; ti < len(plan.Tables); ti++ {
		for gi := range plan.Tables[ti].GuestIDs {
			for tj := 0; tj < len(plan.Tables); tj++ {
				if tj == ti || len(plan.Tables[tj].GuestIDs) >= seatsPerTable {
					continue
				}
				trial := plan.Clone()
				id := trial.Tables[ti].GuestIDs[gi]
				trial.Tables[ti].GuestIDs = append(trial.Tables[ti].GuestIDs[:gi], trial.Tables[ti].GuestIDs[gi+1:]...)
				trial.Tables[tj].GuestIDs = append(trial.Tables[tj].GuestIDs, id)
				if m, ok := acceptable(trial, current, guests, constraints, weights); ok {
					return trial, m, true
				}
			}
		}
	}

	return plan, current, false
}

// acceptable gates a trial plan on validation and strict composite
// improvement.
func acceptable(trial SeatingPlan, current PlanMetrics, guests []Guest, constraints []Constraint, weights ObjectiveWeights) (PlanMetrics, bool) {
	if ok, _ := ValidatePlan(trial, constraints, guests); !ok {
		return PlanMetrics{}, false
	}
	m := ScorePlan(trial, guests, weights)
	if m.Composite <= current.Composite {
		return PlanMetrics{}, false
	}
	return m, true
}

// collectDataWarnings records non-fatal data issues: guests the
// builder could not seat and guests missing company data.
func collectDataWarnings(guests []Guest, plan SeatingPlan) []string {
	var warnings []string
	seatOf := plan.GuestToTable()
	for _, g := range guests {
		if _, ok := seatOf[g.ID]; !ok {
			warnings = append(warnings, fmt.Sprintf("guest %s (%s) could not be assigned to any table", g.FullName, g.ID))
		}
	}
	for _, g := range guests {
		if g.Company == "" {
			warnings = append(warnings, fmt.Sprintf("guest %s has no company set; novelty and diversity scoring will ignore that dimension", g.FullName))
		}
	}
	return warnings
}
