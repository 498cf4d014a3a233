package router // package router wires HTTP routes to their handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/planwise/seatplanner/internal/handler"
	"github.com/planwise/seatplanner/internal/middleware"
)

// RegisterRoutes registers routes that require no authentication.
// Currently that is only the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication routes. Unauthenticated
// operations live under /v1/auth; /v1/me demonstrates the protected
// group. Logout works with either a bearer token or a refresh token
// in the body, so it stays outside the JWT middleware.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Rotates the refresh token.
	g.POST("/refresh", a.Refresh)
	// Issues a new access token without rotating the refresh token.
	g.POST("/refresh-access", a.RefreshAccess)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("PLANNER", "VIEWER"))
	auth.GET("/me", a.Me)
}

// RegisterPlanner registers the event, guest, constraint and plan
// routes. Everything is behind JWT auth; mutating operations require
// the PLANNER role while reads accept viewers too. cacheMW wraps the
// plan read endpoints, which are the hot path during an event.
func RegisterPlanner(e *echo.Echo, p *handler.PlannerHandler, jwtSecret string, cacheMW echo.MiddlewareFunc) {
	read := e.Group("/v1")
	read.Use(middleware.JWTAuth(jwtSecret))
	read.Use(middleware.RequireRole("PLANNER", "VIEWER"))

	write := e.Group("/v1")
	write.Use(middleware.JWTAuth(jwtSecret))
	write.Use(middleware.RequireRole("PLANNER"))

	// Events
	write.POST("/events", p.CreateEvent)
	read.GET("/events", p.ListEvents)
	read.GET("/events/:id", p.GetEvent)
	write.PATCH("/events/:id", p.UpdateEvent)
	write.DELETE("/events/:id", p.DeleteEvent)

	// Guests
	write.POST("/events/:id/guests", p.CreateGuest)
	read.GET("/events/:id/guests", p.ListGuests)
	write.PATCH("/guests/:id", p.UpdateGuest)
	write.DELETE("/guests/:id", p.DeleteGuest)
	write.POST("/events/:id/guests/import", p.ImportGuests)

	// Constraints
	write.POST("/events/:id/constraints", p.CreateConstraint)
	read.GET("/events/:id/constraints", p.ListConstraints)
	write.DELETE("/constraints/:id", p.DeleteConstraint)

	// Plans
	write.POST("/events/:id/plan", p.GeneratePlan)
	read.GET("/events/:id/plan", p.GetLatestPlan, cacheMW)
	read.GET("/events/:id/plan/versions", p.ListPlanVersions)
	read.GET("/events/:id/plan/report", p.PlanReport, cacheMW)
}
