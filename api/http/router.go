package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/scholarship/api/http/handlers"
)

// Routes groups the handlers and guards Register wires.
type Routes struct {
	Auth        *handlers.AuthHandler
	Health      *handlers.HealthHandler
	Scholarship *handlers.ScholarshipHandler
	// AuthMW authenticates; AdminMW authorizes.
	AuthMW  fiber.Handler
	AdminMW fiber.Handler
	// MatchLimit throttles /match. Nil disables it.
	MatchLimit fiber.Handler
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, r Routes) {
	api := app.Group("/api")

	// Health and readiness endpoints for monitoring
	api.Get("/health", r.Health.Health)
	api.Get("/ready", r.Health.Ready)

	api.Get("/scholarships", r.Scholarship.List)
	if r.MatchLimit != nil {
		api.Post("/match", r.MatchLimit, r.Scholarship.Match)
	} else {
		api.Post("/match", r.Scholarship.Match)
	}

	api.Post("/auth/login", r.Auth.Login)

	admin := api.Group("/admin", r.AuthMW, r.AdminMW)
	admin.Post("/seed", r.Scholarship.Seed)
}
