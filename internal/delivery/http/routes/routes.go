package routes

import (
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health         *handler.HealthHandler
	Auth           *handler.AuthHandler
	Match          *handler.MatchHandler
	Application    *handler.ApplicationHandler
	Candidates     *handler.CandidateHandler
	Recommendation *handler.RecommendationHandler
	Alerts         *ws.Handler

	AuthMw *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api")
	r.registerV1(api.Group("/v1"))
}

func (r *Registry) registerV1(v1 fiber.Router) {
	authGroup := v1.Group("/auth")
	r.Auth.RegisterRoutes(authGroup)

	protected := v1.Group("", r.AuthMw.Middleware())

	jobs := protected.Group("/jobs")
	// Static path first so "recommendations" never binds as a job id.
	r.Recommendation.RegisterRoutes(jobs)
	r.Match.RegisterRoutes(jobs)
	r.Application.RegisterRoutes(jobs)

	recruiterOnly := jobs.Group("", middleware.RequireRole(middleware.RoleRecruiter))
	r.Candidates.RegisterRoutes(recruiterOnly)

	// The websocket handshake authenticates itself via a token query
	// param, so it sits outside the bearer-token group.
	v1.Get("/ws/alerts", r.Alerts.HandleAlertsWS)
}
