package handler

import (
	"context"
	"time"

	"talent-match/internal/database"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	redis *cache.Redis
}

func NewHealthHandler(db database.DB, redis *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.Health)
}

// Health reports liveness plus dependency reachability. Redis being down
// is degraded, not unhealthy; the cache is bypassable.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			dbStatus = "down"
		}
	}

	redisStatus := "ok"
	if h.redis == nil || h.redis.Ping(ctx) != nil {
		redisStatus = "down"
	}

	data := map[string]any{
		"database": dbStatus,
		"redis":    redisStatus,
	}
	if dbStatus != "ok" {
		return response.Error(c, fiber.StatusServiceUnavailable, "unhealthy", data)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
