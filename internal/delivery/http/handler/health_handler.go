package handler

import (
	"context"
	"time"

	"hireflow/internal/database"
	"hireflow/internal/infrastructure/cache"
	"hireflow/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

func NewHealthHandler(db database.DB, c *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: c}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if h.db == nil || h.db.Ping(ctx) != nil {
		dbStatus = "down"
	}
	cacheStatus := "ok"
	if h.cache.Ping(ctx) != nil {
		cacheStatus = "degraded"
	}

	status := fiber.StatusOK
	if dbStatus != "ok" {
		status = fiber.StatusServiceUnavailable
	}

	return response.Success(c, status, response.MessageOK, fiber.Map{
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}
