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
	cache *cache.Redis
}

func NewHealthHandler(db database.DB, redisCache *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: redisCache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.GetHealth)
}

func (h *HealthHandler) GetHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	out := fiber.Map{"status": "ok"}

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			out["status"] = "degraded"
			out["database"] = "unreachable"
			return response.Success(c, fiber.StatusServiceUnavailable, response.MessageError, out)
		}
		out["database"] = "ok"
	}

	// The cache is best-effort; its state is reported but never fails the
	// check.
	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			out["cache"] = "unreachable"
		} else {
			out["cache"] = "ok"
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
