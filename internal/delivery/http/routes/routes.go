package routes

import (
	"log"

	"talent-match/internal/config"
	"talent-match/internal/database"
	"talent-match/internal/delivery/http/handler"
	v1 "talent-match/internal/delivery/http/routes/v1"
	"talent-match/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	cache  *cache.Redis
	logger *log.Logger

	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, db database.DB, redisCache *cache.Redis, logger *log.Logger) *Registry {
	return &Registry{
		cfg:    cfg,
		db:     db,
		cache:  redisCache,
		logger: logger,
		health: handler.NewHealthHandler(db, redisCache),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.cfg, r.db, r.cache, r.logger)
}
