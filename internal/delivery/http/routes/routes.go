package routes

import (
	"internmatch/internal/config"
	"internmatch/internal/delivery/http/handler"
	"internmatch/internal/engine"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

type Registry struct {
	health         *handler.HealthHandler
	recommendation *handler.RecommendationHandler
	catalog        *handler.CatalogHandler
}

func NewRegistry(cfg config.Config, eng *engine.Engine, logger zerolog.Logger) *Registry {
	return &Registry{
		health:         handler.NewHealthHandler(eng, cfg.App.AppName),
		recommendation: handler.NewRecommendationHandler(eng),
		catalog:        handler.NewCatalogHandler(eng, cfg.Data.CatalogPath, logger),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	v1 := app.Group("/api").Group("/v1")
	r.recommendation.RegisterRoutes(v1)
	r.catalog.RegisterRoutes(v1)
}
