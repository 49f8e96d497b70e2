package app

import (
	"fmt"
	"strings"

	"internmatch/internal/config"
	"internmatch/internal/dataset"
	"internmatch/internal/delivery/http/middleware"
	"internmatch/internal/delivery/http/routes"
	"internmatch/internal/engine"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/rs/zerolog"
)

type App struct {
	Fiber  *fiber.App
	Engine *engine.Engine
}

// Bootstrap wires the whole service: scoring weights, the catalog, the
// engine snapshot, and the Fiber app with its middleware and routes.
func Bootstrap(cfg config.Config, logger zerolog.Logger) (*App, error) {
	weights := engine.DefaultWeights()
	if cfg.Engine.WeightsPath != "" {
		w, err := engine.LoadWeights(cfg.Engine.WeightsPath)
		if err != nil {
			return nil, fmt.Errorf("load scoring weights: %w", err)
		}
		weights = w
	}

	eng := engine.New(weights, cfg.Engine.TopN)

	ds, err := dataset.Load(cfg.Data.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load internship catalog: %w", err)
	}
	eng.Reload(ds)
	logger.Info().Int("total", ds.Len()).Str("path", cfg.Data.CatalogPath).Msg("internship catalog loaded")

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, cfg, logger)
	routes.NewRegistry(cfg, eng, logger).Register(f)

	return &App{Fiber: f, Engine: eng}, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, logger zerolog.Logger) {
	if app == nil {
		return
	}

	corsCfg := cors.Config{}
	if len(cfg.App.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.App.AllowOrigins
		corsCfg.AllowCredentials = true
	}
	app.Use(cors.New(corsCfg))

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
