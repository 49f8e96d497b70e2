package handler

import (
	"internmatch/internal/delivery/http/dto"
	"internmatch/internal/engine"
	"internmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	engine  *engine.Engine
	appName string
}

func NewHealthHandler(eng *engine.Engine, appName string) *HealthHandler {
	return &HealthHandler{engine: eng, appName: appName}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/", h.Root)
	app.Get("/health", h.Health)
}

func (h *HealthHandler) Root(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.APIInfoResponse{
		Message: h.appName,
		Version: "1.0.0",
		Health:  "/health",
	})
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.HealthResponse{
		Status:           "healthy",
		DataLoaded:       h.engine.Loaded(),
		TotalInternships: h.engine.Total(),
	})
}
