package handler

import (
	"internmatch/internal/dataset"
	"internmatch/internal/delivery/http/dto"
	"internmatch/internal/delivery/http/middleware"
	"internmatch/internal/engine"
	"internmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

// CatalogHandler serves the derived catalog projections and the reload
// operation. Sectors and locations are pure reads over the loaded dataset.
type CatalogHandler struct {
	engine      *engine.Engine
	catalogPath string
	logger      zerolog.Logger
}

func NewCatalogHandler(eng *engine.Engine, catalogPath string, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{engine: eng, catalogPath: catalogPath, logger: logger}
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/sectors", h.Sectors)
	r.Get("/locations", h.Locations)
	r.Post("/reload", h.Reload)
}

func (h *CatalogHandler) Sectors(c fiber.Ctx) error {
	snap := h.engine.Snapshot()
	if snap == nil {
		return notReady()
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SectorsResponse{Sectors: snap.Dataset().Sectors()})
}

func (h *CatalogHandler) Locations(c fiber.Ctx) error {
	snap := h.engine.Snapshot()
	if snap == nil {
		return notReady()
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.LocationsResponse{Locations: snap.Dataset().Locations()})
}

// Reload rebuilds the snapshot from the catalog file and swaps it in
// atomically. In-flight requests keep scoring against the snapshot they
// loaded; a failed reload leaves the current one untouched.
func (h *CatalogHandler) Reload(c fiber.Ctx) error {
	ds, err := dataset.Load(h.catalogPath)
	if err != nil {
		h.logger.Error().Err(err).Str("path", h.catalogPath).Msg("catalog reload failed")
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	h.engine.Reload(ds)
	h.logger.Info().Int("total", ds.Len()).Msg("catalog reloaded")
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ReloadResponse{TotalInternships: ds.Len()})
}

func notReady() error {
	return middleware.NewAppError(fiber.StatusServiceUnavailable, "Recommendation service is not ready", nil, engine.ErrNoData)
}
