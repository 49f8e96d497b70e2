package handler

import (
	"errors"
	"math"
	"time"

	"internmatch/internal/delivery/http/dto"
	"internmatch/internal/delivery/http/middleware"
	"internmatch/internal/domain/profile"
	"internmatch/internal/engine"
	"internmatch/internal/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	engine *engine.Engine
}

func NewRecommendationHandler(eng *engine.Engine) *RecommendationHandler {
	return &RecommendationHandler{engine: eng}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/recommendations", h.Recommend)
}

func (h *RecommendationHandler) Recommend(c fiber.Ctx) error {
	var prof profile.UserProfile
	if err := c.Bind().Body(&prof); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if err := prof.Validate(); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid profile", validationDetails(err), err)
	}

	res, err := h.engine.Recommend(prof)
	if err != nil {
		if errors.Is(err, engine.ErrNoData) {
			return middleware.NewAppError(fiber.StatusServiceUnavailable, "Recommendation service is not ready", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := dto.RecommendationResponse{
		Recommendations: make([]dto.RecommendationItem, 0, len(res.Matches)),
		TotalMatches:    res.TotalCandidates,
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	for _, m := range res.Matches {
		out.Recommendations = append(out.Recommendations, toRecommendationItem(m))
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func toRecommendationItem(m engine.Match) dto.RecommendationItem {
	rec := m.Record
	return dto.RecommendationItem{
		ID:                   rec.ID,
		Title:                rec.Title,
		Company:              rec.Company,
		Sector:               rec.Sector,
		Location:             rec.Location,
		DurationMonths:       rec.DurationMonths,
		Stipend:              rec.Stipend,
		Description:          rec.Description,
		RequiredSkills:       rec.RequiredSkills,
		EducationRequirement: rec.EducationRequirement,
		ApplicationDeadline:  rec.ApplicationDeadline,
		MatchScore:           round1(m.FinalScore),
		Scores: dto.ScoreBreakdown{
			Similarity: round1(m.Similarity * 100),
			Skills:     round1(m.SkillsScore),
			Location:   m.LocationScore,
			Sector:     m.SectorScore,
			Experience: m.ExperienceScore,
		},
		MatchedSkills: m.MatchedSkills,
		MatchReasons:  m.Reasons,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func validationDetails(err error) interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fiber.Map{"fields": fields}
}
