package dto

type RecommendationResponse struct {
	Recommendations []RecommendationItem `json:"recommendations"`
	TotalMatches    int                  `json:"total_matches"`
	GeneratedAt     string               `json:"generated_at"`
}

type RecommendationItem struct {
	ID                   string         `json:"id"`
	Title                string         `json:"title"`
	Company              string         `json:"company"`
	Sector               string         `json:"sector"`
	Location             string         `json:"location"`
	DurationMonths       int            `json:"duration_months"`
	Stipend              *int           `json:"stipend,omitempty"`
	Description          string         `json:"description"`
	RequiredSkills       []string       `json:"required_skills"`
	EducationRequirement string         `json:"education_requirement"`
	ApplicationDeadline  string         `json:"application_deadline,omitempty"`
	MatchScore           float64        `json:"match_score"`
	Scores               ScoreBreakdown `json:"scores"`
	MatchedSkills        []string       `json:"matched_skills"`
	MatchReasons         []string       `json:"match_reasons"`
}

type ScoreBreakdown struct {
	Similarity float64 `json:"similarity"`
	Skills     float64 `json:"skills"`
	Location   float64 `json:"location"`
	Sector     float64 `json:"sector"`
	Experience float64 `json:"experience"`
}
