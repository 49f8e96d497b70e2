package app_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"internmatch/internal/app"
	"internmatch/internal/config"
	"internmatch/internal/delivery/http/dto"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogCSV = `id,title,company,sector,location,duration_months,stipend,description,required_skills,education_requirement,application_deadline,min_experience_years
INT001,Software Development Intern,Tech Innovations,Technology,Delhi,6,15000,Work on web applications,"Python, SQL",Undergraduate,2026-03-15,0
INT002,Finance Intern,Capital Trust,Finance,Mumbai,4,14000,Assist with reporting,"Excel, Accounting",Undergraduate,2026-03-20,1
`

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T, csv string) *app.App {
	t.Helper()

	path := filepath.Join(t.TempDir(), "internships.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o600))

	cfg := config.Config{}
	cfg.App.AppName = "internmatch-test"
	cfg.Data.CatalogPath = path
	cfg.Engine.TopN = 10

	a, err := app.Bootstrap(cfg, zerolog.Nop())
	require.NoError(t, err)
	return a
}

func decodeEnvelope(t *testing.T, body io.Reader) semanticResponse {
	t.Helper()
	var env semanticResponse
	require.NoError(t, json.NewDecoder(body).Decode(&env))
	return env
}

func TestHealth(t *testing.T) {
	a := newTestApp(t, catalogCSV)

	resp, err := a.Fiber.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	env := decodeEnvelope(t, resp.Body)
	var health dto.HealthResponse
	require.NoError(t, json.Unmarshal(env.Data, &health))
	assert.True(t, health.DataLoaded)
	assert.Equal(t, 2, health.TotalInternships)
}

func TestRecommendations(t *testing.T) {
	a := newTestApp(t, catalogCSV)

	body, _ := json.Marshal(map[string]any{
		"name":               "Rahul Sharma",
		"education_level":    "undergraduate",
		"field_of_study":     "Computer Science",
		"skills":             []string{"Python", "React"},
		"preferred_sectors":  []string{"Technology"},
		"preferred_location": "Delhi",
		"experience_years":   0,
	})
	req := httptest.NewRequest("POST", "/api/v1/recommendations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.Fiber.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	env := decodeEnvelope(t, resp.Body)
	var out dto.RecommendationResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))

	require.Equal(t, 2, out.TotalMatches)
	require.NotEmpty(t, out.Recommendations)
	top := out.Recommendations[0]
	assert.Equal(t, "INT001", top.ID)
	assert.Equal(t, 50.0, top.Scores.Skills)
	assert.Equal(t, 20.0, top.Scores.Location)
	assert.Equal(t, 15.0, top.Scores.Sector)
	assert.Equal(t, 5.0, top.Scores.Experience)
	assert.Equal(t, []string{"Python"}, top.MatchedSkills)
	assert.NotEmpty(t, out.GeneratedAt)
}

func TestRecommendations_EmptySkillsRejected(t *testing.T) {
	a := newTestApp(t, catalogCSV)

	body, _ := json.Marshal(map[string]any{
		"name":            "Rahul Sharma",
		"education_level": "undergraduate",
		"field_of_study":  "Computer Science",
		"skills":          []string{},
	})
	req := httptest.NewRequest("POST", "/api/v1/recommendations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.Fiber.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 400, resp.StatusCode)
}

func TestRecommendations_EmptyCatalogUnavailable(t *testing.T) {
	headerOnly := "id,title,company,sector,location,duration_months,stipend,description,required_skills,education_requirement,application_deadline,min_experience_years\n"
	a := newTestApp(t, headerOnly)

	body, _ := json.Marshal(map[string]any{
		"name":            "Rahul Sharma",
		"education_level": "undergraduate",
		"field_of_study":  "Computer Science",
		"skills":          []string{"Python"},
	})
	req := httptest.NewRequest("POST", "/api/v1/recommendations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.Fiber.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 503, resp.StatusCode)
}

func TestSectorsAndLocations(t *testing.T) {
	a := newTestApp(t, catalogCSV)

	resp, err := a.Fiber.Test(httptest.NewRequest("GET", "/api/v1/sectors", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	env := decodeEnvelope(t, resp.Body)
	var sectors dto.SectorsResponse
	require.NoError(t, json.Unmarshal(env.Data, &sectors))
	assert.Equal(t, []string{"Finance", "Technology"}, sectors.Sectors)

	resp2, err := a.Fiber.Test(httptest.NewRequest("GET", "/api/v1/locations", nil))
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, 200, resp2.StatusCode)

	env2 := decodeEnvelope(t, resp2.Body)
	var locations dto.LocationsResponse
	require.NoError(t, json.Unmarshal(env2.Data, &locations))
	assert.Equal(t, []string{"Delhi", "Mumbai"}, locations.Locations)
}

func TestReload(t *testing.T) {
	a := newTestApp(t, catalogCSV)

	resp, err := a.Fiber.Test(httptest.NewRequest("POST", "/api/v1/reload", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	env := decodeEnvelope(t, resp.Body)
	var out dto.ReloadResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, 2, out.TotalInternships)
}
