package profile

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

type EducationLevel string

const (
	HighSchool    EducationLevel = "high_school"
	Diploma       EducationLevel = "diploma"
	Undergraduate EducationLevel = "undergraduate"
	Graduate      EducationLevel = "graduate"
	Postgraduate  EducationLevel = "postgraduate"
)

var educationRanks = map[EducationLevel]int{
	HighSchool:    0,
	Diploma:       1,
	Undergraduate: 2,
	Graduate:      3,
	Postgraduate:  4,
}

func (l EducationLevel) Valid() bool {
	_, ok := educationRanks[l]
	return ok
}

// Rank returns the level's position on the education ladder, -1 for
// unknown levels.
func (l EducationLevel) Rank() int {
	if r, ok := educationRanks[l]; ok {
		return r
	}
	return -1
}

// ParseRequirement maps free-text education requirements ("Undergraduate",
// "Graduate or above") onto the ladder. The more specific names are probed
// first because "undergraduate" and "postgraduate" both contain "graduate".
// Unrecognized text returns ok=false; callers treat that as no requirement.
func ParseRequirement(s string) (EducationLevel, bool) {
	t := strings.ToLower(s)
	switch {
	case strings.Contains(t, "postgraduate"):
		return Postgraduate, true
	case strings.Contains(t, "undergraduate"):
		return Undergraduate, true
	case strings.Contains(t, "graduate"):
		return Graduate, true
	case strings.Contains(t, "diploma"):
		return Diploma, true
	case strings.Contains(t, "high school"), strings.Contains(t, "high_school"):
		return HighSchool, true
	}
	return "", false
}

// UserProfile is built per request and never persisted. Name is display
// only and takes no part in scoring.
type UserProfile struct {
	Name              string         `json:"name" validate:"required,min=2,max=100"`
	EducationLevel    EducationLevel `json:"education_level" validate:"required,oneof=high_school diploma undergraduate graduate postgraduate"`
	FieldOfStudy      string         `json:"field_of_study" validate:"required,min=2,max=100"`
	Skills            []string       `json:"skills" validate:"required,min=1,max=20,dive,required"`
	PreferredSectors  []string       `json:"preferred_sectors" validate:"max=10"`
	PreferredLocation string         `json:"preferred_location" validate:"max=100"`
	ExperienceYears   int            `json:"experience_years" validate:"gte=0,lte=10"`
}

func (p *UserProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
