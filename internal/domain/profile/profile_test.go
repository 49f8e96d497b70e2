package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() UserProfile {
	return UserProfile{
		Name:              "Rahul Sharma",
		EducationLevel:    Undergraduate,
		FieldOfStudy:      "Computer Science",
		Skills:            []string{"Python", "Data Analysis"},
		PreferredSectors:  []string{"Technology"},
		PreferredLocation: "Delhi",
		ExperienceYears:   0,
	}
}

func TestUserProfile_Validate(t *testing.T) {
	p := validProfile()
	require.NoError(t, p.Validate())
}

func TestUserProfile_Validate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*UserProfile)
	}{
		{"empty skills", func(p *UserProfile) { p.Skills = nil }},
		{"blank skill entry", func(p *UserProfile) { p.Skills = []string{""} }},
		{"missing name", func(p *UserProfile) { p.Name = "" }},
		{"unknown education level", func(p *UserProfile) { p.EducationLevel = "phd" }},
		{"missing field of study", func(p *UserProfile) { p.FieldOfStudy = "" }},
		{"negative experience", func(p *UserProfile) { p.ExperienceYears = -1 }},
		{"excessive experience", func(p *UserProfile) { p.ExperienceYears = 11 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestUserProfile_Validate_OptionalPreferences(t *testing.T) {
	p := validProfile()
	p.PreferredSectors = nil
	p.PreferredLocation = ""
	assert.NoError(t, p.Validate())
}

func TestParseRequirement(t *testing.T) {
	tests := []struct {
		in     string
		want   EducationLevel
		wantOK bool
	}{
		{"Undergraduate", Undergraduate, true},
		{"undergraduate degree", Undergraduate, true},
		{"Postgraduate or above", Postgraduate, true},
		{"Graduate", Graduate, true},
		{"Diploma", Diploma, true},
		{"High School", HighSchool, true},
		{"Not specified", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseRequirement(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestEducationLevel_Rank(t *testing.T) {
	assert.True(t, HighSchool.Rank() < Diploma.Rank())
	assert.True(t, Diploma.Rank() < Undergraduate.Rank())
	assert.True(t, Undergraduate.Rank() < Graduate.Rank())
	assert.True(t, Graduate.Rank() < Postgraduate.Rank())
	assert.Equal(t, -1, EducationLevel("phd").Rank())
	assert.False(t, EducationLevel("phd").Valid())
}
