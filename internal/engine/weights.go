package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights is the scoring policy: multipliers for the two 0-100-scaled
// component scores plus the fixed bonus points. It is a process constant,
// never per-request input.
type Weights struct {
	Content         float64 `yaml:"content"`
	Skills          float64 `yaml:"skills"`
	LocationBonus   float64 `yaml:"location_bonus"`
	SectorBonus     float64 `yaml:"sector_bonus"`
	ExperienceBonus float64 `yaml:"experience_bonus"`
}

// DefaultWeights is the 40/25/20/15/5 policy; the maxima sum to 100.
func DefaultWeights() Weights {
	return Weights{
		Content:         0.40,
		Skills:          0.25,
		LocationBonus:   20,
		SectorBonus:     15,
		ExperienceBonus: 5,
	}
}

// LoadWeights reads a policy override from a YAML file.
func LoadWeights(path string) (Weights, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Weights{}, fmt.Errorf("read weights file: %w", err)
	}
	w := DefaultWeights()
	if err := yaml.Unmarshal(b, &w); err != nil {
		return Weights{}, fmt.Errorf("parse weights file: %w", err)
	}
	return w, nil
}

// Combine merges the content similarity (0-1), the skills score (0-100) and
// the rule bonuses into one final score. This is the only place the
// weighting lives; the result is clamped to 0-100 for display consistency.
func (w Weights) Combine(similarity, skillsScore, locationScore, sectorScore, experienceScore float64) float64 {
	total := similarity*100*w.Content +
		skillsScore*w.Skills +
		locationScore +
		sectorScore +
		experienceScore
	if total < 0 {
		return 0
	}
	if total > 100 {
		return 100
	}
	return total
}
