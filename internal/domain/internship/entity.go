package internship

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrEmptyID     = errors.New("internship record has empty id")
	ErrDuplicateID = errors.New("duplicate internship id")
)

// Record is one internship posting. Immutable after load.
type Record struct {
	ID                   string
	Title                string
	Company              string
	Sector               string
	Location             string
	DurationMonths       int
	Stipend              *int
	Description          string
	RequiredSkills       []string
	EducationRequirement string
	ApplicationDeadline  string
	MinExperienceYears   int
}

// Dataset is the read-only collection of records for the process lifetime.
// Record order is the original source order; it is the ranking tie-break.
type Dataset struct {
	records []Record
}

func NewDataset(records []Record) (Dataset, error) {
	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		if strings.TrimSpace(r.ID) == "" {
			return Dataset{}, fmt.Errorf("record %d: %w", i, ErrEmptyID)
		}
		if _, ok := seen[r.ID]; ok {
			return Dataset{}, fmt.Errorf("record %d (%s): %w", i, r.ID, ErrDuplicateID)
		}
		seen[r.ID] = struct{}{}
	}
	return Dataset{records: records}, nil
}

func (d Dataset) Records() []Record { return d.records }

func (d Dataset) Len() int { return len(d.records) }

// Sectors returns the distinct sector values, sorted.
func (d Dataset) Sectors() []string {
	return d.distinct(func(r Record) string { return r.Sector })
}

// Locations returns the distinct location values, sorted.
func (d Dataset) Locations() []string {
	return d.distinct(func(r Record) string { return r.Location })
}

func (d Dataset) distinct(field func(Record) string) []string {
	seen := make(map[string]struct{}, len(d.records))
	out := make([]string, 0, len(d.records))
	for _, r := range d.records {
		v := strings.TrimSpace(field(r))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
