package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"internmatch/internal/domain/internship"
)

// Fallbacks for blank catalog fields, matching the upstream CSV conventions.
const (
	defaultTitle       = "Internship Opportunity"
	defaultCompany     = "Company Name"
	defaultSector      = "General"
	defaultLocation    = "Location TBD"
	defaultDescription = "Description not available"
	defaultEducation   = "Not specified"
	defaultDuration    = 3
)

// Load reads the internship catalog from a CSV file. Columns are resolved
// by header name; malformed numeric cells fall back to defaults rather than
// failing the row, but a missing or duplicate id fails the load.
func Load(path string) (internship.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return internship.Dataset{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses catalog CSV from r.
func Read(r io.Reader) (internship.Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return internship.Dataset{}, fmt.Errorf("read catalog header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := col["id"]; !ok {
		return internship.Dataset{}, fmt.Errorf("catalog header missing id column")
	}

	var records []internship.Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return internship.Dataset{}, fmt.Errorf("catalog line %d: %w", line, err)
		}

		cell := func(name string) string {
			idx, ok := col[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		rec := internship.Record{
			ID:                   cell("id"),
			Title:                orDefault(cell("title"), defaultTitle),
			Company:              orDefault(cell("company"), defaultCompany),
			Sector:               orDefault(cell("sector"), defaultSector),
			Location:             orDefault(cell("location"), defaultLocation),
			DurationMonths:       intOr(cell("duration_months"), defaultDuration),
			Stipend:              optionalInt(cell("stipend")),
			Description:          orDefault(cell("description"), defaultDescription),
			RequiredSkills:       splitSkills(cell("required_skills")),
			EducationRequirement: orDefault(cell("education_requirement"), defaultEducation),
			ApplicationDeadline:  cell("application_deadline"),
			MinExperienceYears:   intOr(cell("min_experience_years"), 0),
		}
		records = append(records, rec)
	}

	return internship.NewDataset(records)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func intOr(v string, def int) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func optionalInt(v string) *int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func splitSkills(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
