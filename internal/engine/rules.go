package engine

import (
	"strings"

	"internmatch/internal/domain/internship"
	"internmatch/internal/domain/profile"
)

// SkillsMatch returns the fraction of required skills covered by the user's
// skills on a 0-100 scale, plus the required skills that matched. Skills are
// compared case-insensitively after whitespace normalization; a partial
// containment either way counts ("sql" matches "postgresql"). A record with
// no required skills scores 0 rather than dividing by zero.
func SkillsMatch(required, userSkills []string) (float64, []string) {
	type skill struct{ display, norm string }
	req := make([]skill, 0, len(required))
	for _, s := range required {
		if n := normalizeSkill(s); n != "" {
			req = append(req, skill{display: strings.TrimSpace(s), norm: n})
		}
	}
	if len(req) == 0 {
		return 0, nil
	}
	user := normalizeSkills(userSkills)

	matched := make([]string, 0, len(req))
	for _, r := range req {
		for _, u := range user {
			if strings.Contains(r.norm, u) || strings.Contains(u, r.norm) {
				matched = append(matched, r.display)
				break
			}
		}
	}
	return float64(len(matched)) / float64(len(req)) * 100, matched
}

// LocationMatch reports whether the preferred location appears in the record
// location. An empty preference never matches.
func LocationMatch(preferred, location string) bool {
	preferred = normalizeSkill(preferred)
	if preferred == "" {
		return false
	}
	return strings.Contains(normalizeSkill(location), preferred)
}

// SectorMatch reports whether any preferred sector appears in the record
// sector. An empty preference set never matches.
func SectorMatch(preferred []string, sector string) bool {
	s := normalizeSkill(sector)
	if s == "" {
		return false
	}
	for _, p := range preferred {
		p = normalizeSkill(p)
		if p != "" && strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// ExperienceMeets reports whether the user's experience satisfies the record
// minimum. Falling short only forfeits the bonus; it never filters the
// record out.
func ExperienceMeets(userYears, minYears int) bool {
	return userYears >= minYears
}

// EligibleEducation is the one hard filter: a profile at a given level is
// eligible for records requiring that level or above on the ladder. A
// requirement that does not parse to a known level is treated as open to
// everyone.
func EligibleEducation(level profile.EducationLevel, rec internship.Record) bool {
	req, ok := profile.ParseRequirement(rec.EducationRequirement)
	if !ok {
		return true
	}
	return req.Rank() >= level.Rank()
}

func normalizeSkill(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func normalizeSkills(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if n := normalizeSkill(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}
