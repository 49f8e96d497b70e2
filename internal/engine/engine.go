package engine

import (
	"errors"
	"sort"
	"strings"
	"sync/atomic"

	"internmatch/internal/domain/internship"
	"internmatch/internal/domain/profile"
)

var ErrNoData = errors.New("internship data not available")

// Snapshot is the immutable per-dataset state: the records, the vector
// space fit over them, and their precomputed vectors. It is built once and
// never mutated; reloads swap in a fully built replacement.
type Snapshot struct {
	dataset internship.Dataset
	space   *Vectorizer
	vectors [][]float64
}

// BuildSnapshot fits the TF-IDF space over the combined text of every
// record (required skills, sector, description) and precomputes each
// record's vector.
func BuildSnapshot(ds internship.Dataset) *Snapshot {
	records := ds.Records()
	corpus := make([]string, len(records))
	for i, r := range records {
		corpus[i] = recordText(r)
	}

	space := FitVectorizer(corpus)
	vectors := make([][]float64, len(records))
	for i, doc := range corpus {
		vectors[i] = space.Transform(doc)
	}
	return &Snapshot{dataset: ds, space: space, vectors: vectors}
}

func (s *Snapshot) Dataset() internship.Dataset { return s.dataset }

func recordText(r internship.Record) string {
	return strings.Join(r.RequiredSkills, " ") + " " + r.Sector + " " + r.Description
}

// Match is one scored internship.
type Match struct {
	Record          internship.Record
	Similarity      float64
	SkillsScore     float64
	LocationScore   float64
	SectorScore     float64
	ExperienceScore float64
	FinalScore      float64
	MatchedSkills   []string
	Reasons         []string
}

// Result is a ranked recommendation list plus the candidate count before
// truncation, so callers can tell "few matches" from "few survivors".
type Result struct {
	Matches         []Match
	TotalCandidates int
}

// Engine scores profiles against the current snapshot. Requests only read
// the snapshot, so concurrent calls are safe; Reload publishes a new
// snapshot atomically and in-flight requests keep the one they loaded.
type Engine struct {
	weights Weights
	topN    int
	current atomic.Pointer[Snapshot]
}

const DefaultTopN = 10

func New(w Weights, topN int) *Engine {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Engine{weights: w, topN: topN}
}

// Reload builds a snapshot from the dataset and swaps it in.
func (e *Engine) Reload(ds internship.Dataset) {
	e.current.Store(BuildSnapshot(ds))
}

func (e *Engine) Snapshot() *Snapshot { return e.current.Load() }

func (e *Engine) Loaded() bool {
	s := e.current.Load()
	return s != nil && s.dataset.Len() > 0
}

func (e *Engine) Total() int {
	if s := e.current.Load(); s != nil {
		return s.dataset.Len()
	}
	return 0
}

func (e *Engine) Weights() Weights { return e.weights }

// Recommend ranks the catalog against the profile. The profile is assumed
// valid; invalid profiles are rejected at the delivery layer. Returns
// ErrNoData when no dataset is loaded or it is empty, which is distinct
// from a loaded dataset producing zero surviving matches.
func (e *Engine) Recommend(p profile.UserProfile) (Result, error) {
	snap := e.current.Load()
	if snap == nil || snap.dataset.Len() == 0 {
		return Result{}, ErrNoData
	}

	queryText := strings.Join(p.Skills, " ") + " " + p.FieldOfStudy
	queryVec := snap.space.Transform(queryText)

	records := snap.dataset.Records()
	matches := make([]Match, 0, len(records))
	for i, rec := range records {
		if !EligibleEducation(p.EducationLevel, rec) {
			continue
		}

		sim := CosineSimilarity(queryVec, snap.vectors[i])
		skillsScore, matchedSkills := SkillsMatch(rec.RequiredSkills, p.Skills)

		var locScore, secScore, expScore float64
		if LocationMatch(p.PreferredLocation, rec.Location) {
			locScore = e.weights.LocationBonus
		}
		if SectorMatch(p.PreferredSectors, rec.Sector) {
			secScore = e.weights.SectorBonus
		}
		if ExperienceMeets(p.ExperienceYears, rec.MinExperienceYears) {
			expScore = e.weights.ExperienceBonus
		}

		m := Match{
			Record:          rec,
			Similarity:      sim,
			SkillsScore:     skillsScore,
			LocationScore:   locScore,
			SectorScore:     secScore,
			ExperienceScore: expScore,
			FinalScore:      e.weights.Combine(sim, skillsScore, locScore, secScore, expScore),
			MatchedSkills:   matchedSkills,
		}
		m.Reasons = matchReasons(m)
		matches = append(matches, m)
	}

	total := len(matches)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].FinalScore > matches[j].FinalScore
	})
	if len(matches) > e.topN {
		matches = matches[:e.topN]
	}

	return Result{Matches: matches, TotalCandidates: total}, nil
}

func matchReasons(m Match) []string {
	reasons := make([]string, 0, 4)
	if m.SkillsScore > 50 {
		reasons = append(reasons, "Strong skills alignment")
	}
	if m.LocationScore > 0 {
		reasons = append(reasons, "Preferred location match")
	}
	if m.SectorScore > 0 {
		reasons = append(reasons, "Sector preference aligned")
	}
	if m.Similarity > 0.3 {
		reasons = append(reasons, "Content similarity high")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "General compatibility")
	}
	return reasons
}
