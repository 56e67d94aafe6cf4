// Package jobfilter implements the in-memory filtering and ordering applied
// to the active job list. Apply is pure and deterministic: the same jobs and
// the same state always produce the same ordered result, and the source slice
// is never mutated.
package jobfilter

import (
	"encoding/json"
	"sort"
	"strings"

	"crewboard_backend/internal/models"
)

const (
	RoleAll          = "all"
	AccommodationAll = "all"

	SortNewest = "newest"
	SortOldest = "oldest"
)

// State is the full filter selection. Zero values ("", nil, "all") mean the
// dimension is not narrowed.
type State struct {
	Search        string   `form:"q" json:"q"`
	Role          string   `form:"role" json:"role"`
	Tags          []string `form:"tags[]" json:"tags"`
	Location      string   `form:"location" json:"location"`
	Accommodation string   `form:"accommodation" json:"accommodation"`
	Sort          string   `form:"sort" json:"sort"`
}

// DefaultState returns the neutral selection: nothing filtered, newest first.
func DefaultState() State {
	return State{
		Role:          RoleAll,
		Accommodation: AccommodationAll,
		Sort:          SortNewest,
	}
}

// Normalize maps zero values onto their explicit defaults so that states
// arriving from query-string binding compare and behave consistently.
func (s State) Normalize() State {
	if s.Role == "" {
		s.Role = RoleAll
	}
	if s.Accommodation == "" {
		s.Accommodation = AccommodationAll
	}
	if s.Sort != SortOldest {
		s.Sort = SortNewest
	}
	return s
}

// HasActiveFilters reports whether any dimension differs from its default.
// Sort order alone does not count as an active filter.
func (s State) HasActiveFilters() bool {
	s = s.Normalize()
	return s.Search != "" ||
		s.Role != RoleAll ||
		len(s.Tags) > 0 ||
		s.Location != "" ||
		s.Accommodation != AccommodationAll
}

// Apply narrows jobs to those matching every filter dimension and orders the
// result by creation time. The input slice is left untouched.
func Apply(jobs []models.Job, state State) []models.Job {
	state = state.Normalize()

	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if Matches(&job, state) {
			out = append(out, job)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if state.Sort == SortOldest {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}

// Matches evaluates the AND-composed predicate for a single job.
func Matches(job *models.Job, state State) bool {
	state = state.Normalize()
	location := jobLocation(job)

	if state.Search != "" {
		q := strings.ToLower(state.Search)
		if !strings.Contains(strings.ToLower(job.Title), q) &&
			!strings.Contains(strings.ToLower(location), q) {
			return false
		}
	}

	if state.Role != RoleAll && string(job.Role) != state.Role {
		return false
	}

	// Any-of semantics: one selected tag present in the job's tag set is
	// enough.
	if len(state.Tags) > 0 && !matchesAnyTag(job, state.Tags) {
		return false
	}

	if state.Location != "" &&
		!strings.Contains(strings.ToLower(location), strings.ToLower(state.Location)) {
		return false
	}

	if state.Accommodation != AccommodationAll {
		provided := job.Accommodation == models.AccommodationYes ||
			job.Accommodation == models.AccommodationPartial
		if state.Accommodation == "yes" && !provided {
			return false
		}
		if state.Accommodation == "no" && provided {
			return false
		}
	}

	return true
}

func matchesAnyTag(job *models.Job, selected []string) bool {
	tags := JobTags(job)
	if len(tags) == 0 {
		return false
	}

	tagSet := make(map[string]bool, len(tags))
	for _, t := range tags {
		tagSet[strings.ToLower(t)] = true
	}

	for _, want := range selected {
		if tagSet[strings.ToLower(want)] {
			return true
		}
	}
	return false
}

// JobTags decodes the job's sports JSONB array. A broken column yields no
// tags rather than an error; the filter treats it as an empty set.
func JobTags(job *models.Job) []string {
	if len(job.Sports) == 0 {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(job.Sports, &tags); err != nil {
		return nil
	}
	return tags
}

func jobLocation(job *models.Job) string {
	switch {
	case job.City != "" && job.Country != "":
		return job.City + ", " + job.Country
	case job.City != "":
		return job.City
	default:
		return job.Country
	}
}
