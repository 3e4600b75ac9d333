// Package filter implements the directory's filter engine.
//
// Contract: a record is visible iff every per-field test passes (logical
// AND); an empty filter string passes every record; all five fields match
// case-insensitively as contiguous substrings. Apply is pure, total and
// stable: it preserves dataset order, never mutates its input and yields
// identical output for identical input.
package filter

import (
	"strings"

	"github.com/floorcraft/danceboard/internal/domain/model"
)

// CasePolicy names the single case policy applied to all five fields.
// Variant implementations of this directory disagreed per field; one policy
// across the board is the documented contract here.
const CasePolicy = "case-insensitive"

// Filter holds the five independent per-field substring filters.
// The zero value matches every record.
type Filter struct {
	Name      string
	StartDate string
	EndDate   string
	Location  string
	URL       string
}

// Empty reports whether every field is empty, i.e. the filter is the
// match-all identity.
func (f Filter) Empty() bool {
	return f.Name == "" && f.StartDate == "" && f.EndDate == "" &&
		f.Location == "" && f.URL == ""
}

// Matches reports whether e passes every per-field test. A record missing a
// field matches as if that field were the empty string.
func (f Filter) Matches(e model.Event) bool {
	return contains(e.Name, f.Name) &&
		contains(e.StartDate, f.StartDate) &&
		contains(e.EndDate, f.EndDate) &&
		contains(e.Location, f.Location) &&
		contains(e.URL, f.URL)
}

func contains(field, want string) bool {
	if want == "" {
		return true
	}
	return strings.Contains(strings.ToLower(field), strings.ToLower(want))
}

// Apply returns the subset of events matching f, in dataset order. The
// result is a freshly allocated slice; events is never mutated.
func Apply(events []model.Event, f Filter) []model.Event {
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}
