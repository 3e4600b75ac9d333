// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Event represents a single dance event in the directory.
// Fields mirror the JSON schema of the scraped event feed; dates are opaque
// strings (dd/mm/yyyy in practice) and carry no calendar semantics for
// matching purposes.
type Event struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Location  string `json:"location"`
	URL       string `json:"url"`
}

var dayMonthYear = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// NormalizeDate returns s as zero-padded dd/mm/yyyy when it already has a
// d/m/yyyy shape; anything else is returned untouched. The feed's producer
// emits dd/mm/yyyy but occasionally drops leading zeros.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	m := dayMonthYear.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("%02d/%02d/%s", day, month, m[3])
}

// Clean returns a copy of e with every field trimmed and dates normalized.
func (e Event) Clean() Event {
	return Event{
		Name:      strings.TrimSpace(e.Name),
		StartDate: NormalizeDate(e.StartDate),
		EndDate:   NormalizeDate(e.EndDate),
		Location:  strings.TrimSpace(e.Location),
		URL:       strings.TrimSpace(e.URL),
	}
}

// DedupeKey returns the identity key used for load-time deduplication:
// lowercased name, start date, lowercased location and lowercased url.
func (e Event) DedupeKey() string {
	return strings.ToLower(e.Name) + "|" + e.StartDate + "|" +
		strings.ToLower(e.Location) + "|" + strings.ToLower(e.URL)
}

// ActionableURL returns the event link when it parses as an absolute http or
// https URL. Anything else is treated as absent, not as an error.
func (e Event) ActionableURL() (string, bool) {
	raw := strings.TrimSpace(e.URL)
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return "", false
	}
	switch u.Scheme {
	case "http", "https":
		return raw, true
	}
	return "", false
}

// Upcoming reports whether the event starts on or after today under the
// dd/mm/yyyy convention. Unparseable start dates count as upcoming, matching
// the feed producer's classification.
func (e Event) Upcoming(today time.Time) bool {
	start, err := time.Parse("02/01/2006", NormalizeDate(e.StartDate))
	if err != nil {
		return true
	}
	y, m, d := today.Date()
	return !start.Before(time.Date(y, m, d, 0, 0, 0, 0, today.Location()))
}
