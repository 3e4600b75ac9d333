// Package source fetches the event feed and normalizes it into domain
// events.
//
// The feed is the JSON artifact written by the scraper: either a bare array
// of records or an object carrying arrays under "events", "upcoming" and
// "past". Records use loosely aliased keys; missing fields degrade to empty
// strings rather than failing the load.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/floorcraft/danceboard/internal/domain/dedupe"
	"github.com/floorcraft/danceboard/internal/domain/model"
	"github.com/floorcraft/danceboard/pkg/metrics"
)

// Loader defaults.
const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "danceboard/1.0"
	maxPayloadBytes  = 8 << 20 // scraped feeds are a few hundred KB at most
)

// Aliases the feed producer is known to emit, in priority order.
var (
	nameKeys     = []string{"name", "event_name", "title"}
	startKeys    = []string{"start_date", "from", "start"}
	endKeys      = []string{"end_date", "to", "end"}
	locationKeys = []string{"location", "place", "city"}
	urlKeys      = []string{"url", "link", "page"}
)

// Loader fetches and parses the configured event resource.
type Loader struct {
	url       string
	retryMax  int
	timeout   time.Duration
	userAgent string
}

// New creates a Loader for the given resource URL.
func New(url string, opts ...Option) *Loader {
	l := &Loader{
		url:       url,
		retryMax:  0,
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// URL returns the configured resource location.
func (l *Loader) URL() string { return l.url }

// Fetch issues one GET of the resource and returns the normalized, deduped
// event collection. Any failure comes back as a wrapped sentinel error; the
// caller decides how to degrade.
func (l *Loader) Fetch(ctx context.Context) ([]model.Event, error) {
	metrics.RecordLoadAttempt()
	start := time.Now()
	defer func() {
		metrics.RecordLoadDuration(float64(time.Since(start).Milliseconds()))
	}()

	events, err := l.fetch(ctx)
	if err != nil {
		metrics.RecordLoadFailure()
		return nil, err
	}
	return events, nil
}

func (l *Loader) fetch(ctx context.Context) ([]model.Event, error) {
	client := retryablehttp.NewClient()
	client.RetryMax = l.retryMax
	client.HTTPClient.Timeout = l.timeout
	client.Logger = nil // the service logs outcomes, not transport chatter

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req.Header.Set("User-Agent", l.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	return Parse(ctx, body)
}

// Parse normalizes a feed payload into the canonical event collection:
// records are cleaned, empty-name records dropped, and duplicates removed by
// identity key with the first occurrence winning. Order is preserved.
func Parse(ctx context.Context, payload []byte) ([]model.Event, error) {
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("%w: invalid json", ErrMalformed)
	}

	root := gjson.ParseBytes(payload)
	items, err := collectRecords(root)
	if err != nil {
		return nil, err
	}

	deduper := dedupe.NewInMemoryDeduper(dedupe.WithInitialCapacity(len(items)))
	events := make([]model.Event, 0, len(items))
	for _, item := range items {
		if !item.IsObject() {
			metrics.RecordRecordDropped()
			continue
		}
		e := recordToEvent(item).Clean()
		if e.Name == "" {
			metrics.RecordRecordDropped()
			continue
		}
		if deduper.SeenAndRecord(ctx, e.DedupeKey()) {
			metrics.RecordRecordDropped()
			continue
		}
		events = append(events, e)
	}
	return events, nil
}

// collectRecords accepts the two shapes the producer writes: a bare array,
// or an object with "events"/"upcoming"/"past" arrays (upcoming before
// past, as in the combined artifact).
func collectRecords(root gjson.Result) ([]gjson.Result, error) {
	if root.IsArray() {
		return root.Array(), nil
	}
	if root.IsObject() {
		var items []gjson.Result
		found := false
		for _, key := range []string{"events", "upcoming", "past"} {
			arr := root.Get(key)
			if arr.IsArray() {
				found = true
				items = append(items, arr.Array()...)
			}
		}
		if found {
			return items, nil
		}
	}
	return nil, fmt.Errorf("%w: expected an array of events", ErrMalformed)
}

func recordToEvent(item gjson.Result) model.Event {
	return model.Event{
		Name:      firstString(item, nameKeys),
		StartDate: firstString(item, startKeys),
		EndDate:   firstString(item, endKeys),
		Location:  firstString(item, locationKeys),
		URL:       firstString(item, urlKeys),
	}
}

// firstString returns the first alias present as a string, or "" when every
// alias is missing or non-string.
func firstString(item gjson.Result, keys []string) string {
	for _, key := range keys {
		v := item.Get(key)
		if v.Type == gjson.String {
			return v.String()
		}
	}
	return ""
}
