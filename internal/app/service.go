// Package service provides the core application service that implements the
// dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	repository "github.com/floorcraft/danceboard/internal/adapters/repository"
	"github.com/floorcraft/danceboard/internal/domain/filter"
	"github.com/floorcraft/danceboard/internal/domain/model"
	"github.com/floorcraft/danceboard/pkg/logger"
	"github.com/floorcraft/danceboard/pkg/metrics"
)

// ErrNoFetcher is returned by Start when no event source was configured.
var ErrNoFetcher = errors.New("no event fetcher configured")

// Fetcher retrieves the event feed. Implemented by the source adapter.
type Fetcher interface {
	Fetch(ctx context.Context) ([]model.Event, error)
	URL() string
}

// Service owns the canonical dataset and the load/refresh lifecycle.
type Service struct {
	mu sync.RWMutex

	store   repository.Store
	fetcher Fetcher

	refreshCron string
	scheduler   *cron.Cron

	started bool

	lastErrMu sync.Mutex
	lastErr   error

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFetcher sets the event source.
func WithFetcher(f Fetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// WithStore overrides the dataset store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithRefreshCron enables scheduled refresh with a cron expression.
// Empty disables scheduling, which is the default.
func WithRefreshCron(spec string) Option {
	return func(s *Service) {
		s.refreshCron = spec
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start performs the one-shot initial load and, when configured, starts the
// refresh scheduler. A failed initial load is not an error: the directory
// starts with a definite empty dataset and the failure is logged only.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.fetcher == nil {
		return ErrNoFetcher
	}
	if s.store == nil {
		s.store = repository.NewMemStore(ctx)
	}

	s.logger.Info(ctx, "starting directory service", logger.String("source", s.fetcher.URL()))

	// Initial load. Exactly one attempt; failure degrades to empty.
	if err := s.load(ctx); err != nil {
		s.store.Replace(ctx, nil)
		s.logger.Warn(ctx, "initial load failed; starting with empty directory", logger.Error(err))
	}

	if s.refreshCron != "" {
		s.scheduler = cron.New()
		_, err := s.scheduler.AddFunc(s.refreshCron, func() {
			ctx := context.Background()
			if err := s.load(ctx); err != nil {
				s.logger.Warn(ctx, "scheduled refresh failed; previous dataset kept", logger.Error(err))
			}
		})
		if err != nil {
			return fmt.Errorf("invalid refresh schedule %q: %w", s.refreshCron, err)
		}
		s.scheduler.Start()
		s.logger.Info(ctx, "refresh scheduler started", logger.String("cron", s.refreshCron))
	}

	s.started = true
	s.logger.Info(ctx, "directory service started", logger.Int("events", s.store.Count(ctx)))
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
	s.started = false
	s.logger.Info(context.Background(), "directory service stopped")
}

// load fetches the feed and, on success, replaces the dataset wholesale.
// On failure the store is left untouched and the error returned.
func (s *Service) load(ctx context.Context) error {
	events, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.setLastErr(err)
		return err
	}
	s.store.Replace(ctx, events)
	s.setLastErr(nil)
	s.logger.Info(ctx, "dataset loaded", logger.Int("events", len(events)))
	return nil
}

func (s *Service) setLastErr(err error) {
	// Own mutex: load runs both under Start's lock and from cron/Reload.
	s.lastErrMu.Lock()
	s.lastErr = err
	s.lastErrMu.Unlock()
}

// Events returns the canonical dataset snapshot.
func (s *Service) Events(ctx context.Context) []model.Event {
	return s.store.Snapshot(ctx)
}

// Visible returns the filtered view for the given filter state.
func (s *Service) Visible(ctx context.Context, f filter.Filter) []model.Event {
	start := time.Now()
	visible := filter.Apply(s.store.Snapshot(ctx), f)
	metrics.RecordFilterDuration(float64(time.Since(start).Microseconds()) / 1000.0)
	return visible
}

// Reload re-runs the loader. On failure the previous dataset is kept and the
// error returned; on success the new dataset size is reported.
func (s *Service) Reload(ctx context.Context) (int, error) {
	if err := s.load(ctx); err != nil {
		return s.store.Count(ctx), err
	}
	return s.store.Count(ctx), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	ctx := context.Background()

	s.mu.RLock()
	started := s.started
	refresh := s.refreshCron
	s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":      started,
		"filterPolicy": filter.CasePolicy,
		"refreshCron":  refresh,
	}

	if s.store != nil {
		snapshot := s.store.Snapshot(ctx)
		info := s.store.LastLoad(ctx)

		today := time.Now()
		upcoming := 0
		for _, e := range snapshot {
			if e.Upcoming(today) {
				upcoming++
			}
		}

		stats["datasetSize"] = len(snapshot)
		stats["upcoming"] = upcoming
		stats["past"] = len(snapshot) - upcoming
		stats["loads"] = info.Loads
		if !info.At.IsZero() {
			stats["lastLoadAt"] = info.At.Format(time.RFC3339)
		}
	}

	s.lastErrMu.Lock()
	if s.lastErr != nil {
		stats["lastLoadError"] = s.lastErr.Error()
	}
	s.lastErrMu.Unlock()

	return stats
}
