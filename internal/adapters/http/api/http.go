// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/floorcraft/danceboard/internal/domain/filter"
	"github.com/floorcraft/danceboard/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the app service.
type Dependencies interface {
	// Events returns the canonical dataset snapshot.
	Events(ctx context.Context) []model.Event

	// Visible returns the filtered view for the given filter state.
	Visible(ctx context.Context, f filter.Filter) []model.Event

	// Reload re-runs the loader and replaces the dataset wholesale.
	// Returns the new dataset size. On error the previous dataset is kept.
	Reload(ctx context.Context) (int, error)
}

// Info carries deployment facts handlers expose to the browser UI.
type Info struct {
	CommunityURL string
	RefreshCron  string
}

// Server wires HTTP routes for the directory API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	eventsHandler    *EventsHandler
	reloadHandler    *ReloadHandler
	directoryHandler *DirectoryHandler
	configHandler    *ConfigHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, info Info) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		eventsHandler:    NewEventsHandler(deps),
		reloadHandler:    NewReloadHandler(deps),
		directoryHandler: NewDirectoryHandler(deps),
		configHandler:    NewConfigHandler(info),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", RequestIDMiddleware(MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", RequestIDMiddleware(MetricsMiddleware(s.statsHandler.HandleStats, "stats")))
	mux.HandleFunc("/directory", RequestIDMiddleware(MetricsMiddleware(s.directoryHandler.HandleDirectory, "directory")))
	mux.HandleFunc("/api/events", RequestIDMiddleware(MetricsMiddleware(s.eventsHandler.HandleGetEvents, "events")))
	mux.HandleFunc("/api/reload", RequestIDMiddleware(MetricsMiddleware(s.reloadHandler.HandleReload, "reload")))
	mux.HandleFunc("/api/config", RequestIDMiddleware(MetricsMiddleware(s.configHandler.HandleConfig, "config")))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
