package api

import (
	"net/http"

	"github.com/floorcraft/danceboard/internal/domain/filter"
)

// ConfigHandler exposes deployment facts the browser UI needs.
type ConfigHandler struct {
	info Info
}

// NewConfigHandler creates a new config handler.
func NewConfigHandler(info Info) *ConfigHandler {
	return &ConfigHandler{info: info}
}

// HandleConfig handles GET /api/config requests.
func (h *ConfigHandler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"community_url": h.info.CommunityURL,
		"refresh_cron":  h.info.RefreshCron,
		"filter_policy": filter.CasePolicy,
	})
}
