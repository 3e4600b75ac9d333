package api

import (
	"net/http"

	"github.com/floorcraft/danceboard/pkg/logger"
)

// ReloadHandler handles manual dataset refresh requests.
type ReloadHandler struct {
	deps Dependencies
}

// NewReloadHandler creates a new reload handler.
func NewReloadHandler(deps Dependencies) *ReloadHandler {
	return &ReloadHandler{deps: deps}
}

// HandleReload handles POST /api/reload requests. A failed reload keeps the
// previous dataset and reports 502.
func (h *ReloadHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	const op = "api.reload"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	count, err := h.deps.Reload(r.Context())
	if err != nil {
		logger.Named("api").Warn(r.Context(), "reload failed; previous dataset kept",
			logger.String("request_id", RequestIDFrom(r.Context())),
			logger.Error(err),
		)
		writeError(w, http.StatusBadGateway, "reload_failed", WrapKind(op, ErrReload, err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "reloaded", "count": count})
}
