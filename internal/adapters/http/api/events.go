package api

import (
	"net/http"
)

// EventsHandler handles filtered event listing requests.
type EventsHandler struct {
	deps Dependencies
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(deps Dependencies) *EventsHandler {
	return &EventsHandler{deps: deps}
}

// HandleGetEvents handles GET /api/events requests. The five filter fields
// arrive as query parameters; the response is the filtered view as a JSON
// array in dataset order.
func (h *EventsHandler) HandleGetEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	visible := h.deps.Visible(r.Context(), queryFilter(r.URL.Query()))
	writeJSON(w, http.StatusOK, visible)
}
