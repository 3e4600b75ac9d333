// Package site serves the embedded browser UI.
package site

import (
	"context"
	"net/http"
)

// Register attaches the embedded UI routes to mux. The UI lives at / and is
// a static page that talks to /api/events and /api/config.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle("/", http.FileServer(FS()))
}
