// Package repository defines the canonical dataset store.
//
// The canonical dataset is immutable once loaded: Replace swaps it wholesale
// under a write lock, Snapshot hands the current slice to readers. Readers
// must treat snapshots as read-only; the filter engine never mutates them.
package repository

import (
	"context"
	"time"

	"github.com/floorcraft/danceboard/internal/domain/model"
)

// LoadInfo carries metadata about the most recent dataset replacement.
type LoadInfo struct {
	At    time.Time
	Loads int
}

// Store provides access to the canonical event dataset.
type Store interface {
	// Replace swaps the canonical dataset wholesale with a copy of events.
	Replace(ctx context.Context, events []model.Event)

	// Snapshot returns the current canonical dataset in load order.
	Snapshot(ctx context.Context) []model.Event

	// Count returns the number of events in the canonical dataset.
	Count(ctx context.Context) int

	// LastLoad returns metadata about the most recent replacement.
	LastLoad(ctx context.Context) LoadInfo
}
