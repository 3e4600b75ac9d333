// Package dedupe tracks event identity keys during a load pass so the
// directory keeps only the first occurrence of each record.
package dedupe

import (
	"context"
	"sync"
)

// Deduper records seen identity keys.
type Deduper interface {
	// SeenAndRecord atomically checks if key was seen and records it if not.
	// Returns true if key was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, key string) bool

	// Size returns the number of recorded keys.
	Size() int
}

// inMemoryDeduper implements Deduper with a map under a mutex. A load pass
// is bounded by the payload size, so there is no eviction.
type inMemoryDeduper struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewInMemoryDeduper creates an in-memory deduper.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{}
	cfg := options{initialCapacity: 0}
	for _, opt := range opts {
		opt(&cfg)
	}
	d.seen = make(map[string]struct{}, cfg.initialCapacity)
	return d
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}

func (d *inMemoryDeduper) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
