package dedupe

type options struct {
	initialCapacity int
}

// Option applies a configuration option to the deduper.
type Option func(*options)

// WithInitialCapacity pre-sizes the key map for an expected record count.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.initialCapacity = n
		}
	}
}
