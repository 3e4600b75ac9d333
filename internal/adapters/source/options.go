package source

import "time"

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithRetryMax sets the number of retries after the first attempt.
// The default is 0: exactly one attempt per load.
func WithRetryMax(n int) Option {
	return func(l *Loader) {
		if n >= 0 {
			l.retryMax = n
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		if d > 0 {
			l.timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header sent to the source.
func WithUserAgent(ua string) Option {
	return func(l *Loader) {
		if ua != "" {
			l.userAgent = ua
		}
	}
}
