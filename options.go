package fieldgate

import "log/slog"

// Option configures Process.
type Option func(*config)

type config struct {
	logger       *slog.Logger
	skipCoercion bool
}

// WithLogger sets a logger for per-extraction debug output (coercion and
// validation counts). Without it Process is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithoutCoercion validates the data exactly as supplied, skipping the
// coercion pass. Useful when the caller has already normalized the data
// or wants to measure raw model conformance.
func WithoutCoercion() Option {
	return func(c *config) {
		c.skipCoercion = true
	}
}
