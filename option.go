package entx

import (
	"time"

	"github.com/rs/zerolog"
)

// Option augments how a Manager is constructed.
type Option func(*Manager)

// WithLogger replaces the manager's logger. Tests use this to capture
// diagnostics in a buffer.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithClock replaces the time source used for change and disposal stamps.
// Tests can pass a controlled clock for fine-grained control over observed
// timestamps.
func WithClock(clock func() time.Time) Option {
	return func(m *Manager) {
		m.clock = clock
	}
}

// WithStream makes the manager subscribe to an existing notification stream
// instead of constructing its own, so components created before the manager
// can keep publishing to the stream they already hold.
func WithStream(stream *Stream) Option {
	return func(m *Manager) {
		m.stream = stream
	}
}

// WithConfig overrides the environment-derived configuration entirely.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		m.cfg = cfg
	}
}
