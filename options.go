package cubeanim

import (
	"io"
	"log/slog"
	"time"
)

// DefaultDuration is the length of one animated quarter turn.
const DefaultDuration = 300 * time.Millisecond

// Option configures Engine behavior.
type Option func(*config)

type config struct {
	duration time.Duration
	logger   *slog.Logger
}

func defaultConfig() *config {
	return &config{
		duration: DefaultDuration,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithDuration sets how long one quarter turn takes to animate.
// A non-positive duration commits each move on the first tick after it is
// admitted.
func WithDuration(d time.Duration) Option {
	return func(c *config) {
		c.duration = d
	}
}

// WithLogger sets the logger used for diagnostics. Layer selection faults are
// logged at error level; admitted, committed and ignored moves at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
