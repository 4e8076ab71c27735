package tempo

import (
	"time"

	"golang.org/x/exp/slog"
)

// Defaults applied to timers and managers when no option overrides them.
const (
	// DefaultPrintInterval is the minimum interval between printed
	// summaries for a timer.
	DefaultPrintInterval = time.Second

	// DefaultUnit is the unit suffix shown in summaries.
	DefaultUnit = "s"

	// DefaultScale multiplies elapsed seconds before display.
	DefaultScale = 1.0

	// DefaultWarmup is the number of samples after which the running
	// statistics are reset once.
	DefaultWarmup = 100
)

type config struct {
	label         string
	printInterval time.Duration
	unit          string
	scale         float64
	warmup        uint64
}

func defaultConfig() config {
	return config{
		printInterval: DefaultPrintInterval,
		unit:          DefaultUnit,
		scale:         DefaultScale,
		warmup:        DefaultWarmup,
	}
}

func (c config) apply(opts []Option) config {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Option configures a [Timer] or [TimerManager]. Options passed to
// [TimerManager.Scope] override the manager defaults for the timer
// created by that call.
type Option func(*config)

// WithLabel sets the display name used in summaries. A timer without a
// label never prints on scope exit. Manager-created timers are labeled
// with their registry name.
func WithLabel(label string) Option {
	return func(c *config) {
		c.label = label
	}
}

// WithPrintInterval sets the minimum interval between printed
// summaries.
func WithPrintInterval(d time.Duration) Option {
	return func(c *config) {
		c.printInterval = d
	}
}

// WithUnit sets the unit suffix shown in summaries, e.g. "ms".
func WithUnit(unit string) Option {
	return func(c *config) {
		c.unit = unit
	}
}

// WithScale sets the multiplier applied to elapsed seconds before
// display, e.g. 1e3 together with WithUnit("ms").
func WithScale(scale float64) Option {
	return func(c *config) {
		if scale <= 0 {
			logger.Error("scale must be > 0, keeping previous value",
				slog.Float64("scale", scale))
			return
		}
		c.scale = scale
	}
}

// WithWarmup sets the number of samples after which the running
// statistics are reset exactly once. Zero disables the reset.
func WithWarmup(n uint64) Option {
	return func(c *config) {
		c.warmup = n
	}
}
