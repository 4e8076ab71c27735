package tempo

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// # Timer
//
// Timer measures elapsed wall-clock time over repeated start/stop spans
// and keeps running statistics across them. A Timer should always be
// instantiated using [NewTimer] or through a [TimerManager]; its zero
// value has no meaning.
//
// As a plain object:
//
//	t := tempo.NewTimer(tempo.WithLabel("step"))
//	t.Start()
//	// ... work ...
//	t.Stop()
//
// Or scoped around a function:
//
//	t.Time(func() {
//		// ... work ...
//	})
//
// which additionally prints a throttled summary line when the timer has
// a label.
//
// Elapsed times are measured with the monotonic clock carried by
// [time.Time]. Statistics use the sum/sum-of-squares formulas over
// seconds; for very large sample counts this trades some precision for
// constant memory.
type Timer struct {
	mu    sync.Mutex
	label string
	unit  string
	scale float64

	start       time.Time
	lastElapsed time.Duration

	stats    *streamStats
	throttle *Throttle
}

// NewTimer returns a timer configured by opts on top of the package
// defaults (see [DefaultPrintInterval], [DefaultUnit], [DefaultScale],
// [DefaultWarmup]).
func NewTimer(opts ...Option) *Timer {
	cfg := defaultConfig().apply(opts)

	return &Timer{
		label:    cfg.label,
		unit:     cfg.unit,
		scale:    cfg.scale,
		stats:    newStreamStats(cfg.warmup),
		throttle: NewThrottle(cfg.printInterval),
	}
}

// Start begins a span. It returns [ErrAlreadyRunning] if the timer is
// already running.
func (t *Timer) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.start.IsZero() {
		return ErrAlreadyRunning
	}

	t.start = time.Now()
	return nil
}

// Stop ends the current span, records its duration and updates the
// running statistics. It returns [ErrNotRunning] if the timer is not
// running.
func (t *Timer) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.start.IsZero() {
		return ErrNotRunning
	}

	t.lastElapsed = time.Since(t.start)
	t.start = time.Time{}

	t.stats.registerSample(t.lastElapsed.Seconds())
	return nil
}

// TimeElapsed returns how long the current span has been running. It
// returns [ErrNotRunning] if no span is open.
func (t *Timer) TimeElapsed() (time.Duration, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.start.IsZero() {
		return 0, ErrNotRunning
	}
	return time.Since(t.start), nil
}

// TotalRunTime returns the duration of the most recently completed
// span. It is zero before any span has completed.
func (t *Timer) TotalRunTime() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastElapsed
}

// MeanElapsedTime returns the mean duration over completed spans. It
// returns [ErrNoSamples] before any span has completed.
func (t *Timer) MeanElapsedTime() (time.Duration, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	mean, err := t.stats.mean()
	if err != nil {
		return 0, err
	}
	return secondsToDuration(mean), nil
}

// StdElapsedTime returns the standard deviation of the duration over
// completed spans. It returns [ErrNoSamples] before any span has
// completed.
func (t *Timer) StdElapsedTime() (time.Duration, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	std, err := t.stats.std()
	if err != nil {
		return 0, err
	}
	return secondsToDuration(std), nil
}

// NumCalls returns the number of completed spans counted by the
// statistics. The one-time warm-up reset zeroes it (see [WithWarmup]).
func (t *Timer) NumCalls() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats.nsamples
}

// Label returns the display name of the timer, if any.
func (t *Timer) Label() string {
	return t.label
}

// Time runs fn between [Timer.Start] and [Timer.Stop]. When the timer
// has a label, the timer's own throttle decides whether a summary line
// is printed afterwards.
func (t *Timer) Time(fn func()) error {
	if err := t.Start(); err != nil {
		return err
	}

	fn()

	if err := t.Stop(); err != nil {
		return err
	}

	if t.label != "" {
		t.throttle.RateLimit(func() {
			t.PrintSummary(0)
		})
	}
	return nil
}

// FormatSummary renders a one-line summary of the last span:
//
//	<label>: <scale*elapsed> <unit>
//
// and, once more than one span has completed:
//
//	<label>: <scale*elapsed> <unit>- Avg: <mean><unit> +/- <std><unit> - Fps: <rate>
func (t *Timer) FormatSummary() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := fmt.Sprintf("%s: %0.6f %s", t.label, t.scale*t.lastElapsed.Seconds(), t.unit)

	if t.stats.nsamples > 1 {
		mean, _ := t.stats.mean()
		std, _ := t.stats.std()
		out += fmt.Sprintf("- Avg: %0.6f%s +/- %0.6f%s", t.scale*mean, t.unit, t.scale*std, t.unit)
		out += fmt.Sprintf(" - Fps: %0.2f", t.stats.rate())
	}

	return out
}

// PrintSummary writes [Timer.FormatSummary] to the package output
// writer, prefixed by indent tab characters.
func (t *Timer) PrintSummary(indent int) {
	fmt.Fprintf(getOutput(), "%s%s\n", strings.Repeat("\t", indent), t.FormatSummary())
}

func (t *Timer) String() string {
	return t.FormatSummary()
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
