package tempo

import "errors"

// All errors returned by this package indicate misuse at the
// instrumentation call site, not transient faults. They are surfaced
// immediately and there is no recovery path.
var (
	// ErrAlreadyRunning is returned by [Timer.Start] when the timer is
	// already running.
	ErrAlreadyRunning = errors.New("tempo: timer already running")

	// ErrNotRunning is returned by [Timer.Stop] and [Timer.TimeElapsed]
	// when the timer is not running.
	ErrNotRunning = errors.New("tempo: timer not running")

	// ErrNotFound is returned by manager lookups for names that were
	// never created.
	ErrNotFound = errors.New("tempo: timer not found")

	// ErrNoActiveTimer is returned when a scope is ended with no open
	// scope left, or ended twice.
	ErrNoActiveTimer = errors.New("tempo: no active timer")

	// ErrNoSamples is returned by the statistics accessors before any
	// span has completed.
	ErrNoSamples = errors.New("tempo: no samples recorded")
)
