package tempo

import "sync"

var (
	globalManager *TimerManager
	globalOnce    sync.Once
)

// Global returns the process-wide [TimerManager], useful for timing
// code across multiple files without threading a manager through. The
// manager is constructed lazily on the first call; opts are honored
// only then and ignored (with a warning) on every later call.
func Global(opts ...Option) *TimerManager {
	constructed := false
	globalOnce.Do(func() {
		globalManager = NewTimerManager(opts...)
		constructed = true
	})

	if !constructed && len(opts) > 0 {
		logger.Warn("global timer manager already configured, options ignored")
	}

	return globalManager
}
