// Package tempo provides lightweight instrumentation timers with
// throttled console reporting.
//
// The two building blocks are [Throttle], a rate gate that suppresses
// repeated invocations of an action until a minimum interval has
// elapsed, and [Timer], which measures elapsed wall-clock time across
// repeated spans while keeping running mean, standard deviation and
// throughput statistics. Timers are usually driven through a
// [TimerManager], a named registry that supports nested measurement
// scopes:
//
//	m := tempo.NewTimerManager()
//	s, _ := m.Scope("load")
//	// ... work ...
//	inner, _ := m.Scope("parse")
//	// ... more work ...
//	inner.End()
//	s.End()
//
// On scope exit the timer prints a throttled one-line summary, indented
// by nesting depth. [TimerManager.Report] renders all timers in a
// tabular manner.
package tempo

import (
	"io"
	"os"
	"sync"

	"golang.org/x/exp/slog"
)

func init() {
	logLevel = new(slog.LevelVar)
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(h)
}

var (
	logger   *slog.Logger
	logLevel *slog.LevelVar

	// output receives summary lines and reports
	output   io.Writer = os.Stdout
	outputMu sync.Mutex
)

// SetLogger sets the logger used by tempo.
// [SetLogLevel] will not be enforced if a custom logger is used.
func SetLogger(newlogger *slog.Logger) {
	logger = newlogger
}

// SetLogLevel sets the level for tempo messages unless [SetLogger] has been called.
// The default log level is the zero value of [slog.LevelVar].
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}

// SetOutput sets the writer that summary lines and reports are written
// to. The default is [os.Stdout].
func SetOutput(w io.Writer) {
	outputMu.Lock()
	defer outputMu.Unlock()
	output = w
}

func getOutput() io.Writer {
	outputMu.Lock()
	defer outputMu.Unlock()
	return output
}
