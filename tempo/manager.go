package tempo

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/slices"
)

// # TimerManager
//
// TimerManager is a registry of named timers. Timers are created
// lazily on first use with the manager defaults, and persist for the
// manager's lifetime. The manager tracks nested measurement scopes
// through an explicit call stack, so summaries printed on scope exit
// are indented by nesting depth.
//
// Scopes must close in exact reverse order of opening. Closing out of
// order, or mixing [TimerManager.Stop] with an open scope on the same
// name, is a call-site bug and leaves the stack inconsistent.
//
// Its zero value has no meaning and should not be used. A TimerManager
// should always be instantiated using [NewTimerManager] or obtained
// through [Global].
type TimerManager struct {
	mu       sync.Mutex
	defaults config
	timers   map[string]*Timer
	stack    []string
}

// NewTimerManager returns a manager whose defaults, configured by opts
// on top of the package defaults, apply to every timer it creates.
func NewTimerManager(opts ...Option) *TimerManager {
	return &TimerManager{
		defaults: defaultConfig().apply(opts),
		timers:   make(map[string]*Timer),
	}
}

// getOrCreate returns the timer for name, creating it with the manager
// defaults plus opts if it does not exist yet. Manager-created timers
// are always labeled with their registry name.
func (m *TimerManager) getOrCreate(name string, opts []Option) *Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t, ok := m.timers[name]; ok {
		return t
	}

	cfg := m.defaults.apply(opts)
	cfg.label = name

	t := &Timer{
		label:    cfg.label,
		unit:     cfg.unit,
		scale:    cfg.scale,
		stats:    newStreamStats(cfg.warmup),
		throttle: NewThrottle(cfg.printInterval),
	}
	m.timers[name] = t

	return t
}

// Start starts the timer with the given name, creating it if it does
// not exist.
func (m *TimerManager) Start(name string) error {
	if err := m.getOrCreate(name, nil).Start(); err != nil {
		return fmt.Errorf("start timer %q: %w", name, err)
	}
	return nil
}

// Stop stops the timer with the given name and lets the timer's own
// throttle decide whether to print its summary, indented by indent tab
// characters. It returns [ErrNotFound] if the name was never created.
func (m *TimerManager) Stop(name string, indent int) error {
	t, err := m.GetTimer(name)
	if err != nil {
		return err
	}

	if err := t.Stop(); err != nil {
		return fmt.Errorf("stop timer %q: %w", name, err)
	}

	t.throttle.RateLimit(func() {
		t.PrintSummary(indent)
	})
	return nil
}

// GetTimer returns the timer with the given name, or [ErrNotFound] if
// it was never created.
func (m *TimerManager) GetTimer(name string) (*Timer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.timers[name]
	if !ok {
		return nil, fmt.Errorf("timer %q: %w", name, ErrNotFound)
	}
	return t, nil
}

// Names returns the names of all created timers in sorted order.
func (m *TimerManager) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.timers))
	for name := range m.timers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Scope opens a named measurement scope: the timer is created if
// needed (opts override the manager defaults for the new timer only),
// started, and pushed onto the call stack. The returned [Scope] must be
// ended in reverse order of opening.
func (m *TimerManager) Scope(name string, opts ...Option) (*Scope, error) {
	t := m.getOrCreate(name, opts)

	if err := t.Start(); err != nil {
		return nil, fmt.Errorf("start timer %q: %w", name, err)
	}

	m.mu.Lock()
	m.stack = append(m.stack, name)
	m.mu.Unlock()

	return &Scope{manager: m, name: name}, nil
}

// Time runs fn inside a scope named name.
func (m *TimerManager) Time(name string, fn func()) error {
	s, err := m.Scope(name)
	if err != nil {
		return err
	}
	fn()
	return s.End()
}

func (m *TimerManager) String() string {
	m.mu.Lock()
	stack := fmt.Sprintf("%v", m.stack)
	m.mu.Unlock()

	b := bytes.NewBufferString("[TimerManager]\n")
	b.WriteString(fmt.Sprintf("stack: %s\n", stack))
	b.WriteString("timers:\n")

	for _, name := range m.Names() {
		t, _ := m.GetTimer(name)

		t.mu.Lock()
		s := strings.Replace("\t"+t.stats.String(), "\n", "\n\t", -1)
		t.mu.Unlock()

		s = s[:len(s)-1]
		b.WriteString(fmt.Sprintf("\t%s:\n\t%s", name, s))
	}

	return b.String()
}

// # Scope
//
// Scope is the guard returned by [TimerManager.Scope]. Ending it pops
// the innermost open scope off the manager's call stack, stops the
// corresponding timer, and prints its summary at the nesting depth the
// scope was opened at (throttled by the timer).
type Scope struct {
	manager *TimerManager
	name    string
	done    bool
}

// End closes the innermost open scope. It returns [ErrNoActiveTimer]
// if the scope was already ended or no scope is open.
func (s *Scope) End() error {
	if s.done {
		return fmt.Errorf("scope %q ended twice: %w", s.name, ErrNoActiveTimer)
	}
	s.done = true

	m := s.manager

	m.mu.Lock()
	if len(m.stack) == 0 {
		m.mu.Unlock()
		return ErrNoActiveTimer
	}
	top := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	indent := len(m.stack)
	m.mu.Unlock()

	return m.Stop(top, indent)
}
