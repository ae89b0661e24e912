package interp

import "time"

// defaultClock is the real wall-clock source for `clock()`, grounded on
// original_source's chrono::Utc::now().timestamp_millis() (scaled here to
// seconds, per spec.md §4.5's "seconds since epoch" contract).
func defaultClock() float64 {
	return float64(time.Now().UnixMilli()) / 1000.0
}

// nativeClock is the built-in `clock()`: arity 0, returns seconds since
// epoch as a double, per spec.md §4.5. The Interpreter supplies the clock
// function so callers (and tests) can substitute a deterministic one.
type nativeClock struct {
	now func() float64
}

func (nativeClock) Arity() int { return 0 }

func (c nativeClock) Call(_ *Interpreter, _ []Value) (Value, error) {
	return c.now(), nil
}

func (nativeClock) String() string { return "<native fn>" }
