// Package button turns raw digital samples into discrete press events.
//
// Sample is called from the fast poll callback and Read from the idle loop;
// the two only share atomic counters, so a pulse produced between two idle
// passes is never lost.
package button

import "sync/atomic"

// State is the debounce state.
type State uint32

const (
	Released State = iota
	DebouncingPress
	Pressed
	Repeating
)

func (s State) String() string {
	switch s {
	case Released:
		return "released"
	case DebouncingPress:
		return "debouncing"
	case Pressed:
		return "pressed"
	case Repeating:
		return "repeating"
	default:
		return "unknown"
	}
}

// Config tunes a debouncer, in poll samples.
type Config struct {
	// Debounce is how many consecutive down samples confirm a press.
	Debounce int
	// RepeatThreshold is how many samples a confirmed press must be held
	// before it starts auto-repeating.
	RepeatThreshold int
	// RepeatInterval is the spacing between repeat pulses.
	RepeatInterval int
}

// DefaultConfig matches the stock panel: immediate press, repeat after ten
// samples, then every fifth.
func DefaultConfig() Config {
	return Config{Debounce: 1, RepeatThreshold: 10, RepeatInterval: 5}
}

// Debouncer is one button's filter.
type Debouncer struct {
	cfg Config

	// Owned by the sampling side.
	held int

	state   atomic.Uint32
	press   atomic.Bool
	repeats atomic.Uint32
}

// New returns a released debouncer. Non-positive settings fall back to the
// defaults.
func New(cfg Config) *Debouncer {
	def := DefaultConfig()
	if cfg.Debounce <= 0 {
		cfg.Debounce = def.Debounce
	}
	if cfg.RepeatThreshold <= 0 {
		cfg.RepeatThreshold = def.RepeatThreshold
	}
	if cfg.RepeatInterval <= 0 {
		cfg.RepeatInterval = def.RepeatInterval
	}
	return &Debouncer{cfg: cfg}
}

// State returns the current debounce state.
func (d *Debouncer) State() State {
	return State(d.state.Load())
}

// Sample feeds one raw poll sample.
func (d *Debouncer) Sample(down bool) {
	if down {
		d.Press()
		return
	}
	d.Release()
}

// Press records a down sample.
func (d *Debouncer) Press() {
	d.held++
	since := d.held - d.cfg.Debounce + 1
	switch {
	case since < 1:
		d.state.Store(uint32(DebouncingPress))
	case since == 1:
		d.state.Store(uint32(Pressed))
		d.press.Store(true)
	case since > d.cfg.RepeatThreshold:
		d.state.Store(uint32(Repeating))
		if (since-d.cfg.RepeatThreshold-1)%d.cfg.RepeatInterval == 0 {
			d.repeats.Add(1)
		}
	}
}

// Release records an up sample. Queued repeat pulses are discarded so a
// scroll stops when the button does; an unread initial press survives.
func (d *Debouncer) Release() {
	d.held = 0
	d.state.Store(uint32(Released))
	d.repeats.Store(0)
}

// Read reports one pending pulse and consumes it.
func (d *Debouncer) Read() bool {
	if d.press.CompareAndSwap(true, false) {
		return true
	}
	for {
		n := d.repeats.Load()
		if n == 0 {
			return false
		}
		if d.repeats.CompareAndSwap(n, n-1) {
			return true
		}
	}
}
