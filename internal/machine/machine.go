// Package machine simulates the parts of a printer the panel talks to: the
// temperature controllers, the motion system and the file player.
package machine

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/atomicstack/panel-control/internal/bus"
	"github.com/atomicstack/panel-control/internal/logging"
	"github.com/atomicstack/panel-control/internal/logging/events"
)

const (
	// HeatRate is how fast a heater approaches its target, in degrees per
	// second.
	HeatRate = 5.0
	// PrintLength is the simulated duration of every file.
	PrintLength = 300 * time.Second
	ambient     = 21.0
	historySize = 32
)

// Simulator is a thread-safe stand-in for the machine.
type Simulator struct {
	mu       sync.Mutex
	hotend   bus.Temperature
	bed      bus.Temperature
	pos      bus.Position
	extruder float64
	relative bool
	selected string
	file     string
	playing  bool
	elapsed  time.Duration
	ip       bus.Address
	network  bool
	history  []string
}

// New returns an idle machine at ambient temperature. A zero ip means no
// network.
func New(ip bus.Address) *Simulator {
	return &Simulator{
		hotend:  bus.Temperature{Current: ambient, Designator: "T"},
		bed:     bus.Temperature{Current: ambient, Designator: "B"},
		ip:      ip,
		network: ip != bus.Address{},
	}
}

// Register answers the panel's bus keys.
func (s *Simulator) Register(m *bus.Memory) {
	m.Handle(bus.TemperatureControl, bus.Hotend,
		func() (any, error) { return s.snapshot(func() any { return s.hotend }), nil },
		func(v any) error { return s.setTarget(&s.hotend, v) })
	m.Handle(bus.TemperatureControl, bus.Bed,
		func() (any, error) { return s.snapshot(func() any { return s.bed }), nil },
		func(v any) error { return s.setTarget(&s.bed, v) })
	m.Handle(bus.Robot, bus.CurrentPosition,
		func() (any, error) { return s.snapshot(func() any { return s.pos }), nil }, nil)
	m.Handle(bus.Player, bus.IsPlaying,
		func() (any, error) { return s.snapshot(func() any { return s.playing }), nil }, nil)
	m.Handle(bus.Player, bus.Progress, s.progress, nil)
	m.Handle(bus.Player, bus.Abort, nil, func(any) error {
		s.mu.Lock()
		s.playing = false
		s.mu.Unlock()
		return nil
	})
	m.Handle(bus.Network, bus.IP, func() (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.network {
			return nil, fmt.Errorf("network: no link")
		}
		return s.ip, nil
	}, nil)
}

func (s *Simulator) snapshot(read func() any) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return read()
}

func (s *Simulator) setTarget(t *bus.Temperature, v any) error {
	target, ok := v.(float64)
	if !ok {
		return fmt.Errorf("%w: %T", bus.ErrType, v)
	}
	if target < 0 {
		target = 0
	}
	s.mu.Lock()
	t.Target = target
	s.mu.Unlock()
	return nil
}

func (s *Simulator) progress() (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == "" {
		return nil, fmt.Errorf("player: nothing played")
	}
	percent := uint32(s.elapsed * 100 / PrintLength)
	if percent > 100 {
		percent = 100
	}
	return bus.PlayProgress{
		Percent:     percent,
		ElapsedSecs: uint32(s.elapsed / time.Second),
		Filename:    s.file,
	}, nil
}

// Step advances heaters and the player by dt.
func (s *Simulator) Step(dt time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	approach(&s.hotend, dt)
	approach(&s.bed, dt)
	if !s.playing {
		return
	}
	s.elapsed += dt
	if s.elapsed >= PrintLength {
		s.elapsed = PrintLength
		s.playing = false
	}
}

func approach(t *bus.Temperature, dt time.Duration) {
	goal := t.Target
	if goal < ambient {
		goal = ambient
	}
	delta := HeatRate * dt.Seconds()
	switch {
	case t.Current < goal:
		t.Current = min(t.Current+delta, goal)
	case t.Current > goal:
		t.Current = max(t.Current-delta, goal)
	}
	t.PWM = 0
	if t.Target > 0 && t.Current < t.Target {
		t.PWM = 255
	}
}

// CommandReceived executes one G-code line.
func (s *Simulator) CommandReceived(line string) {
	events.Machine.Gcode(line)
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	code, rest, _ := strings.Cut(line, " ")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, line)
	if len(s.history) > historySize {
		s.history = s.history[len(s.history)-historySize:]
	}
	switch strings.ToUpper(code) {
	case "G0", "G1":
		s.move(words(rest))
	case "G28":
		s.home(words(rest))
	case "G90":
		s.relative = false
	case "G91":
		s.relative = true
	case "M23":
		s.selected = strings.TrimSpace(rest)
	case "M24":
		if s.selected == "" {
			logging.Error(fmt.Errorf("machine: M24 without a selected file"))
			return
		}
		s.file = s.selected
		s.elapsed = 0
		s.playing = true
	default:
		logging.Error(fmt.Errorf("machine: unsupported command %q", line))
	}
}

func (s *Simulator) move(params map[byte]*float64) {
	for i, axis := range []byte{'X', 'Y', 'Z'} {
		v := params[axis]
		if v == nil {
			continue
		}
		if s.relative {
			s.pos[i] += *v
		} else {
			s.pos[i] = *v
		}
	}
	if e := params['E']; e != nil {
		if s.relative {
			s.extruder += *e
		} else {
			s.extruder = *e
		}
	}
}

func (s *Simulator) home(params map[byte]*float64) {
	all := len(params) == 0
	for i, axis := range []byte{'X', 'Y', 'Z'} {
		if _, ok := params[axis]; ok || all {
			s.pos[i] = 0
		}
	}
}

// words parses "X 10 Y-2 Z" style parameters. Letters without a number map
// to nil.
func words(rest string) map[byte]*float64 {
	out := make(map[byte]*float64)
	rest = strings.ToUpper(rest)
	for i := 0; i < len(rest); {
		c := rest[i]
		if c < 'A' || c > 'Z' {
			i++
			continue
		}
		i++
		for i < len(rest) && rest[i] == ' ' {
			i++
		}
		j := i
		for j < len(rest) && strings.IndexByte("+-.0123456789", rest[j]) >= 0 {
			j++
		}
		if j == i {
			out[c] = nil
			continue
		}
		if v, err := strconv.ParseFloat(rest[i:j], 64); err == nil {
			out[c] = &v
		} else {
			out[c] = nil
		}
		i = j
	}
	return out
}

// Extruder returns the extruder position.
func (s *Simulator) Extruder() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.extruder
}

// History returns the most recent command lines.
func (s *Simulator) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.history...)
}
