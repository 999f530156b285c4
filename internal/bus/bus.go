// Package bus is the key-addressed data exchange between the panel and the
// rest of the machine. The panel only ever talks to subsystems through it.
package bus

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrUnknownKey is returned for a key nobody answers.
	ErrUnknownKey = errors.New("bus: unknown key")
	// ErrReadOnly is returned when setting a key without a setter.
	ErrReadOnly = errors.New("bus: key is read only")
	// ErrType is returned when a value has the wrong dynamic type.
	ErrType = errors.New("bus: unexpected value type")
)

// Subsystem and field keys.
const (
	TemperatureControl = "temperature_control"
	Hotend             = "hotend"
	Bed                = "bed"

	Robot           = "robot"
	CurrentPosition = "current_position"

	Player    = "player"
	IsPlaying = "is_playing"
	Progress  = "progress"
	Abort     = "abort"

	Network = "network"
	IP      = "ip"
)

// Temperature is the answer for temperature_control keys.
type Temperature struct {
	Current    float64
	Target     float64
	PWM        int
	Designator string
}

// PlayProgress is the answer for player/progress.
type PlayProgress struct {
	Percent     uint32
	ElapsedSecs uint32
	Filename    string
}

// Position is the answer for robot/current_position.
type Position [3]float64

// Address is the answer for network/ip.
type Address [4]byte

// Bus reads and writes cross-module state.
type Bus interface {
	Get(subsystem, field string) (any, error)
	Set(subsystem, field string, value any) error
}

// Getter answers one key.
type Getter func() (any, error)

// Setter updates one key.
type Setter func(any) error

type key struct {
	subsystem, field string
}

type handler struct {
	get Getter
	set Setter
}

// Memory is an in-process Bus with handlers registered per key.
type Memory struct {
	mu       sync.RWMutex
	handlers map[key]handler
}

// NewMemory returns an empty bus.
func NewMemory() *Memory {
	return &Memory{handlers: make(map[key]handler)}
}

// Handle registers get and set for a key. Either may be nil.
func (m *Memory) Handle(subsystem, field string, get Getter, set Setter) {
	m.mu.Lock()
	m.handlers[key{subsystem, field}] = handler{get: get, set: set}
	m.mu.Unlock()
}

// Remove drops a key.
func (m *Memory) Remove(subsystem, field string) {
	m.mu.Lock()
	delete(m.handlers, key{subsystem, field})
	m.mu.Unlock()
}

func (m *Memory) lookup(subsystem, field string) (handler, bool) {
	m.mu.RLock()
	h, ok := m.handlers[key{subsystem, field}]
	m.mu.RUnlock()
	return h, ok
}

// Get implements Bus.
func (m *Memory) Get(subsystem, field string) (any, error) {
	h, ok := m.lookup(subsystem, field)
	if !ok || h.get == nil {
		return nil, fmt.Errorf("get %s/%s: %w", subsystem, field, ErrUnknownKey)
	}
	v, err := h.get()
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", subsystem, field, err)
	}
	return v, nil
}

// Set implements Bus.
func (m *Memory) Set(subsystem, field string, value any) error {
	h, ok := m.lookup(subsystem, field)
	if !ok {
		return fmt.Errorf("set %s/%s: %w", subsystem, field, ErrUnknownKey)
	}
	if h.set == nil {
		return fmt.Errorf("set %s/%s: %w", subsystem, field, ErrReadOnly)
	}
	if err := h.set(value); err != nil {
		return fmt.Errorf("set %s/%s: %w", subsystem, field, err)
	}
	return nil
}

// As reads a key and asserts its type.
func As[T any](b Bus, subsystem, field string) (T, error) {
	var zero T
	v, err := b.Get(subsystem, field)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("get %s/%s: %w: %T", subsystem, field, ErrType, v)
	}
	return t, nil
}
