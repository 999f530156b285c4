package panel

import (
	"fmt"
	"path"
	"strings"

	"github.com/atomicstack/panel-control/internal/bus"
	"github.com/atomicstack/panel-control/internal/logging/events"
)

// NoNetwork is shown when the network subsystem does not answer.
const NoNetwork = "No network"

// HotendTemperature returns the hotend target and current temperature, or
// zeros when the temperature control does not answer.
func HotendTemperature(b bus.Bus) (target, current float64) {
	return temperature(b, bus.Hotend)
}

// BedTemperature returns the bed target and current temperature.
func BedTemperature(b bus.Bus) (target, current float64) {
	return temperature(b, bus.Bed)
}

func temperature(b bus.Bus, heater string) (float64, float64) {
	t, err := bus.As[bus.Temperature](b, bus.TemperatureControl, heater)
	if err != nil {
		events.Bus.Fallback(bus.TemperatureControl, heater, err)
		return 0, 0
	}
	return t.Target, t.Current
}

// SetHotendTemperature asks for a new hotend target.
func SetHotendTemperature(b bus.Bus, target float64) error {
	return b.Set(bus.TemperatureControl, bus.Hotend, target)
}

// SetBedTemperature asks for a new bed target.
func SetBedTemperature(b bus.Bus, target float64) error {
	return b.Set(bus.TemperatureControl, bus.Bed, target)
}

// IsPlaying reports whether a file is being printed.
func IsPlaying(b bus.Bus) bool {
	playing, err := bus.As[bool](b, bus.Player, bus.IsPlaying)
	if err != nil {
		events.Bus.Fallback(bus.Player, bus.IsPlaying, err)
		return false
	}
	return playing
}

// AbortPlaying stops the file being printed.
func AbortPlaying(b bus.Bus) error {
	return b.Set(bus.Player, bus.Abort, true)
}

// Progress returns the completion percentage and the bare name of the file
// being played. ok is false when the player does not answer.
func Progress(b bus.Bus) (percent uint32, name string, ok bool) {
	p, err := bus.As[bus.PlayProgress](b, bus.Player, bus.Progress)
	if err != nil {
		events.Bus.Fallback(bus.Player, bus.Progress, err)
		return 0, "", false
	}
	return p.Percent, displayName(p.Filename), true
}

// displayName strips the directory and extension of a played file.
func displayName(filename string) string {
	base := path.Base(filename)
	if base == "." || base == "/" {
		return ""
	}
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return base
}

// TimeProgress returns elapsed and estimated remaining seconds of the file
// being played.
func TimeProgress(b bus.Bus) (elapsed, remaining uint32) {
	p, err := bus.As[bus.PlayProgress](b, bus.Player, bus.Progress)
	if err != nil {
		events.Bus.Fallback(bus.Player, bus.Progress, err)
		return 0, 0
	}
	return p.ElapsedSecs, EstimateRemaining(p.ElapsedSecs, p.Percent)
}

// EstimateRemaining extrapolates the remaining seconds linearly. Estimates
// below four percent complete are too noisy and report zero.
func EstimateRemaining(elapsed, percent uint32) uint32 {
	if percent <= 3 {
		return 0
	}
	return elapsed*100/percent - elapsed
}

// Network returns the dotted IPv4 address, or NoNetwork.
func Network(b bus.Bus) string {
	ip, err := bus.As[bus.Address](b, bus.Network, bus.IP)
	if err != nil {
		events.Bus.Fallback(bus.Network, bus.IP, err)
		return NoNetwork
	}
	return fmt.Sprintf("%d.%d.%d.%d", ip[0], ip[1], ip[2], ip[3])
}

// Position returns one axis (0 X, 1 Y, 2 Z) of the current tool position.
func Position(b bus.Bus, axis int) float64 {
	if axis < 0 || axis > 2 {
		return 0
	}
	pos, err := bus.As[bus.Position](b, bus.Robot, bus.CurrentPosition)
	if err != nil {
		events.Bus.Fallback(bus.Robot, bus.CurrentPosition, err)
		return 0
	}
	return pos[axis]
}
