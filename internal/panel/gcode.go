package panel

import (
	"fmt"

	"github.com/atomicstack/panel-control/internal/logging"
)

// MoveLine moves one axis ('X', 'Y' or 'Z') to an absolute position.
func MoveLine(axis byte, position float64) string {
	return fmt.Sprintf("G0 %c%4.0f", axis, position)
}

// HomeLine homes the given axes, e.g. "XY".
func HomeLine(axes string) string {
	return "G28 " + axes
}

// ExtrudeLines pushes mm of filament (negative retracts) in relative mode.
func ExtrudeLines(mm float64) []string {
	return []string{"G91", fmt.Sprintf("G1 E%g F100", mm), "G90"}
}

// PrimeLines purges the printhead.
func PrimeLines() []string {
	return []string{"G91", "G1 E100 F100", "G90"}
}

// PlayLines selects a file and starts printing it.
func PlayLines(file string) []string {
	return []string{"M23 " + file, "M24"}
}

// send queues lines as one task so they reach the machine back to back.
// Command lines are never submitted from the caller's context.
func (p *Panel) send(name string, lines ...string) error {
	if len(lines) == 0 {
		return nil
	}
	err := p.queue.Push(name, func() {
		for _, line := range lines {
			p.out.CommandReceived(line)
		}
	})
	if err != nil {
		logging.Error(fmt.Errorf("gcode %q: %w", lines, err))
	}
	return err
}

// later queues fn on the command queue, logging a rejection.
func (p *Panel) later(name string, fn func() error) {
	err := p.queue.Push(name, func() {
		if err := fn(); err != nil {
			logging.Error(fmt.Errorf("%s: %w", name, err))
		}
	})
	if err != nil {
		logging.Error(err)
	}
}
