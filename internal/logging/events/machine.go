package events

import "github.com/atomicstack/panel-control/internal/logging"

type MachineTracer struct{}

type BusTracer struct{}

var (
	Machine = MachineTracer{}
	Bus     = BusTracer{}
)

func (MachineTracer) Gcode(line string) {
	logging.Trace("machine.gcode", map[string]interface{}{"line": line})
}

func (BusTracer) Fallback(subsystem, field string, err error) {
	payload := map[string]interface{}{"subsystem": subsystem, "field": field}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("bus.fallback", payload)
}
