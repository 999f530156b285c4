package events

import "github.com/atomicstack/panel-control/internal/logging"

type ButtonTracer struct{}

type HostTracer struct{}

var (
	Button = ButtonTracer{}
	Host   = HostTracer{}
)

func (ButtonTracer) Pulse(button, state string) {
	logging.Trace("button.pulse", map[string]interface{}{"button": button, "state": state})
}

func (HostTracer) Key(key, button string) {
	logging.Trace("host.key", map[string]interface{}{"key": key, "button": button})
}

func (HostTracer) Size(width, height int) {
	logging.Trace("host.size", map[string]interface{}{"width": width, "height": height})
}
