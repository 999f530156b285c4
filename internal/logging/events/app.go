package events

import "github.com/atomicstack/panel-control/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(reason string) {
	logging.Trace("app.stop", map[string]interface{}{"reason": reason})
}

func (AppTracer) LinkProblems(err error) {
	if err == nil {
		return
	}
	logging.Trace("app.links", map[string]interface{}{"error": err.Error()})
}
