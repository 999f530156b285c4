package events

import "github.com/atomicstack/panel-control/internal/logging"

type QueueTracer struct{}

var Queue = QueueTracer{}

func (QueueTracer) Push(name string, depth int) {
	logging.Trace("queue.push", map[string]interface{}{"task": name, "depth": depth})
}

func (QueueTracer) Reject(name string, capacity int) {
	logging.Trace("queue.reject", map[string]interface{}{"task": name, "capacity": capacity})
}

func (QueueTracer) Run(name string) {
	logging.Trace("queue.run", map[string]interface{}{"task": name})
}

func (QueueTracer) Panic(name string, reason interface{}) {
	logging.Trace("queue.panic", map[string]interface{}{"task": name, "reason": reason})
}
