package events

import "github.com/atomicstack/panel-control/internal/logging"

type UITracer struct{}

type ActionTracer struct{}

// NavReason says why the panel changed group.
type NavReason string

const (
	NavLink        NavReason = "link"
	NavIdleTimeout NavReason = "idle-timeout"
	NavStart       NavReason = "start"
)

var (
	UI     = UITracer{}
	Action = ActionTracer{}
)

func (UITracer) Navigate(fromGroup string, fromIndex int, toGroup string, toIndex int, reason NavReason) {
	logging.Trace("menu.navigate", map[string]interface{}{
		"from":      fromGroup,
		"fromIndex": fromIndex,
		"to":        toGroup,
		"toIndex":   toIndex,
		"reason":    string(reason),
	})
}

func (UITracer) MenuCursor(group string, highlight, offset int) {
	logging.Trace("menu.cursor", map[string]interface{}{"group": group, "highlight": highlight, "offset": offset})
}

func (UITracer) EditStart(group string, index int, value float64) {
	logging.Trace("menu.edit.start", map[string]interface{}{"group": group, "index": index, "value": value})
}

func (UITracer) EditCommit(group string, index int, value float64) {
	logging.Trace("menu.edit.commit", map[string]interface{}{"group": group, "index": index, "value": value})
}

func (UITracer) InfoFailed(group string, index int, reason interface{}) {
	logging.Trace("menu.info.failed", map[string]interface{}{"group": group, "index": index, "reason": reason})
}

func (UITracer) RefreshFailed(err error) {
	if err == nil {
		return
	}
	logging.Trace("display.refresh.failed", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Run(group string, index int) {
	logging.Trace("action.run", map[string]interface{}{"group": group, "index": index})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}
