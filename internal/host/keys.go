package host

import (
	"sync/atomic"
	"time"

	"github.com/atomicstack/panel-control/internal/panel"
)

// DefaultHold is how long one key press keeps a button down. Terminal key
// repeat refreshes it, so holding a key holds the button.
const DefaultHold = 120 * time.Millisecond

var buttons = [...]panel.Buttons{panel.ButtonUp, panel.ButtonDown, panel.ButtonSelect}

// Keys turns discrete key presses into held buttons for the panel's input
// poll.
type Keys struct {
	hold      time.Duration
	now       func() time.Time
	deadlines [len(buttons)]atomic.Int64
}

// NewKeys returns an input with no buttons held.
func NewKeys(hold time.Duration) *Keys {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Keys{hold: hold, now: time.Now}
}

// Press holds b for the hold duration from now.
func (k *Keys) Press(b panel.Buttons) {
	until := k.now().Add(k.hold).UnixNano()
	for i, button := range buttons {
		if b&button != 0 {
			k.deadlines[i].Store(until)
		}
	}
}

// ReadButtons implements panel.Input.
func (k *Keys) ReadButtons() panel.Buttons {
	now := k.now().UnixNano()
	var state panel.Buttons
	for i, button := range buttons {
		if k.deadlines[i].Load() > now {
			state |= button
		}
	}
	return state
}
