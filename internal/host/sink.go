package host

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/panel-control/internal/display"
)

// FrameMsg carries one rendered panel frame into the program.
type FrameMsg struct {
	Frame display.Frame
}

// Sink forwards panel frames to a running program.
type Sink struct {
	send func(tea.Msg)
}

// NewSink wraps a send function, normally (*tea.Program).Send.
func NewSink(send func(tea.Msg)) *Sink {
	return &Sink{send: send}
}

// Push implements display.Sink.
func (s *Sink) Push(f *display.Frame) error {
	if s.send != nil {
		s.send(FrameMsg{Frame: *f})
	}
	return nil
}
