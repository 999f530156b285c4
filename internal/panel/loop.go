package panel

import (
	"context"
	"time"

	"github.com/atomicstack/panel-control/internal/button"
	"github.com/atomicstack/panel-control/internal/logging"
	"github.com/atomicstack/panel-control/internal/logging/events"
	"github.com/atomicstack/panel-control/internal/scheduler"
	"github.com/atomicstack/panel-control/internal/ui"
)

// Scheduler rates.
const (
	ButtonHz  = 23
	RefreshHz = 50
)

// ButtonTick samples the input into the debouncers. Scheduler context.
func (p *Panel) ButtonTick() {
	var state Buttons
	if p.in != nil {
		state = p.in.ReadButtons()
	}
	p.up.Sample(state&ButtonUp != 0)
	p.down.Sample(state&ButtonDown != 0)
	p.sel.Sample(state&ButtonSelect != 0)
}

// RefreshTick requests a redraw. Scheduler context.
func (p *Panel) RefreshTick() {
	p.refresh.Store(true)
}

// SecondTick requests a tick event. Scheduler context.
func (p *Panel) SecondTick() {
	p.tick.Store(true)
}

// Idle turns pending ticks and button pulses into events, drains the command
// queue and redraws when asked to.
func (p *Panel) Idle() {
	if p.tick.Swap(false) {
		p.ui.Dispatch(ui.EventTick)
	}
	if pulse(p.up, "up") {
		p.ui.Dispatch(ui.EventUp)
	}
	if pulse(p.down, "down") {
		p.ui.Dispatch(ui.EventDown)
	}
	if pulse(p.sel, "select") {
		p.ui.Clear()
		p.ui.Dispatch(ui.EventOk)
	}
	p.MainLoop()
}

// MainLoop runs every queued command and redraws when asked to.
func (p *Panel) MainLoop() {
	p.queue.Drain()
	if p.refresh.Swap(false) {
		if err := p.ui.Refresh(); err != nil {
			logging.Error(err)
		}
	}
}

func pulse(d *button.Debouncer, name string) bool {
	if !d.Read() {
		return false
	}
	events.Button.Pulse(name, d.State().String())
	return true
}

// Run attaches the periodic callbacks and runs the idle loop until ctx is
// cancelled. Commands still queued at that point are executed before Run
// returns.
func (p *Panel) Run(ctx context.Context) error {
	s := scheduler.New()
	if err := s.Attach("buttons", ButtonHz, p.ButtonTick); err != nil {
		return err
	}
	if err := s.Attach("refresh", RefreshHz, p.RefreshTick); err != nil {
		return err
	}
	if err := s.AttachEvery("second", time.Second, p.SecondTick); err != nil {
		return err
	}
	s.Start(ctx)
	defer func() {
		s.Stop()
		s.Wait()
		p.queue.Drain()
	}()

	p.RefreshTick()
	ticker := time.NewTicker(p.cfg.Poll)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.Idle()
		}
	}
}
