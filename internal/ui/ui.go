package ui

import (
	"github.com/atomicstack/panel-control/internal/display"
	"github.com/atomicstack/panel-control/internal/i18n"
	"github.com/atomicstack/panel-control/internal/logging/events"
	"github.com/atomicstack/panel-control/internal/menu"
)

// Event is an input delivered to the interface.
type Event uint8

const (
	EventUp Event = iota
	EventDown
	EventOk
	EventTick
)

func (e Event) String() string {
	switch e {
	case EventUp:
		return "up"
	case EventDown:
		return "down"
	case EventOk:
		return "ok"
	case EventTick:
		return "tick"
	default:
		return "unknown"
	}
}

// Config selects where the interface starts and how it times out.
type Config struct {
	Captions    i18n.Table
	Start       menu.Position
	IdleTimeout int
	IdleTarget  menu.Position
}

type editState struct {
	active bool
	index  int
	value  float64
}

// UserInterface tracks the current position and renders it.
type UserInterface struct {
	registry    *menu.Registry
	sink        display.Sink
	captions    i18n.Table
	pos         menu.Position
	edit        editState
	idleTimeout int
	idleTarget  menu.Position
	idle        int
	since       int
	clear       bool
	frame       display.Frame
}

// New positions the interface on cfg.Start. A nil sink discards frames.
func New(registry *menu.Registry, sink display.Sink, cfg Config) *UserInterface {
	if sink == nil {
		sink = display.Discard{}
	}
	captions := cfg.Captions
	if captions == nil {
		captions = i18n.English()
	}
	ui := &UserInterface{
		registry:    registry,
		sink:        sink,
		captions:    captions,
		idleTimeout: cfg.IdleTimeout,
		idleTarget:  cfg.IdleTarget,
	}
	ui.Navigate(cfg.Start, events.NavStart)
	return ui
}

// Position returns the current group and highlighted item.
func (ui *UserInterface) Position() menu.Position {
	return ui.pos
}

// Group returns the current group.
func (ui *UserInterface) Group() *menu.Group {
	return ui.registry.Group(ui.pos.Group)
}

// Editing reports whether an editable item is being adjusted, and its
// working value.
func (ui *UserInterface) Editing() (bool, float64) {
	return ui.edit.active, ui.edit.value
}

// Clear asks the next frame to wipe the display first.
func (ui *UserInterface) Clear() {
	ui.clear = true
}

// Dispatch applies one event.
func (ui *UserInterface) Dispatch(ev Event) {
	if ev == EventTick {
		ui.tick()
		return
	}
	ui.idle = 0
	g := ui.Group()
	if g == nil {
		return
	}
	switch ev {
	case EventUp:
		if ui.edit.active {
			ui.adjust(g, 1)
			return
		}
		if g.MoveUp() {
			ui.moved(g)
		}
	case EventDown:
		if ui.edit.active {
			ui.adjust(g, -1)
			return
		}
		if g.MoveDown() {
			ui.moved(g)
		}
	case EventOk:
		ui.activate(g)
	}
}

func (ui *UserInterface) tick() {
	ui.since++
	if ui.idleTimeout > 0 {
		ui.idle++
		if ui.idle >= ui.idleTimeout {
			ui.idle = 0
			if ui.pos.Group != ui.idleTarget.Group {
				ui.edit = editState{}
				ui.Navigate(ui.idleTarget, events.NavIdleTimeout)
				return
			}
		}
	}
	// A splash logo moves on once its animation has played.
	g := ui.Group()
	if g == nil {
		return
	}
	if item, ok := g.Item(g.Current()); ok && item.Kind == menu.KindLogo && item.Frames > 0 && ui.since >= item.Frames {
		ui.follow(g)
	}
}

func (ui *UserInterface) moved(g *menu.Group) {
	ui.pos.Index = g.Current()
	w := g.Widget()
	events.UI.MenuCursor(g.Name(), w.Highlight(), w.Offset())
}
