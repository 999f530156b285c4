package ui

import (
	"fmt"

	"github.com/atomicstack/panel-control/internal/logging"
	"github.com/atomicstack/panel-control/internal/logging/events"
	"github.com/atomicstack/panel-control/internal/menu"
)

// Navigate moves to target and highlights its index. Unknown groups are
// ignored.
func (ui *UserInterface) Navigate(target menu.Position, reason events.NavReason) {
	g := ui.registry.Group(target.Group)
	if g == nil {
		return
	}
	from := ui.pos
	fromName := ""
	if prev := ui.registry.Group(from.Group); prev != nil {
		fromName = prev.Name()
	}
	g.Enter(target.Index)
	ui.pos = menu.Position{Group: target.Group, Index: g.Current()}
	ui.clear = true
	ui.since = 0
	events.UI.Navigate(fromName, from.Index, g.Name(), ui.pos.Index, reason)
}

func (ui *UserInterface) activate(g *menu.Group) {
	idx := g.Current()
	item, ok := g.Item(idx)
	if !ok {
		return
	}
	switch item.Kind {
	case menu.KindEditable:
		if ui.edit.active {
			ui.commit(g, item)
			return
		}
		ui.beginEdit(g, idx, item)
		return
	case menu.KindFile:
		// An empty slot has nothing to open.
		if item.Files == nil || item.Files.Name(item.Slot) == "" {
			return
		}
		ui.run(g, idx, item)
	case menu.KindCommand:
		ui.run(g, idx, item)
	case menu.KindLabel, menu.KindInfo, menu.KindGraphic, menu.KindLogo:
	}
	ui.follow(g)
}

func (ui *UserInterface) follow(g *menu.Group) {
	from := menu.Position{Group: g.ID(), Index: g.Current()}
	link := g.Link(from.Index)
	if link.IsNull() {
		return
	}
	ui.Navigate(ui.registry.Resolve(from), events.NavLink)
}

func (ui *UserInterface) run(g *menu.Group, idx int, item menu.Item) {
	if item.Action == nil {
		return
	}
	events.Action.Run(g.Name(), idx)
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("action %s/%d: %v", g.Name(), idx, r)
			events.Action.Error(err)
			logging.Error(err)
		}
	}()
	item.Action()
}

func (ui *UserInterface) beginEdit(g *menu.Group, idx int, item menu.Item) {
	value := ui.read(g, idx, item)
	if value == 0 {
		value = item.Initial
	}
	ui.edit = editState{active: true, index: idx, value: value}
	events.UI.EditStart(g.Name(), idx, value)
}

// adjust moves the working value by one step in dir, never below zero.
func (ui *UserInterface) adjust(g *menu.Group, dir float64) {
	item, ok := g.Item(ui.edit.index)
	if !ok {
		ui.edit = editState{}
		return
	}
	ui.edit.value += dir * item.Step
	if ui.edit.value < 0 {
		ui.edit.value = 0
	}
}

func (ui *UserInterface) commit(g *menu.Group, item menu.Item) {
	value := ui.edit.value
	idx := ui.edit.index
	ui.edit = editState{}
	events.UI.EditCommit(g.Name(), idx, value)
	if item.Set == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("commit %s/%d: %v", g.Name(), idx, r)
			events.Action.Error(err)
			logging.Error(err)
		}
	}()
	item.Set(value)
}

// read calls an editable's getter, treating a panic as no value.
func (ui *UserInterface) read(g *menu.Group, idx int, item menu.Item) (v float64) {
	if item.Get == nil {
		return 0
	}
	defer func() {
		if r := recover(); r != nil {
			events.UI.InfoFailed(g.Name(), idx, r)
			v = 0
		}
	}()
	return item.Get()
}
