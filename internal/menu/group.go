package menu

import (
	"github.com/atomicstack/panel-control/internal/layout"
	"github.com/atomicstack/panel-control/internal/ui/state"
)

// GroupID indexes a group inside its registry.
type GroupID int

// Content is an external listing shown through a group's cells, such as a
// directory. The group's items are then per-cell slots rather than rows.
type Content interface {
	Count() int
	Seek(offset int)
}

// Group is one navigable page: items, index-aligned links, and a widget.
type Group struct {
	id      GroupID
	name    string
	items   []Item
	links   []Link
	widget  *state.Widget
	content Content
}

// ID returns the arena index of the group.
func (g *Group) ID() GroupID {
	return g.id
}

// Name identifies the group in traces.
func (g *Group) Name() string {
	return g.name
}

// Len returns the number of items.
func (g *Group) Len() int {
	return len(g.items)
}

// Item returns item i.
func (g *Group) Item(i int) (Item, bool) {
	if i < 0 || i >= len(g.items) {
		return Item{}, false
	}
	return g.items[i], true
}

// Link returns the outgoing link of item i. Out of range items yield Null.
func (g *Group) Link(i int) Link {
	if i < 0 || i >= len(g.links) {
		return Null
	}
	return g.links[i]
}

// Widget returns the group's cursor state.
func (g *Group) Widget() *state.Widget {
	return g.widget
}

// Layout returns the cell geometry.
func (g *Group) Layout() *layout.Layout {
	return g.widget.Layout()
}

// Content returns the bound external listing, if any.
func (g *Group) Content() Content {
	return g.content
}

// Current returns the index of the highlighted item.
func (g *Group) Current() int {
	if g.content != nil {
		return g.widget.Highlight()
	}
	return g.widget.Selected()
}

// ItemIndexForCell maps a visible cell to an item index, or -1 when the cell
// is empty.
func (g *Group) ItemIndexForCell(cell int) int {
	if cell < 0 || cell >= g.widget.Cells() {
		return -1
	}
	idx := cell
	if g.content == nil {
		idx += g.widget.Offset()
	}
	if idx >= len(g.items) || cell >= g.widget.Visible() {
		return -1
	}
	return idx
}

// Enter positions the widget on item i and resets any bound listing to its
// first entry.
func (g *Group) Enter(i int) {
	if g.content != nil {
		g.widget.SetCount(g.content.Count())
		g.widget.Select(0)
		g.content.Seek(0)
		if i < g.widget.Visible() {
			g.widget.Select(i)
		}
		return
	}
	g.widget.Select(i)
}

// MoveUp moves the highlight and keeps a bound listing in step with it.
func (g *Group) MoveUp() bool {
	moved := g.widget.MoveUp()
	if moved && g.content != nil {
		g.content.Seek(g.widget.Offset())
	}
	return moved
}

// MoveDown moves the highlight and keeps a bound listing in step with it.
func (g *Group) MoveDown() bool {
	moved := g.widget.MoveDown()
	if moved && g.content != nil {
		g.content.Seek(g.widget.Offset())
	}
	return moved
}
