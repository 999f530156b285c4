package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/panel-control/internal/display"
	"github.com/atomicstack/panel-control/internal/i18n"
	"github.com/atomicstack/panel-control/internal/logging/events"
	"github.com/atomicstack/panel-control/internal/menu"
)

// Render fills the interface's frame with the current group. The returned
// frame is reused by the next call.
func (ui *UserInterface) Render() *display.Frame {
	f := &ui.frame
	g := ui.Group()
	if g == nil {
		f.Reset("")
		return f
	}
	f.Reset(g.Name())
	f.Clear = ui.clear
	ui.clear = false
	w := g.Widget()
	l := g.Layout()
	for cell := 0; cell < l.Len(); cell++ {
		idx := g.ItemIndexForCell(cell)
		if idx < 0 {
			continue
		}
		item, _ := g.Item(idx)
		editing := ui.edit.active && ui.edit.index == idx
		f.Add(display.FrameCell{
			Cell:      l.Cell(cell),
			Text:      ui.text(g, idx, item, editing),
			Highlight: cell == w.Highlight(),
			Editing:   editing,
		})
	}
	return f
}

// Refresh renders and pushes the frame to the display sink. Sink errors are
// traced and returned; they never change interface state.
func (ui *UserInterface) Refresh() error {
	if err := ui.sink.Push(ui.Render()); err != nil {
		err = fmt.Errorf("refresh: %w", err)
		events.UI.RefreshFailed(err)
		return err
	}
	return nil
}

func (ui *UserInterface) caption(c i18n.Caption) string {
	return ui.captions.Resolve(c)
}

func (ui *UserInterface) text(g *menu.Group, idx int, item menu.Item, editing bool) string {
	switch item.Kind {
	case menu.KindLabel, menu.KindCommand, menu.KindGraphic:
		return ui.caption(item.Caption)
	case menu.KindLogo:
		frames := item.Frames
		if frames < 1 {
			frames = 1
		}
		return ui.caption(item.Caption) + strings.Repeat(".", ui.since%frames)
	case menu.KindFile:
		if item.Files == nil {
			return ""
		}
		return item.Files.Name(item.Slot)
	case menu.KindEditable:
		value := ui.edit.value
		if !editing {
			value = ui.read(g, idx, item)
		}
		text := fmt.Sprintf("%s %.0f", ui.caption(item.Caption), value)
		if editing {
			text = "> " + text
		}
		return text
	case menu.KindInfo:
		v, ok := ui.value(g, idx, item)
		if !ok {
			return ui.caption(item.Caption) + " " + ui.caption(i18n.Unavailable)
		}
		return ui.formatValue(item.Caption, v)
	default:
		return ""
	}
}

// value calls an info accessor, isolating a panic to this item.
func (ui *UserInterface) value(g *menu.Group, idx int, item menu.Item) (v menu.Value, ok bool) {
	if item.Info == nil {
		return menu.Value{}, false
	}
	defer func() {
		if r := recover(); r != nil {
			events.UI.InfoFailed(g.Name(), idx, r)
			v, ok = menu.Value{}, false
		}
	}()
	return item.Info(), true
}

func (ui *UserInterface) formatValue(c i18n.Caption, v menu.Value) string {
	label := ui.caption(c)
	switch v.Format {
	case menu.FormatPair:
		return fmt.Sprintf("%s %.0f/%.0f", label, v.A, v.B)
	case menu.FormatPercent:
		text := v.Text
		if v.Caption != "" {
			text = ui.caption(v.Caption)
		}
		return fmt.Sprintf("%s %.0f%%", text, v.A)
	case menu.FormatDuration:
		return fmt.Sprintf("%s / %s", clock(v.A), clock(v.B))
	default:
		return label + " " + v.Text
	}
}

func clock(secs float64) string {
	if secs < 0 {
		secs = 0
	}
	s := int(secs)
	return fmt.Sprintf("%d:%02d:%02d", s/3600, s/60%60, s%60)
}
