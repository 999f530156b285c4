package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/atomicstack/panel-control/internal/bus"
	"github.com/atomicstack/panel-control/internal/format/table"
	"github.com/atomicstack/panel-control/internal/i18n"
	"github.com/atomicstack/panel-control/internal/machine"
	"github.com/atomicstack/panel-control/internal/menu"
	"github.com/atomicstack/panel-control/internal/panel"
)

// Dump writes the wired menu graph as an aligned table, one row per item.
func Dump(w io.Writer, cfg Config) error {
	data := bus.NewMemory()
	sim := machine.New(bus.Address{})
	sim.Register(data)
	p, err := panel.New(cfg.Panel, data, sim, nil, nil)
	if err != nil {
		return fmt.Errorf("build panel: %w", err)
	}
	captions := cfg.Panel.Captions
	if captions == nil {
		captions = i18n.English()
	}
	reg := p.Registry()
	rows := [][]string{{"GROUP", "#", "LAYOUT", "KIND", "CAPTION", "LINK"}}
	reg.Walk(func(g *menu.Group) {
		for i := 0; i < g.Len(); i++ {
			item, _ := g.Item(i)
			caption := captions.Resolve(item.Caption)
			if item.Kind == menu.KindFile {
				caption = "slot " + strconv.Itoa(item.Slot)
			}
			rows = append(rows, []string{
				g.Name(),
				strconv.Itoa(i),
				g.Layout().Name(),
				item.Kind.String(),
				caption,
				describeLink(reg, g.Link(i)),
			})
		}
	})
	aligns := []table.Alignment{table.AlignLeft, table.AlignRight}
	for _, line := range table.Format(rows, aligns) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if err := reg.Validate(p.Start()); err != nil {
		fmt.Fprintf(w, "\nlink problems:\n%v\n", err)
	}
	return nil
}

func describeLink(reg *menu.Registry, link menu.Link) string {
	name := func(pos menu.Position) string {
		label := strconv.Itoa(int(pos.Group))
		if g := reg.Group(pos.Group); g != nil {
			label = g.Name()
		}
		return label + "@" + strconv.Itoa(pos.Index)
	}
	targets := link.Targets()
	switch link.Kind() {
	case menu.LinkFixed:
		return name(targets[0])
	case menu.LinkConditional:
		return "? " + name(targets[0]) + " : " + name(targets[1])
	case menu.LinkNull:
		return "stay"
	default:
		return "unwired"
	}
}
