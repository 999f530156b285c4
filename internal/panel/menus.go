package panel

import (
	"errors"

	"github.com/atomicstack/panel-control/internal/bus"
	"github.com/atomicstack/panel-control/internal/i18n"
	"github.com/atomicstack/panel-control/internal/layout"
	"github.com/atomicstack/panel-control/internal/logging"
	"github.com/atomicstack/panel-control/internal/menu"
)

// Item indexes of the fixed menus.
const (
	mainMove = iota
	mainHeat
	mainPrint
	mainMaintenance
	mainStatus
	mainOptions
)

const (
	moveBack = iota
	moveHome
	moveZ
	moveX
	moveY
)

const (
	homeBack = iota
	homeZ
	homeXY
	homeXYZ
)

const (
	heatBack = iota
	heatABS
	heatPLA
	heatManual
	heatCoolDown
)

const (
	manualBack = iota
	manualHotend
	manualBed
)

const (
	maintenanceBack = iota
	maintenanceExtrusion
	maintenancePrime
)

const (
	extrudeBack = iota
	extrudeExtrude
	extrudeRetract
)

const (
	optionsBack = iota
	optionsIP
	optionsVersion
)

const (
	abortConfirm = iota
	abortCancel
)

const logoFrames = 3

type groups struct {
	logo, init, main, move, home, files, heat, manual,
	maintenance, extrude, status, abort, options menu.GroupID
}

// wiring collects registry errors so the menu table reads top to bottom.
type wiring struct {
	reg  *menu.Registry
	errs []error
}

func (w *wiring) add(name string, l *layout.Layout, items ...menu.Item) menu.GroupID {
	id, err := w.reg.Add(name, l, items...)
	if err != nil {
		w.errs = append(w.errs, err)
	}
	return id
}

func (w *wiring) link(g menu.GroupID, i int, l menu.Link) {
	if err := w.reg.SetLink(g, i, l); err != nil {
		w.errs = append(w.errs, err)
	}
}

func (w *wiring) to(g menu.GroupID, i int) menu.Link {
	return w.reg.LinkTo(g, i)
}

func (p *Panel) build() error {
	w := &wiring{reg: p.reg}
	g := &p.groups

	g.logo = w.add("logo", layout.Splash,
		menu.Logo(i18n.Back, "logo", logoFrames),
	)
	g.init = w.add("init", layout.Modal,
		menu.Command(i18n.InitHome, func() { p.send("home", HomeLine("XYZ")) }),
		menu.Label(i18n.DontHome),
	)
	g.main = w.add("main", layout.Main,
		menu.Graphic(i18n.Move, "move"),
		menu.Graphic(i18n.Heat, "heat"),
		menu.Graphic(i18n.Print, "print"),
		menu.Graphic(i18n.Maintenance, "service"),
		menu.Graphic(i18n.Status, "status"),
		menu.Graphic(i18n.Settings, "setup"),
	)
	g.move = w.add("move", layout.Stacked,
		menu.Label(i18n.Back),
		menu.Label(i18n.Home),
		p.axisControl(i18n.AxisZ, 'Z', 2),
		p.axisControl(i18n.AxisX, 'X', 0),
		p.axisControl(i18n.AxisY, 'Y', 1),
	)
	g.home = w.add("home", layout.Stacked,
		menu.Label(i18n.Back),
		menu.Command(i18n.HomeZ, func() { p.send("home", HomeLine("Z")) }),
		menu.Command(i18n.HomeXY, func() { p.send("home", HomeLine("XY")) }),
		menu.Command(i18n.HomeXYZ, func() { p.send("home", HomeLine("XYZ")) }),
	)
	g.files = w.add("files", layout.Stacked,
		menu.File(p.files, 0, func() { p.play(0) }),
		menu.File(p.files, 1, func() { p.play(1) }),
		menu.File(p.files, 2, func() { p.play(2) }),
	)
	g.heat = w.add("heat", layout.Stacked,
		menu.Label(i18n.Back),
		menu.Command(i18n.PreheatABS, func() { p.preheat(p.cfg.ABS) }),
		menu.Command(i18n.PreheatPLA, func() { p.preheat(p.cfg.PLA) }),
		menu.Label(i18n.ManualPreheat),
		menu.Command(i18n.CoolDown, func() { p.preheat(Preset{}) }),
	)
	g.manual = w.add("manual", layout.Stacked,
		menu.Label(i18n.Back),
		menu.Editable(i18n.HotendTemperature,
			func() float64 { target, _ := HotendTemperature(p.bus); return target },
			func(v float64) { p.setTemperature(SetHotendTemperature, v) },
			5, 150),
		menu.Editable(i18n.HotbedTemperature,
			func() float64 { target, _ := BedTemperature(p.bus); return target },
			func(v float64) { p.setTemperature(SetBedTemperature, v) },
			5, 0),
	)
	g.maintenance = w.add("maintenance", layout.Stacked,
		menu.Label(i18n.Back),
		menu.Label(i18n.ManualExtrusion),
		menu.Command(i18n.PrimePrinthead, func() { p.send("prime", PrimeLines()...) }),
	)
	g.extrude = w.add("extrude", layout.Stacked,
		menu.Label(i18n.Back),
		menu.Command(i18n.Extrude, func() { p.send("extrude", ExtrudeLines(5)...) }),
		menu.Command(i18n.Retract, func() { p.send("retract", ExtrudeLines(-5)...) }),
	)
	g.status = w.add("status", layout.Status,
		menu.Info(i18n.Progress, func() menu.Value {
			percent, name, ok := Progress(p.bus)
			if !ok {
				return menu.PercentCaption(0, i18n.NoFile)
			}
			return menu.Percent(float64(percent), name)
		}),
		menu.Info(i18n.Progress, func() menu.Value {
			elapsed, remaining := TimeProgress(p.bus)
			return menu.Duration(float64(elapsed), float64(remaining))
		}),
		menu.Info(i18n.HotendTemperature, func() menu.Value {
			return menu.Pair(HotendTemperature(p.bus))
		}),
		menu.Info(i18n.HotbedTemperature, func() menu.Value {
			return menu.Pair(BedTemperature(p.bus))
		}),
	)
	g.abort = w.add("abort", layout.Modal,
		menu.Command(i18n.AbortPrint, func() {
			p.later("abort", func() error { return AbortPlaying(p.bus) })
		}),
		menu.Label(i18n.NotAbortPrint),
	)
	g.options = w.add("options", layout.Stacked,
		menu.Label(i18n.Back),
		menu.Info(i18n.IP, func() menu.Value { return menu.Text(Network(p.bus)) }),
		menu.Info(i18n.Version, func() menu.Value { return menu.Text(p.cfg.Version) }),
	)
	if len(w.errs) > 0 {
		return errors.Join(w.errs...)
	}

	w.link(g.logo, 0, w.to(g.init, 0))
	w.link(g.init, 0, w.to(g.status, 0))
	w.link(g.init, 1, w.to(g.status, 0))

	w.link(g.main, mainMove, w.to(g.move, moveBack))
	w.link(g.main, mainHeat, w.to(g.heat, heatBack))
	w.link(g.main, mainPrint, menu.Conditional(func() bool { return IsPlaying(p.bus) },
		menu.Position{Group: g.abort, Index: abortConfirm},
		menu.Position{Group: g.files, Index: 0}))
	w.link(g.main, mainMaintenance, w.to(g.maintenance, maintenanceBack))
	w.link(g.main, mainStatus, w.to(g.status, 0))
	w.link(g.main, mainOptions, w.to(g.options, optionsBack))

	w.link(g.move, moveBack, w.to(g.main, mainMove))
	w.link(g.move, moveHome, w.to(g.home, homeBack))
	for _, i := range []int{moveZ, moveX, moveY} {
		w.link(g.move, i, menu.Null)
	}

	w.link(g.home, homeBack, w.to(g.move, moveBack))
	for _, i := range []int{homeZ, homeXY, homeXYZ} {
		w.link(g.home, i, menu.Null)
	}

	for i := 0; i < 3; i++ {
		w.link(g.files, i, w.to(g.status, 0))
	}

	w.link(g.heat, heatBack, w.to(g.main, mainHeat))
	w.link(g.heat, heatManual, w.to(g.manual, manualHotend))
	for _, i := range []int{heatABS, heatPLA, heatCoolDown} {
		w.link(g.heat, i, menu.Null)
	}

	w.link(g.manual, manualBack, w.to(g.heat, heatBack))
	w.link(g.manual, manualHotend, menu.Null)
	w.link(g.manual, manualBed, menu.Null)

	w.link(g.maintenance, maintenanceBack, w.to(g.main, mainMaintenance))
	w.link(g.maintenance, maintenanceExtrusion, w.to(g.extrude, extrudeBack))
	w.link(g.maintenance, maintenancePrime, menu.Null)

	w.link(g.extrude, extrudeBack, w.to(g.maintenance, maintenanceBack))
	w.link(g.extrude, extrudeExtrude, menu.Null)
	w.link(g.extrude, extrudeRetract, menu.Null)

	for i := 0; i < 4; i++ {
		w.link(g.status, i, w.to(g.main, mainStatus))
	}

	w.link(g.abort, abortConfirm, w.to(g.status, 0))
	w.link(g.abort, abortCancel, w.to(g.main, mainPrint))

	w.link(g.options, optionsBack, w.to(g.main, mainOptions))
	w.link(g.options, optionsIP, menu.Null)
	w.link(g.options, optionsVersion, menu.Null)

	if err := p.reg.Bind(g.files, p.files); err != nil {
		w.errs = append(w.errs, err)
	}
	return errors.Join(w.errs...)
}

func (p *Panel) axisControl(caption i18n.Caption, axis byte, index int) menu.Item {
	return menu.Editable(caption,
		func() float64 { return Position(p.bus, index) },
		func(v float64) { p.send("move", MoveLine(axis, v)) },
		1, 0)
}

func (p *Panel) play(slot int) {
	file := p.files.Path(slot)
	if file == "" {
		return
	}
	p.send("play", PlayLines(file)...)
}

func (p *Panel) preheat(preset Preset) {
	p.setTemperature(SetHotendTemperature, preset.Hotend)
	p.setTemperature(SetBedTemperature, preset.Bed)
}

func (p *Panel) setTemperature(set func(bus.Bus, float64) error, v float64) {
	if err := set(p.bus, v); err != nil {
		logging.Error(err)
	}
}
