// Package panel wires the menu graph, the button debouncers, the command
// queue and the scheduler into a running panel.
package panel

import (
	"errors"
	"fmt"
	"io/fs"
	"sync/atomic"
	"time"

	"github.com/atomicstack/panel-control/internal/bus"
	"github.com/atomicstack/panel-control/internal/button"
	"github.com/atomicstack/panel-control/internal/display"
	"github.com/atomicstack/panel-control/internal/files"
	"github.com/atomicstack/panel-control/internal/i18n"
	"github.com/atomicstack/panel-control/internal/layout"
	"github.com/atomicstack/panel-control/internal/logging"
	"github.com/atomicstack/panel-control/internal/logging/events"
	"github.com/atomicstack/panel-control/internal/menu"
	"github.com/atomicstack/panel-control/internal/queue"
	"github.com/atomicstack/panel-control/internal/ui"
)

// Buttons is the raw button bitmask read from the input device.
type Buttons uint8

const (
	ButtonUp Buttons = 1 << iota
	ButtonDown
	ButtonSelect
)

// Input reports which buttons are held right now. It is called from the
// scheduler goroutine and must not block.
type Input interface {
	ReadButtons() Buttons
}

// CommandSink receives machine command lines. It is only ever called from the
// goroutine draining the command queue.
type CommandSink interface {
	CommandReceived(line string)
}

// Preset is a pair of preheat targets.
type Preset struct {
	Hotend float64
	Bed    float64
}

// Config tunes a panel.
type Config struct {
	Files       fs.FS
	FilesDir    string
	FileFilter  string
	QueueSize   int
	IdleTimeout int
	StrictLinks bool
	ABS         Preset
	PLA         Preset
	Buttons     button.Config
	Captions    i18n.Table
	Version     string
	// Poll is the period of the idle loop in Run.
	Poll time.Duration
}

// DefaultConfig returns the stock panel settings.
func DefaultConfig() Config {
	return Config{
		FilesDir:    ".",
		QueueSize:   queue.DefaultCapacity,
		IdleTimeout: 60,
		ABS:         Preset{Hotend: 245, Bed: 100},
		PLA:         Preset{Hotend: 220, Bed: 60},
		Buttons:     button.DefaultConfig(),
		Poll:        5 * time.Millisecond,
	}
}

// Panel is the on-device user interface.
type Panel struct {
	cfg    Config
	bus    bus.Bus
	out    CommandSink
	in     Input
	queue  *queue.Queue
	files  *files.ShiftRegister
	reg    *menu.Registry
	groups groups
	ui     *ui.UserInterface

	up, down, sel *button.Debouncer

	refresh atomic.Bool
	tick    atomic.Bool
}

// New builds the menu graph and positions the panel on the splash logo.
// Link problems are logged; with StrictLinks they are returned instead.
func New(cfg Config, b bus.Bus, out CommandSink, in Input, sink display.Sink) (*Panel, error) {
	if b == nil {
		return nil, errors.New("panel: nil bus")
	}
	if out == nil {
		return nil, errors.New("panel: nil command sink")
	}
	def := DefaultConfig()
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = def.QueueSize
	}
	if cfg.FilesDir == "" {
		cfg.FilesDir = def.FilesDir
	}
	if cfg.Poll <= 0 {
		cfg.Poll = def.Poll
	}
	if cfg.IdleTimeout < 0 {
		cfg.IdleTimeout = 0
	}
	if cfg.Captions == nil {
		cfg.Captions = i18n.English()
	}
	p := &Panel{
		cfg:   cfg,
		bus:   b,
		out:   out,
		in:    in,
		queue: queue.New(cfg.QueueSize),
		files: files.NewShiftRegister(layout.Stacked.Len()),
		reg:   menu.NewRegistry(),
		up:    button.New(cfg.Buttons),
		down:  button.New(cfg.Buttons),
		sel:   button.New(cfg.Buttons),
	}
	if cfg.Files != nil {
		p.files.Open(files.DirSource{FS: cfg.Files, Dir: cfg.FilesDir, Filter: cfg.FileFilter}, cfg.FilesDir)
	}
	if err := p.build(); err != nil {
		return nil, fmt.Errorf("panel: build menus: %w", err)
	}
	if err := p.reg.Validate(p.Start()); err != nil {
		events.App.LinkProblems(err)
		if cfg.StrictLinks {
			return nil, fmt.Errorf("panel: %w", err)
		}
		logging.Error(fmt.Errorf("panel: %w", err))
	}
	p.ui = ui.New(p.reg, sink, ui.Config{
		Captions:    cfg.Captions,
		Start:       p.Start(),
		IdleTimeout: cfg.IdleTimeout,
		IdleTarget:  menu.Position{Group: p.groups.status},
	})
	return p, nil
}

// Start is where the panel comes up.
func (p *Panel) Start() menu.Position {
	return menu.Position{Group: p.groups.logo}
}

// Registry exposes the menu graph.
func (p *Panel) Registry() *menu.Registry {
	return p.reg
}

// UI exposes the interaction state.
func (p *Panel) UI() *ui.UserInterface {
	return p.ui
}

// Queue exposes the deferred command queue.
func (p *Panel) Queue() *queue.Queue {
	return p.queue
}

// Files exposes the file browser window.
func (p *Panel) Files() *files.ShiftRegister {
	return p.files
}
