// Package host runs the panel inside a terminal. The Bubble Tea program owns
// the terminal; the panel runs on its own goroutines and talks to the program
// only through Keys (button state) and Sink (frames).
package host

import (
	"reflect"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/panel-control/internal/display"
	"github.com/atomicstack/panel-control/internal/logging/events"
	"github.com/atomicstack/panel-control/internal/panel"
	"github.com/atomicstack/panel-control/internal/theme"
)

const title = "panel-control"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements tea.Model for the simulated panel.
type Model struct {
	keys   *Keys
	keymap keyMap
	help   help.Model
	frame  display.Frame
	ready  bool
	width  int
	height int

	handlers map[reflect.Type]msgHandler
}

// NewModel returns a model feeding key presses into keys.
func NewModel(keys *Keys) *Model {
	m := &Model{
		keys:   keys,
		keymap: defaultKeyMap(),
		help:   help.New(),
	}
	m.registerHandlers()
	return m
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(FrameMsg{}):          m.handleFrameMsg,
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler, ok := m.handlers[reflect.TypeOf(msg)]; ok {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	var (
		button panel.Buttons
		name   string
	)
	switch {
	case key.Matches(keyMsg, m.keymap.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keymap.Up):
		button, name = panel.ButtonUp, "up"
	case key.Matches(keyMsg, m.keymap.Down):
		button, name = panel.ButtonDown, "down"
	case key.Matches(keyMsg, m.keymap.Select):
		button, name = panel.ButtonSelect, "select"
	default:
		return nil
	}
	events.Host.Key(keyMsg.String(), name)
	if m.keys != nil {
		m.keys.Press(button)
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	m.width, m.height = size.Width, size.Height
	m.help.Width = size.Width
	events.Host.Size(size.Width, size.Height)
	return nil
}

func (m *Model) handleFrameMsg(msg tea.Msg) tea.Cmd {
	m.frame = msg.(FrameMsg).Frame
	m.ready = true
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	header := styles.Title.Render(title)
	if m.frame.Group != "" {
		header += "  " + styles.Status.Render(m.frame.Group)
	}
	body := styles.Status.Render("waiting for display…")
	if m.ready {
		body = strings.Join(display.Lines(&m.frame, styleCell), "\n")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		styles.Screen.Render(body),
		styles.Help.Render(m.help.View(m.keymap)),
	)
}

func styleCell(text string, c display.FrameCell) string {
	switch {
	case c.Editing:
		return styles.Editing.Render(text)
	case c.Highlight:
		return styles.Highlight.Render(text)
	default:
		return styles.Cell.Render(text)
	}
}
