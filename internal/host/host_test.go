package host

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/panel-control/internal/display"
	"github.com/atomicstack/panel-control/internal/layout"
	"github.com/atomicstack/panel-control/internal/panel"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func newTestKeys() (*Keys, *clock) {
	c := &clock{t: time.Unix(1000, 0)}
	k := NewKeys(100 * time.Millisecond)
	k.now = c.now
	return k, c
}

func TestKeysHoldForDuration(t *testing.T) {
	k, c := newTestKeys()
	if got := k.ReadButtons(); got != 0 {
		t.Fatalf("expected no buttons, got %b", got)
	}
	k.Press(panel.ButtonDown)
	if got := k.ReadButtons(); got != panel.ButtonDown {
		t.Fatalf("expected down held, got %b", got)
	}
	c.t = c.t.Add(60 * time.Millisecond)
	k.Press(panel.ButtonSelect)
	if got := k.ReadButtons(); got != panel.ButtonDown|panel.ButtonSelect {
		t.Fatalf("expected down and select held, got %b", got)
	}
	c.t = c.t.Add(60 * time.Millisecond)
	if got := k.ReadButtons(); got != panel.ButtonSelect {
		t.Fatalf("expected only select held, got %b", got)
	}
	c.t = c.t.Add(time.Second)
	if got := k.ReadButtons(); got != 0 {
		t.Fatalf("expected release, got %b", got)
	}
}

func TestKeyMessagesPressButtons(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want panel.Buttons
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, panel.ButtonUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}, panel.ButtonUp},
		{tea.KeyMsg{Type: tea.KeyDown}, panel.ButtonDown},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, panel.ButtonDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, panel.ButtonSelect},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, 0},
	}
	for _, tc := range cases {
		k, _ := newTestKeys()
		h := NewHarness(NewModel(k))
		h.Send(tc.msg)
		if got := k.ReadButtons(); got != tc.want {
			t.Fatalf("%s: expected %b, got %b", tc.msg.String(), tc.want, got)
		}
		if h.Quit() {
			t.Fatalf("%s: unexpected quit", tc.msg.String())
		}
	}
}

func TestQuitKey(t *testing.T) {
	k, _ := newTestKeys()
	h := NewHarness(NewModel(k))
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !h.Quit() {
		t.Fatalf("expected quit")
	}
	if got := k.ReadButtons(); got != 0 {
		t.Fatalf("expected no button for quit, got %b", got)
	}
}

func TestViewRendersFrames(t *testing.T) {
	h := NewHarness(NewModel(nil))
	if !strings.Contains(h.View(), "waiting for display") {
		t.Fatalf("expected placeholder before first frame")
	}
	var f display.Frame
	f.Reset("abort")
	f.Add(display.FrameCell{Cell: layout.Modal.Cell(0), Text: "Abort print", Highlight: true})
	f.Add(display.FrameCell{Cell: layout.Modal.Cell(1), Text: "Continue"})

	var got []tea.Msg
	sink := NewSink(func(msg tea.Msg) { got = append(got, msg) })
	if err := sink.Push(&f); err != nil {
		t.Fatalf("push: %v", err)
	}
	f.Cells[0].Text = "mutated"
	if len(got) != 1 {
		t.Fatalf("expected one message, got %d", len(got))
	}
	h.Send(got[0])
	view := h.View()
	for _, want := range []string{"Abort print", "Continue", "abort", title} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "mutated") {
		t.Fatalf("expected sink to copy the frame")
	}
}

func TestWindowSizeSetsHelpWidth(t *testing.T) {
	h := NewHarness(NewModel(nil))
	h.Send(tea.WindowSizeMsg{Width: 90, Height: 30})
	if h.Model().help.Width != 90 || h.Model().height != 30 {
		t.Fatalf("expected size to be recorded, got %d/%d", h.Model().help.Width, h.Model().height)
	}
}

func TestNilSendIsSafe(t *testing.T) {
	var f display.Frame
	if err := NewSink(nil).Push(&f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
