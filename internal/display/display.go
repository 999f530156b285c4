// Package display defines the frame handed to the display driver and a
// character-grid approximation of the 128x64 panel used by terminal hosts.
package display

import (
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/panel-control/internal/layout"
)

// MaxCells bounds the cells of one frame; no layout is larger.
const MaxCells = 8

// Character cell size in pixels for the text approximation.
const (
	CharWidth  = 4
	CharHeight = 8
	Columns    = layout.ScreenWidth / CharWidth
	Rows       = layout.ScreenHeight / CharHeight
)

// FrameCell is one rendered cell.
type FrameCell struct {
	Cell      layout.Cell
	Text      string
	Highlight bool
	Editing   bool
}

// Frame is the full content of one refresh. It is reused between renders.
type Frame struct {
	Group string
	Clear bool
	N     int
	Cells [MaxCells]FrameCell
}

// Reset empties the frame for a new render.
func (f *Frame) Reset(group string) {
	f.Group = group
	f.N = 0
}

// Add appends a cell, reporting false once the frame is full.
func (f *Frame) Add(c FrameCell) bool {
	if f.N >= MaxCells {
		return false
	}
	f.Cells[f.N] = c
	f.N++
	return true
}

// Visible returns the populated cells.
func (f *Frame) Visible() []FrameCell {
	return f.Cells[:f.N]
}

// Sink receives frames. Push must copy what it keeps; the frame is reused.
type Sink interface {
	Push(*Frame) error
}

// Discard drops every frame.
type Discard struct{}

// Push implements Sink.
func (Discard) Push(*Frame) error { return nil }

// Recorder keeps the latest frame. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	last   Frame
	pushes int
	clears int
}

// Push implements Sink.
func (r *Recorder) Push(f *Frame) error {
	r.mu.Lock()
	r.last = *f
	r.pushes++
	if f.Clear {
		r.clears++
	}
	r.mu.Unlock()
	return nil
}

// Last returns a copy of the latest frame and how many were pushed.
func (r *Recorder) Last() (Frame, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last, r.pushes
}

// Clears returns how many pushed frames requested a clear.
func (r *Recorder) Clears() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clears
}

// Texts returns the text of every cell of the latest frame.
func (r *Recorder) Texts() []string {
	f, _ := r.Last()
	out := make([]string, 0, f.N)
	for _, c := range f.Visible() {
		out = append(out, c.Text)
	}
	return out
}

// Styler decorates a cell's padded text.
type Styler func(text string, c FrameCell) string

type segment struct {
	col   int
	width int
	cell  FrameCell
}

// Lines lays a frame out on a Columns x Rows character grid. Text is
// truncated to its cell; style may add escape sequences around it.
func Lines(f *Frame, style Styler) []string {
	var rows [Rows][]segment
	for _, c := range f.Visible() {
		row := c.Cell.Y / CharHeight
		if row < 0 || row >= Rows {
			continue
		}
		width := c.Cell.W / CharWidth
		if width <= 0 {
			continue
		}
		rows[row] = append(rows[row], segment{col: c.Cell.X / CharWidth, width: width, cell: c})
	}
	lines := make([]string, Rows)
	for i, segs := range rows {
		sort.Slice(segs, func(a, b int) bool { return segs[a].col < segs[b].col })
		var b strings.Builder
		at := 0
		for _, s := range segs {
			if s.col < at {
				continue
			}
			b.WriteString(strings.Repeat(" ", s.col-at))
			text := Fit(s.cell.Text, s.width)
			if style != nil {
				text = style(text, s.cell)
			}
			b.WriteString(text)
			at = s.col + s.width
		}
		if at < Columns {
			b.WriteString(strings.Repeat(" ", Columns-at))
		}
		lines[i] = b.String()
	}
	return lines
}

// Fit truncates or pads text to exactly width columns.
func Fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = ansi.Truncate(text, width, "…")
	if pad := width - ansi.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}
