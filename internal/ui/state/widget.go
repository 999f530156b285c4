package state

import "github.com/atomicstack/panel-control/internal/layout"

// Widget tracks the highlighted cell and scroll offset of one page. It owns
// no content; Count is the length of whatever the page shows through its
// cells (its own items, or an external listing).
type Widget struct {
	layout    *layout.Layout
	highlight int
	offset    int
	count     int
	counted   bool
}

// NewWidget binds a widget to a static layout.
func NewWidget(l *layout.Layout) *Widget {
	return &Widget{layout: l}
}

// Layout returns the bound layout.
func (w *Widget) Layout() *layout.Layout {
	return w.layout
}

// Cells returns the number of visible cells.
func (w *Widget) Cells() int {
	return w.layout.Len()
}

// SetCount declares the backing content length. Until it is called the
// content is assumed to fill the layout exactly.
func (w *Widget) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	w.count = n
	w.counted = true
	w.clamp()
}

// Count returns the backing content length.
func (w *Widget) Count() int {
	if !w.counted {
		return w.Cells()
	}
	return w.count
}

// Highlight returns the highlighted cell index.
func (w *Widget) Highlight() int {
	return w.highlight
}

// Offset returns the index of the content shown in the first cell.
func (w *Widget) Offset() int {
	return w.offset
}

// Selected returns the content index under the highlight.
func (w *Widget) Selected() int {
	return w.offset + w.highlight
}

// Scrolls reports whether the content is longer than the visible cells.
func (w *Widget) Scrolls() bool {
	return w.Count() > w.Cells()
}

// Visible returns how many cells currently show content.
func (w *Widget) Visible() int {
	n := w.Count() - w.offset
	if cells := w.Cells(); n > cells {
		n = cells
	}
	if n < 0 {
		return 0
	}
	return n
}

// MoveDown advances the highlight. Content that fits the layout wraps around;
// longer content scrolls the window first and only moves the highlight once
// the window reaches the end of the list.
func (w *Widget) MoveDown() bool {
	if w.Count() == 0 {
		return false
	}
	if !w.Scrolls() {
		n := w.Count()
		if w.highlight < n-1 {
			w.highlight++
		} else {
			w.highlight = 0
		}
		return n > 1
	}
	if w.offset < w.maxOffset() {
		w.offset++
		return true
	}
	if w.highlight < w.Visible()-1 {
		w.highlight++
		return true
	}
	return false
}

// MoveUp mirrors MoveDown.
func (w *Widget) MoveUp() bool {
	if w.Count() == 0 {
		return false
	}
	if !w.Scrolls() {
		n := w.Count()
		if w.highlight > 0 {
			w.highlight--
		} else {
			w.highlight = n - 1
		}
		return n > 1
	}
	if w.offset > 0 {
		w.offset--
		return true
	}
	if w.highlight > 0 {
		w.highlight--
		return true
	}
	return false
}

// Select places the highlight on content index i, scrolling only as far as
// needed to show it.
func (w *Widget) Select(i int) {
	n := w.Count()
	if n == 0 {
		w.highlight, w.offset = 0, 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	cells := w.Cells()
	if i < cells {
		w.offset = 0
		w.highlight = i
		return
	}
	w.offset = i - cells + 1
	w.highlight = cells - 1
	w.clamp()
}

func (w *Widget) maxOffset() int {
	max := w.Count() - w.Cells()
	if max < 0 {
		return 0
	}
	return max
}

func (w *Widget) clamp() {
	if w.offset > w.maxOffset() {
		w.offset = w.maxOffset()
	}
	if w.offset < 0 {
		w.offset = 0
	}
	if visible := w.Visible(); w.highlight >= visible {
		w.highlight = visible - 1
	}
	if w.highlight < 0 {
		w.highlight = 0
	}
}
