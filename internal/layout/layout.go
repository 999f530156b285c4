// Package layout holds the static cell geometry of every panel page. Tables
// are immutable after package init and shared by pointer across widgets.
package layout

// Cell is a pixel rectangle on the 128x64 panel.
type Cell struct {
	X, Y, W, H int
}

// Layout is an ordered set of cells a widget can highlight.
type Layout struct {
	name  string
	cells []Cell
}

func newLayout(name string, cells ...Cell) *Layout {
	return &Layout{name: name, cells: cells}
}

// Name identifies the layout in traces and dumps.
func (l *Layout) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

// Len returns the number of cells.
func (l *Layout) Len() int {
	if l == nil {
		return 0
	}
	return len(l.cells)
}

// Cell returns the cell at index i. Out of range indexes yield the zero cell.
func (l *Layout) Cell(i int) Cell {
	if l == nil || i < 0 || i >= len(l.cells) {
		return Cell{}
	}
	return l.cells[i]
}

const (
	ScreenWidth  = 128
	ScreenHeight = 64
)

var (
	// Main is the 3x2 icon grid of the main menu.
	Main = newLayout("main",
		Cell{X: 0, Y: 1, W: 43, H: 30},
		Cell{X: 0, Y: 33, W: 43, H: 30},
		Cell{X: 43, Y: 1, W: 43, H: 30},
		Cell{X: 43, Y: 33, W: 43, H: 30},
		Cell{X: 86, Y: 1, W: 42, H: 30},
		Cell{X: 86, Y: 33, W: 42, H: 30},
	)

	// Status stacks four full-width info rows.
	Status = newLayout("status",
		Cell{X: 0, Y: 0, W: 128, H: 16},
		Cell{X: 0, Y: 16, W: 128, H: 16},
		Cell{X: 0, Y: 32, W: 128, H: 16},
		Cell{X: 0, Y: 48, W: 128, H: 16},
	)

	// Stacked shows three rows; longer menus scroll.
	Stacked = newLayout("stacked",
		Cell{X: 2, Y: 0, W: 124, H: 21},
		Cell{X: 2, Y: 21, W: 124, H: 21},
		Cell{X: 2, Y: 42, W: 124, H: 22},
	)

	// Modal is a two-choice confirmation.
	Modal = newLayout("modal",
		Cell{X: 0, Y: 0, W: 128, H: 32},
		Cell{X: 0, Y: 32, W: 128, H: 32},
	)

	Splash = newLayout("splash",
		Cell{X: 0, Y: 0, W: 128, H: 64},
	)
)
