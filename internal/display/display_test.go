package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atomicstack/panel-control/internal/layout"
)

func TestFrameCapacity(t *testing.T) {
	var f Frame
	f.Reset("main")
	for i := 0; i < MaxCells; i++ {
		require.True(t, f.Add(FrameCell{Text: "x"}))
	}
	require.False(t, f.Add(FrameCell{Text: "overflow"}))
	require.Len(t, f.Visible(), MaxCells)
	f.Reset("status")
	require.Empty(t, f.Visible())
	require.Equal(t, "status", f.Group)
}

func TestLinesPlacesCellsOnGrid(t *testing.T) {
	var f Frame
	f.Reset("modal")
	f.Add(FrameCell{Cell: layout.Modal.Cell(0), Text: "Abort print", Highlight: true})
	f.Add(FrameCell{Cell: layout.Modal.Cell(1), Text: "Continue"})

	lines := Lines(&f, func(text string, c FrameCell) string {
		if c.Highlight {
			return "[" + strings.TrimRight(text, " ") + "]"
		}
		return text
	})
	require.Len(t, lines, Rows)
	require.Equal(t, "[Abort print]", lines[0])
	require.True(t, strings.HasPrefix(lines[4], "Continue"))
	require.Equal(t, Columns, len(lines[4]))
	require.Equal(t, strings.Repeat(" ", Columns), lines[1])
}

func TestLinesSideBySideCells(t *testing.T) {
	var f Frame
	f.Reset("main")
	f.Add(FrameCell{Cell: layout.Main.Cell(2), Text: "Heat"})
	f.Add(FrameCell{Cell: layout.Main.Cell(0), Text: "Move"})
	lines := Lines(&f, nil)
	require.Equal(t, "Move", lines[0][:4])
	require.Equal(t, "Heat", lines[0][10:14])
}

func TestFit(t *testing.T) {
	require.Equal(t, "ab  ", Fit("ab", 4))
	require.Equal(t, "abc…", Fit("abcdef", 4))
	require.Equal(t, "", Fit("abc", 0))
}

func TestRecorderCopiesFrames(t *testing.T) {
	var r Recorder
	var f Frame
	f.Reset("g")
	f.Add(FrameCell{Text: "one"})
	f.Clear = true
	require.NoError(t, r.Push(&f))
	f.Cells[0].Text = "mutated"
	require.Equal(t, []string{"one"}, r.Texts())
	_, n := r.Last()
	require.Equal(t, 1, n)
	require.Equal(t, 1, r.Clears())
}
