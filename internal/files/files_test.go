package files

import (
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func gcodeFS(n int) fstest.MapFS {
	fsys := fstest.MapFS{
		"sd/.hidden":      {Data: []byte("x")},
		"sd/sub/nested.g": {Data: []byte("x")},
	}
	for i := 0; i < n; i++ {
		fsys[fmt.Sprintf("sd/part%02d.gcode", i)] = &fstest.MapFile{Data: []byte("G28")}
	}
	return fsys
}

func TestDirSourceCountsVisibleFilesOnly(t *testing.T) {
	src := DirSource{FS: gcodeFS(20), Dir: "sd"}
	n, err := src.Count()
	require.NoError(t, err)
	require.Equal(t, 20, n)
}

func TestDirSourceWindow(t *testing.T) {
	src := DirSource{FS: gcodeFS(20), Dir: "sd"}
	dst := make([]string, 3)
	n, err := src.Window(17, dst)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []string{"part17.gcode", "part18.gcode", "part19.gcode"}, dst)

	n, err = src.Window(19, dst)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, "part19.gcode", dst[0])
}

func TestDirSourceFilter(t *testing.T) {
	fsys := fstest.MapFS{
		"benchy.gcode":  {},
		"bracket.gcode": {},
		"notes.txt":     {},
		"calibrate.gco": {},
	}
	src := DirSource{FS: fsys, Filter: "gcode"}
	n, err := src.Count()
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestDirSourceMissingDirectory(t *testing.T) {
	src := DirSource{FS: fstest.MapFS{}, Dir: "missing"}
	_, err := src.Count()
	require.Error(t, err)
}

func TestShiftRegisterSlidesLazily(t *testing.T) {
	counting := &countingSource{Source: DirSource{FS: gcodeFS(10), Dir: "sd"}}
	r := NewShiftRegister(3)
	r.Open(counting, "sd")
	require.Equal(t, 10, r.Count())

	require.Equal(t, "part00.gcode", r.Name(0))
	require.Equal(t, "part02.gcode", r.Name(2))
	require.Equal(t, 1, counting.windows, "repeated reads reuse the cached window")

	r.Seek(7)
	require.Equal(t, 1, counting.windows, "seek alone does not touch the listing")
	require.Equal(t, "part07.gcode", r.Name(0))
	require.Equal(t, "/sd/part09.gcode", r.Path(2))
	require.Equal(t, 2, counting.windows)

	r.Seek(9)
	require.Equal(t, "part09.gcode", r.Name(0))
	require.Equal(t, "", r.Name(1))
	require.Equal(t, "", r.Path(1))
	require.Equal(t, "", r.Name(5))
}

func TestShiftRegisterWithoutSource(t *testing.T) {
	r := NewShiftRegister(3)
	require.Equal(t, 0, r.Count())
	require.Equal(t, "", r.Name(0))
}

type countingSource struct {
	Source
	windows int
}

func (c *countingSource) Window(offset int, dst []string) (int, error) {
	c.windows++
	return c.Source.Window(offset, dst)
}
