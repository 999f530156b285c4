// Package files exposes a directory listing through a small sliding window.
// Only the entries currently visible are held in memory; the listing is
// re-read lazily whenever the window moves.
package files

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// readChunk bounds how many directory entries are decoded per read.
const readChunk = 16

// Source enumerates a listing without materialising it.
type Source interface {
	// Count returns the number of entries.
	Count() (int, error)
	// Window copies entries [offset, offset+len(dst)) into dst and returns how
	// many were filled.
	Window(offset int, dst []string) (int, error)
}

// DirSource lists regular, non-hidden files of one directory. When Filter is
// set only names fuzzily matching it are listed.
type DirSource struct {
	FS     fs.FS
	Dir    string
	Filter string
}

// Count implements Source.
func (d DirSource) Count() (int, error) {
	n := 0
	err := d.scan(func(string) bool {
		n++
		return true
	})
	return n, err
}

// Window implements Source.
func (d DirSource) Window(offset int, dst []string) (int, error) {
	if offset < 0 {
		offset = 0
	}
	idx, filled := 0, 0
	err := d.scan(func(name string) bool {
		if idx >= offset {
			dst[filled] = name
			filled++
		}
		idx++
		return filled < len(dst)
	})
	return filled, err
}

func (d DirSource) keep(e fs.DirEntry) bool {
	name := e.Name()
	if e.IsDir() || strings.HasPrefix(name, ".") {
		return false
	}
	if d.Filter == "" {
		return true
	}
	return fuzzy.MatchNormalizedFold(d.Filter, name)
}

// scan walks the directory in chunks, calling visit per kept entry until it
// returns false.
func (d DirSource) scan(visit func(name string) bool) error {
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	f, err := d.FS.Open(dir)
	if err != nil {
		return fmt.Errorf("open %s: %w", dir, err)
	}
	defer f.Close()
	rd, ok := f.(fs.ReadDirFile)
	if !ok {
		return fmt.Errorf("open %s: %w", dir, fs.ErrInvalid)
	}
	for {
		entries, err := rd.ReadDir(readChunk)
		for _, e := range entries {
			if !d.keep(e) {
				continue
			}
			if !visit(e.Name()) {
				return nil
			}
		}
		if errors.Is(err, io.EOF) || (err == nil && len(entries) == 0) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", dir, err)
		}
	}
}

// ShiftRegister caches the visible window of a Source.
type ShiftRegister struct {
	source Source
	dir    string

	window []string
	filled int
	offset int
	count  int
	stale  bool
	err    error
}

// NewShiftRegister returns a register showing slots entries at a time.
func NewShiftRegister(slots int) *ShiftRegister {
	if slots <= 0 {
		slots = 1
	}
	return &ShiftRegister{window: make([]string, slots), stale: true}
}

// Open points the register at a listing and rewinds it. dir is only used to
// build paths for Path.
func (r *ShiftRegister) Open(source Source, dir string) {
	r.source = source
	r.dir = dir
	r.offset = 0
	r.count = -1
	r.stale = true
}

// Err returns the last listing error, if any.
func (r *ShiftRegister) Err() error {
	return r.err
}

// Count returns the number of entries, re-reading the listing.
func (r *ShiftRegister) Count() int {
	if r.source == nil {
		return 0
	}
	n, err := r.source.Count()
	r.err = err
	if err != nil {
		n = 0
	}
	r.count = n
	r.stale = true
	return n
}

// Seek moves the window so slot 0 shows entry offset.
func (r *ShiftRegister) Seek(offset int) {
	if offset < 0 {
		offset = 0
	}
	if offset != r.offset {
		r.offset = offset
		r.stale = true
	}
}

// Offset returns the entry index shown in slot 0.
func (r *ShiftRegister) Offset() int {
	return r.offset
}

// Name returns the entry shown in slot, or "" for an empty slot.
func (r *ShiftRegister) Name(slot int) string {
	if slot < 0 || slot >= len(r.window) {
		return ""
	}
	r.load()
	if slot >= r.filled {
		return ""
	}
	return r.window[slot]
}

// Path returns the slash-separated path of the entry in slot.
func (r *ShiftRegister) Path(slot int) string {
	name := r.Name(slot)
	if name == "" {
		return ""
	}
	return path.Join("/", r.dir, name)
}

func (r *ShiftRegister) load() {
	if !r.stale {
		return
	}
	r.stale = false
	r.filled = 0
	if r.source == nil {
		return
	}
	n, err := r.source.Window(r.offset, r.window)
	r.err = err
	r.filled = n
}
