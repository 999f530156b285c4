// Package logging appends panel errors and, when enabled, JSON trace entries
// to a single log file. Every write reopens the file so it can be rotated or
// removed while the panel runs.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "panel-control.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
)

// appendTo runs write against the log file with the package lock held, so
// lines from the scheduler, the idle loop and the host never interleave.
func appendTo(write func(io.Writer) error) error {
	mu.Lock()
	defer mu.Unlock()
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}

// Session writes the header that opens one panel run.
func Session(version string) {
	if strings.TrimSpace(version) == "" {
		version = "devel"
	}
	err := appendTo(func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "--- panel-control %s pid=%d started %s ---\n",
			version, os.Getpid(), time.Now().UTC().Format(time.RFC3339))
		return err
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
	}
}

// Error appends err to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	werr := appendTo(func(w io.Writer) error {
		l := log.New(w, "", log.LstdFlags|log.LUTC)
		return l.Output(2, "error: "+err.Error())
	})
	if werr != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", werr)
	}
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace writes anything.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}
	if err := appendTo(func(w io.Writer) error {
		return json.NewEncoder(w).Encode(entry)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "trace logging failed: %v\n", err)
	}
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}
