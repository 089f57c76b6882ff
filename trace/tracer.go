// Package trace provides opt-in execution tracing for the direct
// interpreter.
package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Tracer logs instruction execution for debugging
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

// New creates a tracer. filters are glob patterns matched against
// instruction mnemonics (e.g. "F*" for the file family); no
// filters means trace everything. A nil writer logs to stderr.
func New(enabled bool, filters []string, writer io.Writer) *Tracer {
	if writer == nil {
		writer = os.Stderr
	}
	return &Tracer{enabled: enabled, filters: filters, writer: writer}
}

// Enabled reports whether tracing is on
func (t *Tracer) Enabled() bool {
	return t != nil && t.enabled
}

// matchesFilter checks if an op name matches any filter pattern
func (t *Tracer) matchesFilter(op string) bool {
	if len(t.filters) == 0 {
		return true
	}
	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, op); matched {
			return true
		}
	}
	return false
}

// Instr logs one instruction execution
func (t *Tracer) Instr(op string, detail string) {
	if !t.Enabled() || !t.matchesFilter(op) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if detail == "" {
		fmt.Fprintf(t.writer, "[TRACE] %s\n", op)
		return
	}
	fmt.Fprintf(t.writer, "[TRACE] %s %s\n", op, detail)
}

// Error logs a run-aborting error
func (t *Tracer) Error(op string, err error) {
	if !t.Enabled() || !t.matchesFilter(op) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] %s FAILED: %v\n", op, err)
}
