package logger

import (
	"fmt"
	"strings"
	"sync"
)

// Entry is a single message captured by a Recorder.
type Entry struct {
	Level   string
	Message string
}

// Recorder is an in-memory Logger that keeps every message. Tests use it to
// assert what a component logged without touching the filesystem.
type Recorder struct {
	mu      sync.Mutex
	Entries []Entry
	Closed  bool
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(level, format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Entries = append(r.Entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}

// Info records an info message
func (r *Recorder) Info(format string, args ...interface{}) { r.record("info", format, args...) }

// Warning records a warning message
func (r *Recorder) Warning(format string, args ...interface{}) { r.record("warning", format, args...) }

// Error records an error message
func (r *Recorder) Error(format string, args ...interface{}) { r.record("error", format, args...) }

// InfoToUser records a user-facing info message
func (r *Recorder) InfoToUser(format string, args ...interface{}) {
	r.record("info", format, args...)
}

// WarningToUser records a user-facing warning message
func (r *Recorder) WarningToUser(format string, args ...interface{}) {
	r.record("warning", format, args...)
}

// Success records a success message
func (r *Recorder) Success(format string, args ...interface{}) { r.record("success", format, args...) }

// StatusMessage records a status message
func (r *Recorder) StatusMessage(format string, args ...interface{}) {
	r.record("status", format, args...)
}

// Close marks the recorder closed
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Closed = true
	return nil
}

// Messages returns every message recorded at level.
func (r *Recorder) Messages(level string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []string
	for _, e := range r.Entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

// Contains reports whether a message at level contains substr.
func (r *Recorder) Contains(level, substr string) bool {
	for _, msg := range r.Messages(level) {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}
