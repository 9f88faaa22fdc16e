// Package logging is the leveled logger shared by the runtime. Output goes to
// a file (the terminal belongs to the UI) and is discarded until configured.
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

// Level orders messages by verbosity.
type Level int

const (
	LevelError Level = iota
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ParseLevel parses "error", "info" or "debug".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LevelError, nil
	case "info", "":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

var (
	mu           sync.Mutex
	logger       = log.New(io.Discard, "", log.LstdFlags|log.Lmicroseconds)
	level        = LevelInfo
	traceEnabled bool
	out          io.Writer = io.Discard
	file         *os.File
)

// Configure directs output to the file at path, creating parent directories.
// An empty path discards output.
func Configure(path string) error {
	if strings.TrimSpace(path) == "" {
		SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	SetOutput(f)
	mu.Lock()
	file = f
	mu.Unlock()
	return nil
}

// SetOutput directs output to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	out = w
	logger.SetOutput(w)
}

// Close releases the log file, if any.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	out = io.Discard
	logger.SetOutput(io.Discard)
}

func closeFile() {
	if file != nil {
		_ = file.Close()
		file = nil
	}
}

// SetLevel sets the most verbose level written.
func SetLevel(l Level) {
	mu.Lock()
	level = l
	mu.Unlock()
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

func logf(l Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if l > level {
		return
	}
	logger.Printf("[%s] %s", strings.ToUpper(l.String()), fmt.Sprintf(format, args...))
}

// Errorf logs at error level.
func Errorf(format string, args ...any) { logf(LevelError, format, args...) }

// Infof logs at info level.
func Infof(format string, args ...any) { logf(LevelInfo, format, args...) }

// Debugf logs at debug level.
func Debugf(format string, args ...any) { logf(LevelDebug, format, args...) }

// Trace appends a JSON line for event when tracing is enabled.
func Trace(event string, payload any) {
	mu.Lock()
	defer mu.Unlock()
	if !traceEnabled {
		return
	}
	entry := struct {
		Time    time.Time `json:"time"`
		Event   string    `json:"event"`
		Payload any       `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}
	if err := json.NewEncoder(out).Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}
