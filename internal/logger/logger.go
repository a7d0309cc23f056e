// Package logger prints trace output for the recurse demo binary.
// When verbose mode is on (--verbose or verbose = true in the config file)
// each library call and its arguments are written to stderr, so a reader can
// follow which recursive variant ran. The algorithm packages never log.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the writer for log lines. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func printf(prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Debug prints a call trace line.
func Debug(format string, args ...any) { printf("[DEBUG] ", format, args...) }

// Info prints an informational line.
func Info(format string, args ...any) { printf("[INFO] ", format, args...) }

// Warn prints a warning, e.g. an input rejected by the configured ceiling.
func Warn(format string, args ...any) { printf("[WARN] ", format, args...) }

// Section prints a family header such as "=== linear ===".
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
