// Package log provides the debug log used across the application. Messages
// are buffered in memory until a log file is configured, so startup code can
// log before flags and config have been parsed.
package log

import (
	"log"
	"os"
	"sync"
)

// debugWriter is an io.Writer that targets the debug log file when one is
// set, buffers otherwise, and drops everything once discarding is enabled.
type debugWriter struct {
	mu      sync.Mutex
	file    *os.File
	buffer  []byte
	discard bool
}

var (
	writer = &debugWriter{}
	// stdLogger adds timestamps in front of every message.
	stdLogger = log.New(writer, "", log.LstdFlags|log.Lmicroseconds)
)

// Write implements io.Writer for the standard logger.
func (w *debugWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.discard {
		return len(p), nil
	}

	if w.file != nil {
		n, err = w.file.Write(p)
		// Sync so messages survive a crash; sync errors are not worth
		// failing a log write over.
		_ = w.file.Sync()
		return n, err
	}

	// The caller may reuse p, so buffer a copy.
	b := make([]byte, len(p))
	copy(b, p)
	w.buffer = append(w.buffer, b...)
	return len(p), nil
}

// SetFile directs the log to path, creating the file if needed and flushing
// anything buffered so far. An empty path drops buffered and future messages.
func SetFile(path string) error {
	writer.mu.Lock()
	defer writer.mu.Unlock()

	if writer.file != nil {
		_ = writer.file.Close()
		writer.file = nil
	}

	if path == "" {
		writer.discard = true
		writer.buffer = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		writer.discard = true
		writer.buffer = nil
		return err
	}

	writer.file = f
	writer.discard = false

	if len(writer.buffer) > 0 {
		_, _ = f.Write(writer.buffer)
		_ = f.Sync()
		writer.buffer = nil
	}

	return nil
}

// Printf writes a formatted message to the debug log.
func Printf(format string, args ...any) {
	stdLogger.Printf(format, args...)
}

// Println writes a message to the debug log.
func Println(v ...any) {
	stdLogger.Println(v...)
}

// Close closes the debug log file if one is open.
func Close() error {
	writer.mu.Lock()
	defer writer.mu.Unlock()

	if writer.file == nil {
		return nil
	}

	err := writer.file.Close()
	writer.file = nil
	return err
}
