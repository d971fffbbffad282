package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetWriter(t *testing.T) {
	t.Helper()

	writer.mu.Lock()
	prevFile := writer.file
	prevBuffer := append([]byte(nil), writer.buffer...)
	prevDiscard := writer.discard
	writer.file = nil
	writer.buffer = nil
	writer.discard = false
	writer.mu.Unlock()

	t.Cleanup(func() {
		writer.mu.Lock()
		if writer.file != nil {
			_ = writer.file.Close()
		}
		writer.file = prevFile
		writer.buffer = prevBuffer
		writer.discard = prevDiscard
		writer.mu.Unlock()
	})
}

func TestBufferFlushedToFile(t *testing.T) {
	resetWriter(t)

	Printf("early message %d", 42)

	logPath := filepath.Join(t.TempDir(), "debug.log")
	if err := SetFile(logPath); err != nil {
		t.Fatalf("SetFile: %v", err)
	}
	Println("late message")
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "early message 42") {
		t.Errorf("buffered message missing from log: %q", out)
	}
	if !strings.Contains(out, "late message") {
		t.Errorf("direct message missing from log: %q", out)
	}
}

func TestEmptyPathDiscards(t *testing.T) {
	resetWriter(t)

	Printf("will be dropped")
	if err := SetFile(""); err != nil {
		t.Fatalf("SetFile: %v", err)
	}

	writer.mu.Lock()
	discard := writer.discard
	buffered := len(writer.buffer)
	writer.mu.Unlock()

	if !discard {
		t.Fatal("expected discard mode after SetFile(\"\")")
	}
	if buffered != 0 {
		t.Fatalf("expected empty buffer, got %d bytes", buffered)
	}
}

func TestSetFileFailureDiscards(t *testing.T) {
	resetWriter(t)

	unwritableDir := t.TempDir()
	if err := os.Chmod(unwritableDir, 0o500); err != nil { //nolint:gosec
		t.Fatalf("set directory permissions: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chmod(unwritableDir, 0o700) //nolint:gosec
	})

	if err := SetFile(filepath.Join(unwritableDir, "debug.log")); err == nil {
		t.Fatal("expected SetFile to fail in unwritable directory")
	}

	writer.mu.Lock()
	discard := writer.discard
	writer.mu.Unlock()
	if !discard {
		t.Fatal("expected discard mode after SetFile failure")
	}
}
