package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func startWatcher(t *testing.T) (*repoWatcher, string) {
	t.Helper()

	r := fixtureRepo(t, "initial commit")
	w := newRepoWatcher(r, t.Logf)
	if err := w.Start(); err != nil {
		t.Fatalf("start watcher: %v", err)
	}
	t.Cleanup(w.Stop)
	return w, r.CommonDir
}

func waitEvent(t *testing.T, events <-chan struct{}, what string) {
	t.Helper()

	select {
	case <-events:
	case <-time.After(3 * time.Second):
		t.Fatalf("no watcher event after %s", what)
	}
}

func TestWatcherSignalsOnRefWrite(t *testing.T) {
	w, gitDir := startWatcher(t)

	events := w.NextEvent()
	if events == nil {
		t.Fatal("NextEvent returned no channel")
	}

	// A branch ref write is what a new commit looks like on disk.
	ref := filepath.Join(gitDir, "refs", "heads", "feature")
	if err := os.WriteFile(ref, []byte(strings.Repeat("a", 40)+"\n"), 0o644); err != nil {
		t.Fatalf("write ref: %v", err)
	}

	waitEvent(t, events, "ref write")
}

func TestWatcherSingleWaiter(t *testing.T) {
	w, _ := startWatcher(t)

	if w.NextEvent() == nil {
		t.Fatal("first NextEvent returned no channel")
	}
	if w.NextEvent() != nil {
		t.Error("second NextEvent handed out a channel while one waiter is active")
	}
	w.ResetWaiting()
	if w.NextEvent() == nil {
		t.Error("NextEvent after ResetWaiting returned no channel")
	}
}

func TestWatcherFollowsNewRefDirectories(t *testing.T) {
	w, gitDir := startWatcher(t)

	events := w.NextEvent()
	newDir := filepath.Join(gitDir, "refs", "heads", "team")
	if err := os.Mkdir(newDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	waitEvent(t, events, "directory create")
	w.ResetWaiting()

	// The run loop registers the new directory; wait for that to land.
	deadline := time.Now().Add(3 * time.Second)
	for {
		w.mu.Lock()
		_, watched := w.paths[newDir]
		w.mu.Unlock()
		if watched {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("new directory never registered with the watcher")
		}
		time.Sleep(5 * time.Millisecond)
	}

	events = w.NextEvent()
	ref := filepath.Join(newDir, "topic")
	if err := os.WriteFile(ref, []byte(strings.Repeat("b", 40)+"\n"), 0o644); err != nil {
		t.Fatalf("write ref: %v", err)
	}
	waitEvent(t, events, "ref write in new directory")
}

func TestWatcherDebounce(t *testing.T) {
	w := newRepoWatcher(fixtureRepo(t, "initial commit"), nil)
	now := time.Now()

	if !w.ShouldRefresh(now) {
		t.Error("first event did not refresh")
	}
	if w.ShouldRefresh(now.Add(watchDebounce / 2)) {
		t.Error("event inside the debounce window refreshed")
	}
	if !w.ShouldRefresh(now.Add(watchDebounce + time.Millisecond)) {
		t.Error("event after the debounce window did not refresh")
	}
}

func TestWatcherStartTwice(t *testing.T) {
	w, _ := startWatcher(t)

	if err := w.Start(); err != nil {
		t.Fatalf("second Start returned %v", err)
	}
}
