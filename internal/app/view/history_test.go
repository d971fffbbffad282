package view

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hughdbrown/lazytig/internal/async"
	"github.com/hughdbrown/lazytig/internal/git"
	"github.com/hughdbrown/lazytig/internal/theme"
)

func newTestHistory(backend *fakeBackend, notify NotifyFn) *History {
	h := NewHistory(backend, async.NewPool(2), testConfig(), theme.Default(), notify)
	h.SetSize(100, 20)
	return h
}

func (v *History) summaries() []string {
	out := make([]string, 0, len(v.visible))
	for _, idx := range v.visible {
		out = append(out, v.commits[idx].Summary)
	}
	return out
}

func TestHistoryLoadsAllChunks(t *testing.T) {
	backend := &fakeBackend{commits: testCommits(25)}
	h := newTestHistory(backend, nil)

	h.Activate()
	refreshUntil(t, h, func() bool { return h.state == stateLoaded })

	if len(h.commits) != 25 {
		t.Fatalf("expected 25 commits, got %d", len(h.commits))
	}
	for i, c := range h.commits {
		want := testCommits(25)[i].Summary
		if c.Summary != want {
			t.Fatalf("commit %d out of order: got %q, want %q", i, c.Summary, want)
		}
	}
	if len(h.visible) != 25 {
		t.Errorf("expected every commit visible, got %d", len(h.visible))
	}
}

func TestHistorySupersededWalkNeverLands(t *testing.T) {
	gate := make(chan struct{})
	backend := &fakeBackend{commits: testCommits(5), commitsGate: gate}
	h := newTestHistory(backend, nil)

	// First walk parks on the gate before emitting anything.
	h.Activate()
	deadline := time.Now().Add(5 * time.Second)
	for backend.calls() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("first walk never started")
		}
		time.Sleep(time.Millisecond)
	}

	// Second walk returns replacement data immediately.
	replacement := []git.Commit{{Hash: strings.Repeat("f", 40), ShortHash: "fffffff", Author: "Bob", Summary: "replacement"}}
	backend.set(func(f *fakeBackend) {
		f.commits = replacement
		f.commitsGate = nil
	})
	h.HandleKey(keyMsg("r"))
	refreshUntil(t, h, func() bool { return h.state == stateLoaded })

	if got := h.summaries(); len(got) != 1 || got[0] != "replacement" {
		t.Fatalf("expected only the replacement commit, got %v", got)
	}

	// Let the stale walk finish and give its results every chance to land.
	close(gate)
	time.Sleep(50 * time.Millisecond)
	for i := 0; i < 10; i++ {
		if err := h.Refresh(); err != nil {
			t.Fatalf("refresh failed: %v", err)
		}
	}

	if got := h.summaries(); len(got) != 1 || got[0] != "replacement" {
		t.Fatalf("stale walk results leaked into the list: %v", got)
	}
}

func TestHistoryCursorAndSelection(t *testing.T) {
	backend := &fakeBackend{commits: testCommits(30)}
	h := newTestHistory(backend, nil)
	h.Activate()
	refreshUntil(t, h, func() bool { return h.state == stateLoaded })

	h.HandleKey(keyMsg("j"))
	h.HandleKey(keyMsg("j"))
	if c, _ := h.selected(); c.Summary != "commit 2" {
		t.Errorf("expected cursor on commit 2, got %q", c.Summary)
	}

	h.HandleKey(keyMsg("G"))
	if c, _ := h.selected(); c.Summary != "commit 29" {
		t.Errorf("expected cursor on last commit, got %q", c.Summary)
	}

	h.HandleKey(keyMsg("g"))
	if c, _ := h.selected(); c.Summary != "commit 0" {
		t.Errorf("expected cursor back on first commit, got %q", c.Summary)
	}

	h.HandleKey(keyMsg("ctrl+d"))
	if h.cursor == 0 {
		t.Error("expected page down to move the cursor")
	}
}

func TestHistoryEnterOpensCommitDiff(t *testing.T) {
	backend := &fakeBackend{commits: testCommits(3)}
	h := newTestHistory(backend, nil)
	h.Activate()
	refreshUntil(t, h, func() bool { return h.state == stateLoaded })

	h.HandleKey(keyMsg("j"))
	act := h.HandleKey(keyMsg("enter"))

	if act.Kind != ActionOpen {
		t.Fatalf("expected ActionOpen, got %v", act.Kind)
	}
	if act.Open.Kind != OpenCommitDiff {
		t.Errorf("expected a commit diff request, got %v", act.Open.Kind)
	}
	if act.Open.Commit != h.commits[1].Hash {
		t.Errorf("expected hash %q, got %q", h.commits[1].Hash, act.Open.Commit)
	}
	if act.Open.Summary != "commit 1" {
		t.Errorf("expected summary of the selected commit, got %q", act.Open.Summary)
	}
}

func TestHistoryViewSwitchKeys(t *testing.T) {
	backend := &fakeBackend{commits: testCommits(1)}
	h := newTestHistory(backend, nil)
	h.Activate()
	refreshUntil(t, h, func() bool { return h.state == stateLoaded })

	if act := h.HandleKey(keyMsg("q")); act.Kind != ActionPop {
		t.Errorf("expected q to pop, got %v", act.Kind)
	}
	if act := h.HandleKey(keyMsg("s")); act.Kind != ActionPush || act.Push != TypeStatus {
		t.Errorf("expected s to push the status view, got %+v", act)
	}
	if act := h.HandleKey(keyMsg("?")); act.Kind != ActionPush || act.Push != TypeHelp {
		t.Errorf("expected ? to push help, got %+v", act)
	}
}

func TestHistorySearchFiltersIncrementally(t *testing.T) {
	backend := &fakeBackend{commits: []git.Commit{
		{Hash: strings.Repeat("1", 40), ShortHash: "1111111", Author: "Alice", Summary: "add parser"},
		{Hash: strings.Repeat("2", 40), ShortHash: "2222222", Author: "Bob", Summary: "fix parser bug"},
		{Hash: strings.Repeat("3", 40), ShortHash: "3333333", Author: "Carol", Summary: "release notes"},
	}}
	h := newTestHistory(backend, nil)
	h.Activate()
	refreshUntil(t, h, func() bool { return h.state == stateLoaded })

	h.HandleKey(keyMsg("/"))
	if !h.searching {
		t.Fatal("expected / to focus the search input")
	}
	for _, r := range "parser" {
		h.HandleKey(keyMsg(string(r)))
	}
	if got := h.summaries(); len(got) != 2 {
		t.Fatalf("expected 2 matches for %q, got %v", "parser", got)
	}

	h.HandleKey(keyMsg("enter"))
	if h.searching {
		t.Error("expected enter to close the search input")
	}
	if len(h.visible) != 2 {
		t.Errorf("expected the filter to stay applied, got %d rows", len(h.visible))
	}
	if out := h.Render(); !strings.Contains(out, "/parser") {
		t.Error("expected the active filter to be rendered")
	}

	h.HandleKey(keyMsg("esc"))
	if len(h.visible) != 3 {
		t.Errorf("expected esc to clear the filter, got %d rows", len(h.visible))
	}
}

func TestHistorySearchMatchesAuthorAndHash(t *testing.T) {
	backend := &fakeBackend{commits: []git.Commit{
		{Hash: "aa" + strings.Repeat("0", 38), ShortHash: "aa00000", Author: "Alice", Summary: "one"},
		{Hash: "bb" + strings.Repeat("0", 38), ShortHash: "bb00000", Author: "Bob", Summary: "two"},
	}}
	h := newTestHistory(backend, nil)
	h.Activate()
	refreshUntil(t, h, func() bool { return h.state == stateLoaded })

	h.HandleKey(keyMsg("/"))
	for _, r := range "bob" {
		h.HandleKey(keyMsg(string(r)))
	}
	if got := h.summaries(); len(got) != 1 || got[0] != "two" {
		t.Errorf("expected the author match, got %v", got)
	}

	h.HandleKey(keyMsg("esc"))
	h.HandleKey(keyMsg("/"))
	for _, r := range "aa" {
		h.HandleKey(keyMsg(string(r)))
	}
	if got := h.summaries(); len(got) != 1 || got[0] != "one" {
		t.Errorf("expected the hash prefix match, got %v", got)
	}
}

func TestHistoryFilterAppliesToLateChunks(t *testing.T) {
	gate := make(chan struct{})
	backend := &fakeBackend{commits: testCommits(15), commitsGate: gate}
	h := newTestHistory(backend, nil)

	h.Activate()
	h.HandleKey(keyMsg("/"))
	for _, r := range "commit 1" {
		h.HandleKey(keyMsg(string(r)))
	}

	close(gate)
	refreshUntil(t, h, func() bool { return h.state == stateLoaded })

	// commit 1 plus commit 10 through commit 14.
	if got := h.summaries(); len(got) != 6 {
		t.Errorf("expected 6 filtered rows, got %v", got)
	}
}

func TestHistoryWalkErrorSurfaces(t *testing.T) {
	backend := &fakeBackend{commitsErr: errors.New("walk blew up")}
	h := newTestHistory(backend, nil)

	h.Activate()
	err := refreshUntilErr(t, h)

	if !strings.Contains(err.Error(), "walk blew up") {
		t.Errorf("expected the producer error, got %v", err)
	}
	if h.state != stateFailed {
		t.Errorf("expected the failed state, got %d", h.state)
	}
	if out := h.Render(); !strings.Contains(out, "error:") {
		t.Error("expected the error to be rendered")
	}
}

func TestHistoryRenderShowsRows(t *testing.T) {
	backend := &fakeBackend{commits: testCommits(3)}
	h := newTestHistory(backend, nil)
	h.Activate()
	refreshUntil(t, h, func() bool { return h.state == stateLoaded })

	out := h.Render()
	for _, want := range []string{"commit 0", "commit 2", "Alice", "0000000"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected render to contain %q", want)
		}
	}
}

func TestHistoryRenderBeforeDataLoads(t *testing.T) {
	gate := make(chan struct{})
	defer close(gate)
	backend := &fakeBackend{commits: testCommits(3), commitsGate: gate}
	h := newTestHistory(backend, nil)
	h.Activate()

	if out := h.Render(); !strings.Contains(out, "loading commits") {
		t.Errorf("expected a loading message, got %q", out)
	}
}
