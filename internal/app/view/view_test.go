package view

import (
	"fmt"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hughdbrown/lazytig/internal/config"
	"github.com/hughdbrown/lazytig/internal/git"
)

// fakeBackend satisfies Backend for view tests. State mutations go through
// the mutex so producer goroutines see a consistent snapshot.
type fakeBackend struct {
	mu sync.Mutex

	commits     []git.Commit
	commitsErr  error
	commitsGate chan struct{}
	logCalls    int

	status      git.Status
	statusErr   error
	statusCalls int

	diff    git.Diff
	diffErr error

	stagedPaths   []string
	unstagedPaths []string
	stageErr      error
	unstageErr    error
}

func (f *fakeBackend) set(fn func(*fakeBackend)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func (f *fakeBackend) Commits(emit func(git.Commit)) error {
	f.mu.Lock()
	f.logCalls++
	gate := f.commitsGate
	commits := append([]git.Commit(nil), f.commits...)
	err := f.commitsErr
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return err
	}
	for _, c := range commits {
		emit(c)
	}
	return nil
}

func (f *fakeBackend) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logCalls
}

func (f *fakeBackend) Status() (git.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCalls++
	return f.status, f.statusErr
}

func (f *fakeBackend) CommitDiff(string) (git.Diff, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.diff, f.diffErr
}

func (f *fakeBackend) FileDiff(string, bool) (git.Diff, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.diff, f.diffErr
}

func (f *fakeBackend) Stage(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stageErr != nil {
		return f.stageErr
	}
	f.stagedPaths = append(f.stagedPaths, path)
	return nil
}

func (f *fakeBackend) Unstage(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unstageErr != nil {
		return f.unstageErr
	}
	f.unstagedPaths = append(f.unstagedPaths, path)
	return nil
}

func testConfig() *config.AppConfig {
	cfg := config.DefaultConfig()
	cfg.ChunkSize = 10
	cfg.ShowIcons = false
	return cfg
}

func testCommits(n int) []git.Commit {
	when := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	commits := make([]git.Commit, n)
	for i := range commits {
		hash := fmt.Sprintf("%040d", i)
		commits[i] = git.Commit{
			Hash:      hash,
			ShortHash: hash[:7],
			Author:    "Alice",
			When:      when.Add(-time.Duration(i) * time.Hour),
			Summary:   fmt.Sprintf("commit %d", i),
		}
	}
	return commits
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

// refreshUntil pumps Refresh the way the app tick does until cond holds.
func refreshUntil(t *testing.T, v View, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		_ = v.Refresh()
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

// refreshUntilErr pumps Refresh until it reports an error.
func refreshUntilErr(t *testing.T, v View) error {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if err := v.Refresh(); err != nil {
			return err
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("no error before deadline")
	return nil
}
