package app

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hughdbrown/lazytig/internal/git"
)

// watchDebounce is the debounce window for repository watcher events.
const watchDebounce = 600 * time.Millisecond

// repoWatcher wakes the UI when the repository changes on disk: new
// commits, ref updates, index writes.
type repoWatcher struct {
	repo git.Repo
	logf func(string, ...any)

	started     bool
	waiting     bool
	roots       []string
	events      chan struct{}
	done        chan struct{}
	mu          sync.Mutex
	paths       map[string]struct{}
	watcher     *fsnotify.Watcher
	lastRefresh time.Time
}

func newRepoWatcher(repo git.Repo, logf func(string, ...any)) *repoWatcher {
	return &repoWatcher{repo: repo, logf: logf}
}

// Start initialises the watcher and starts the background goroutine. The
// git dir itself is watched flat (HEAD, index, packed-refs); the refs and
// logs trees are watched recursively.
func (w *repoWatcher) Start() error {
	if w.started {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	w.started = true
	w.watcher = watcher
	w.events = make(chan struct{}, 1)
	w.done = make(chan struct{})
	w.paths = make(map[string]struct{})
	w.roots = []string{
		filepath.Join(w.repo.CommonDir, "refs"),
		filepath.Join(w.repo.CommonDir, "logs"),
	}
	w.addWatchDir(w.repo.CommonDir)
	if w.repo.GitDir != w.repo.CommonDir {
		w.addWatchDir(w.repo.GitDir)
	}
	for _, root := range w.roots {
		w.addWatchTree(root)
	}

	go w.run()
	return nil
}

// Stop stops the watcher and closes channels.
func (w *repoWatcher) Stop() {
	if !w.started {
		return
	}
	close(w.done)
	w.started = false
	if w.watcher != nil {
		_ = w.watcher.Close()
	}
}

// NextEvent returns the event channel if waiting is not already active.
func (w *repoWatcher) NextEvent() <-chan struct{} {
	if w.events == nil || w.waiting {
		return nil
	}
	w.waiting = true
	return w.events
}

// ResetWaiting clears the waiting flag after an event is processed.
func (w *repoWatcher) ResetWaiting() {
	w.waiting = false
}

// ShouldRefresh checks debounce timing for watcher events.
func (w *repoWatcher) ShouldRefresh(now time.Time) bool {
	if !w.lastRefresh.IsZero() && now.Sub(w.lastRefresh) < watchDebounce {
		return false
	}
	w.lastRefresh = now
	return true
}

func (w *repoWatcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				w.maybeWatchNewDir(event.Name)
			}
			w.signal()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.debugf("repo watcher error: %v", err)
		}
	}
}

// signal notifies listeners of watcher activity without blocking.
func (w *repoWatcher) signal() {
	select {
	case <-w.done:
		return
	default:
	}
	select {
	case w.events <- struct{}{}:
	default:
	}
}

// maybeWatchNewDir registers newly created directories under watch roots,
// so refs created in fresh namespaces keep being seen.
func (w *repoWatcher) maybeWatchNewDir(path string) {
	if !w.isUnderRoot(path) {
		return
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	w.addWatchDir(path)
}

func (w *repoWatcher) isUnderRoot(path string) bool {
	if path == "" {
		return false
	}
	for _, root := range w.roots {
		if root == "" {
			continue
		}
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (w *repoWatcher) addWatchDir(path string) {
	if path == "" {
		return
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.paths[path]; ok {
		return
	}
	if err := w.watcher.Add(path); err != nil {
		w.debugf("repo watcher add failed for %s: %v", path, err)
		return
	}
	w.paths[path] = struct{}{}
}

func (w *repoWatcher) addWatchTree(root string) {
	if root == "" {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		w.addWatchDir(path)
		return nil
	})
}

func (w *repoWatcher) debugf(format string, args ...any) {
	if w.logf == nil {
		return
	}
	w.logf(format, args...)
}
