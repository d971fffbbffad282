package git

import (
	"errors"
	"fmt"
	"sort"
	"time"

	gitlib "github.com/go-git/go-git/v5"
	gitindex "github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// StatusEntry is one path in the working tree report. Code is the two
// column short form git status uses: the staged column then the worktree
// column, for example "M " staged, " M" unstaged, "??" untracked.
type StatusEntry struct {
	Path string
	Code string
}

// Status groups the working tree into the four sections the status view
// renders. A path with both staged and unstaged edits appears in both
// Staged and Unstaged.
type Status struct {
	Staged     []StatusEntry
	Unstaged   []StatusEntry
	Untracked  []StatusEntry
	Conflicted []StatusEntry
}

// Clean reports whether the working tree has nothing to show.
func (s Status) Clean() bool {
	return len(s.Staged) == 0 && len(s.Unstaged) == 0 &&
		len(s.Untracked) == 0 && len(s.Conflicted) == 0
}

// Status computes the current working tree state, freshly resolved from
// disk on every call.
func (r Repo) Status() (Status, error) {
	repo, err := r.open()
	if err != nil {
		return Status{}, err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return Status{}, fmt.Errorf("resolve worktree: %w", err)
	}
	st, err := wt.Status()
	if err != nil {
		return Status{}, fmt.Errorf("compute status: %w", err)
	}

	paths := make([]string, 0, len(st))
	for path := range st {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var out Status
	for _, path := range paths {
		fs := st[path]
		code := string(rune(fs.Staging)) + string(rune(fs.Worktree))
		switch {
		case fs.Staging == gitlib.UpdatedButUnmerged || fs.Worktree == gitlib.UpdatedButUnmerged:
			out.Conflicted = append(out.Conflicted, StatusEntry{Path: path, Code: code})
		case fs.Staging == gitlib.Untracked || fs.Worktree == gitlib.Untracked:
			out.Untracked = append(out.Untracked, StatusEntry{Path: path, Code: "??"})
		default:
			if fs.Staging != gitlib.Unmodified {
				out.Staged = append(out.Staged, StatusEntry{
					Path: path,
					Code: string(rune(fs.Staging)) + " ",
				})
			}
			if fs.Worktree != gitlib.Unmodified {
				out.Unstaged = append(out.Unstaged, StatusEntry{
					Path: path,
					Code: " " + string(rune(fs.Worktree)),
				})
			}
		}
	}
	return out, nil
}

// Stage adds the file's current worktree content to the index. A deleted
// file is staged as a deletion; an untracked file starts being tracked.
func (r Repo) Stage(path string) error {
	repo, err := r.open()
	if err != nil {
		return err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("resolve worktree: %w", err)
	}
	if _, err := wt.Add(path); err != nil {
		return fmt.Errorf("stage %s: %w", path, err)
	}
	return nil
}

// Unstage resets the index entry for path back to the HEAD version, leaving
// the working tree untouched. For a path absent from HEAD the entry is
// removed; with an unborn HEAD every unstage is a removal.
func (r Repo) Unstage(path string) error {
	repo, err := r.open()
	if err != nil {
		return err
	}
	idx, err := repo.Storer.Index()
	if err != nil {
		return fmt.Errorf("read index: %w", err)
	}
	tree, err := headTree(repo)
	if err != nil {
		return err
	}

	var headEntry *object.TreeEntry
	if tree != nil {
		entry, err := tree.FindEntry(path)
		switch {
		case err == nil:
			headEntry = entry
		case errors.Is(err, object.ErrEntryNotFound), errors.Is(err, object.ErrDirectoryNotFound):
			headEntry = nil
		default:
			return fmt.Errorf("inspect HEAD entry for %s: %w", path, err)
		}
	}

	if headEntry == nil {
		if _, err := idx.Remove(path); err != nil && !errors.Is(err, gitindex.ErrEntryNotFound) {
			return fmt.Errorf("unstage %s: %w", path, err)
		}
	} else {
		entry, err := idx.Entry(path)
		if errors.Is(err, gitindex.ErrEntryNotFound) {
			entry = idx.Add(path)
		} else if err != nil {
			return fmt.Errorf("unstage %s: %w", path, err)
		}
		// Zeroed stat data forces the next status to hash the worktree
		// file against this entry instead of trusting timestamps.
		entry.Hash = headEntry.Hash
		entry.Mode = headEntry.Mode
		entry.Size = 0
		entry.ModifiedAt = time.Time{}
		entry.CreatedAt = time.Time{}
	}

	if err := repo.Storer.SetIndex(idx); err != nil {
		return fmt.Errorf("unstage %s: %w", path, err)
	}
	return nil
}
