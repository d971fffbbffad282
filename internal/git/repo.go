// Package git implements the repository queries behind the views using
// go-git. Repo is a plain locator value: every operation re-opens the
// repository from disk, so no live handle is ever shared between the
// render loop and the worker goroutines that call into this package.
package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Repo locates a repository on disk. Copies are cheap and safe to hand to
// background workers.
type Repo struct {
	// Root is the top level of the working tree.
	Root string
	// GitDir is this worktree's .git directory. For linked worktrees it
	// is the private directory under worktrees/.
	GitDir string
	// CommonDir is the shared .git directory holding refs and objects.
	// Equal to GitDir except for linked worktrees.
	CommonDir string
}

// Discover resolves the repository containing path, walking up parent
// directories the way git itself does.
func Discover(path string) (Repo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Repo{}, fmt.Errorf("resolve path %s: %w", path, err)
	}

	repo, err := gitlib.PlainOpenWithOptions(abs, &gitlib.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Repo{}, fmt.Errorf("open repository at %s: %w", abs, err)
	}

	root := abs
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}

	gitDir, commonDir, err := resolveGitDirs(root)
	if err != nil {
		return Repo{}, err
	}
	return Repo{Root: root, GitDir: gitDir, CommonDir: commonDir}, nil
}

// resolveGitDirs locates the .git directory for root, following a .git file
// (linked worktree) and its commondir redirection when present.
func resolveGitDirs(root string) (gitDir, commonDir string, err error) {
	dotGit := filepath.Join(root, ".git")
	info, err := os.Stat(dotGit)
	if err != nil {
		if os.IsNotExist(err) {
			// Bare repository: root itself is the git directory.
			if _, herr := os.Stat(filepath.Join(root, "HEAD")); herr == nil {
				return root, root, nil
			}
		}
		return "", "", fmt.Errorf("locate git directory under %s: %w", root, err)
	}

	if info.IsDir() {
		return dotGit, dotGit, nil
	}

	// .git is a file containing "gitdir: <path>".
	data, err := os.ReadFile(dotGit)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", dotGit, err)
	}
	line := strings.TrimSpace(string(data))
	const prefix = "gitdir:"
	if !strings.HasPrefix(line, prefix) {
		return "", "", fmt.Errorf("malformed gitdir file %s", dotGit)
	}
	gitDir = strings.TrimSpace(strings.TrimPrefix(line, prefix))
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(root, gitDir)
	}

	commonDir = gitDir
	if data, err := os.ReadFile(filepath.Join(gitDir, "commondir")); err == nil {
		rel := strings.TrimSpace(string(data))
		if rel != "" {
			if filepath.IsAbs(rel) {
				commonDir = filepath.Clean(rel)
			} else {
				commonDir = filepath.Clean(filepath.Join(gitDir, rel))
			}
		}
	}
	return gitDir, commonDir, nil
}

// open re-opens the repository for one operation.
func (r Repo) open() (*gitlib.Repository, error) {
	repo, err := gitlib.PlainOpenWithOptions(r.Root, &gitlib.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", r.Root, err)
	}
	return repo, nil
}

// Name returns the repository's directory name for display.
func (r Repo) Name() string { return filepath.Base(r.Root) }

// Branch returns the current branch name, the abbreviated hash when HEAD is
// detached, or the empty string for a repository with no commits yet.
func (r Repo) Branch() (string, error) {
	repo, err := r.open()
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	if head.Name().IsBranch() {
		return head.Name().Short(), nil
	}
	return shortHash(head.Hash().String()), nil
}

// headTree returns the tree of the commit HEAD points at, or nil for a
// repository whose HEAD is unborn.
func headTree(repo *gitlib.Repository) (*object.Tree, error) {
	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("load HEAD commit: %w", err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("load HEAD tree: %w", err)
	}
	return tree, nil
}
