package git

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	gitindex "github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"
)

// LineKind classifies one diff line.
type LineKind int

const (
	LineContext LineKind = iota
	LineAddition
	LineDeletion
)

// Line is one diff line with its position on both sides. OldNo and NewNo
// are 1-based; zero means the line does not exist on that side.
type Line struct {
	Kind    LineKind
	Content string
	OldNo   int
	NewNo   int
}

// Hunk groups contiguous changes with up to three lines of shared context.
type Hunk struct {
	Header string
	Lines  []Line
}

// FileStatus classifies a changed file.
type FileStatus int

const (
	FileModified FileStatus = iota
	FileAdded
	FileDeleted
)

func (s FileStatus) String() string {
	switch s {
	case FileAdded:
		return "added"
	case FileDeleted:
		return "deleted"
	default:
		return "modified"
	}
}

// FileDiff is one changed file within a Diff.
type FileDiff struct {
	OldPath   string
	NewPath   string
	Status    FileStatus
	Binary    bool
	Hunks     []Hunk
	Additions int
	Deletions int
}

// Path returns the file's display path.
func (f FileDiff) Path() string {
	if f.NewPath != "" {
		return f.NewPath
	}
	return f.OldPath
}

// Diff is one fully computed change set. Message carries the full commit
// message when the diff is for a commit; it is empty for worktree diffs.
type Diff struct {
	Message   string
	Files     []FileDiff
	Additions int
	Deletions int
}

// Empty reports whether the diff contains no changed files.
func (d Diff) Empty() bool { return len(d.Files) == 0 }

// CommitDiff computes the change set a commit introduced against its first
// parent, or against the empty tree for a root commit.
func (r Repo) CommitDiff(hash string) (Diff, error) {
	repo, err := r.open()
	if err != nil {
		return Diff{}, err
	}
	commit, err := repo.CommitObject(plumbing.NewHash(hash))
	if err != nil {
		return Diff{}, fmt.Errorf("load commit %s: %w", shortHash(hash), err)
	}
	currentTree, err := commit.Tree()
	if err != nil {
		return Diff{}, fmt.Errorf("load tree of %s: %w", shortHash(hash), err)
	}
	var parentTree *object.Tree
	if commit.NumParents() > 0 {
		parent, err := commit.Parent(0)
		if err != nil {
			return Diff{}, fmt.Errorf("load parent of %s: %w", shortHash(hash), err)
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return Diff{}, fmt.Errorf("load parent tree of %s: %w", shortHash(hash), err)
		}
	}

	changes, err := object.DiffTree(parentTree, currentTree)
	if err != nil {
		return Diff{}, fmt.Errorf("diff trees of %s: %w", shortHash(hash), err)
	}

	d := Diff{Message: commit.Message}
	for _, change := range changes {
		fd, err := fileDiffFromChange(change)
		if err != nil {
			return Diff{}, err
		}
		d.Files = append(d.Files, fd)
		d.Additions += fd.Additions
		d.Deletions += fd.Deletions
	}
	return d, nil
}

func fileDiffFromChange(change *object.Change) (FileDiff, error) {
	fd := FileDiff{OldPath: change.From.Name, NewPath: change.To.Name}

	action, err := change.Action()
	if err != nil {
		return FileDiff{}, fmt.Errorf("classify change %s: %w", fd.Path(), err)
	}
	switch action {
	case merkletrie.Insert:
		fd.Status = FileAdded
	case merkletrie.Delete:
		fd.Status = FileDeleted
	default:
		fd.Status = FileModified
	}

	patch, err := change.Patch()
	if err != nil {
		return FileDiff{}, fmt.Errorf("compute patch for %s: %w", fd.Path(), err)
	}
	for _, fp := range patch.FilePatches() {
		if fp.IsBinary() {
			fd.Binary = true
			continue
		}
		runs := runsFromChunks(fp.Chunks())
		fd.Hunks = assembleHunks(runs)
		fd.Additions, fd.Deletions = countChanges(runs)
	}
	return fd, nil
}

// FileDiff computes the diff of one working tree path: HEAD against the
// index when staged is set, index against the worktree otherwise. An
// untracked path diffs as a pure addition.
func (r Repo) FileDiff(path string, staged bool) (Diff, error) {
	repo, err := r.open()
	if err != nil {
		return Diff{}, err
	}
	tree, err := headTree(repo)
	if err != nil {
		return Diff{}, err
	}
	idx, err := repo.Storer.Index()
	if err != nil {
		return Diff{}, fmt.Errorf("read index: %w", err)
	}

	var from, to *object.File
	if staged {
		if from, err = fileFromTree(tree, path); err != nil {
			return Diff{}, err
		}
		if to, err = fileFromIndex(idx, repo, path); err != nil {
			return Diff{}, err
		}
	} else {
		if from, err = fileFromIndex(idx, repo, path); err != nil {
			return Diff{}, err
		}
		if to, err = fileFromDisk(r.Root, path); err != nil {
			return Diff{}, err
		}
	}
	if from == nil && to == nil {
		return Diff{}, nil
	}

	fd := FileDiff{}
	switch {
	case from == nil:
		fd.Status = FileAdded
		fd.NewPath = path
	case to == nil:
		fd.Status = FileDeleted
		fd.OldPath = path
	default:
		fd.Status = FileModified
		fd.OldPath = path
		fd.NewPath = path
	}

	binary, err := binaryContent(from, to)
	if err != nil {
		return Diff{}, fmt.Errorf("inspect %s: %w", path, err)
	}
	if binary {
		fd.Binary = true
		return Diff{Files: []FileDiff{fd}}, nil
	}

	fromLines, err := contentLines(from)
	if err != nil {
		return Diff{}, fmt.Errorf("read old %s: %w", path, err)
	}
	toLines, err := contentLines(to)
	if err != nil {
		return Diff{}, fmt.Errorf("read new %s: %w", path, err)
	}

	runs := runsFromMatcher(fromLines, toLines)
	fd.Hunks = assembleHunks(runs)
	fd.Additions, fd.Deletions = countChanges(runs)
	return Diff{
		Files:     []FileDiff{fd},
		Additions: fd.Additions,
		Deletions: fd.Deletions,
	}, nil
}

func fileFromTree(tree *object.Tree, path string) (*object.File, error) {
	if tree == nil {
		return nil, nil
	}
	f, err := tree.File(path)
	if err != nil {
		if err == object.ErrFileNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s from HEAD: %w", path, err)
	}
	return f, nil
}

func fileFromIndex(idx *gitindex.Index, repo *gitlib.Repository, path string) (*object.File, error) {
	entry, err := idx.Entry(path)
	if err != nil {
		if err == gitindex.ErrEntryNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s from index: %w", path, err)
	}
	blob, err := object.GetBlob(repo.Storer, entry.Hash)
	if err != nil {
		return nil, fmt.Errorf("load blob for %s: %w", path, err)
	}
	return object.NewFile(entry.Name, entry.Mode, blob), nil
}

func fileFromDisk(root, path string) (*object.File, error) {
	file, err := os.Open(filepath.Join(root, path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	mem := &plumbing.MemoryObject{}
	mem.SetType(plumbing.BlobObject)
	if _, err := mem.Write(data); err != nil {
		return nil, fmt.Errorf("buffer %s: %w", path, err)
	}
	blob, err := object.DecodeBlob(mem)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	mode := filemode.Regular
	if info, err := file.Stat(); err == nil {
		if m, err := filemode.NewFromOSFileMode(info.Mode()); err == nil {
			mode = m
		}
	}
	return object.NewFile(path, mode, blob), nil
}

func binaryContent(files ...*object.File) (bool, error) {
	for _, f := range files {
		if f == nil {
			continue
		}
		bin, err := f.IsBinary()
		if err != nil {
			return false, err
		}
		if bin {
			return true, nil
		}
	}
	return false, nil
}

func contentLines(f *object.File) ([]string, error) {
	if f == nil {
		return nil, nil
	}
	content, err := f.Contents()
	if err != nil {
		return nil, err
	}
	return splitLines(content), nil
}

// splitLines splits content into lines without trailing newlines. A final
// newline does not produce an empty trailing line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
