package git

import (
	"errors"
	"fmt"
	"strings"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Commits walks history from HEAD in committer-time order, calling emit for
// each commit. The walk is forward-only; an abandoned caller simply lets it
// run to the end. An empty repository yields no commits and no error.
func (r Repo) Commits(emit func(Commit)) error {
	repo, err := r.open()
	if err != nil {
		return err
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil
		}
		return fmt.Errorf("resolve HEAD: %w", err)
	}

	labels, err := referenceLabels(repo, head)
	if err != nil {
		return err
	}

	iter, err := repo.Log(&gitlib.LogOptions{
		From:  head.Hash(),
		Order: gitlib.LogOrderCommitterTime,
	})
	if err != nil {
		return fmt.Errorf("walk history: %w", err)
	}
	defer iter.Close()

	err = iter.ForEach(func(c *object.Commit) error {
		emit(Commit{
			Hash:        c.Hash.String(),
			ShortHash:   shortHash(c.Hash.String()),
			Author:      c.Author.Name,
			AuthorEmail: c.Author.Email,
			When:        c.Committer.When,
			Summary:     summaryLine(c.Message),
			Message:     c.Message,
			Refs:        labels[c.Hash],
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk history: %w", err)
	}
	return nil
}

// referenceLabels maps commit hashes to decoration labels the way
// git log --decorate renders them. Annotated tags are peeled to the commit
// they ultimately point at; the checked-out branch is folded into a single
// "HEAD -> name" label.
func referenceLabels(repo *gitlib.Repository, head *plumbing.Reference) (map[plumbing.Hash][]string, error) {
	labels := map[plumbing.Hash][]string{}

	var headBranch string
	if head != nil && head.Name().IsBranch() {
		headBranch = head.Name().Short()
	}

	refs, err := repo.References()
	if err != nil {
		return nil, fmt.Errorf("list references: %w", err)
	}
	defer refs.Close()

	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() != plumbing.HashReference {
			return nil
		}
		name := ref.Name()
		short := name.Short()
		hash := ref.Hash()
		var label string
		switch {
		case name.IsBranch():
			if short == headBranch {
				return nil
			}
			label = short
		case name.IsRemote():
			if strings.HasSuffix(short, "/HEAD") {
				return nil
			}
			label = short
		case name.IsTag():
			label = "tag: " + short
			if peeled, ok := peelTag(repo, hash); ok {
				hash = peeled
			}
		default:
			return nil
		}
		labels[hash] = append(labels[hash], label)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list references: %w", err)
	}

	if head != nil {
		label := "HEAD"
		if headBranch != "" {
			label = "HEAD -> " + headBranch
		}
		labels[head.Hash()] = append([]string{label}, labels[head.Hash()]...)
	}
	return labels, nil
}

// peelTag resolves an annotated tag chain to its commit hash. Lightweight
// tags already point at the commit and are returned as-is.
func peelTag(repo *gitlib.Repository, hash plumbing.Hash) (plumbing.Hash, bool) {
	if _, err := repo.CommitObject(hash); err == nil {
		return hash, true
	}
	cur := hash
	for i := 0; i < 8; i++ {
		tag, err := repo.TagObject(cur)
		if err != nil {
			return plumbing.ZeroHash, false
		}
		switch tag.TargetType {
		case plumbing.CommitObject:
			return tag.Target, true
		case plumbing.TagObject:
			cur = tag.Target
		default:
			return plumbing.ZeroHash, false
		}
	}
	return plumbing.ZeroHash, false
}
