package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
)

// gitRepository reads and writes tags in a local repository through go-git.
// The repository is opened lazily so commands that never touch the tag source
// work outside a checkout.
type gitRepository struct {
	path string
}

// NewGitRepository creates a GitRepository rooted at path. The path may be
// anywhere inside the working tree.
func NewGitRepository(path string) GitRepository {
	if path == "" {
		path = "."
	}
	return &gitRepository{path: path}
}

func (r *gitRepository) open() (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(r.path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %q: %w", r.path, err)
	}
	return repo, nil
}

// LatestTag returns the name of the tag whose target commit is newest, or an
// empty string when the repository has no tags.
func (r *gitRepository) LatestTag(_ context.Context) (string, error) {
	repo, err := r.open()
	if err != nil {
		return "", err
	}
	iter, err := repo.Tags()
	if err != nil {
		return "", fmt.Errorf("failed to list tags: %w", err)
	}
	var (
		latest     string
		latestTime time.Time
	)
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		when, ok := commitTime(repo, ref.Hash())
		if !ok {
			// Tags pointing at trees or blobs carry no useful version.
			return nil
		}
		if latest == "" || when.After(latestTime) {
			latest = ref.Name().Short()
			latestTime = when
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to iterate tags: %w", err)
	}
	return latest, nil
}

// commitTime resolves a tag hash, annotated or lightweight, to its commit
// time.
func commitTime(repo *git.Repository, hash plumbing.Hash) (time.Time, bool) {
	if tagObj, err := repo.TagObject(hash); err == nil {
		commit, err := tagObj.Commit()
		if err != nil {
			return time.Time{}, false
		}
		return commit.Committer.When, true
	}
	commit, err := repo.CommitObject(hash)
	if err != nil {
		return time.Time{}, false
	}
	return commit.Committer.When, true
}

// CreateTag creates an annotated tag on HEAD.
func (r *gitRepository) CreateTag(_ context.Context, name, message string) error {
	repo, err := r.open()
	if err != nil {
		return err
	}
	head, err := repo.Head()
	if err != nil {
		return fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	if _, err := repo.CreateTag(name, head.Hash(), &git.CreateTagOptions{Message: message}); err != nil {
		return fmt.Errorf("failed to create tag %q: %w", name, err)
	}
	return nil
}

// PushTag pushes a single tag ref to origin.
func (r *gitRepository) PushTag(ctx context.Context, name string) error {
	repo, err := r.open()
	if err != nil {
		return err
	}
	refSpec := gitconfig.RefSpec(fmt.Sprintf("refs/tags/%s:refs/tags/%s", name, name))
	err = repo.PushContext(ctx, &git.PushOptions{
		RemoteName: "origin",
		RefSpecs:   []gitconfig.RefSpec{refSpec},
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to push tag %q: %w", name, err)
	}
	return nil
}
