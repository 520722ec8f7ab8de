package repository

import (
	"context"

	"github.com/spf13/afero"
)

// TagRepository reads release tags from a source of truth. An empty tag with
// a nil error means no tag exists.
type TagRepository interface {
	LatestTag(ctx context.Context) (string, error)
}

// GitRepository is a TagRepository that can also create and push tags.
type GitRepository interface {
	TagRepository
	CreateTag(ctx context.Context, name, message string) error
	PushTag(ctx context.Context, name string) error
}

// FileSystemRepository abstracts file access so the props writer can run
// against an in-memory filesystem in tests.
type FileSystemRepository = afero.Fs
