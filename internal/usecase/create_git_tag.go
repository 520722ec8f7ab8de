package usecase

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/renjuashokan/Dependencies/internal/repository"
)

// CreateGitTagUseCase contains the logic for the create-git-tag command.

type CreateGitTagUseCase struct {
	GitRepo repository.GitRepository
}

// Execute validates the tag as semver, then creates and pushes it.
func (uc *CreateGitTagUseCase) Execute(ctx context.Context, tagName, message string) error {
	if _, err := semver.NewVersion(tagName); err != nil {
		return fmt.Errorf("tag must be valid semver: %w", err)
	}
	if message == "" {
		message = "Release " + tagName
	}
	if err := uc.GitRepo.CreateTag(ctx, tagName, message); err != nil {
		return fmt.Errorf("failed to create git tag: %w", err)
	}
	return uc.GitRepo.PushTag(ctx, tagName)
}
