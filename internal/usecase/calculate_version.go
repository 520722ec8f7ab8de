package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/renjuashokan/Dependencies/internal/domain"
	"github.com/renjuashokan/Dependencies/internal/repository"
	"github.com/renjuashokan/Dependencies/pkg/logger"
)

// CalculateVersionUseCase resolves a tag and normalizes it into a Version.

type CalculateVersionUseCase struct {
	TagRepo repository.TagRepository
}

// Execute resolves the version for rawTag. An explicit tag wins; otherwise
// the latest repository tag is used. Every failure mode degrades to the
// default version with a logged warning, so Execute never fails.
func (uc *CalculateVersionUseCase) Execute(ctx context.Context, rawTag string) *domain.Version {
	log := logger.FromContext(ctx)
	tag := strings.TrimSpace(rawTag)
	if tag == "" {
		latest, err := uc.TagRepo.LatestTag(ctx)
		if err != nil {
			log.Warn("failed to read latest tag", "error", err)
		} else {
			tag = latest
		}
	}
	version, err := domain.Normalize(tag)
	if err != nil {
		if errors.Is(err, domain.ErrNoTag) {
			log.Warn("no tag available, using default version", "default", domain.DefaultVersion)
		} else {
			log.Warn(err.Error(), "default", domain.DefaultVersion)
		}
	}
	return version
}
