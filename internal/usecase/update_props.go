package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/renjuashokan/Dependencies/internal/domain"
	"github.com/renjuashokan/Dependencies/internal/repository"
	"github.com/renjuashokan/Dependencies/internal/service"
	"github.com/renjuashokan/Dependencies/pkg/logger"
)

// UpdatePropsOptions carries per-invocation settings for UpdatePropsUseCase.
type UpdatePropsOptions struct {
	OutputPath      string
	CopyrightHolder string
	DryRun          bool
}

// UpdatePropsUseCase contains the logic for the update-props command: resolve
// the version, render the shared property file and overwrite it.
type UpdatePropsUseCase struct {
	Calc     *CalculateVersionUseCase
	PropsSvc service.PropsService
	Fs       repository.FileSystemRepository
	// Now is injectable so tests can pin the copyright year.
	Now func() time.Time
}

// Execute runs the use case. Version resolution never fails; only rendering
// or writing the file can return an error.
func (uc *UpdatePropsUseCase) Execute(
	ctx context.Context,
	rawTag string,
	opts UpdatePropsOptions,
) (*domain.Version, error) {
	log := logger.FromContext(ctx)
	version := uc.Calc.Execute(ctx, rawTag)

	now := uc.Now
	if now == nil {
		now = time.Now
	}
	year := now().Year()

	if opts.DryRun {
		log.Info("dry run, version properties not written",
			"path", opts.OutputPath, "version", version.Full)
		return version, nil
	}
	if err := uc.PropsSvc.Write(uc.Fs, opts.OutputPath, version, year, opts.CopyrightHolder); err != nil {
		return nil, fmt.Errorf("failed to update version properties: %w", err)
	}
	log.Info("updated version properties",
		"path", opts.OutputPath,
		"version", version.Full,
		"numeric_version", version.Numeric)
	return version, nil
}
