package cmd

import (
	"github.com/spf13/afero"

	"github.com/renjuashokan/Dependencies/internal/config"
	"github.com/renjuashokan/Dependencies/internal/repository"
	"github.com/renjuashokan/Dependencies/internal/service"
	"github.com/renjuashokan/Dependencies/internal/usecase"
)

// container holds all the dependencies for the application.

type container struct {
	cfg *config.Config

	fsRepo   repository.FileSystemRepository
	tagRepo  repository.TagRepository
	gitRepo  repository.GitRepository
	propsSvc service.PropsService
}

// newContainer creates a new container with all the dependencies.
func newContainer() (*container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	fsRepo := repository.FileSystemRepository(afero.NewOsFs())
	gitRepo := repository.NewGitRepository(cfg.RepoPath)

	// The local repository is the default tag source; GitHub is opt-in.
	var tagRepo repository.TagRepository = gitRepo
	if cfg.TagSource == config.SourceGithub {
		tagRepo, err = repository.NewGithubRepository(cfg.GithubToken, cfg.GithubOwner, cfg.GithubRepo)
		if err != nil {
			return nil, err
		}
	}

	return &container{
		cfg:      cfg,
		fsRepo:   fsRepo,
		tagRepo:  tagRepo,
		gitRepo:  gitRepo,
		propsSvc: service.NewPropsService(),
	}, nil
}

// InitCommands initializes all commands with their dependencies.
func InitCommands() error {
	c, err := newContainer()
	if err != nil {
		return err
	}

	calc := &usecase.CalculateVersionUseCase{TagRepo: c.tagRepo}

	rootCmd.AddCommand(NewCalculateVersionCmd(calc))

	rootCmd.AddCommand(NewUpdatePropsCmd(&usecase.UpdatePropsUseCase{
		Calc:     calc,
		PropsSvc: c.propsSvc,
		Fs:       c.fsRepo,
	}, c.cfg))

	rootCmd.AddCommand(NewCreateGitTagCmd(&usecase.CreateGitTagUseCase{
		GitRepo: c.gitRepo,
	}))

	rootCmd.AddCommand(NewVersionCmd())

	return nil
}
