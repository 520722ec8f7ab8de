package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "DEPSVER_"

// Source selects where the latest tag is read from when no explicit tag is
// supplied.
type Source string

const (
	SourceGit    Source = "git"
	SourceGithub Source = "github"
)

// Config holds everything the tool needs outside of command arguments.
type Config struct {
	// OutputPath is the shared build property file that gets overwritten.
	OutputPath string `koanf:"output_path"      validate:"required"`
	// CopyrightHolder appears in the rendered copyright line.
	CopyrightHolder string `koanf:"copyright_holder" validate:"required"`
	// RepoPath is the directory the local git repository is opened from.
	RepoPath string `koanf:"repo_path"        validate:"required"`
	// TagSource selects the tag repository implementation.
	TagSource Source `koanf:"tag_source"       validate:"oneof=git github"`

	// GitHub coordinates, only required when TagSource is "github".
	GithubToken string `koanf:"github_token"`
	GithubOwner string `koanf:"github_owner"`
	GithubRepo  string `koanf:"github_repo"`
}

func defaults() *Config {
	return &Config{
		OutputPath:      "version.props",
		CopyrightHolder: "Renju Ashokan",
		RepoPath:        ".",
		TagSource:       SourceGit,
	}
}

// Load builds the configuration from defaults and DEPSVER_-prefixed
// environment variables. A .env file in the working directory is honored when
// present.
func Load() (*Config, error) {
	// Missing .env files are fine; only explicit overrides live there.
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks structural constraints plus the conditional GitHub fields.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.TagSource == SourceGithub {
		if c.GithubToken == "" || c.GithubOwner == "" || c.GithubRepo == "" {
			return fmt.Errorf("github tag source requires %sGITHUB_TOKEN, %sGITHUB_OWNER and %sGITHUB_REPO",
				envPrefix, envPrefix, envPrefix)
		}
	}
	return nil
}
