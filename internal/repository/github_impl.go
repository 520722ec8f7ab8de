package repository

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v74/github"
	"github.com/sethvargo/go-retry"
	"golang.org/x/oauth2"
)

const (
	githubRetryCount = 3
	githubRetryDelay = 500 * time.Millisecond
)

// githubRepository reads the latest release tag through the GitHub API.
type githubRepository struct {
	client *github.Client
	owner  string
	repo   string
}

// NewGithubRepository creates a TagRepository backed by the GitHub releases
// API.
func NewGithubRepository(token, owner, repo string) (TagRepository, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("github token is required")
	}
	if owner == "" || repo == "" {
		return nil, fmt.Errorf("github owner and repo are required")
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	return &githubRepository{
		client: github.NewClient(tc),
		owner:  owner,
		repo:   repo,
	}, nil
}

// LatestTag returns the tag name of the latest release, or an empty string
// when the repository has none. Transient API failures are retried with
// exponential backoff.
func (r *githubRepository) LatestTag(ctx context.Context) (string, error) {
	var tag string
	err := retry.Do(
		ctx,
		retry.WithMaxRetries(githubRetryCount, retry.NewExponential(githubRetryDelay)),
		func(ctx context.Context) error {
			release, resp, err := r.client.Repositories.GetLatestRelease(ctx, r.owner, r.repo)
			if resp != nil && resp.StatusCode == http.StatusNotFound {
				tag = ""
				return nil
			}
			if err != nil {
				return retry.RetryableError(err)
			}
			tag = release.GetTagName()
			return nil
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to fetch latest release for %s/%s: %w", r.owner, r.repo, err)
	}
	return tag, nil
}
