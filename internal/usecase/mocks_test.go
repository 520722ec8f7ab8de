package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockTagRepository struct {
	mock.Mock
}

func (m *mockTagRepository) LatestTag(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type mockGitRepository struct {
	mock.Mock
}

func (m *mockGitRepository) LatestTag(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockGitRepository) CreateTag(ctx context.Context, name, message string) error {
	args := m.Called(ctx, name, message)
	return args.Error(0)
}

func (m *mockGitRepository) PushTag(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
