package service

import (
	"context"

	"github.com/bagdasarian/webhook-ingest/internal/domain"
	"github.com/bagdasarian/webhook-ingest/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockInstallationRepository struct {
	mock.Mock
}

func (m *MockInstallationRepository) Upsert(ctx context.Context, installation *domain.Installation) error {
	args := m.Called(ctx, installation)
	return args.Error(0)
}

type MockRepoRepository struct {
	mock.Mock
}

func (m *MockRepoRepository) Upsert(ctx context.Context, repo *domain.Repo) error {
	args := m.Called(ctx, repo)
	return args.Error(0)
}

type MockPullRequestRepository struct {
	mock.Mock
}

func (m *MockPullRequestRepository) Upsert(ctx context.Context, pr *domain.PullRequest) error {
	args := m.Called(ctx, pr)
	return args.Error(0)
}

type MockRunRepository struct {
	mock.Mock
}

func (m *MockRunRepository) Create(ctx context.Context, run *domain.Run) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockRunRepository) GetByID(ctx context.Context, id string) (*domain.Run, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Run), args.Error(1)
}

// fakeStore выполняет fn с переданными моками вместо настоящей транзакции
type fakeStore struct {
	repos  repository.Repositories
	err    error
	called int
}

func (s *fakeStore) InTransaction(ctx context.Context, fn func(repos repository.Repositories) error) error {
	s.called++
	if s.err != nil {
		return s.err
	}
	return fn(s.repos)
}
