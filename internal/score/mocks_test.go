package score

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/repository"
)

// MockLeaderboard implements [repository.Leaderboard]
type MockLeaderboard struct {
	mock.Mock
}

var _ repository.Leaderboard = (*MockLeaderboard)(nil)

func (m *MockLeaderboard) Get(ctx context.Context, name string) (*domain.ScoreDocument, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScoreDocument), args.Error(1)
}

func (m *MockLeaderboard) Set(ctx context.Context, name string, doc domain.ScoreDocument, merge bool) error {
	args := m.Called(ctx, name, doc, merge)
	return args.Error(0)
}

func (m *MockLeaderboard) FetchAll(ctx context.Context) ([]domain.ScoreDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScoreDocument), args.Error(1)
}

func (m *MockLeaderboard) Delete(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *MockLeaderboard) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockLeaderboard) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
