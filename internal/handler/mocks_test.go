package handler

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/localstore"
	"github.com/osse101/SlotMachine_Go/internal/machine"
	"github.com/osse101/SlotMachine_Go/internal/score"
)

// MockScoreService implements [score.Service]
type MockScoreService struct {
	mock.Mock
}

var _ score.Service = (*MockScoreService)(nil)

func (m *MockScoreService) ApplySpin(ctx context.Context, local localstore.Store, name string, previous domain.PlayerRecord, result domain.SpinResult) (score.ApplyResult, error) {
	args := m.Called(ctx, local, name, previous, result)
	return args.Get(0).(score.ApplyResult), args.Error(1)
}

func (m *MockScoreService) SubmitScore(ctx context.Context, record domain.PlayerRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockScoreService) ResetPlayer(ctx context.Context, local localstore.Store, name string) domain.Leaderboard {
	return m.Called(ctx, local, name).Get(0).(domain.Leaderboard)
}

func (m *MockScoreService) ResetAll(ctx context.Context, local localstore.Store) domain.Leaderboard {
	return m.Called(ctx, local).Get(0).(domain.Leaderboard)
}

func (m *MockScoreService) FetchLeaderboard(ctx context.Context, local localstore.Store, source score.Source) (domain.Leaderboard, error) {
	args := m.Called(ctx, local, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Leaderboard), args.Error(1)
}

func (m *MockScoreService) CurrentRecord(local localstore.Store, name string) domain.PlayerRecord {
	return m.Called(local, name).Get(0).(domain.PlayerRecord)
}

func (m *MockScoreService) Restart(ctx context.Context, local localstore.Store, name string) (score.ApplyResult, error) {
	args := m.Called(ctx, local, name)
	return args.Get(0).(score.ApplyResult), args.Error(1)
}

// MockSpinner implements [Spinner]
type MockSpinner struct {
	mock.Mock
}

var _ Spinner = (*MockSpinner)(nil)

func (m *MockSpinner) Spin(ctx context.Context, local localstore.Store, name string) (machine.Outcome, error) {
	args := m.Called(ctx, local, name)
	return args.Get(0).(machine.Outcome), args.Error(1)
}

type publishedEvent struct {
	Type    string
	Player  string
	Payload any
}

// eventRecorder is a machine.Publisher that keeps what it was given
type eventRecorder struct {
	mu     sync.Mutex
	events []publishedEvent
}

var _ machine.Publisher = (*eventRecorder)(nil)

func (r *eventRecorder) Publish(eventType, player string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, publishedEvent{Type: eventType, Player: player, Payload: payload})
}

func (r *eventRecorder) snapshot() []publishedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]publishedEvent(nil), r.events...)
}
