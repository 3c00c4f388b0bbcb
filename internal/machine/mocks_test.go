package machine

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/localstore"
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
	return args.Get(0).(domain.Leaderboard), args.Error(1)
}

func (m *MockScoreService) CurrentRecord(local localstore.Store, name string) domain.PlayerRecord {
	return m.Called(local, name).Get(0).(domain.PlayerRecord)
}

func (m *MockScoreService) Restart(ctx context.Context, local localstore.Store, name string) (score.ApplyResult, error) {
	args := m.Called(ctx, local, name)
	return args.Get(0).(score.ApplyResult), args.Error(1)
}

// scriptedRNG replays values in order, wrapping around
type scriptedRNG struct {
	mu     sync.Mutex
	values []int
	i      int
}

func (r *scriptedRNG) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.values[r.i%len(r.values)] % n
	r.i++
	return v
}

type recordedEvent struct {
	Type    string
	Player  string
	Payload any
}

// recorder is a RevealSink and Publisher that keeps what it was given
type recorder struct {
	mu     sync.Mutex
	frames []domain.RevealFrame
	events []recordedEvent
}

func (r *recorder) RevealFrame(_ string, frame domain.RevealFrame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, frame)
}

func (r *recorder) Publish(eventType, player string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{Type: eventType, Player: player, Payload: payload})
}

func (r *recorder) frameCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}
