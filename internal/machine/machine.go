// Package machine runs the per-player spin cycle Idle → Spinning → Settling → Idle.
package machine

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/localstore"
	"github.com/osse101/SlotMachine_Go/internal/logger"
	"github.com/osse101/SlotMachine_Go/internal/score"
	"github.com/osse101/SlotMachine_Go/internal/slots"
)

// State of one player's machine
type State int

const (
	StateIdle State = iota
	StateSpinning
	StateSettling
)

func (s State) String() string {
	switch s {
	case StateSpinning:
		return "spinning"
	case StateSettling:
		return "settling"
	default:
		return "idle"
	}
}

// RevealSink receives reel frames as they are played
type RevealSink interface {
	RevealFrame(player string, frame domain.RevealFrame)
}

// Publisher broadcasts stream events. An empty player means every listener.
type Publisher interface {
	Publish(eventType, player string, payload any)
}

// Outcome is everything a finished spin produced
type Outcome struct {
	Result  domain.SpinResult    `json:"result"`
	Frames  []domain.RevealFrame `json:"frames"`
	Applied score.ApplyResult    `json:"applied"`
	Message string               `json:"message"`
}

// Registry holds one machine per player name. Spins for the same name are
// serialized; different names spin independently.
type Registry struct {
	engine   *slots.Engine
	paytable slots.Paytable
	scores   score.Service
	clock    clockwork.Clock
	sink     RevealSink
	pub      Publisher
	reveal   RevealConfig

	rngMu    sync.Mutex
	rng      slots.RNG
	cosmetic slots.RNG

	mu     sync.Mutex
	states map[string]State
}

// Option customizes a Registry
type Option func(*Registry)

// WithClock overrides the reveal clock
func WithClock(c clockwork.Clock) Option {
	return func(r *Registry) { r.clock = c }
}

// WithRNG sets the outcome rng and the cosmetic rng
func WithRNG(outcome, cosmetic slots.RNG) Option {
	return func(r *Registry) {
		r.rng = outcome
		r.cosmetic = cosmetic
	}
}

// WithReveal sets the reveal pacing
func WithReveal(cfg RevealConfig) Option {
	return func(r *Registry) { r.reveal = cfg }
}

// NewRegistry wires the machine. sink and pub may be nil.
func NewRegistry(engine *slots.Engine, paytable slots.Paytable, scores score.Service, sink RevealSink, pub Publisher, opts ...Option) *Registry {
	r := &Registry{
		engine:   engine,
		paytable: paytable,
		scores:   scores,
		clock:    clockwork.NewRealClock(),
		sink:     sink,
		pub:      pub,
		reveal:   DefaultRevealConfig(),
		rng:      slots.NewRNG(),
		cosmetic: slots.NewRNG(),
		states:   make(map[string]State),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State reports where the player's machine is
func (r *Registry) State(name string) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.states[domain.NormalizePlayerName(name)]
}

// Spin runs one full cycle for name: it checks coins, fixes the outcome,
// plays the reveal, then applies the result exactly once. Cancelling ctx does
// not stop a cycle that has started.
func (r *Registry) Spin(ctx context.Context, local localstore.Store, name string) (Outcome, error) {
	log := logger.FromContext(ctx)

	name = domain.NormalizePlayerName(name)
	if name == "" {
		return Outcome{}, domain.ErrEmptyPlayerName
	}

	if err := r.begin(name); err != nil {
		log.Debug(LogMsgSpinRejected, "player", name, "reason", err)
		return Outcome{}, err
	}
	defer r.setState(name, StateIdle)

	previous := r.scores.CurrentRecord(local, name)
	if !previous.CanSpin() {
		log.Debug(LogMsgSpinRejected, "player", name, "coins", previous.Coins)
		return Outcome{}, fmt.Errorf("%w: %d coins", domain.ErrOutOfCoins, previous.Coins)
	}

	log.Debug(LogMsgSpinStarted, "player", name, "coins", previous.Coins)

	// Spinning: the outcome is fixed before any frame is shown
	r.rngMu.Lock()
	result := r.engine.Spin(r.rng)
	frames := BuildSchedule(result, r.engine.Alphabet(), r.cosmetic, r.reveal)
	r.rngMu.Unlock()

	r.setState(name, StateSettling)
	for _, frame := range frames {
		if frame.Delay > 0 {
			r.clock.Sleep(frame.Delay)
		}
		if r.sink != nil {
			r.sink.RevealFrame(name, frame)
		}
	}

	applied, err := r.scores.ApplySpin(ctx, local, name, previous, result)
	if err != nil {
		return Outcome{}, err
	}

	if r.pub != nil {
		r.pub.Publish(domain.EventTypeSpinCompleted, name, domain.SlotsCompletedPayload{
			Player:    name,
			Symbols:   result.Symbols,
			Outcome:   result.Outcome,
			CoinDelta: result.CoinDelta,
			Coins:     applied.Record.Coins,
			Spins:     applied.Record.Spins,
			Synced:    applied.Remote.Synced,
		})
		r.pub.Publish(domain.EventTypeLeaderboardUpdated, "", domain.LeaderboardUpdatedPayload{
			Player: name,
			Source: leaderboardSource(applied),
		})
	}

	log.Info(LogMsgSpinSettled, "player", name, "outcome", result.Outcome, "coins", applied.Record.Coins)
	return Outcome{
		Result:  result,
		Frames:  frames,
		Applied: applied,
		Message: r.paytable.Message(result.Outcome),
	}, nil
}

// begin moves an idle machine to Spinning
func (r *Registry) begin(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.states[name] != StateIdle {
		return domain.ErrSpinInProgress
	}
	r.states[name] = StateSpinning
	return nil
}

func (r *Registry) setState(name string, s State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s == StateIdle {
		delete(r.states, name)
		return
	}
	r.states[name] = s
}

func leaderboardSource(applied score.ApplyResult) string {
	if applied.Remote.Synced {
		return domain.LeaderboardChangedAll
	}
	return domain.LeaderboardChangedLocal
}
