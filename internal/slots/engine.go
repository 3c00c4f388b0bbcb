package slots

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/osse101/SlotMachine_Go/internal/domain"
)

// RNG is a source of uniform integers in [0, n)
type RNG interface {
	IntN(n int) int
}

// NewRNG returns a PCG generator seeded from crypto/rand
func NewRNG() RNG {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(fmt.Sprintf("seed rng: %v", err))
	}
	return rand.New(rand.NewPCG(binary.LittleEndian.Uint64(seed[:8]), binary.LittleEndian.Uint64(seed[8:])))
}

// Alphabet is an ordered set of distinct reel symbols
type Alphabet []domain.Symbol

// NewAlphabet validates symbols and returns them as an Alphabet.
func NewAlphabet(symbols []domain.Symbol) (Alphabet, error) {
	if len(symbols) < MinAlphabetSize {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidAlphabet, len(symbols))
	}
	seen := make(map[domain.Symbol]struct{}, len(symbols))
	for _, s := range symbols {
		if s == "" {
			return nil, fmt.Errorf("%w: empty symbol", domain.ErrInvalidAlphabet)
		}
		if _, dup := seen[s]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %q", domain.ErrInvalidAlphabet, s)
		}
		seen[s] = struct{}{}
	}
	out := make(Alphabet, len(symbols))
	copy(out, symbols)
	return out, nil
}

// Paytable holds gross payouts and the per-spin cost
type Paytable struct {
	SpinCost      int
	JackpotPayout int
	PairPayout    int
}

// DefaultPaytable pays +49 net for a jackpot, +9 for a pair and -1 otherwise
func DefaultPaytable() Paytable {
	return Paytable{
		SpinCost:      DefaultSpinCost,
		JackpotPayout: DefaultJackpotPayout,
		PairPayout:    DefaultPairPayout,
	}
}

// Delta returns the net coin change for an outcome.
func (p Paytable) Delta(outcome domain.Outcome) int {
	switch outcome {
	case domain.OutcomeJackpot:
		return p.JackpotPayout - p.SpinCost
	case domain.OutcomePartialMatch:
		return p.PairPayout - p.SpinCost
	default:
		return -p.SpinCost
	}
}

// Engine draws and scores spins. It holds no mutable state.
// Callers must check that the player has coins before spinning.
type Engine struct {
	alphabet Alphabet
	paytable Paytable
}

// NewEngine creates an engine for the given alphabet and pay table
func NewEngine(alphabet Alphabet, paytable Paytable) *Engine {
	return &Engine{alphabet: alphabet, paytable: paytable}
}

// Alphabet returns the engine's symbols
func (e *Engine) Alphabet() Alphabet {
	return e.alphabet
}

// Spin draws three symbols from the engine's alphabet and scores them.
func (e *Engine) Spin(rng RNG) domain.SpinResult {
	a, b, c := e.alphabet.draw(rng), e.alphabet.draw(rng), e.alphabet.draw(rng)
	outcome := Classify(a, b, c)
	return domain.SpinResult{
		Symbols:   [ReelCount]domain.Symbol{a, b, c},
		Outcome:   outcome,
		CoinDelta: e.paytable.Delta(outcome),
	}
}

// Spin draws three symbols uniformly with replacement and scores them with
// the default pay table.
func Spin(alphabet Alphabet, rng RNG) (domain.SpinResult, error) {
	if len(alphabet) < MinAlphabetSize {
		return domain.SpinResult{}, fmt.Errorf("%w: got %d", domain.ErrInvalidAlphabet, len(alphabet))
	}
	return NewEngine(alphabet, DefaultPaytable()).Spin(rng), nil
}

// Classify scores a triple. The result depends only on the multiset of symbols.
func Classify(a, b, c domain.Symbol) domain.Outcome {
	if a == b && b == c {
		return domain.OutcomeJackpot
	}
	if a == b || b == c || a == c {
		return domain.OutcomePartialMatch
	}
	return domain.OutcomeNoMatch
}

// Message returns the player-facing text for a result.
func (p Paytable) Message(outcome domain.Outcome) string {
	switch outcome {
	case domain.OutcomeJackpot:
		return fmt.Sprintf(MsgJackpot, p.JackpotPayout)
	case domain.OutcomePartialMatch:
		return fmt.Sprintf(MsgPairWin, p.PairPayout)
	default:
		return MsgNoMatch
	}
}

func (a Alphabet) draw(rng RNG) domain.Symbol {
	return a[rng.IntN(len(a))]
}
