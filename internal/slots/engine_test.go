package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotMachine_Go/internal/domain"
)

// scriptedRNG returns the queued values in order
type scriptedRNG struct {
	values []int
	calls  int
}

func (r *scriptedRNG) IntN(n int) int {
	v := r.values[r.calls%len(r.values)] % n
	r.calls++
	return v
}

func defaultAlphabet(t *testing.T) Alphabet {
	t.Helper()
	a, err := NewAlphabet(DefaultSymbols)
	require.NoError(t, err)
	return a
}

func TestSpin_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		draws     []int
		symbols   [3]domain.Symbol
		outcome   domain.Outcome
		coinDelta int
	}{
		{"three cherries", []int{0, 0, 0}, [3]domain.Symbol{SymbolCherry, SymbolCherry, SymbolCherry}, domain.OutcomeJackpot, 49},
		{"pair first two", []int{0, 0, 1}, [3]domain.Symbol{SymbolCherry, SymbolCherry, SymbolLemon}, domain.OutcomePartialMatch, 9},
		{"pair outer", []int{4, 3, 4}, [3]domain.Symbol{SymbolTiger, SymbolDiamond, SymbolTiger}, domain.OutcomePartialMatch, 9},
		{"no match", []int{0, 1, 2}, [3]domain.Symbol{SymbolCherry, SymbolLemon, SymbolBell}, domain.OutcomeNoMatch, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rng := &scriptedRNG{values: tt.draws}

			result, err := Spin(defaultAlphabet(t), rng)

			require.NoError(t, err)
			assert.Equal(t, tt.symbols, result.Symbols)
			assert.Equal(t, tt.outcome, result.Outcome)
			assert.Equal(t, tt.coinDelta, result.CoinDelta)
			assert.Equal(t, 3, rng.calls)
		})
	}
}

func TestSpin_InvalidAlphabet(t *testing.T) {
	t.Parallel()

	_, err := Spin(Alphabet{SymbolCherry, SymbolLemon}, &scriptedRNG{values: []int{0}})
	assert.ErrorIs(t, err, domain.ErrInvalidAlphabet)
}

func TestNewAlphabet(t *testing.T) {
	t.Parallel()

	_, err := NewAlphabet([]domain.Symbol{SymbolCherry, SymbolCherry, SymbolLemon})
	assert.ErrorIs(t, err, domain.ErrInvalidAlphabet)

	_, err = NewAlphabet([]domain.Symbol{SymbolCherry, "", SymbolLemon})
	assert.ErrorIs(t, err, domain.ErrInvalidAlphabet)

	a, err := NewAlphabet([]domain.Symbol{"A", "B", "C"})
	require.NoError(t, err)
	assert.Len(t, a, 3)
}

func TestClassify_OrderIndependent(t *testing.T) {
	t.Parallel()

	a, b := SymbolBell, SymbolMoney
	perms := [][3]domain.Symbol{{a, a, b}, {a, b, a}, {b, a, a}}
	for _, p := range perms {
		assert.Equal(t, domain.OutcomePartialMatch, Classify(p[0], p[1], p[2]), "%v", p)
	}
	assert.Equal(t, domain.OutcomeJackpot, Classify(b, b, b))
	assert.Equal(t, domain.OutcomeNoMatch, Classify(SymbolBell, SymbolMoney, SymbolTiger))
}

// outcomeByCount scores a triple by the highest symbol multiplicity
func outcomeByCount(symbols [3]domain.Symbol) domain.Outcome {
	counts := map[domain.Symbol]int{}
	most := 0
	for _, s := range symbols {
		counts[s]++
		most = max(most, counts[s])
	}
	switch most {
	case 3:
		return domain.OutcomeJackpot
	case 2:
		return domain.OutcomePartialMatch
	default:
		return domain.OutcomeNoMatch
	}
}

func TestSpin_EveryTripleMatchesMultisetCount(t *testing.T) {
	t.Parallel()

	wantDelta := map[domain.Outcome]int{
		domain.OutcomeJackpot:      49,
		domain.OutcomePartialMatch: 9,
		domain.OutcomeNoMatch:      -1,
	}

	alphabets := map[string]Alphabet{
		"default": defaultAlphabet(t),
		"three":   {"A", "B", "C"},
		"seven":   {"A", "B", "C", "D", "E", "F", "G"},
	}

	for name, alphabet := range alphabets {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			n := len(alphabet)
			seen := map[domain.Outcome]int{}
			for i := range n {
				for j := range n {
					for k := range n {
						result, err := Spin(alphabet, &scriptedRNG{values: []int{i, j, k}})
						require.NoError(t, err)

						want := [3]domain.Symbol{alphabet[i], alphabet[j], alphabet[k]}
						require.Equal(t, want, result.Symbols)
						require.Equal(t, outcomeByCount(want), result.Outcome, "%v", want)
						require.Equal(t, wantDelta[result.Outcome], result.CoinDelta, "%v", want)
						seen[result.Outcome]++
					}
				}
			}

			// n jackpots, 3n(n-1) pairs, the rest all distinct
			assert.Equal(t, n, seen[domain.OutcomeJackpot])
			assert.Equal(t, 3*n*(n-1), seen[domain.OutcomePartialMatch])
			assert.Equal(t, n*(n-1)*(n-2), seen[domain.OutcomeNoMatch])
		})
	}
}

func TestPaytable_Delta(t *testing.T) {
	t.Parallel()

	p := Paytable{SpinCost: 2, JackpotPayout: 100, PairPayout: 5}
	assert.Equal(t, 98, p.Delta(domain.OutcomeJackpot))
	assert.Equal(t, 3, p.Delta(domain.OutcomePartialMatch))
	assert.Equal(t, -2, p.Delta(domain.OutcomeNoMatch))
}

func TestPaytable_Message(t *testing.T) {
	t.Parallel()

	p := DefaultPaytable()
	assert.Equal(t, "🎉 Jackpot! +50 coins!", p.Message(domain.OutcomeJackpot))
	assert.Equal(t, "🥳 You win! +10 coins!", p.Message(domain.OutcomePartialMatch))
	assert.Equal(t, MsgNoMatch, p.Message(domain.OutcomeNoMatch))
}

func TestEngine_SpinStaysInAlphabet(t *testing.T) {
	t.Parallel()

	alphabet := defaultAlphabet(t)
	engine := NewEngine(alphabet, DefaultPaytable())
	rng := NewRNG()
	counts := map[domain.Outcome]int{}

	for i := 0; i < 2000; i++ {
		res := engine.Spin(rng)
		for _, s := range res.Symbols {
			assert.Contains(t, alphabet, s)
		}
		assert.Equal(t, Classify(res.Symbols[0], res.Symbols[1], res.Symbols[2]), res.Outcome)
		counts[res.Outcome]++
	}

	// 2000 draws make each outcome all but certain (jackpot p=1/36)
	assert.Positive(t, counts[domain.OutcomeNoMatch])
	assert.Positive(t, counts[domain.OutcomePartialMatch])
	assert.Positive(t, counts[domain.OutcomeJackpot])
}
