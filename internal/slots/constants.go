package slots

import "github.com/osse101/SlotMachine_Go/internal/domain"

// Default reel faces
const (
	SymbolCherry  domain.Symbol = "🍒"
	SymbolLemon   domain.Symbol = "🍋"
	SymbolBell    domain.Symbol = "🔔"
	SymbolDiamond domain.Symbol = "💎"
	SymbolTiger   domain.Symbol = "🐯"
	SymbolMoney   domain.Symbol = "💰"
)

// ReelCount is the number of reels drawn per spin
const ReelCount = 3

// MinAlphabetSize is the smallest alphabet for which all three outcomes are reachable
const MinAlphabetSize = 3

// Default pay table (gross amounts; the spin cost is subtracted once)
const (
	DefaultSpinCost      = 1
	DefaultJackpotPayout = 50
	DefaultPairPayout    = 10
)

// DefaultSymbols is the alphabet used when no machine config overrides it
var DefaultSymbols = []domain.Symbol{
	SymbolCherry,
	SymbolLemon,
	SymbolBell,
	SymbolDiamond,
	SymbolTiger,
	SymbolMoney,
}

// Result messages shown to the player
const (
	MsgJackpot    = "🎉 Jackpot! +%d coins!"
	MsgPairWin    = "🥳 You win! +%d coins!"
	MsgNoMatch    = "😢 Try again!"
	MsgOutOfCoins = "Out of coins! 💸"
)
