package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/SlotMachine_Go/internal/config"
	"github.com/osse101/SlotMachine_Go/internal/machine"
	"github.com/osse101/SlotMachine_Go/internal/score"
	"github.com/osse101/SlotMachine_Go/internal/slots"
	"github.com/osse101/SlotMachine_Go/internal/sse"
)

// ScoreConfig maps the loaded configuration onto the reconciler's settings
func ScoreConfig(cfg *config.Config) score.Config {
	return score.Config{
		RemoteTimeout: cfg.RemoteTimeout,
		StartingCoins: cfg.Machine.StartingCoins,
		RestartCoins:  cfg.Machine.RestartCoins,
		CacheTTL:      cfg.CacheTTL,
		CacheSize:     cfg.CacheSize,
	}
}

// RevealConfig maps the loaded configuration onto the reveal pacing
func RevealConfig(cfg *config.Config) machine.RevealConfig {
	return machine.RevealConfig{
		FastDelay:  cfg.RevealFastDelay,
		SlowDelay:  cfg.RevealSlowDelay,
		FastFrames: cfg.RevealFastFrames,
		SlowFrames: cfg.RevealSlowFrames,
	}
}

// NewMachine builds the outcome engine from the machine configuration and
// wraps it in a per-player registry that reveals frames through hub.
func NewMachine(cfg *config.Config, scores score.Service, hub *sse.Hub) (*machine.Registry, error) {
	alphabet, err := cfg.Machine.Alphabet()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidMachine, err)
	}
	paytable := cfg.Machine.Paytable()

	slog.Info(LogMsgMachineLoaded,
		"symbols", len(cfg.Machine.Symbols),
		"spin_cost", paytable.SpinCost,
		"jackpot", paytable.JackpotPayout,
		"pair", paytable.PairPayout,
		"path", cfg.MachineConfigPath)

	return machine.NewRegistry(slots.NewEngine(alphabet, paytable), paytable, scores, hub, hub,
		machine.WithReveal(RevealConfig(cfg))), nil
}
