package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/slots"
)

// MachineConfig describes the reel faces and pay table of the machine.
// Fields left out of the YAML file keep their defaults.
type MachineConfig struct {
	Symbols       []string `yaml:"symbols"`
	SpinCost      int      `yaml:"spin_cost"`
	JackpotPayout int      `yaml:"jackpot_payout"`
	PairPayout    int      `yaml:"pair_payout"`
	StartingCoins int      `yaml:"starting_coins"`
	RestartCoins  int      `yaml:"restart_coins"`
}

// DefaultMachineConfig returns the stock six-symbol machine
func DefaultMachineConfig() *MachineConfig {
	symbols := make([]string, len(slots.DefaultSymbols))
	for i, s := range slots.DefaultSymbols {
		symbols[i] = string(s)
	}
	return &MachineConfig{
		Symbols:       symbols,
		SpinCost:      slots.DefaultSpinCost,
		JackpotPayout: slots.DefaultJackpotPayout,
		PairPayout:    slots.DefaultPairPayout,
		StartingCoins: domain.DefaultStartingCoins,
		RestartCoins:  domain.DefaultRestartCoins,
	}
}

// LoadMachineConfig reads a machine YAML file. An empty path yields the defaults.
func LoadMachineConfig(path string) (*MachineConfig, error) {
	cfg := DefaultMachineConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse machine config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid machine config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the pay table and alphabet
func (m *MachineConfig) Validate() error {
	if _, err := m.Alphabet(); err != nil {
		return err
	}
	if m.SpinCost < 0 || m.JackpotPayout < 0 || m.PairPayout < 0 {
		return fmt.Errorf("spin_cost and payouts must not be negative")
	}
	if m.StartingCoins < 0 || m.RestartCoins < 0 {
		return fmt.Errorf("starting_coins and restart_coins must not be negative")
	}
	return nil
}

// Alphabet converts the configured symbols into a validated reel alphabet
func (m *MachineConfig) Alphabet() (slots.Alphabet, error) {
	symbols := make([]domain.Symbol, len(m.Symbols))
	for i, s := range m.Symbols {
		symbols[i] = domain.Symbol(s)
	}
	return slots.NewAlphabet(symbols)
}

// Paytable returns the pay table described by the config
func (m *MachineConfig) Paytable() slots.Paytable {
	return slots.Paytable{
		SpinCost:      m.SpinCost,
		JackpotPayout: m.JackpotPayout,
		PairPayout:    m.PairPayout,
	}
}
