package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/sight-agent/maraffa/internal/bot"
)

// SimConfig holds the simulation settings loadable from a JSON file.
type SimConfig struct {
	// Samples is the number of determinizations per candidate action of
	// the Monte Carlo bot.
	Samples int `json:"samples"`
	// Horizon truncates rollouts at this trick index (0 = full hand).
	Horizon int `json:"horizon"`
	// Workers sizes the series worker pool (0 = one per CPU).
	Workers int `json:"workers"`
	// Weights optionally overrides the built-in heuristic tuning; must
	// have exactly bot.NumWeights entries when present.
	Weights []float64 `json:"weights,omitempty"`
}

var (
	cfg      *SimConfig
	loadOnce sync.Once
	loadErr  error
)

// Load reads the simulation configuration once from the given path.
func Load(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read sim config: %w", err)
			return
		}
		var c SimConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal sim config: %w", err)
			return
		}
		if err := c.Validate(); err != nil {
			loadErr = err
			return
		}
		cfg = &c
	})
	return loadErr
}

// Get returns the loaded configuration, or nil when no file was loaded.
func Get() *SimConfig {
	return cfg
}

// Validate checks the loaded values.
func (c *SimConfig) Validate() error {
	if c.Samples < 0 || c.Horizon < 0 || c.Workers < 0 {
		return fmt.Errorf("sim config: negative counts")
	}
	if c.Weights != nil && len(c.Weights) != bot.NumWeights {
		return fmt.Errorf("sim config: weights must have %d entries, got %d", bot.NumWeights, len(c.Weights))
	}
	return nil
}

// BotWeights returns the configured weight override, or nil to use the
// built-in tuning.
func (c *SimConfig) BotWeights() *bot.Weights {
	if c == nil || c.Weights == nil {
		return nil
	}
	var v [bot.NumWeights]float64
	copy(v[:], c.Weights)
	w := bot.WeightsFromVector(v)
	return &w
}
