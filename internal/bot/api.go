package bot

import (
	"fmt"

	"github.com/sight-agent/maraffa/internal/domain"
)

// Policy is the decision contract every bot implements. Both calls receive a
// non-empty legal action slice and must answer with one of its elements:
// suit ids for ChooseTrump, card ids for PlayCard.
type Policy interface {
	ChooseTrump(o domain.Observation, legal []int) int
	PlayCard(o domain.Observation, legal []int) int
}

// Level selects a bot strength.
type Level int

const (
	LevelRandom Level = iota
	LevelHeuristic
	LevelMonteCarlo
)

// ParseLevel maps a CLI name to a bot level.
func ParseLevel(name string) (Level, error) {
	switch name {
	case "random":
		return LevelRandom, nil
	case "heuristic":
		return LevelHeuristic, nil
	case "montecarlo":
		return LevelMonteCarlo, nil
	default:
		return 0, fmt.Errorf("unknown bot level: %q", name)
	}
}

func (l Level) String() string {
	switch l {
	case LevelRandom:
		return "random"
	case LevelHeuristic:
		return "heuristic"
	case LevelMonteCarlo:
		return "montecarlo"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Options configures policy construction.
type Options struct {
	// Seed feeds the random bot's generator and salts the Monte Carlo
	// bot's per-decision seed derivation.
	Seed int64
	// Weights overrides DefaultTuning when non-nil.
	Weights *Weights
	// Samples is the number of determinizations per candidate action.
	Samples int
	// Horizon truncates rollouts at this trick index; 0 means play out the
	// whole hand.
	Horizon int
}

func (o Options) weights() Weights {
	if o.Weights != nil {
		return *o.Weights
	}
	return DefaultTuning
}

// New creates a policy of the requested level.
func New(level Level, opts Options) (Policy, error) {
	switch level {
	case LevelRandom:
		return NewRandomBot(opts.Seed), nil
	case LevelHeuristic:
		return &HeuristicBot{W: opts.weights()}, nil
	case LevelMonteCarlo:
		return NewMonteCarloBot(opts), nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}
