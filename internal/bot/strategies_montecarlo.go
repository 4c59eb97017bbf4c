package bot

import (
	"math/rand"

	"github.com/sight-agent/maraffa/internal/bot/brain"
	botinternal "github.com/sight-agent/maraffa/internal/bot/internal"
	"github.com/sight-agent/maraffa/internal/domain"
)

const (
	defaultSamples = 32
	// lazyChoiceLimit is the materiality gate: with no points on the table
	// and at most this many legal cards the decision is judged low-stakes
	// and deferred to the cheap baseline.
	lazyChoiceLimit = 2
)

// SearchStats counts what the search actually did, mainly so callers can
// surface determinizer fallbacks (each one weakens the constraint
// guarantee of the rollouts that used it).
type SearchStats struct {
	Decisions int
	Deferred  int
	Samples   int
	Fallbacks int
}

// MonteCarloBot evaluates each legal action by determinizing the hidden
// hands, applying the action and rolling the hypothesis out with the
// heuristic baseline on every seat, then picks the best average point
// differential. One bot instance may drive both seats of a team; its hand
// memory then pins the teammate's cards so only opponents are sampled.
type MonteCarloBot struct {
	W        Weights
	Samples  int
	Horizon  int
	Salt     uint64
	Baseline Policy
	Memory   *brain.HandMemory

	stats SearchStats
}

func NewMonteCarloBot(opts Options) *MonteCarloBot {
	w := opts.weights()
	samples := opts.Samples
	if samples <= 0 {
		samples = defaultSamples
	}
	horizon := opts.Horizon
	if horizon <= 0 || horizon > domain.NumTricks {
		horizon = domain.NumTricks
	}
	return &MonteCarloBot{
		W:        w,
		Samples:  samples,
		Horizon:  horizon,
		Salt:     uint64(opts.Seed),
		Baseline: &HeuristicBot{W: w},
		Memory:   brain.NewHandMemory(),
	}
}

// Stats returns what the search has done so far.
func (b *MonteCarloBot) Stats() SearchStats {
	return b.stats
}

func (b *MonteCarloBot) ChooseTrump(o domain.Observation, legal []int) int {
	b.Memory.Observe(o)
	if len(legal) == 1 {
		b.stats.Deferred++
		return legal[0]
	}
	return b.search(o, legal)
}

func (b *MonteCarloBot) PlayCard(o domain.Observation, legal []int) int {
	b.Memory.Observe(o)
	if len(legal) == 1 {
		b.stats.Deferred++
		return legal[0]
	}
	if botinternal.TableThirds(o) == 0 && len(legal) <= lazyChoiceLimit {
		b.stats.Deferred++
		return b.Baseline.PlayCard(o, legal)
	}
	return b.search(o, legal)
}

// search runs the sampling loop. The generator is derived from the
// observation itself, so repeating the identical decision replays the
// identical samples and returns the identical action.
func (b *MonteCarloBot) search(o domain.Observation, legal []int) int {
	rng := rand.New(rand.NewSource(decisionSeed(o, b.Salt)))
	seats := [domain.NumPlayers]Policy{b.Baseline, b.Baseline, b.Baseline, b.Baseline}
	team := o.Team()

	b.stats.Decisions++
	best := legal[0]
	bestAvg := negInf
	for _, action := range legal {
		total := 0.0
		for i := 0; i < b.Samples; i++ {
			smp := brain.Determinize(o, b.Memory, rng)
			if !smp.Constrained {
				b.stats.Fallbacks++
			}
			st := smp.State
			// The hypothesis keeps the actor's hand and the open trick, so
			// an action legal in the real state stays legal here.
			if err := st.Apply(action); err != nil {
				continue
			}
			Rollout(&st, seats, b.Horizon)
			total += float64(st.DiffThirds(team)) / 3
		}
		b.stats.Samples += b.Samples
		if avg := total / float64(b.Samples); avg > bestAvg {
			bestAvg = avg
			best = action
		}
	}
	return best
}

// decisionSeed hashes the observable decision identity: the played-card
// set, the acting player's own hand, the trick position and the declared
// trump, mixed with the bot's salt.
func decisionSeed(o domain.Observation, salt uint64) int64 {
	words := [3]uint64{
		uint64(o.Played),
		uint64(o.Hand),
		uint64(o.Player)<<40 | uint64(o.TrickIndex)<<32 |
			uint64(o.Trick.Len)<<24 | uint64(int64(o.Trump)+1)<<16,
	}
	h := salt ^ 0x9e3779b97f4a7c15
	for _, v := range words {
		h ^= v
		h = (h ^ (h >> 30)) * 0xbf58476d1ce4e5b9
		h = (h ^ (h >> 27)) * 0x94d049bb133111eb
		h ^= h >> 31
	}
	return int64(h)
}
