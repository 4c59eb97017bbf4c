// Package match runs hands and paired series between two team policies.
// Each deal is played twice, as dealt and rotated by one seat with the
// declarer advanced, so neither team keeps a seating advantage; the pair's
// combined score feeds a pentanomial distribution.
package match

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sight-agent/maraffa/internal/bot"
	"github.com/sight-agent/maraffa/internal/domain"
)

// PlayHand drives one hand to completion. Seats 0 and 2 consult even, seats
// 1 and 3 consult odd; every decision goes through the observation
// projection, never the state itself.
func PlayHand(s *domain.State, even, odd bot.Policy) error {
	for !s.IsTerminal() {
		p := s.Current
		policy := even
		if p&1 == 1 {
			policy = odd
		}
		legal := s.LegalActions(p)
		if len(legal) == 0 {
			return fmt.Errorf("no legal actions for player %d at trick %d", p, s.TrickIndex)
		}
		o := s.Observe(p)
		var action int
		if s.Phase == domain.PhaseTrumpSelection {
			action = policy.ChooseTrump(o, legal)
		} else {
			action = policy.PlayCard(o, legal)
		}
		if err := s.Apply(action); err != nil {
			return err
		}
	}
	return nil
}

// PolicyFactory builds a fresh policy for one hand. Construction is per
// hand and seeded by the deal index, so results do not depend on how deals
// land on workers, and no per-hand policy state can leak from one hand of a
// pair into the next.
type PolicyFactory func(seed int64) bot.Policy

// SeriesConfig configures a paired series.
type SeriesConfig struct {
	Deals   int
	Seed    int64
	Workers int
	Even    PolicyFactory
	Odd     PolicyFactory
}

// SeriesResult aggregates a series from the even team's perspective.
type SeriesResult struct {
	ID    string
	Deals int
	Hands int

	Wins   int
	Draws  int
	Losses int

	// Pentanomial bins the per-deal pair score: index 0 holds 2.0 (two
	// wins) down to index 4 holding 0.0 (two losses).
	Pentanomial [5]int

	// SearchStats sums the Monte Carlo search counters of every policy
	// instance that exposed them; Fallbacks in particular reports how
	// often determinization abandoned its constraints.
	SearchStats bot.SearchStats

	Elapsed time.Duration
}

// Winrate returns the even team's score rate over all hands.
func (r SeriesResult) Winrate() float64 {
	if r.Hands == 0 {
		return 0
	}
	return (float64(r.Wins) + 0.5*float64(r.Draws)) / float64(r.Hands)
}

type dealOutcome struct {
	score float64 // pair score: 2, 1.5, 1, 0.5 or 0
	wins  int
	draws int
	stats bot.SearchStats
	err   error
}

// PlaySeries plays cfg.Deals paired deals, fanning the work over a fixed
// worker pool.
func PlaySeries(cfg SeriesConfig, logger *slog.Logger) (SeriesResult, error) {
	result := SeriesResult{
		ID:    uuid.NewString(),
		Deals: cfg.Deals,
		Hands: cfg.Deals * 2,
	}
	if cfg.Deals <= 0 {
		return result, nil
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	logger.Info("series start",
		"id", result.ID, "deals", cfg.Deals, "seed", cfg.Seed, "workers", workers)
	start := time.Now()

	tasks := make(chan int, cfg.Deals)
	outcomes := make(chan dealOutcome, cfg.Deals)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for deal := range tasks {
				outcomes <- playDeal(cfg, deal)
			}
		}()
	}
	for deal := 0; deal < cfg.Deals; deal++ {
		tasks <- deal
	}
	close(tasks)
	go func() {
		wg.Wait()
		close(outcomes)
	}()

	var firstErr error
	for out := range outcomes {
		if out.err != nil {
			if firstErr == nil {
				firstErr = out.err
			}
			continue
		}
		result.Wins += out.wins
		result.Draws += out.draws
		result.Losses += 2 - out.wins - out.draws
		result.Pentanomial[binOf(out.score)]++
		result.SearchStats.Decisions += out.stats.Decisions
		result.SearchStats.Deferred += out.stats.Deferred
		result.SearchStats.Samples += out.stats.Samples
		result.SearchStats.Fallbacks += out.stats.Fallbacks
	}
	result.Elapsed = time.Since(start)
	if firstErr != nil {
		return result, firstErr
	}

	logger.Info("series complete",
		"id", result.ID,
		"hands", result.Hands,
		"wdl", fmt.Sprintf("%d/%d/%d", result.Wins, result.Draws, result.Losses),
		"winrate", result.Winrate(),
		"hands_per_sec", float64(result.Hands)/result.Elapsed.Seconds())
	if result.SearchStats.Fallbacks > 0 {
		logger.Warn("determinizer fell back to unconstrained deals",
			"id", result.ID,
			"fallbacks", result.SearchStats.Fallbacks,
			"samples", result.SearchStats.Samples)
	}
	return result, nil
}

// playDeal plays one deal twice: as dealt, then rotated one seat with the
// declarer advanced. Each hand gets freshly built policies; a hand memory
// carried across the rotation would pin a teammate to cards an opponent now
// holds.
func playDeal(cfg SeriesConfig, deal int) dealOutcome {
	seed := cfg.Seed + int64(deal)
	hands, declarer := domain.DealFromSeed(seed)

	var out dealOutcome
	var used []bot.Policy
	play := func(h [domain.NumPlayers]domain.Hand, decl int) (float64, error) {
		even := cfg.Even(seed)
		odd := cfg.Odd(seed + 1)
		used = append(used, even, odd)
		return playOne(h, decl, even, odd)
	}

	s1, err := play(hands, declarer)
	if err != nil {
		out.err = fmt.Errorf("deal %d: %w", deal, err)
		return out
	}
	s2, err := play(domain.RotateHands(hands, 1), (declarer+1)&3)
	if err != nil {
		out.err = fmt.Errorf("deal %d rotated: %w", deal, err)
		return out
	}

	for _, sc := range [2]float64{s1, s2} {
		switch sc {
		case 1.0:
			out.wins++
		case 0.5:
			out.draws++
		}
	}
	out.score = s1 + s2
	for _, p := range used {
		if mc, ok := p.(*bot.MonteCarloBot); ok {
			st := mc.Stats()
			out.stats.Decisions += st.Decisions
			out.stats.Deferred += st.Deferred
			out.stats.Samples += st.Samples
			out.stats.Fallbacks += st.Fallbacks
		}
	}
	return out
}

func playOne(hands [domain.NumPlayers]domain.Hand, declarer int, even, odd bot.Policy) (float64, error) {
	state, err := domain.NewState(hands, declarer)
	if err != nil {
		return 0, err
	}
	if err := PlayHand(&state, even, odd); err != nil {
		return 0, err
	}
	switch {
	case state.Scores[0] > state.Scores[1]:
		return 1.0, nil
	case state.Scores[1] > state.Scores[0]:
		return 0.0, nil
	default:
		return 0.5, nil
	}
}

func binOf(score float64) int {
	// 2.0 → 0, 1.5 → 1, 1.0 → 2, 0.5 → 3, 0.0 → 4
	return 4 - int(score*2)
}
