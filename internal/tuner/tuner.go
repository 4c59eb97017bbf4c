// Package tuner hill-climbs the heuristic weight vector against the
// default tuning: multiplicative log-normal perturbations, paired-winrate
// evaluation on a per-iteration deal stream, gentle sigma annealing and a
// patience stop.
package tuner

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/sight-agent/maraffa/internal/bot"
	"github.com/sight-agent/maraffa/internal/match"
)

// Options configures a tuning run.
type Options struct {
	Iters    int
	Pop      int // mutated candidates per iteration, on top of the incumbent
	Deals    int // paired deals per evaluation
	Patience int // iterations without improvement before stopping
	Workers  int
	Sigma    float64
	Seed     int64
	// Target stops early once both train and validation winrates reach it.
	Target float64
}

func (o Options) withDefaults() Options {
	if o.Iters <= 0 {
		o.Iters = 200
	}
	if o.Pop <= 0 {
		o.Pop = 12
	}
	if o.Deals <= 0 {
		o.Deals = 200
	}
	if o.Patience <= 0 {
		o.Patience = 30
	}
	if o.Sigma <= 0 {
		o.Sigma = 0.25
	}
	if o.Target <= 0 {
		o.Target = 0.70
	}
	return o
}

// Report is the outcome of a tuning run.
type Report struct {
	Best       bot.Weights
	TrainRate  float64
	ValRate    float64
	Iterations int
}

// Tune searches for weights beating the default tuning. The train and
// validation deal streams advance every iteration but stay identical across
// the candidates of one iteration, so comparisons within an iteration are
// paired.
func Tune(opts Options, logger *slog.Logger) (Report, error) {
	opts = opts.withDefaults()
	rng := rand.New(rand.NewSource(opts.Seed))

	best := bot.DefaultTuning
	sigma := opts.Sigma

	trainRate, err := evaluate(best, opts, opts.Seed+123)
	if err != nil {
		return Report{}, err
	}
	valRate, err := evaluate(best, opts, opts.Seed+999)
	if err != nil {
		return Report{}, err
	}
	logger.Info("tuning start",
		"train", trainRate, "val", valRate,
		"sigma", sigma, "deals", opts.Deals, "pop", opts.Pop)

	stale := 0
	iterations := 0
	for it := 0; it < opts.Iters; it++ {
		iterations = it + 1
		trainSeed := opts.Seed + 123 + int64(it)
		valSeed := opts.Seed + 999 + int64(it)

		candidates := make([]bot.Weights, 0, opts.Pop+1)
		for i := 0; i < opts.Pop; i++ {
			candidates = append(candidates, propose(rng, best, sigma))
		}
		candidates = append(candidates, best)

		topRate := math.Inf(-1)
		var top bot.Weights
		for _, cand := range candidates {
			rate, err := evaluate(cand, opts, trainSeed)
			if err != nil {
				return Report{}, err
			}
			if rate > topRate {
				topRate = rate
				top = cand
			}
		}

		if topRate > trainRate+1e-9 {
			best = top
			trainRate = topRate
			valRate, err = evaluate(best, opts, valSeed)
			if err != nil {
				return Report{}, err
			}
			stale = 0
			logger.Info("improved",
				"iter", it, "train", trainRate, "val", valRate, "sigma", sigma)
		} else {
			stale++
		}

		if (it+1)%25 == 0 {
			sigma *= 0.85
		}
		if trainRate >= opts.Target && valRate >= opts.Target {
			break
		}
		if stale >= opts.Patience {
			break
		}
	}

	return Report{Best: best, TrainRate: trainRate, ValRate: valRate, Iterations: iterations}, nil
}

// evaluate plays candidate weights (even team) against the default tuning
// (odd team) and returns the candidate's paired winrate.
func evaluate(w bot.Weights, opts Options, seed int64) (float64, error) {
	cand := w
	cfg := match.SeriesConfig{
		Deals:   opts.Deals,
		Seed:    seed,
		Workers: opts.Workers,
		Even: func(int64) bot.Policy {
			return &bot.HeuristicBot{W: cand}
		},
		Odd: func(int64) bot.Policy {
			return &bot.HeuristicBot{W: bot.DefaultTuning}
		},
	}
	result, err := match.PlaySeries(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		return 0, err
	}
	return result.Winrate(), nil
}

// propose perturbs every weight multiplicatively with log-normal noise plus
// a small additive term, clips to a sane range and keeps the penalty and
// maraffa-indicator weights non-negative.
func propose(rng *rand.Rand, base bot.Weights, sigma float64) bot.Weights {
	v := base.Vector()
	for i := range v {
		sign := 1.0
		if v[i] < 0 {
			sign = -1.0
		}
		mag := math.Abs(v[i])
		cand := sign * mag * math.Exp(rng.NormFloat64()*sigma)
		cand += rng.NormFloat64() * 0.05 * sigma
		v[i] = math.Max(-20, math.Min(20, cand))
	}
	w := bot.WeightsFromVector(v)
	w.LeadTrumpPenalty = math.Max(0, w.LeadTrumpPenalty)
	w.SupportDumpTrump = math.Max(0, w.SupportDumpTrump)
	w.TrumpHasThree = math.Max(0, w.TrumpHasThree)
	w.TrumpHasTwo = math.Max(0, w.TrumpHasTwo)
	w.TrumpHasAce = math.Max(0, w.TrumpHasAce)
	return w
}
