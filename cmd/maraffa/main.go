// Command maraffa runs Maraffa bot series and weight tuning.
//
//	maraffa match -hands 2000 -even montecarlo -odd heuristic
//	maraffa tune -iters 200 -pop 12 -deals 200
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/sight-agent/maraffa/internal/bot"
	"github.com/sight-agent/maraffa/internal/config"
	"github.com/sight-agent/maraffa/internal/match"
	"github.com/sight-agent/maraffa/internal/tuner"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "match":
		err = runMatch(os.Args[2:])
	case "tune":
		err = runTune(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		newLogger(false).Error("command failed", "err", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: maraffa <match|tune> [flags]")
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) {
		handler = tint.NewHandler(os.Stderr, &tint.Options{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler)
}

func runMatch(args []string) error {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	hands := fs.Int("hands", 2000, "total hands (rounded down to an even number)")
	seed := fs.Int64("seed", 11, "base deal seed")
	evenName := fs.String("even", "heuristic", "policy for seats 0 and 2 (random|heuristic|montecarlo)")
	oddName := fs.String("odd", "random", "policy for seats 1 and 3")
	samples := fs.Int("samples", 0, "montecarlo determinizations per action (0 = default)")
	horizon := fs.Int("horizon", 0, "montecarlo rollout horizon in tricks (0 = full hand)")
	workers := fs.Int("workers", 0, "worker pool size (0 = one per CPU)")
	cfgPath := fs.String("config", "", "optional sim config JSON file")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger := newLogger(*verbose)

	mcSamples, mcHorizon, mcWorkers := *samples, *horizon, *workers
	var weights *bot.Weights
	if *cfgPath != "" {
		if err := config.Load(*cfgPath); err != nil {
			return err
		}
		c := config.Get()
		if mcSamples == 0 {
			mcSamples = c.Samples
		}
		if mcHorizon == 0 {
			mcHorizon = c.Horizon
		}
		if mcWorkers == 0 {
			mcWorkers = c.Workers
		}
		weights = c.BotWeights()
	}

	evenLevel, err := bot.ParseLevel(*evenName)
	if err != nil {
		return err
	}
	oddLevel, err := bot.ParseLevel(*oddName)
	if err != nil {
		return err
	}
	factory := func(level bot.Level) match.PolicyFactory {
		return func(dealSeed int64) bot.Policy {
			p, err := bot.New(level, bot.Options{
				Seed:    dealSeed,
				Weights: weights,
				Samples: mcSamples,
				Horizon: mcHorizon,
			})
			if err != nil {
				panic(err) // levels were validated above
			}
			return p
		}
	}

	cfg := match.SeriesConfig{
		Deals:   *hands / 2,
		Seed:    *seed,
		Workers: mcWorkers,
		Even:    factory(evenLevel),
		Odd:     factory(oddLevel),
	}
	result, err := match.PlaySeries(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("series=%s hands=%d deals=%d\n", result.ID, result.Hands, result.Deals)
	fmt.Printf("W/D/L=%d/%d/%d winrate=%.4f\n", result.Wins, result.Draws, result.Losses, result.Winrate())
	fmt.Println("pentanomial (per deal, 2 hands/deal):")
	labels := [5]string{"2.0  (WW)", "1.5 (W+D)", "1.0 (WL/DD)", "0.5 (L+D)", "0.0  (LL)"}
	for i, label := range labels {
		fmt.Printf("  %s: %d\n", label, result.Pentanomial[i])
	}
	if secs := result.Elapsed.Seconds(); secs > 0 {
		fmt.Printf("hands_per_sec=%.1f\n", float64(result.Hands)/secs)
	}
	return nil
}

func runTune(args []string) error {
	fs := flag.NewFlagSet("tune", flag.ExitOnError)
	iters := fs.Int("iters", 200, "search iterations")
	pop := fs.Int("pop", 12, "mutated candidates per iteration")
	deals := fs.Int("deals", 200, "paired deals per evaluation")
	seed := fs.Int64("seed", 7000, "search seed")
	sigma := fs.Float64("sigma", 0.25, "initial perturbation sigma")
	patience := fs.Int("patience", 30, "iterations without improvement before stopping")
	workers := fs.Int("workers", 0, "worker pool size (0 = one per CPU)")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger := newLogger(*verbose)

	report, err := tuner.Tune(tuner.Options{
		Iters:    *iters,
		Pop:      *pop,
		Deals:    *deals,
		Patience: *patience,
		Workers:  *workers,
		Sigma:    *sigma,
		Seed:     *seed,
	}, logger)
	if err != nil {
		return err
	}

	fmt.Printf("iterations=%d train=%.4f val=%.4f\n", report.Iterations, report.TrainRate, report.ValRate)
	fmt.Println("best weights:")
	for _, w := range report.Best.Vector() {
		fmt.Printf("  %.6f\n", w)
	}
	return nil
}
