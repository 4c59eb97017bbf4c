package match

import (
	"log/slog"
	"testing"

	"github.com/sight-agent/maraffa/internal/bot"
	"github.com/sight-agent/maraffa/internal/domain"
)

func TestPlayHandFinishesAndConserves(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		hands, declarer := domain.DealFromSeed(seed)
		s, err := domain.NewState(hands, declarer)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		even := &bot.HeuristicBot{W: bot.DefaultTuning}
		odd := bot.NewRandomBot(seed)
		if err := PlayHand(&s, even, odd); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		if !s.IsTerminal() {
			t.Fatalf("seed %d: hand did not end", seed)
		}
		want := domain.DeckThirds
		if s.BonusTeam != domain.NoTeam {
			want += domain.MaraffaBonusThirds
		}
		if total := s.Scores[0] + s.Scores[1]; total != want {
			t.Errorf("seed %d: total thirds = %d, want %d", seed, total, want)
		}
	}
}

func seriesConfig(deals int, workers int) SeriesConfig {
	return SeriesConfig{
		Deals:   deals,
		Seed:    100,
		Workers: workers,
		Even: func(int64) bot.Policy {
			return &bot.HeuristicBot{W: bot.DefaultTuning}
		},
		Odd: func(seed int64) bot.Policy {
			return bot.NewRandomBot(seed)
		},
	}
}

func TestPlaySeriesAccounting(t *testing.T) {
	result, err := PlaySeries(seriesConfig(30, 3), slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatal(err)
	}

	if result.ID == "" {
		t.Error("series has no id")
	}
	if result.Deals != 30 || result.Hands != 60 {
		t.Errorf("deals/hands = %d/%d, want 30/60", result.Deals, result.Hands)
	}
	if result.Wins+result.Draws+result.Losses != result.Hands {
		t.Errorf("W+D+L = %d, want %d", result.Wins+result.Draws+result.Losses, result.Hands)
	}
	binned := 0
	for _, n := range result.Pentanomial {
		binned += n
	}
	if binned != result.Deals {
		t.Errorf("pentanomial sums to %d, want %d", binned, result.Deals)
	}
	if rate := result.Winrate(); rate < 0 || rate > 1 {
		t.Errorf("winrate %f out of range", rate)
	}
}

func TestPlaySeriesIsSchedulerIndependent(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	serial, err := PlaySeries(seriesConfig(20, 1), logger)
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := PlaySeries(seriesConfig(20, 4), logger)
	if err != nil {
		t.Fatal(err)
	}

	if serial.Wins != parallel.Wins || serial.Draws != parallel.Draws || serial.Losses != parallel.Losses {
		t.Errorf("worker count changed the outcome: %d/%d/%d vs %d/%d/%d",
			serial.Wins, serial.Draws, serial.Losses,
			parallel.Wins, parallel.Draws, parallel.Losses)
	}
	if serial.Pentanomial != parallel.Pentanomial {
		t.Errorf("worker count changed the pentanomial: %v vs %v",
			serial.Pentanomial, parallel.Pentanomial)
	}
}

func TestPlayDealBuildsFreshPoliciesPerHand(t *testing.T) {
	evenCalls, oddCalls := 0, 0
	cfg := SeriesConfig{
		Deals:   1,
		Seed:    5,
		Workers: 1,
		Even: func(int64) bot.Policy {
			evenCalls++
			return &bot.HeuristicBot{W: bot.DefaultTuning}
		},
		Odd: func(seed int64) bot.Policy {
			oddCalls++
			return bot.NewRandomBot(seed)
		},
	}

	out := playDeal(cfg, 0)
	if out.err != nil {
		t.Fatal(out.err)
	}
	// Per-hand construction keeps one hand's policy state out of the next;
	// a shared instance would carry its hand memory across the rotation.
	if evenCalls != 2 || oddCalls != 2 {
		t.Errorf("factories called %d/%d times, want 2/2", evenCalls, oddCalls)
	}
}

func TestPlaySeriesCollectsSearchStats(t *testing.T) {
	cfg := SeriesConfig{
		Deals:   3,
		Seed:    7,
		Workers: 1,
		Even: func(seed int64) bot.Policy {
			return bot.NewMonteCarloBot(bot.Options{Seed: seed, Samples: 2, Horizon: 3})
		},
		Odd: func(seed int64) bot.Policy {
			return bot.NewRandomBot(seed)
		},
	}
	result, err := PlaySeries(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatal(err)
	}
	if result.SearchStats.Decisions == 0 && result.SearchStats.Deferred == 0 {
		t.Error("no search activity was collected")
	}
}

func TestPlaySeriesEmptyConfig(t *testing.T) {
	result, err := PlaySeries(SeriesConfig{}, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatal(err)
	}
	if result.Hands != 0 || result.Winrate() != 0 {
		t.Errorf("empty series produced %d hands, winrate %f", result.Hands, result.Winrate())
	}
}

func TestBinOf(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{2.0, 0}, {1.5, 1}, {1.0, 2}, {0.5, 3}, {0.0, 4},
	}
	for _, tt := range tests {
		if got := binOf(tt.score); got != tt.want {
			t.Errorf("binOf(%v) = %d, want %d", tt.score, got, tt.want)
		}
	}
}
