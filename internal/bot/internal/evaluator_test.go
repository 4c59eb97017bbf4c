package internal

import (
	"testing"

	"github.com/sight-agent/maraffa/internal/domain"
)

// playObs builds a mid-trick observation from (player, card) pairs in play
// order. The lead suit comes from the first card.
func playObs(player int, trump domain.Suit, plays ...[2]int) domain.Observation {
	o := domain.Observation{
		Player: player,
		Phase:  domain.PhasePlay,
		Trump:  trump,
	}
	o.Trick.Lead = domain.NoSuit
	for i, pc := range plays {
		o.Trick.Players[i] = pc[0]
		o.Trick.Cards[i] = domain.Card(pc[1])
	}
	o.Trick.Len = len(plays)
	if len(plays) > 0 {
		o.Trick.Lead = domain.Card(plays[0][1]).Suit()
	}
	return o
}

func TestWinningTeam(t *testing.T) {
	tests := []struct {
		name string
		o    domain.Observation
		want int
	}{
		{
			name: "empty trick has no winner",
			o:    playObs(0, 1),
			want: domain.NoTeam,
		},
		{
			name: "lone lead card wins",
			o:    playObs(2, 1, [2]int{1, 5}),
			want: 1,
		},
		{
			name: "higher lead suit card takes over",
			o:    playObs(3, 1, [2]int{1, 5}, [2]int{2, 2}),
			want: 0,
		},
		{
			name: "trump beats the strongest lead card",
			o:    playObs(2, 3, [2]int{0, 0}, [2]int{1, 39}),
			want: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WinningTeam(tt.o); got != tt.want {
				t.Errorf("WinningTeam() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWinsIfPlayed(t *testing.T) {
	// Player 0 considers a reply to the knight of the first suit.
	base := playObs(0, 3, [2]int{1, 5})

	tests := []struct {
		name string
		card domain.Card
		want bool
	}{
		{name: "stronger lead suit card wins", card: 2, want: true},
		{name: "weaker lead suit card loses", card: 6, want: false},
		{name: "any trump wins over the lead", card: 39, want: true},
		{name: "off-suit non-trump never wins", card: 15, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WinsIfPlayed(base, tt.card); got != tt.want {
				t.Errorf("WinsIfPlayed(%v) = %v, want %v", tt.card, got, tt.want)
			}
		})
	}

	t.Run("leading never wins", func(t *testing.T) {
		if WinsIfPlayed(playObs(0, 3), 0) {
			t.Error("a lead card should not count as winning")
		}
	})
}

func TestTableThirds(t *testing.T) {
	// Ace (3 thirds) plus king (1 third) on the table.
	o := playObs(3, 1, [2]int{1, 2}, [2]int{2, 13})
	if got := TableThirds(o); got != 4 {
		t.Errorf("TableThirds() = %d, want 4", got)
	}
}

func TestWinners(t *testing.T) {
	o := playObs(0, 3, [2]int{1, 5})
	got := Winners(o, []int{6, 2, 15, 39})
	want := []int{2, 39}
	if len(got) != len(want) {
		t.Fatalf("Winners() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Winners() = %v, want %v", got, want)
		}
	}
}

func TestMinBy(t *testing.T) {
	t.Run("picks the cheapest", func(t *testing.T) {
		got := MinBy([]int{2, 3, 6}, func(c domain.Card) float64 {
			return float64(c.Thirds())
		})
		if got != 6 { // seven of the first suit, worth nothing
			t.Errorf("MinBy() = %d, want 6", got)
		}
	})

	t.Run("ties go to the first candidate", func(t *testing.T) {
		got := MinBy([]int{12, 2, 22}, func(c domain.Card) float64 {
			return float64(c.Thirds()) // all aces, all equal
		})
		if got != 12 {
			t.Errorf("MinBy() = %d, want 12", got)
		}
	})
}
