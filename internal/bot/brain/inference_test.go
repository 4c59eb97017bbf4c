package brain

import (
	"math/rand"
	"testing"

	"github.com/sight-agent/maraffa/internal/domain"
)

func TestInferVoidsFromHistory(t *testing.T) {
	var o domain.Observation
	o.Phase = domain.PhasePlay
	o.Trump = 0
	o.TrickIndex = 1
	o.History[0] = domain.TrickRecord{
		Lead:    1,
		Players: [4]int{0, 1, 2, 3},
		Cards:   [4]domain.Card{12, 25, 15, 39},
	}
	// Open trick: player 2 leads the first suit, player 3 discards.
	o.Trick.Lead = 0
	o.Trick.Players[0], o.Trick.Cards[0] = 2, 0
	o.Trick.Players[1], o.Trick.Cards[1] = 3, 30
	o.Trick.Len = 2

	v := InferVoids(o)

	wantVoid := [][2]int{{1, 1}, {3, 1}, {3, 0}}
	for _, pv := range wantVoid {
		if !v.Void(pv[0], domain.Suit(pv[1])) {
			t.Errorf("player %d should be void in suit %d", pv[0], pv[1])
		}
	}
	for p := 0; p < domain.NumPlayers; p++ {
		for s := domain.Suit(0); s < domain.NumSuits; s++ {
			marked := false
			for _, pv := range wantVoid {
				if pv[0] == p && domain.Suit(pv[1]) == s {
					marked = true
				}
			}
			if !marked && v.Void(p, s) {
				t.Errorf("player %d wrongly marked void in suit %d", p, s)
			}
		}
	}
}

func TestInferredVoidsHoldInRealPlayouts(t *testing.T) {
	for seed := int64(1); seed <= 15; seed++ {
		hands, declarer := domain.DealFromSeed(seed)
		s, err := domain.NewState(hands, declarer)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if err := s.Apply(int(seed) & 3); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		rng := rand.New(rand.NewSource(seed))

		// Stop mid-hand so the remaining hands are still inspectable.
		for s.TrickIndex < 6 {
			legal := s.LegalActions(s.Current)
			if err := s.Apply(legal[rng.Intn(len(legal))]); err != nil {
				t.Fatalf("seed %d: %v", seed, err)
			}
		}

		v := InferVoids(s.Observe(0))
		for p := 0; p < domain.NumPlayers; p++ {
			for suit := domain.Suit(0); suit < domain.NumSuits; suit++ {
				if v.Void(p, suit) && s.Hands[p].Suit(suit) != 0 {
					t.Errorf("seed %d: player %d marked void in suit %d but still holds it", seed, p, suit)
				}
			}
		}
	}
}
