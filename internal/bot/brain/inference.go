// Package brain derives hidden-information estimates from public game
// history: certain suit voids, remembered teammate hands, and full
// determinized hypotheses for Monte Carlo search.
package brain

import "github.com/sight-agent/maraffa/internal/domain"

// VoidTable records, per player and suit, whether the player is certainly
// void in that suit.
type VoidTable [domain.NumPlayers][domain.NumSuits]bool

// Void reports whether the player is known to hold no cards of the suit.
func (v VoidTable) Void(player int, suit domain.Suit) bool {
	return v[player][suit]
}

// InferVoids scans the resolved tricks and the trick in progress. Following
// suit is mandatory whenever possible, so any off-lead play proves the
// player holds none of the lead suit. The accumulation is monotonic: the
// history is append-only and played cards never return to a hand.
func InferVoids(o domain.Observation) VoidTable {
	var v VoidTable
	for i := 0; i < o.TrickIndex; i++ {
		rec := o.History[i]
		for j := 0; j < domain.NumPlayers; j++ {
			if rec.Cards[j].Suit() != rec.Lead {
				v[rec.Players[j]][rec.Lead] = true
			}
		}
	}
	for j := 0; j < o.Trick.Len; j++ {
		if o.Trick.Cards[j].Suit() != o.Trick.Lead {
			v[o.Trick.Players[j]][o.Trick.Lead] = true
		}
	}
	return v
}
