package bot

import (
	botinternal "github.com/sight-agent/maraffa/internal/bot/internal"
	"github.com/sight-agent/maraffa/internal/domain"
)

// HeuristicBot is a stateless linear policy over observation features. It is
// both a playable level of its own and the rollout baseline inside the
// Monte Carlo bot.
type HeuristicBot struct {
	W Weights
}

// ChooseTrump scores each candidate suit by the hand restricted to it:
// card count, summed points, summed strength and the three maraffa-rank
// indicator bits. First-seen argmax.
func (b *HeuristicBot) ChooseTrump(o domain.Observation, legal []int) int {
	w := b.W
	best := legal[0]
	bestScore := negInf
	for _, a := range legal {
		s := domain.Suit(a)
		m := o.Hand.Suit(s)

		pts := 0.0
		strength := 0.0
		for _, c := range m.Cards() {
			pts += float64(c.Thirds()) / 3
			strength += float64(c.Strength()) / 9
		}
		hasThree := indicator(o.Hand.Has(domain.CardOf(s, 0)))
		hasTwo := indicator(o.Hand.Has(domain.CardOf(s, 1)))
		hasAce := indicator(o.Hand.Has(domain.CardOf(s, 2)))

		score := w.TrumpCount*float64(m.Count()) +
			w.TrumpThirds*pts +
			w.TrumpStrength*strength +
			w.TrumpHasThree*hasThree +
			w.TrumpHasTwo*hasTwo +
			w.TrumpHasAce*hasAce
		if score > bestScore {
			bestScore = score
			best = a
		}
	}
	return best
}

// PlayCard picks a card for the current trick. A single legal card is
// returned without any scoring.
func (b *HeuristicBot) PlayCard(o domain.Observation, legal []int) int {
	if len(legal) == 1 {
		return legal[0]
	}
	if o.Trick.Len == 0 {
		return b.lead(o, legal)
	}
	return b.follow(o, legal)
}

func (b *HeuristicBot) lead(o domain.Observation, legal []int) int {
	w := b.W
	endgame := 0.0
	if o.TrickIndex >= 7 {
		endgame = 1.0
	}
	best := legal[0]
	bestScore := negInf
	for _, a := range legal {
		c := domain.Card(a)
		trump := indicator(c.Suit() == o.Trump)
		suitLen := float64(o.Hand.Suit(c.Suit()).Count())

		score := w.LeadThirds*(float64(c.Thirds())/3) +
			w.LeadStrength*(float64(c.Strength())/9) -
			w.LeadTrumpPenalty*trump +
			w.LeadTrumpEndgame*trump*endgame +
			w.LeadSuitLength*(suitLen/10)
		if score > bestScore {
			bestScore = score
			best = a
		}
	}
	return best
}

func (b *HeuristicBot) follow(o domain.Observation, legal []int) int {
	w := b.W
	tablePts := float64(botinternal.TableThirds(o)) / 3
	winners := botinternal.Winners(o, legal)
	partnerWinning := botinternal.WinningTeam(o) == o.Team()

	if partnerWinning {
		// Override the partner only when enough points are at risk or the
		// hand is nearly over; otherwise feed the trick cheaply.
		if len(winners) > 0 && (tablePts >= w.OverridePointsThreshold || float64(o.TrickIndex) >= w.OverrideTrickThreshold) {
			return botinternal.MinBy(winners, func(c domain.Card) float64 {
				return w.OverrideThirds*float64(c.Thirds()) +
					w.OverrideStrength*float64(c.Strength()) -
					w.OverrideTableBonus*tablePts
			})
		}
		return botinternal.MinBy(legal, func(c domain.Card) float64 {
			return w.SupportDumpThirds*float64(c.Thirds()) +
				w.SupportDumpStrength*float64(c.Strength()) +
				w.SupportDumpTrump*indicator(c.Suit() == o.Trump)
		})
	}

	if len(winners) > 0 {
		return botinternal.MinBy(winners, func(c domain.Card) float64 {
			return w.CaptureThirds*float64(c.Thirds()) +
				w.CaptureStrength*float64(c.Strength()) +
				w.CaptureTrump*indicator(c.Suit() == o.Trump) -
				w.CaptureTableBonus*tablePts
		})
	}
	return botinternal.MinBy(legal, func(c domain.Card) float64 {
		return w.DumpThirds*float64(c.Thirds()) +
			w.DumpStrength*float64(c.Strength()) +
			w.DumpTrump*indicator(c.Suit() == o.Trump)
	})
}

const negInf = -1e18

func indicator(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}
