package brain

import (
	"math/rand"
	"sort"

	"github.com/sight-agent/maraffa/internal/domain"
)

// Sample is one determinized hypothesis of the full game state.
// Constrained reports whether the hidden hands honor the void inference; a
// false value means the bounded retries were exhausted and the deal fell
// back to an unconstrained shuffle, a weaker guarantee the caller should
// surface rather than treat as ordinary success.
type Sample struct {
	State       domain.State
	Constrained bool
}

// maxDeterminizeRetries bounds how many times a dead-ended constrained deal
// is reshuffled before giving up on the void constraints.
const maxDeterminizeRetries = 16

// Determinize builds a full state consistent with everything the
// observation makes public: fixed hands are preserved verbatim, every
// sampled player receives exactly as many cards as they still hold, and on
// the success path no player is dealt a card of a suit they are known void
// in. mem may be nil; when present, remembered teammate hands become fixed.
func Determinize(o domain.Observation, mem *HandMemory, rng *rand.Rand) Sample {
	voids := InferVoids(o)

	// Cards still owed to each player: one per unresolved trick, minus the
	// card already contributed to the trick in progress.
	var quotas [domain.NumPlayers]int
	for p := 0; p < domain.NumPlayers; p++ {
		q := domain.NumTricks - o.TrickIndex
		for j := 0; j < o.Trick.Len; j++ {
			if o.Trick.Players[j] == p {
				q--
				break
			}
		}
		quotas[p] = q
	}

	var hands [domain.NumPlayers]domain.Hand
	var fixed [domain.NumPlayers]bool
	hands[o.Player] = o.Hand
	fixed[o.Player] = true
	for p := 0; p < domain.NumPlayers; p++ {
		if p == o.Player {
			continue
		}
		if h, ok := mem.Remaining(p, o.Played); ok && h.Count() == quotas[p] {
			hands[p] = h
			fixed[p] = true
		}
	}

	pool := domain.FullDeck &^ o.Played
	var sampled []int
	for p := 0; p < domain.NumPlayers; p++ {
		if fixed[p] {
			pool &^= hands[p]
		} else {
			sampled = append(sampled, p)
		}
	}
	if len(sampled) == 0 {
		return Sample{State: domain.StateFromObservation(o, hands), Constrained: true}
	}

	var pools [domain.NumSuits][]domain.Card
	for _, c := range pool.Cards() {
		pools[c.Suit()] = append(pools[c.Suit()], c)
	}

	// Tightest constraint first: the player reaching the fewest pool cards
	// through their allowed suits is dealt before looser players can starve
	// those suits.
	reach := func(p int) int {
		total := 0
		for s := domain.Suit(0); s < domain.NumSuits; s++ {
			if !voids.Void(p, s) {
				total += len(pools[s])
			}
		}
		return total
	}
	sort.SliceStable(sampled, func(i, j int) bool {
		return reach(sampled[i]) < reach(sampled[j])
	})

	for attempt := 0; attempt < maxDeterminizeRetries; attempt++ {
		if drawn, ok := drawConstrained(pools, sampled, quotas, voids, rng); ok {
			for _, p := range sampled {
				hands[p] = drawn[p]
			}
			return Sample{State: domain.StateFromObservation(o, hands), Constrained: true}
		}
	}

	// Liveness over fidelity: deal the pool uniformly, ignoring voids.
	cards := pool.Cards()
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	next := 0
	for _, p := range sampled {
		var h domain.Hand
		for n := 0; n < quotas[p]; n++ {
			h = h.Add(cards[next])
			next++
		}
		hands[p] = h
	}
	return Sample{State: domain.StateFromObservation(o, hands), Constrained: false}
}

// drawConstrained deals every sampled player from a scratch copy of the
// suit pools, always drawing from the largest pool among the player's
// allowed suits. Returns ok=false on a dead end (some player's quota is
// open but every allowed suit is empty).
func drawConstrained(
	pools [domain.NumSuits][]domain.Card,
	sampled []int,
	quotas [domain.NumPlayers]int,
	voids VoidTable,
	rng *rand.Rand,
) ([domain.NumPlayers]domain.Hand, bool) {
	var scratch [domain.NumSuits][]domain.Card
	for s := range pools {
		scratch[s] = append([]domain.Card(nil), pools[s]...)
	}

	var hands [domain.NumPlayers]domain.Hand
	for _, p := range sampled {
		for n := 0; n < quotas[p]; n++ {
			pick := domain.NoSuit
			for s := domain.Suit(0); s < domain.NumSuits; s++ {
				if voids.Void(p, s) || len(scratch[s]) == 0 {
					continue
				}
				if pick == domain.NoSuit || len(scratch[s]) > len(scratch[pick]) {
					pick = s
				}
			}
			if pick == domain.NoSuit {
				return hands, false
			}
			idx := rng.Intn(len(scratch[pick]))
			c := scratch[pick][idx]
			last := len(scratch[pick]) - 1
			scratch[pick][idx] = scratch[pick][last]
			scratch[pick] = scratch[pick][:last]
			hands[p] = hands[p].Add(c)
		}
	}
	return hands, true
}
