package domain

import "math/rand"

// Deal shuffles the deck with the supplied generator and returns four
// ten-card hands dealt round-robin plus a randomly picked declarer seat.
func Deal(rng *rand.Rand) ([NumPlayers]Hand, int) {
	deck := make([]Card, NumCards)
	for i := range deck {
		deck[i] = Card(i)
	}
	rng.Shuffle(NumCards, func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	var hands [NumPlayers]Hand
	for i, c := range deck {
		hands[i&3] = hands[i&3].Add(c)
	}
	return hands, rng.Intn(NumPlayers)
}

// DealFromSeed is Deal with a throwaway generator, so the same seed always
// yields the same hands and declarer.
func DealFromSeed(seed int64) ([NumPlayers]Hand, int) {
	return Deal(rand.New(rand.NewSource(seed)))
}

// RotateHands shifts every hand one seat forward `by` times: the new player
// p receives the hand previously held by (p-by). The match harness plays
// each deal twice with a one-seat rotation to cancel seat advantage.
func RotateHands(hands [NumPlayers]Hand, by int) [NumPlayers]Hand {
	var out [NumPlayers]Hand
	for p := 0; p < NumPlayers; p++ {
		out[p] = hands[(p-by)&3]
	}
	return out
}
