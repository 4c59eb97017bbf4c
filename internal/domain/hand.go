package domain

import (
	"math/bits"
	"strings"
)

// Hand is a set of cards as a 40-bit mask indexed by card id. The zero value
// is the empty hand.
type Hand uint64

// FullDeck contains all 40 cards.
const FullDeck Hand = (1 << NumCards) - 1

// suitMasks[s] selects the ten cards of suit s.
var suitMasks [NumSuits]Hand

// maraffaMasks[s] selects the 3, 2 and ace of suit s.
var maraffaMasks [NumSuits]Hand

func init() {
	for s := Suit(0); s < NumSuits; s++ {
		base := int(s) * NumRanks
		suitMasks[s] = ((1 << NumRanks) - 1) << base
		maraffaMasks[s] = 0b111 << base
	}
}

// SuitMask returns the mask of all cards of the given suit.
func SuitMask(s Suit) Hand {
	return suitMasks[s]
}

// MaraffaMask returns the mask of the three bonus ranks of the given suit.
func MaraffaMask(s Suit) Hand {
	return maraffaMasks[s]
}

// HandOf builds a hand from explicit cards.
func HandOf(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= 1 << uint(c)
	}
	return h
}

// Has reports whether the hand contains the card.
func (h Hand) Has(c Card) bool {
	return h&(1<<uint(c)) != 0
}

// Add returns the hand with the card included.
func (h Hand) Add(c Card) Hand {
	return h | 1<<uint(c)
}

// Remove returns the hand with the card excluded.
func (h Hand) Remove(c Card) Hand {
	return h &^ (1 << uint(c))
}

// Count returns the number of cards in the hand.
func (h Hand) Count() int {
	return bits.OnesCount64(uint64(h))
}

// Suit returns the subset of the hand in the given suit.
func (h Hand) Suit(s Suit) Hand {
	return h & suitMasks[s]
}

// Cards lists the hand's cards in ascending id order.
func (h Hand) Cards() []Card {
	out := make([]Card, 0, h.Count())
	for m := uint64(h); m != 0; m &= m - 1 {
		out = append(out, Card(bits.TrailingZeros64(m)))
	}
	return out
}

// Thirds sums the point value of the hand, in thirds.
func (h Hand) Thirds() int {
	total := 0
	for m := uint64(h); m != 0; m &= m - 1 {
		total += Card(bits.TrailingZeros64(m)).Thirds()
	}
	return total
}

func (h Hand) String() string {
	var b strings.Builder
	for i, c := range h.Cards() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}
