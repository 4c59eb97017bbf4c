package domain

// The 40-card Italian deck used by Maraffa. Cards are identified by an
// integer 0-39: suit = id/10, rank index = id%10. Rank order within a suit
// is descending by trick strength: 3 > 2 > A > K > N > J > 7 > 6 > 5 > 4.

const (
	NumPlayers = 4
	NumSuits   = 4
	NumRanks   = 10
	NumCards   = 40
	NumTricks  = 10
)

// Card identifies one of the 40 cards.
type Card int

// Suit identifies one of the four suits.
type Suit int

// NoSuit marks an undeclared trump or an empty trick lead.
const NoSuit Suit = -1

// NoCard marks an empty trick slot.
const NoCard Card = -1

var rankLabels = [NumRanks]string{"3", "2", "A", "K", "N", "J", "7", "6", "5", "4"}

var suitLabels = [NumSuits]string{"c", "d", "b", "s"} // coppe, denari, bastoni, spade

// rankStrength is the total order used for trick resolution, highest first.
var rankStrength = [NumRanks]int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}

// rankThirds is the point value of each rank in thirds of a point.
// The ace is worth a full point, the 3, 2 and figures a third each.
var rankThirds = [NumRanks]int{1, 1, 3, 1, 1, 1, 0, 0, 0, 0}

// DeckThirds is the summed point value of the whole deck, in thirds.
const DeckThirds = 32

// MaraffaBonusThirds is awarded at the end of the hand to the team that held
// the 3, 2 and ace of trump before any card was played.
const MaraffaBonusThirds = 9

// CardOf builds a card id from suit and rank index.
func CardOf(s Suit, rank int) Card {
	return Card(int(s)*NumRanks + rank)
}

// Suit returns the suit of a card.
func (c Card) Suit() Suit {
	return Suit(int(c) / NumRanks)
}

// Rank returns the rank index of a card (0 strongest, 9 weakest).
func (c Card) Rank() int {
	return int(c) % NumRanks
}

// Strength returns the trick-resolution strength of a card (9 strongest).
func (c Card) Strength() int {
	return rankStrength[c.Rank()]
}

// Thirds returns the point value of a card in thirds of a point.
func (c Card) Thirds() int {
	return rankThirds[c.Rank()]
}

// Valid reports whether c is a real card id.
func (c Card) Valid() bool {
	return c >= 0 && c < NumCards
}

func (c Card) String() string {
	if !c.Valid() {
		return "--"
	}
	return rankLabels[c.Rank()] + suitLabels[c.Suit()]
}

func (s Suit) Valid() bool {
	return s >= 0 && s < NumSuits
}

func (s Suit) String() string {
	if !s.Valid() {
		return "-"
	}
	return suitLabels[s]
}

// Team returns the team (0 or 1) a seat belongs to. Seats 0 and 2 are
// partners, as are 1 and 3.
func Team(player int) int {
	return player & 1
}

// Partner returns the seat across the table.
func Partner(player int) int {
	return player ^ 2
}
