package domain

import (
	"errors"
	"fmt"
)

// Phase represents the lifecycle stage of a hand.
type Phase string

const (
	// PhaseTrumpSelection indicates the declarer still has to pick trump.
	PhaseTrumpSelection Phase = "trump-selection"
	// PhasePlay indicates tricks are being played.
	PhasePlay Phase = "play"
	// PhaseEnded indicates the hand has finished.
	PhaseEnded Phase = "ended"
)

var (
	ErrInvalidAction = errors.New("action is not legal for the current player")
	ErrHandOver      = errors.New("hand already ended")
	ErrInvalidDeal   = errors.New("invalid deal")
)

// NoTeam marks the absence of a bonus team.
const NoTeam = -1

// Trick is the trick currently being played: up to four (player, card)
// entries in play order plus the suit led by the first card.
type Trick struct {
	Cards   [NumPlayers]Card
	Players [NumPlayers]int
	Len     int
	Lead    Suit
}

func emptyTrick() Trick {
	return Trick{
		Cards:   [NumPlayers]Card{NoCard, NoCard, NoCard, NoCard},
		Players: [NumPlayers]int{-1, -1, -1, -1},
		Lead:    NoSuit,
	}
}

// WinnerPos returns the position within the trick of the entry currently
// winning under trump/lead priority, or -1 for an empty trick. If any trump
// was played only trumps are eligible, otherwise only cards of the lead
// suit; the highest strength among eligible cards wins. Strength is a total
// order per rank and each rank/suit pair appears at most once per hand, so
// the winner is unique.
func (t Trick) WinnerPos(trump Suit) int {
	if t.Len == 0 {
		return -1
	}
	hasTrump := false
	for i := 0; i < t.Len; i++ {
		if t.Cards[i].Suit() == trump {
			hasTrump = true
			break
		}
	}
	best := -1
	bestStrength := -1
	for i := 0; i < t.Len; i++ {
		suit := t.Cards[i].Suit()
		if hasTrump {
			if suit != trump {
				continue
			}
		} else if suit != t.Lead {
			continue
		}
		if st := t.Cards[i].Strength(); st > bestStrength {
			bestStrength = st
			best = i
		}
	}
	return best
}

// Thirds sums the point value of the cards played so far in the trick.
func (t Trick) Thirds() int {
	total := 0
	for i := 0; i < t.Len; i++ {
		total += t.Cards[i].Thirds()
	}
	return total
}

// TrickRecord is one resolved trick in the public history.
type TrickRecord struct {
	Lead    Suit
	Players [NumPlayers]int
	Cards   [NumPlayers]Card
	Winner  int
	Thirds  int
}

// State holds one Maraffa hand. It is a plain value type built from
// fixed-size arrays so rollout simulations can snapshot it by assignment.
type State struct {
	Hands      [NumPlayers]Hand
	Declarer   int
	Current    int
	Phase      Phase
	Trump      Suit
	Trick      Trick
	TrickIndex int
	History    [NumTricks]TrickRecord
	Scores     [2]int // in thirds
	BonusTeam  int
	Played     Hand
}

// NewState builds a hand from explicit ten-card hands and a declarer seat.
// The four hands must partition the deck exactly.
func NewState(hands [NumPlayers]Hand, declarer int) (State, error) {
	if declarer < 0 || declarer >= NumPlayers {
		return State{}, fmt.Errorf("%w: declarer seat %d", ErrInvalidDeal, declarer)
	}
	var union Hand
	for p, h := range hands {
		if h.Count() != NumTricks {
			return State{}, fmt.Errorf("%w: player %d holds %d cards, want %d", ErrInvalidDeal, p, h.Count(), NumTricks)
		}
		if union&h != 0 {
			return State{}, fmt.Errorf("%w: duplicate cards across hands", ErrInvalidDeal)
		}
		union |= h
	}
	if union != FullDeck {
		return State{}, fmt.Errorf("%w: hands do not cover the deck", ErrInvalidDeal)
	}
	return State{
		Hands:     hands,
		Declarer:  declarer,
		Current:   declarer,
		Phase:     PhaseTrumpSelection,
		Trump:     NoSuit,
		Trick:     emptyTrick(),
		BonusTeam: NoTeam,
	}, nil
}

// IsTerminal reports whether the hand has ended.
func (s *State) IsTerminal() bool {
	return s.Phase == PhaseEnded
}

// LegalHand returns the subset of a player's hand that may be played now.
// During trump selection it is empty (suits are the actions then).
func (s *State) LegalHand(player int) Hand {
	if s.Phase != PhasePlay {
		return 0
	}
	hand := s.Hands[player]
	if s.Trick.Len == 0 {
		return hand
	}
	if led := hand.Suit(s.Trick.Lead); led != 0 {
		return led
	}
	return hand
}

// LegalActions returns the action ids available to a player: the four suit
// ids for the declarer during trump selection, card ids during play.
func (s *State) LegalActions(player int) []int {
	switch s.Phase {
	case PhaseTrumpSelection:
		if player != s.Current {
			return nil
		}
		return []int{0, 1, 2, 3}
	case PhasePlay:
		cards := s.LegalHand(player).Cards()
		out := make([]int, len(cards))
		for i, c := range cards {
			out[i] = int(c)
		}
		return out
	default:
		return nil
	}
}

// Apply advances the hand by one action of the current player: a suit id
// during trump selection, a card id during play. Actions outside the current
// legal set are rejected.
func (s *State) Apply(action int) error {
	switch s.Phase {
	case PhaseTrumpSelection:
		suit := Suit(action)
		if !suit.Valid() {
			return fmt.Errorf("%w: suit %d", ErrInvalidAction, action)
		}
		s.declareTrump(suit)
		return nil
	case PhasePlay:
		card := Card(action)
		if !card.Valid() || !s.LegalHand(s.Current).Has(card) {
			return fmt.Errorf("%w: card %d for player %d", ErrInvalidAction, action, s.Current)
		}
		s.playCard(card)
		return nil
	default:
		return ErrHandOver
	}
}

func (s *State) declareTrump(suit Suit) {
	s.Trump = suit
	s.Phase = PhasePlay
	s.Current = s.Declarer

	// The maraffa bonus belongs to the team holding the 3, 2 and ace of
	// trump before any card is played.
	mask := maraffaMasks[suit]
	if (s.Hands[0]|s.Hands[2])&mask == mask {
		s.BonusTeam = 0
	} else if (s.Hands[1]|s.Hands[3])&mask == mask {
		s.BonusTeam = 1
	} else {
		s.BonusTeam = NoTeam
	}
}

func (s *State) playCard(c Card) {
	player := s.Current
	s.Hands[player] = s.Hands[player].Remove(c)
	s.Played = s.Played.Add(c)

	pos := s.Trick.Len
	s.Trick.Cards[pos] = c
	s.Trick.Players[pos] = player
	s.Trick.Len++
	if pos == 0 {
		s.Trick.Lead = c.Suit()
	}

	if s.Trick.Len < NumPlayers {
		s.Current = (player + 1) & 3
		return
	}
	s.resolveTrick()
}

func (s *State) resolveTrick() {
	winnerPos := s.Trick.WinnerPos(s.Trump)
	winner := s.Trick.Players[winnerPos]
	thirds := s.Trick.Thirds()

	s.History[s.TrickIndex] = TrickRecord{
		Lead:    s.Trick.Lead,
		Players: s.Trick.Players,
		Cards:   s.Trick.Cards,
		Winner:  winner,
		Thirds:  thirds,
	}
	s.Scores[Team(winner)] += thirds
	s.TrickIndex++
	s.Trick = emptyTrick()
	s.Current = winner

	if s.TrickIndex == NumTricks {
		s.finish()
	}
}

func (s *State) finish() {
	if s.BonusTeam != NoTeam {
		s.Scores[s.BonusTeam] += MaraffaBonusThirds
	}
	s.Phase = PhaseEnded
}

// ForceTerminal ends the hand early, still crediting the maraffa bonus
// (fixed at trump declaration). Used by bounded-horizon rollouts and as the
// defensive exit when a simulated player has no legal action.
func (s *State) ForceTerminal() {
	if s.Phase != PhaseEnded {
		s.finish()
	}
}

// Points returns both teams' scores in whole points.
func (s *State) Points() [2]float64 {
	return [2]float64{float64(s.Scores[0]) / 3, float64(s.Scores[1]) / 3}
}

// DiffThirds returns the signed score differential for a team, in thirds.
func (s *State) DiffThirds(team int) int {
	return s.Scores[team] - s.Scores[1-team]
}
