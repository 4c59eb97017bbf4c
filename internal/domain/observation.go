package domain

// Observation is the player-scoped projection of a State: the acting
// player's own hand plus every public field, and nothing of the other
// hands. It is the only information channel policies receive; the engine
// itself is never handed to a policy.
type Observation struct {
	Player     int
	Hand       Hand
	Declarer   int
	Current    int
	Phase      Phase
	Trump      Suit
	Trick      Trick
	TrickIndex int
	History    [NumTricks]TrickRecord
	Scores     [2]int
	BonusTeam  int
	Played     Hand
}

// Observe projects the state for one player.
func (s *State) Observe(player int) Observation {
	return Observation{
		Player:     player,
		Hand:       s.Hands[player],
		Declarer:   s.Declarer,
		Current:    s.Current,
		Phase:      s.Phase,
		Trump:      s.Trump,
		Trick:      s.Trick,
		TrickIndex: s.TrickIndex,
		History:    s.History,
		Scores:     s.Scores,
		BonusTeam:  s.BonusTeam,
		Played:     s.Played,
	}
}

// Team returns the observing player's team.
func (o Observation) Team() int {
	return Team(o.Player)
}

// FreshHand reports whether the observation shows a hand on which nothing
// has happened yet: no trick resolved, no trick open, no card played. Used
// to invalidate per-hand policy memory at hand boundaries.
func (o Observation) FreshHand() bool {
	return o.TrickIndex == 0 && o.Trick.Len == 0 && o.Played == 0
}

// StateFromObservation rebuilds a full state from an observation and a
// complete hand assignment, typically one hypothesized by the determinizer.
// The caller is responsible for hands[obs.Player] matching obs.Hand.
func StateFromObservation(o Observation, hands [NumPlayers]Hand) State {
	return State{
		Hands:      hands,
		Declarer:   o.Declarer,
		Current:    o.Current,
		Phase:      o.Phase,
		Trump:      o.Trump,
		Trick:      o.Trick,
		TrickIndex: o.TrickIndex,
		History:    o.History,
		Scores:     o.Scores,
		BonusTeam:  o.BonusTeam,
		Played:     o.Played,
	}
}
