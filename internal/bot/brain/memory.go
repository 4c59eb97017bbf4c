package brain

import "github.com/sight-agent/maraffa/internal/domain"

// HandMemory remembers the hands one policy instance has itself observed
// during the current hand. The match harness drives both seats of a team
// with a single policy instance, so after each teammate has acted once the
// determinizer only needs to sample the two opponents. The memory is owned
// exclusively by that instance and is invalidated at hand boundaries.
type HandMemory struct {
	known [domain.NumPlayers]domain.Hand
	seen  [domain.NumPlayers]bool
}

func NewHandMemory() *HandMemory {
	return &HandMemory{}
}

// Observe records the acting player's own hand from the observation. An
// observation showing an untouched hand (trick 0, empty trick, nothing
// played) signals a new deal and resets everything first, as does any
// observation whose own hand contradicts what was remembered: cards only
// ever leave a hand through the public played set, so a mismatch proves a
// redeal even when another seat already opened the first trick.
func (m *HandMemory) Observe(o domain.Observation) {
	if o.FreshHand() || m.stale(o) {
		m.Reset()
	}
	m.known[o.Player] = o.Hand
	m.seen[o.Player] = true
}

func (m *HandMemory) stale(o domain.Observation) bool {
	return m.seen[o.Player] && m.known[o.Player]&^o.Played != o.Hand
}

// Reset forgets all remembered hands.
func (m *HandMemory) Reset() {
	*m = HandMemory{}
}

// Remaining returns the remembered hand of a player reduced to its unplayed
// cards. Remembered hands go stale as their owner keeps playing; removing
// the public played set restores the current holding exactly.
func (m *HandMemory) Remaining(player int, played domain.Hand) (domain.Hand, bool) {
	if m == nil || !m.seen[player] {
		return 0, false
	}
	return m.known[player] &^ played, true
}
