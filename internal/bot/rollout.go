package bot

import "github.com/sight-agent/maraffa/internal/domain"

// Rollout advances the state in place by asking each seat's policy for its
// choice among the legal actions until the hand ends or the trick index
// reaches the horizon, which forces the state terminal as a truncation. A
// seat with no legal action (unreachable under correct rules) also forces
// terminal instead of panicking.
func Rollout(s *domain.State, seats [domain.NumPlayers]Policy, horizon int) {
	if horizon <= 0 || horizon > domain.NumTricks {
		horizon = domain.NumTricks
	}
	for !s.IsTerminal() {
		if s.TrickIndex >= horizon {
			s.ForceTerminal()
			return
		}
		p := s.Current
		legal := s.LegalActions(p)
		if len(legal) == 0 {
			s.ForceTerminal()
			return
		}
		o := s.Observe(p)
		var action int
		if s.Phase == domain.PhaseTrumpSelection {
			action = seats[p].ChooseTrump(o, legal)
		} else {
			action = seats[p].PlayCard(o, legal)
		}
		if err := s.Apply(action); err != nil {
			s.ForceTerminal()
			return
		}
	}
}
