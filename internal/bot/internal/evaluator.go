// Package internal holds evaluation helpers shared by the bot strategies.
// Everything here is a pure function of an observation, applying the same
// trump/lead priority rule the engine uses for full tricks to the partial
// trick in progress.
package internal

import "github.com/sight-agent/maraffa/internal/domain"

// WinningTeam returns the team currently winning the open trick, or
// domain.NoTeam when no card has been played yet.
func WinningTeam(o domain.Observation) int {
	pos := o.Trick.WinnerPos(o.Trump)
	if pos < 0 {
		return domain.NoTeam
	}
	return domain.Team(o.Trick.Players[pos])
}

// WinsIfPlayed reports whether the observing player would hold the trick so
// far after adding the given card. Always false on an empty trick: leading
// never "wins" anything yet.
func WinsIfPlayed(o domain.Observation, c domain.Card) bool {
	if o.Trick.Len == 0 || o.Trick.Len >= domain.NumPlayers {
		return false
	}
	t := o.Trick
	t.Cards[t.Len] = c
	t.Players[t.Len] = o.Player
	t.Len++
	return t.Players[t.WinnerPos(o.Trump)] == o.Player
}

// TableThirds returns the points already committed to the open trick.
func TableThirds(o domain.Observation) int {
	return o.Trick.Thirds()
}

// Winners filters the legal cards down to those that would take the trick
// so far, preserving iteration order.
func Winners(o domain.Observation, legal []int) []int {
	var out []int
	for _, a := range legal {
		if WinsIfPlayed(o, domain.Card(a)) {
			out = append(out, a)
		}
	}
	return out
}

// MinBy returns the first action minimizing the cost function, ties broken
// by iteration order over the legal set.
func MinBy(legal []int, cost func(domain.Card) float64) int {
	best := legal[0]
	bestCost := cost(domain.Card(legal[0]))
	for _, a := range legal[1:] {
		if c := cost(domain.Card(a)); c < bestCost {
			bestCost = c
			best = a
		}
	}
	return best
}
