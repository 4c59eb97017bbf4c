package bot

import (
	"math/rand"

	"github.com/sight-agent/maraffa/internal/domain"
)

// RandomBot picks uniformly among legal actions. It owns its generator so
// two instances with the same seed replay identically.
type RandomBot struct {
	rng *rand.Rand
}

func NewRandomBot(seed int64) *RandomBot {
	return &RandomBot{rng: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) ChooseTrump(_ domain.Observation, legal []int) int {
	return legal[b.rng.Intn(len(legal))]
}

func (b *RandomBot) PlayCard(_ domain.Observation, legal []int) int {
	return legal[b.rng.Intn(len(legal))]
}
