package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Spawner places rewards and hazards on free cells.
// The random source is injected and seeded by the caller.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing positions from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// SpawnReward places a reward on a uniformly chosen free cell.
func (s *Spawner) SpawnReward(g *Grid) (core.Point, error) {
	p, err := s.pick(g)
	if err != nil {
		return p, err
	}
	g.PlaceReward(p)
	return p, nil
}

// SpawnHazard places a hazard on a uniformly chosen free cell.
func (s *Spawner) SpawnHazard(g *Grid) (core.Point, error) {
	p, err := s.pick(g)
	if err != nil {
		return p, err
	}
	g.PlaceHazard(p)
	return p, nil
}

// pick enumerates the candidates instead of retrying random cells, so a full
// grid fails instead of spinning.
func (s *Spawner) pick(g *Grid) (core.Point, error) {
	free := g.FreeCells()
	if len(free) == 0 {
		return core.Point{X: -1, Y: -1}, ErrGridFull
	}
	return free[s.rng.Intn(len(free))], nil
}
