package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the observable round state for determinism testing.
type Snapshot struct {
	Turns   int
	Score   int
	Length  int
	Head    core.Point
	Dir     Direction
	State   State
	Reason  Reason
	Rewards []core.Point
	Hazards []core.Point
}

// Snapshot returns the current snapshot.
func (s *Session) Snapshot() Snapshot {
	head, _ := s.Head()
	return Snapshot{
		Turns:   s.turns,
		Score:   s.score,
		Length:  s.Length(),
		Head:    head,
		Dir:     s.Heading(),
		State:   s.State(),
		Reason:  s.Reason(),
		Rewards: s.grid.Rewards(),
		Hazards: s.grid.Hazards(),
	}
}
