package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config describes the round a Session plays.
type Config struct {
	Width   int
	Height  int
	Hazards bool // spawn a hazard alongside every reward
}

// DefaultConfig returns the 25×15 grid with hazards enabled.
func DefaultConfig() Config {
	return Config{Width: 25, Height: 15, Hazards: true}
}

// Option customizes a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStart overrides the head's starting position and direction.
func WithStart(head core.Point, dir Direction) Option {
	return func(s *Session) {
		s.start = head
		s.startDir = dir
	}
}

// Session owns one round: body, grid, spawner, engine and score.
type Session struct {
	cfg      Config
	grid     *Grid
	body     *Body
	spawner  *Spawner
	engine   *Engine
	logger   *log.Logger
	start    core.Point
	startDir Direction
	last     Outcome
	final    int
	score    int
	turns    int
	closed   bool
}

// NewSession creates a round with the head at the grid center moving right,
// then spawns the first reward (and hazard, if enabled).
func NewSession(cfg Config, rng *rand.Rand, opts ...Option) (*Session, error) {
	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("snake: nil random source")
	}

	s := &Session{
		cfg:      cfg,
		grid:     grid,
		spawner:  NewSpawner(rng),
		logger:   log.New(io.Discard),
		start:    core.Pt(cfg.Width/2, cfg.Height/2),
		startDir: DirRight,
	}
	for _, opt := range opts {
		opt(s)
	}
	if !grid.InBounds(s.start) {
		return nil, fmt.Errorf("snake: start (%d, %d) outside %dx%d grid", s.start.X, s.start.Y, cfg.Width, cfg.Height)
	}

	s.engine = NewEngine(s.logger)
	s.body = NewBody(s.start, s.startDir, cfg.Width*cfg.Height)
	s.grid.Rebuild(s.body)

	if err := s.respawn(); err != nil {
		s.Close()
		return nil, err
	}

	s.logger.Debug("session started", "grid", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), "hazards", cfg.Hazards)
	return s, nil
}

// Turn plays one turn in direction d.
//
// A reversal returns ErrReversal and the turn is not consumed. When a reward
// is eaten the score goes up and a new reward is spawned; if no cell is left
// for it the round ends with ReasonBoardFull and ErrGridFull is returned.
// Both that and ErrAllocation end the round and release the body.
func (s *Session) Turn(d Direction) (TurnResult, error) {
	if s.closed {
		return TurnResult{Outcome: OutcomeCrashed, Reason: s.engine.Reason()}, ErrSessionOver
	}

	res, err := s.engine.Resolve(s.body, s.grid, d)
	if err != nil {
		if errors.Is(err, ErrAllocation) {
			s.turns++
			s.last = res.Outcome
			s.logger.Error("cannot grow", "length", s.body.Len(), "error", err)
			s.Close()
			return res, fmt.Errorf("snake: grow: %w", err)
		}
		return res, err
	}
	s.turns++
	s.last = res.Outcome

	switch res.Outcome {
	case OutcomeAte:
		s.score++
		s.logger.Debug("reward eaten", "score", s.score, "length", res.Length)
		if err := s.respawn(); err != nil {
			res.Outcome = OutcomeCrashed
			res.Reason = s.engine.Reason()
			s.last = res.Outcome
			s.logger.Info("board full", "score", s.score, "turns", s.turns)
			s.Close()
			return res, err
		}
	case OutcomeCrashed:
		s.logger.Info("crashed", "reason", res.Reason, "score", s.score, "turns", s.turns)
	}
	return res, nil
}

// respawn places a new reward and, for hazard rounds, a new hazard. The
// reward goes first so a nearly full grid never spends its last cell on a trap.
func (s *Session) respawn() error {
	if _, err := s.spawner.SpawnReward(s.grid); err != nil {
		s.engine.Halt(ReasonBoardFull)
		return fmt.Errorf("snake: spawn reward: %w", err)
	}
	if !s.cfg.Hazards {
		return nil
	}
	if _, err := s.spawner.SpawnHazard(s.grid); err != nil {
		s.logger.Warn("no room for hazard", "error", err)
	}
	return nil
}

// Close releases the body. It is safe to call more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.engine.Halt(ReasonNone)
	if s.body != nil {
		s.final = s.body.Len()
		s.body.Release()
	}
}

// Alive reports whether more turns can be played.
func (s *Session) Alive() bool {
	return !s.closed && s.engine.Running()
}

// State returns the engine state.
func (s *Session) State() State {
	return s.engine.State()
}

// Reason returns why the round ended, or ReasonNone.
func (s *Session) Reason() Reason {
	return s.engine.Reason()
}

// Outcome returns the outcome of the last turn played, OutcomeMoved before
// the first one.
func (s *Session) Outcome() Outcome {
	return s.last
}

// Score returns the number of rewards eaten.
func (s *Session) Score() int {
	return s.score
}

// Turns returns the number of turns played.
func (s *Session) Turns() int {
	return s.turns
}

// Length returns the body length, 0 once released.
func (s *Session) Length() int {
	if s.body == nil || s.body.Released() {
		return 0
	}
	return s.body.Len()
}

// FinalLength returns the body length, or the length it had when the body
// was released.
func (s *Session) FinalLength() int {
	if s.closed {
		return s.final
	}
	return s.Length()
}

// Heading returns the head's current direction.
func (s *Session) Heading() Direction {
	if s.Length() == 0 {
		return s.startDir
	}
	return s.body.Head().Direction()
}

// Head returns the head position and whether the body still exists.
func (s *Session) Head() (core.Point, bool) {
	if s.Length() == 0 {
		return core.Point{}, false
	}
	return s.body.Head().Pos, true
}

// Grid returns the session grid. Callers must treat it as read-only.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Body returns the session body. Callers must treat it as read-only.
func (s *Session) Body() *Body {
	return s.body
}

// Config returns the round configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// CanTurn reports whether d is accepted as the next command.
func (s *Session) CanTurn(d Direction) bool {
	return d.Valid() && s.Alive() && d != s.Heading().Opposite()
}
