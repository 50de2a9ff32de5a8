package snake

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/looplab/fsm"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the engine's lifecycle state.
type State string

const (
	StateRunning State = "running"
	StateCrashed State = "crashed" // terminal
)

const eventCrash = "crash"

// Reason explains why a session ended.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonOutOfBounds
	ReasonSelfCollision
	ReasonHazardHit
	ReasonBoardFull
	ReasonAllocation
)

func (r Reason) String() string {
	switch r {
	case ReasonOutOfBounds:
		return "out_of_bounds"
	case ReasonSelfCollision:
		return "self_collision"
	case ReasonHazardHit:
		return "hazard_hit"
	case ReasonBoardFull:
		return "board_full"
	case ReasonAllocation:
		return "allocation_failure"
	default:
		return "none"
	}
}

// Message returns a short human-readable description.
func (r Reason) Message() string {
	switch r {
	case ReasonOutOfBounds:
		return "Left the grid"
	case ReasonSelfCollision:
		return "Bit yourself"
	case ReasonHazardHit:
		return "Hit a trap"
	case ReasonBoardFull:
		return "Board full"
	case ReasonAllocation:
		return "Out of memory"
	default:
		return ""
	}
}

// Outcome classifies a resolved turn.
type Outcome int

const (
	OutcomeMoved Outcome = iota
	OutcomeAte
	OutcomeCrashed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAte:
		return "ate"
	case OutcomeCrashed:
		return "crashed"
	default:
		return "moved"
	}
}

// TurnResult reports what one turn did.
type TurnResult struct {
	Outcome Outcome
	Reason  Reason // set when Outcome is OutcomeCrashed
	Head    core.Point
	Length  int
	Scored  bool // a reward was eaten; the caller must respawn
}

// Engine resolves turns and tracks the RUNNING/CRASHED state machine.
type Engine struct {
	machine *fsm.FSM
	reason  Reason
	logger  *log.Logger
}

// NewEngine creates an engine in the running state.
func NewEngine(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	e := &Engine{logger: logger}
	e.machine = fsm.NewFSM(
		string(StateRunning),
		fsm.Events{
			{Name: eventCrash, Src: []string{string(StateRunning)}, Dst: string(StateCrashed)},
		},
		fsm.Callbacks{
			"enter_" + string(StateCrashed): func(_ context.Context, ev *fsm.Event) {
				if len(ev.Args) > 0 {
					if r, ok := ev.Args[0].(Reason); ok {
						e.reason = r
					}
				}
				e.logger.Info("session ended", "reason", e.reason)
			},
		},
	)
	return e
}

// State returns the current state.
func (e *Engine) State() State {
	return State(e.machine.Current())
}

// Running reports whether turns may still be resolved.
func (e *Engine) Running() bool {
	return e.machine.Is(string(StateRunning))
}

// Reason returns why the engine crashed, or ReasonNone.
func (e *Engine) Reason() Reason {
	return e.reason
}

// Halt moves the engine to the terminal state. Halting a crashed engine is
// a no-op.
func (e *Engine) Halt(r Reason) {
	if !e.Running() {
		return
	}
	if err := e.machine.Event(context.Background(), eventCrash, r); err != nil {
		// Only reachable if the transition table is wrong.
		panic(fmt.Sprintf("snake: crash transition: %v", err))
	}
}

// Resolve plays one turn: command the head, advance the body, classify the
// head's new cell and rebuild occupancy. A reversal is rejected without
// consuming the turn.
func (e *Engine) Resolve(b *Body, g *Grid, d Direction) (TurnResult, error) {
	if !e.Running() {
		return TurnResult{Outcome: OutcomeCrashed, Reason: e.reason}, ErrSessionOver
	}
	if err := b.ApplyHeadCommand(d); err != nil {
		return TurnResult{Head: b.Head().Pos, Length: b.Len()}, err
	}

	b.Advance()
	head := b.Head().Pos
	result := TurnResult{Outcome: OutcomeMoved, Head: head}

	// Bounds first: off-grid positions have no cell to compare against.
	switch {
	case !g.InBounds(head):
		e.crash(&result, ReasonOutOfBounds)
	case b.SelfIntersects():
		e.crash(&result, ReasonSelfCollision)
	default:
		cell, _ := g.Cell(head)
		switch {
		case cell.Hazard:
			e.crash(&result, ReasonHazardHit)
		case cell.Reward:
			g.ClearReward(head)
			if err := b.Grow(); err != nil {
				e.crash(&result, ReasonAllocation)
				g.Rebuild(b)
				result.Length = b.Len()
				return result, err
			}
			result.Outcome = OutcomeAte
			result.Scored = true
		}
	}

	g.Rebuild(b)
	result.Length = b.Len()

	e.logger.Debug("turn", "dir", d, "head", fmt.Sprintf("%d,%d", head.X, head.Y), "outcome", result.Outcome)
	return result, nil
}

func (e *Engine) crash(result *TurnResult, r Reason) {
	e.Halt(r)
	result.Outcome = OutcomeCrashed
	result.Reason = r
}
