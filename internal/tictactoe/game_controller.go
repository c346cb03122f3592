package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

const (
	HumanMark    = entity.X
	ComputerMark = entity.O
)

// Snapshot is a copy of the controller state. Mutating it does not affect the game.
type Snapshot struct {
	Board            entity.Board
	State            entity.State
	Result           entity.Outcome
	LastHumanMove    *entity.Move
	LastComputerMove *entity.Move
}

type Option func(*GameController)

// WithObserver - registers an observer at construction.
func WithObserver(observer Observer) Option {
	return func(that *GameController) {
		that.Subscribe(observer)
	}
}

// GameController owns one board and drives the turn-taking between the human (X)
// and the computer (O). It is not safe for concurrent use.
type GameController struct {
	searcher  minimax.Searcher
	observers []Observer

	board        entity.Board
	state        entity.State
	result       entity.Outcome
	lastHuman    *entity.Move
	lastComputer *entity.Move
}

func NewGameController(searcher minimax.Searcher, opts ...Option) *GameController {
	if searcher == nil {
		searcher = minimax.Exhaustive{}
	}

	controller := &GameController{
		searcher: searcher,
		state:    entity.StateAwaitingHumanMove,
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Subscribe - observers are notified synchronously, in registration order.
func (that *GameController) Subscribe(observer Observer) {
	if observer != nil {
		that.observers = append(that.observers, observer)
	}
}

func (that *GameController) State() entity.State {
	return that.state
}

func (that *GameController) Snapshot() Snapshot {
	return Snapshot{
		Board:            that.board,
		State:            that.state,
		Result:           that.result,
		LastHumanMove:    copyMove(that.lastHuman),
		LastComputerMove: copyMove(that.lastComputer),
	}
}

// Play - places the human mark and, if the game continues, lets the computer reply.
// A placement on an occupied cell is ignored.
func (that *GameController) Play(move entity.Move) (Snapshot, error) {
	switch that.state {
	case entity.StateGameOver:
		return that.Snapshot(), apperror.ErrGameFinished
	case entity.StateAwaitingComputerMove:
		return that.Snapshot(), apperror.ErrNotYourTurn
	}

	if !move.Valid() {
		return that.Snapshot(), fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, move.Row, move.Col)
	}

	if that.board.At(move) != entity.Empty {
		return that.Snapshot(), nil
	}

	that.place(HumanMark, move)

	if that.state == entity.StateAwaitingComputerMove {
		return that.Step()
	}

	return that.Snapshot(), nil
}

// Step - computes and applies the computer's move.
func (that *GameController) Step() (Snapshot, error) {
	switch that.state {
	case entity.StateGameOver:
		return that.Snapshot(), apperror.ErrGameFinished
	case entity.StateAwaitingHumanMove:
		return that.Snapshot(), apperror.ErrNotYourTurn
	}

	move, ok := that.searcher.BestMove(&that.board)
	if !ok {
		return that.Snapshot(), apperror.ErrNoAvailableMoves
	}

	that.place(ComputerMark, move)

	return that.Snapshot(), nil
}

// Reset - empties the board and hands the first move back to X.
func (that *GameController) Reset() Snapshot {
	from := that.state

	that.board = entity.Board{}
	that.state = entity.StateAwaitingHumanMove
	that.result = entity.OutcomeNone
	that.lastHuman = nil
	that.lastComputer = nil

	that.notify(Transition{
		Kind: KindReset,
		From: from,
		To:   that.state,
	})

	return that.Snapshot()
}

// Restore - rebuilds the controller from a stored session. The state is derived from the board.
func (that *GameController) Restore(session *entity.Session) error {
	if err := session.Board.Validate(); err != nil {
		return fmt.Errorf("failed to restore session %s: %w", session.ID, err)
	}

	that.board = session.Board
	that.result = that.board.Outcome()
	that.lastHuman = copyMove(session.LastHumanMove)
	that.lastComputer = copyMove(session.LastComputerMove)

	switch {
	case that.result != entity.OutcomeNone:
		that.state = entity.StateGameOver
	case that.board.Count(HumanMark) == that.board.Count(ComputerMark):
		that.state = entity.StateAwaitingHumanMove
	default:
		that.state = entity.StateAwaitingComputerMove
	}

	return nil
}

// Session - the snapshot as a storable session with the given id.
func (that *GameController) Session(id string) *entity.Session {
	return &entity.Session{
		ID:               id,
		Board:            that.board,
		State:            that.state,
		Result:           that.result,
		LastHumanMove:    copyMove(that.lastHuman),
		LastComputerMove: copyMove(that.lastComputer),
	}
}

// place - applies a move the caller has already validated and advances the state.
func (that *GameController) place(mark entity.Mark, move entity.Move) {
	from := that.state

	that.board[move.Row][move.Col] = mark
	if mark == HumanMark {
		that.lastHuman = &move
	} else {
		that.lastComputer = &move
	}

	switch outcome := that.board.Outcome(); outcome {
	case entity.OutcomeNone:
		if mark == HumanMark {
			that.state = entity.StateAwaitingComputerMove
		} else {
			that.state = entity.StateAwaitingHumanMove
		}
	default:
		that.result = outcome
		that.state = entity.StateGameOver
	}

	that.notify(Transition{
		Kind: KindPlacement,
		From: from,
		To:   that.state,
		Mark: mark,
		Move: move,
	})
}

func (that *GameController) notify(transition Transition) {
	if len(that.observers) == 0 {
		return
	}

	transition.Snapshot = that.Snapshot()
	for _, observer := range that.observers {
		observer.OnTransition(transition)
	}
}

func copyMove(move *entity.Move) *entity.Move {
	if move == nil {
		return nil
	}

	m := *move

	return &m
}
