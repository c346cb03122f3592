// Package minimax picks the computer's move by searching the full game tree.
//
// O is the maximizer and X the minimizer. A position scores -1 when X has won,
// +1 when O has won and 0 for a draw.
package minimax

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type Score int

const (
	XWins Score = -1
	Draw  Score = 0
	OWins Score = 1
)

const (
	NameExhaustive = "exhaustive"
	NameAlphaBeta  = "alphabeta"
)

// Searcher scores positions and picks the best move for O.
// Implementations mutate the board during search and restore it before returning.
type Searcher interface {
	Evaluate(board *entity.Board, maximizing bool) Score
	BestMove(board *entity.Board) (entity.Move, bool)
}

// New - returns the searcher registered under name. An empty name selects exhaustive search.
func New(name string) (Searcher, error) {
	switch name {
	case "", NameExhaustive:
		return Exhaustive{}, nil
	case NameAlphaBeta:
		return AlphaBeta{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownSearcher, name)
	}
}

// Evaluate - scores the position with exhaustive minimax.
func Evaluate(board *entity.Board, maximizing bool) Score {
	return Exhaustive{}.Evaluate(board, maximizing)
}

// BestMove - picks O's move with exhaustive minimax. It returns false on a full board.
func BestMove(board *entity.Board) (entity.Move, bool) {
	return Exhaustive{}.BestMove(board)
}

// terminal - X win is checked before O win, then the draw.
func terminal(board *entity.Board) (Score, bool) {
	switch {
	case entity.HasWon(*board, entity.X):
		return XWins, true
	case entity.HasWon(*board, entity.O):
		return OWins, true
	case entity.IsDraw(*board):
		return Draw, true
	default:
		return Draw, false
	}
}

func mover(maximizing bool) entity.Mark {
	if maximizing {
		return entity.O
	}
	return entity.X
}
