package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Size is the side length of the board.
const Size = 3

type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

// Opponent - returns the mark playing against this one. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Move addresses a single cell, zero based.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) Valid() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

// Index - row-major index of the cell, 0..8.
func (that Move) Index() int {
	return that.Row*Size + that.Col
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board is a 3x3 grid stored row-major. The zero value is an empty board.
type Board [Size][Size]Mark

// WinLines are the 3 rows, 3 columns and 2 diagonals.
var WinLines = [8][Size]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// HasWon - reports whether any line is entirely occupied by mark.
func HasWon(board Board, mark Mark) bool {
	if mark == Empty {
		return false
	}

	for _, line := range WinLines {
		if board[line[0].Row][line[0].Col] == mark &&
			board[line[1].Row][line[1].Col] == mark &&
			board[line[2].Row][line[2].Col] == mark {
			return true
		}
	}

	return false
}

// IsDraw - reports whether no empty cell remains.
// A full board can still hold a win, so check HasWon for both marks first.
func IsDraw(board Board) bool {
	for _, row := range board {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// Outcome - X win, then O win, then draw.
func (that *Board) Outcome() Outcome {
	switch {
	case HasWon(*that, X):
		return OutcomeXWins
	case HasWon(*that, O):
		return OutcomeOWins
	case IsDraw(*that):
		return OutcomeDraw
	default:
		return OutcomeNone
	}
}

func (that *Board) At(move Move) Mark {
	return that[move.Row][move.Col]
}

// Set - places mark on the cell. Setting Empty clears the cell.
func (that *Board) Set(move Move, mark Mark) error {
	if !move.Valid() {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, move.Row, move.Col)
	}

	that[move.Row][move.Col] = mark

	return nil
}

// EmptyCells - returns the empty cells in row-major order.
func (that *Board) EmptyCells() []Move {
	cells := make([]Move, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}

	return cells
}

func (that *Board) Full() bool {
	return IsDraw(*that)
}

func (that *Board) Count(mark Mark) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				count++
			}
		}
	}

	return count
}

// Validate - checks the board could come from alternating play with X first.
func (that *Board) Validate() error {
	xCount, oCount := that.Count(X), that.Count(O)
	if diff := xCount - oCount; diff != 0 && diff != 1 {
		return fmt.Errorf("%w: %d X against %d O", apperror.ErrInvalidBoard, xCount, oCount)
	}

	for _, row := range that {
		for _, cell := range row {
			if cell != Empty && cell != X && cell != O {
				return fmt.Errorf("%w: unknown mark %q", apperror.ErrInvalidBoard, cell)
			}
		}
	}

	return nil
}

// String - compact form, e.g. "X__/_X_/OO_". ParseBoard reads it back.
func (that Board) String() string {
	var sb strings.Builder
	for row := range Size {
		if row > 0 {
			sb.WriteByte('/')
		}

		for col := range Size {
			switch that[row][col] {
			case Empty:
				sb.WriteByte('_')
			default:
				sb.WriteString(string(that[row][col]))
			}
		}
	}

	return sb.String()
}

// ParseBoard - reads nine cells of 'X', 'O' and '_' (or '.'). Slashes and spaces are ignored.
func ParseBoard(s string) (Board, error) {
	var board Board

	n := 0
	for _, r := range s {
		switch r {
		case '/', ' ', '\n', '\t':
			continue
		}

		if n >= Size*Size {
			return Board{}, fmt.Errorf("%w: more than %d cells in %q", apperror.ErrInvalidBoard, Size*Size, s)
		}

		var mark Mark
		switch r {
		case 'X', 'x':
			mark = X
		case 'O', 'o':
			mark = O
		case '_', '.':
			mark = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q", apperror.ErrInvalidBoard, r)
		}

		board[n/Size][n%Size] = mark
		n++
	}

	if n != Size*Size {
		return Board{}, fmt.Errorf("%w: %d cells in %q", apperror.ErrInvalidBoard, n, s)
	}

	return board, nil
}
