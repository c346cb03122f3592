package minimax

import "github.com/rocketscienceinc/tictactoe-minimax/internal/entity"

// Exhaustive walks the whole tree below a position on every call.
type Exhaustive struct{}

func (that Exhaustive) Evaluate(board *entity.Board, maximizing bool) Score {
	if score, ok := terminal(board); ok {
		return score
	}

	mark := mover(maximizing)

	best := OWins + 1
	if maximizing {
		best = XWins - 1
	}

	for row := range entity.Size {
		for col := range entity.Size {
			if board[row][col] != entity.Empty {
				continue
			}

			board[row][col] = mark
			score := that.Evaluate(board, !maximizing)
			board[row][col] = entity.Empty

			if maximizing && score > best || !maximizing && score < best {
				best = score
			}
		}
	}

	return best
}

// BestMove - tries every empty cell as O and keeps the first strictly greatest score.
func (that Exhaustive) BestMove(board *entity.Board) (entity.Move, bool) {
	var (
		move      entity.Move
		bestScore Score
		found     bool
	)

	for row := range entity.Size {
		for col := range entity.Size {
			if board[row][col] != entity.Empty {
				continue
			}

			board[row][col] = entity.O
			score := that.Evaluate(board, false)
			board[row][col] = entity.Empty

			if !found || score > bestScore {
				move, bestScore, found = entity.Move{Row: row, Col: col}, score, true
			}
		}
	}

	return move, found
}
