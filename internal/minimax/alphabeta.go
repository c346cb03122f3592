package minimax

import "github.com/rocketscienceinc/tictactoe-minimax/internal/entity"

// AlphaBeta returns the same scores as Exhaustive but skips branches that cannot change them.
// BestMove keeps the same row-major tie-break: a sibling that fails low scores at most the
// current best and never replaces it.
type AlphaBeta struct{}

func (that AlphaBeta) Evaluate(board *entity.Board, maximizing bool) Score {
	return that.search(board, maximizing, XWins-1, OWins+1)
}

func (that AlphaBeta) search(board *entity.Board, maximizing bool, alpha, beta Score) Score {
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
			score := that.search(board, !maximizing, alpha, beta)
			board[row][col] = entity.Empty

			if maximizing {
				best = max(best, score)
				alpha = max(alpha, best)
			} else {
				best = min(best, score)
				beta = min(beta, best)
			}

			if alpha >= beta {
				return best
			}
		}
	}

	return best
}

func (that AlphaBeta) BestMove(board *entity.Board) (entity.Move, bool) {
	var (
		move      entity.Move
		bestScore Score
		found     bool
	)

	alpha := XWins - 1

	for row := range entity.Size {
		for col := range entity.Size {
			if board[row][col] != entity.Empty {
				continue
			}

			board[row][col] = entity.O
			score := that.search(board, false, alpha, OWins+1)
			board[row][col] = entity.Empty

			if !found || score > bestScore {
				move, bestScore, found = entity.Move{Row: row, Col: col}, score, true
				alpha = score
			}
		}
	}

	return move, found
}
