package minimax

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) entity.Board {
	t.Helper()

	board, err := entity.ParseBoard(s)
	require.NoError(t, err)

	return board
}

// reachable - every position reachable by alternating play from the empty board, X first.
func reachable() []entity.Board {
	seen := map[entity.Board]struct{}{}
	var walk func(board entity.Board, mark entity.Mark)
	walk = func(board entity.Board, mark entity.Mark) {
		if _, ok := seen[board]; ok {
			return
		}
		seen[board] = struct{}{}

		if board.Outcome() != entity.OutcomeNone {
			return
		}

		for _, move := range board.EmptyCells() {
			next := board
			next[move.Row][move.Col] = mark
			walk(next, mark.Opponent())
		}
	}
	walk(entity.Board{}, entity.X)

	boards := make([]entity.Board, 0, len(seen))
	for board := range seen {
		boards = append(boards, board)
	}

	return boards
}

func TestEvaluate_Terminal(t *testing.T) {
	t.Run("X win scores -1", func(t *testing.T) {
		board := mustParse(t, "XXX/OO_/___")
		assert.Equal(t, XWins, Evaluate(&board, true))
	})

	t.Run("O win scores +1", func(t *testing.T) {
		board := mustParse(t, "XX_/OOO/X__")
		assert.Equal(t, OWins, Evaluate(&board, false))
	})

	t.Run("Draw scores 0", func(t *testing.T) {
		board := mustParse(t, "XOX/OXO/OXO")
		assert.Equal(t, Draw, Evaluate(&board, true))
	})
}

func TestEvaluate_LeavesBoardUntouched(t *testing.T) {
	for _, text := range []string{
		"___/___/___",
		"X__/_X_/OO_",
		"XX_/_O_/___",
		"XO_/_X_/__O",
	} {
		t.Run(text, func(t *testing.T) {
			// Given: a position and a copy of it
			board := mustParse(t, text)
			before := board

			// When: scoring it for both movers
			Evaluate(&board, true)
			Evaluate(&board, false)
			AlphaBeta{}.Evaluate(&board, true)
			BestMove(&board)

			// Then: the board is identical to the copy
			assert.Equal(t, before, board)
		})
	}
}

func TestBestMove(t *testing.T) {
	t.Run("Empty board picks a drawing move", func(t *testing.T) {
		// Given: an empty board
		var board entity.Board

		// When: asking for the best move
		move, ok := BestMove(&board)
		require.True(t, ok)

		// Then: the move keeps the game drawn under perfect play
		require.NoError(t, board.Set(move, entity.O))
		assert.Equal(t, Draw, Evaluate(&board, false))
	})

	t.Run("Takes the winning cell", func(t *testing.T) {
		// Given: X _ _ / _ X _ / O O _
		board := mustParse(t, "X__/_X_/OO_")

		// When: O moves
		move, ok := BestMove(&board)

		// Then: O completes the bottom row
		require.True(t, ok)
		assert.Equal(t, entity.Move{Row: 2, Col: 2}, move)
	})

	t.Run("Blocks X on the top row", func(t *testing.T) {
		// Given: X threatens (0,2)
		board := mustParse(t, "XX_/_O_/___")

		// When: O moves
		move, ok := BestMove(&board)

		// Then: O blocks
		require.True(t, ok)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
	})

	t.Run("Ties go to the first cell in row-major order", func(t *testing.T) {
		// Given: X in the center, where every corner reply draws
		board := mustParse(t, "___/_X_/___")

		// When: O moves
		move, ok := BestMove(&board)

		// Then: the first corner is returned
		require.True(t, ok)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)

		// And: the opposite corner scores the same
		corner := board
		require.NoError(t, corner.Set(entity.Move{Row: 2, Col: 2}, entity.O))
		assert.Equal(t, Draw, Evaluate(&corner, false))
	})

	t.Run("Full board has no move", func(t *testing.T) {
		board := mustParse(t, "XOX/OXO/OXO")

		_, ok := BestMove(&board)
		assert.False(t, ok)
	})

	t.Run("Deterministic", func(t *testing.T) {
		board := mustParse(t, "X__/___/___")

		first, _ := BestMove(&board)
		for range 5 {
			again, _ := BestMove(&board)
			assert.Equal(t, first, again)
		}
	})
}

func TestAlphaBeta_MatchesExhaustive(t *testing.T) {
	exhaustive, pruned := Exhaustive{}, AlphaBeta{}

	for _, board := range reachable() {
		// Then: both searchers score every position the same
		for _, maximizing := range []bool{true, false} {
			snapshot := board
			require.Equal(t, exhaustive.Evaluate(&snapshot, maximizing), pruned.Evaluate(&snapshot, maximizing), "board %s", board)
			require.Equal(t, board, snapshot)
		}

		// Then: where O is to move, both pick the same cell
		if board.Outcome() == entity.OutcomeNone && board.Count(entity.X) == board.Count(entity.O)+1 {
			wantMove, wantOK := exhaustive.BestMove(&board)
			gotMove, gotOK := pruned.BestMove(&board)
			require.Equal(t, wantOK, gotOK)
			require.Equal(t, wantMove, gotMove, "board %s", board)
		}
	}
}

func TestNew(t *testing.T) {
	t.Run("Known names", func(t *testing.T) {
		searcher, err := New("")
		require.NoError(t, err)
		assert.IsType(t, Exhaustive{}, searcher)

		searcher, err = New(NameAlphaBeta)
		require.NoError(t, err)
		assert.IsType(t, AlphaBeta{}, searcher)
	})

	t.Run("Unknown name", func(t *testing.T) {
		_, err := New("negamax")
		assert.ErrorIs(t, err, apperror.ErrUnknownSearcher)
	})
}
