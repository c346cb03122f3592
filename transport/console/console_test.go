package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type firstEmpty struct{}

func (firstEmpty) Evaluate(*entity.Board, bool) minimax.Score { return minimax.Draw }

func (firstEmpty) BestMove(board *entity.Board) (entity.Move, bool) {
	cells := board.EmptyCells()
	if len(cells) == 0 {
		return entity.Move{}, false
	}
	return cells[0], true
}

func run(t *testing.T, searcher minimax.Searcher, input string) string {
	t.Helper()

	var out bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	console := New(logger, strings.NewReader(input), &out, searcher, termenv.WithProfile(termenv.Ascii))
	require.NoError(t, console.Run(context.Background()))

	return out.String()
}

func TestConsole_Run(t *testing.T) {
	t.Run("Computer answers the human move", func(t *testing.T) {
		// When: X takes the center and quits
		out := run(t, minimax.Exhaustive{}, "1 1\nq\n")

		// Then: O answers in the first corner
		assert.Contains(t, out, "O plays (0,0)")
		assert.Contains(t, out, "0   O | . | .\n")
		assert.Contains(t, out, "1   . | X | .\n")
		assert.True(t, strings.HasSuffix(out, "bye\n"))
	})

	t.Run("Game over prints the result and starts over", func(t *testing.T) {
		// Given: a computer that takes the first free cell
		// When: X plays the main diagonal and the input ends
		out := run(t, firstEmpty{}, "0 0\n1,1\n2 2\n")

		// Then: X wins and a new game is shown
		assert.Contains(t, out, "X wins!")
		assert.Contains(t, out, "new game")
		assert.True(t, strings.HasSuffix(out, prompt))
	})

	t.Run("Bad input is reported", func(t *testing.T) {
		out := run(t, minimax.Exhaustive{}, "hello\n5 5\n1 1\n0 0\nquit\n")

		assert.Contains(t, out, errBadInput.Error())
		assert.Contains(t, out, "row and column must be between 0 and 2")
		assert.Contains(t, out, "cell (0,0) is taken")
	})

	t.Run("Cancelled context stops a waiting console", func(t *testing.T) {
		// Given: an input that never delivers a line
		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		ctx, cancel := context.WithCancel(context.Background())
		console := New(slog.New(slog.NewJSONHandler(io.Discard, nil)), reader, io.Discard, minimax.Exhaustive{})

		done := make(chan error, 1)
		go func() { done <- console.Run(ctx) }()

		// When: the context is cancelled
		cancel()

		// Then: Run returns without error
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("console did not stop")
		}
	})
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    entity.Move
		wantErr bool
	}{
		{name: "Space", line: "1 2", want: entity.Move{Row: 1, Col: 2}},
		{name: "Comma", line: "2,0", want: entity.Move{Row: 2, Col: 0}},
		{name: "Comma and space", line: "0, 1", want: entity.Move{Row: 0, Col: 1}},
		{name: "Out of range still parses", line: "7 7", want: entity.Move{Row: 7, Col: 7}},
		{name: "One number", line: "1", wantErr: true},
		{name: "Three numbers", line: "1 1 1", wantErr: true},
		{name: "Letters", line: "a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMove(tt.line)
			if tt.wantErr {
				require.ErrorIs(t, err, errBadInput)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
