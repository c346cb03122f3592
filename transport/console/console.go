// Package console plays the game on a terminal: the human types "row col" and the computer answers.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const prompt = "your move (row col, q to quit): "

var errBadInput = errors.New("expected two numbers, for example \"1 1\" or \"0,2\"")

type Console struct {
	logger     *slog.Logger
	in         io.Reader
	out        *termenv.Output
	controller *tictactoe.GameController
}

// New - the colour profile is detected from out unless an option sets it.
func New(logger *slog.Logger, in io.Reader, out io.Writer, searcher minimax.Searcher, opts ...termenv.OutputOption) *Console {
	console := &Console{
		logger: logger.With("component", "console"),
		in:     in,
		out:    termenv.NewOutput(out, opts...),
	}

	console.controller = tictactoe.NewGameController(searcher,
		tictactoe.WithObserver(tictactoe.NewLogObserver(logger)),
		tictactoe.WithObserver(tictactoe.ObserverFunc(console.onTransition)),
	)

	return console
}

// Run - reads moves until the input ends, the player quits or ctx is cancelled.
func (that *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	that.render(that.controller.Snapshot().Board)
	that.printf(prompt)

	for {
		select {
		case <-ctx.Done():
			that.printf("\n")
			return nil
		case line, ok := <-lines:
			if !ok {
				return readError(readErr)
			}

			if quit := that.handleLine(strings.TrimSpace(line)); quit {
				that.printf("bye\n")
				return nil
			}

			that.printf(prompt)
		}
	}
}

func (that *Console) handleLine(line string) bool {
	switch strings.ToLower(line) {
	case "":
		return false
	case "q", "quit", "exit":
		return true
	}

	move, err := parseMove(line)
	if err != nil {
		that.printf("%v\n", err)
		return false
	}

	before := that.controller.Snapshot()
	if move.Valid() && before.Board.At(move) != entity.Empty {
		that.printf("cell %s is taken\n", move)
		return false
	}

	snapshot, err := that.controller.Play(move)
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidCell) {
			that.printf("row and column must be between 0 and %d\n", entity.Size-1)
			return false
		}

		that.logger.Error("failed to play", "move", move.String(), "error", err)
		that.printf("error: %v\n", err)

		return false
	}

	that.render(snapshot.Board)

	if snapshot.State == entity.StateGameOver {
		that.printf("%s\n\n", snapshot.Result.Message())
		that.controller.Reset()
	}

	return false
}

func (that *Console) onTransition(transition tictactoe.Transition) {
	switch transition.Kind {
	case tictactoe.KindPlacement:
		if transition.Mark == tictactoe.ComputerMark {
			that.printf("%s plays %s\n", that.mark(transition.Mark), transition.Move)
		}
	case tictactoe.KindReset:
		that.printf("new game\n")
		that.render(transition.Snapshot.Board)
	}
}

func (that *Console) render(board entity.Board) {
	var sb strings.Builder

	sb.WriteString("\n    0   1   2\n")
	for row := range entity.Size {
		if row > 0 {
			sb.WriteString("   ---+---+---\n")
		}

		cells := make([]string, 0, entity.Size)
		for col := range entity.Size {
			cells = append(cells, that.mark(board[row][col]))
		}

		fmt.Fprintf(&sb, "%d   %s\n", row, strings.Join(cells, " | "))
	}
	sb.WriteString("\n")

	that.printf("%s", sb.String())
}

func (that *Console) mark(mark entity.Mark) string {
	switch mark {
	case entity.X:
		return that.out.String(string(mark)).Foreground(that.out.Color("1")).Bold().String()
	case entity.O:
		return that.out.String(string(mark)).Foreground(that.out.Color("4")).Bold().String()
	default:
		return "."
	}
}

func (that *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}

// parseMove - accepts "r c" and "r,c".
func parseMove(line string) (entity.Move, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 2 {
		return entity.Move{}, errBadInput
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, errBadInput
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, errBadInput
	}

	return entity.Move{Row: row, Col: col}, nil
}

func readError(readErr <-chan error) error {
	select {
	case err := <-readErr:
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	default:
	}

	return nil
}
