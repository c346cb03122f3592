package tictactoe

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type TransitionKind string

const (
	KindPlacement TransitionKind = "placement"
	KindReset     TransitionKind = "reset"
)

// Transition describes one change of the game state. Mark and Move are set for placements only.
type Transition struct {
	Kind     TransitionKind
	From     entity.State
	To       entity.State
	Mark     entity.Mark
	Move     entity.Move
	Snapshot Snapshot
}

type Observer interface {
	OnTransition(transition Transition)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(transition Transition)

func (that ObserverFunc) OnTransition(transition Transition) {
	that(transition)
}

// NewLogObserver - logs every transition at debug level.
func NewLogObserver(logger *slog.Logger) Observer {
	log := logger.With("component", "game_controller")

	return ObserverFunc(func(transition Transition) {
		attrs := []any{
			"kind", transition.Kind,
			"from", transition.From,
			"to", transition.To,
			"board", transition.Snapshot.Board.String(),
		}

		if transition.Kind == KindPlacement {
			attrs = append(attrs, "mark", transition.Mark, "row", transition.Move.Row, "col", transition.Move.Col)
		}

		if transition.To == entity.StateGameOver {
			attrs = append(attrs, "result", transition.Snapshot.Result)
		}

		log.Debug("state transition", attrs...)
	})
}
