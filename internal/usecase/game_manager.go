package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager runs one request against a stored session: load, restore a controller,
// apply the transition and store the result.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	searcher minimax.Searcher
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, searcher minimax.Searcher) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		searcher: searcher,
	}
}

// NewGame - creates an empty game with X to move.
func (that *GameManager) NewGame(ctx context.Context) (*entity.Session, error) {
	controller := that.newController()
	session := controller.Session(uuid.NewString())

	if err := that.gameRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "game_id", session.ID)

	return session, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return session, nil
}

// MakeTurn - plays the human move and the computer reply. A finished game returns
// the stored session together with apperror.ErrGameFinished.
func (that *GameManager) MakeTurn(ctx context.Context, id string, move entity.Move) (*entity.Session, error) {
	log := that.logger.With("method", "MakeTurn", "game_id", id)

	session, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	controller := that.newController()
	if err = controller.Restore(session); err != nil {
		return nil, fmt.Errorf("failed to restore game: %w", err)
	}

	// a previous request may have stored the game before the computer replied
	if controller.State() == entity.StateAwaitingComputerMove {
		if _, err = controller.Step(); err != nil {
			return nil, fmt.Errorf("failed to finish computer turn: %w", err)
		}
	}

	if _, err = controller.Play(move); err != nil {
		if errors.Is(err, apperror.ErrGameFinished) {
			return session, apperror.ErrGameFinished
		}

		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	updated := controller.Session(id)
	if err = that.gameRepo.CreateOrUpdate(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if updated.IsFinished() {
		log.Info("game finished", "result", updated.Result)
	}

	return updated, nil
}

// Reset - empties the board of an existing game and keeps its id.
func (that *GameManager) Reset(ctx context.Context, id string) (*entity.Session, error) {
	if _, err := that.GetGame(ctx, id); err != nil {
		return nil, err
	}

	controller := that.newController()
	controller.Reset()

	session := controller.Session(id)
	if err := that.gameRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to reset game: %w", err)
	}

	that.logger.Info("game reset", "game_id", id)

	return session, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "game_id", id)

	return nil
}

func (that *GameManager) newController() *tictactoe.GameController {
	return tictactoe.NewGameController(that.searcher, tictactoe.WithObserver(tictactoe.NewLogObserver(that.logger)))
}
