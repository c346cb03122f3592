package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type memoryGame struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
}

// NewMemoryGameRepository - keeps sessions in process memory. Entries never expire.
func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		sessions: make(map[string]entity.Session),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, session *entity.Session) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[session.ID] = cloneSession(session)

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Session, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	session, ok := that.sessions[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	clone := cloneSession(&session)

	return &clone, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.sessions, id)

	return nil
}

// cloneSession - copies the move pointers so callers never share state with the store.
func cloneSession(session *entity.Session) entity.Session {
	clone := *session

	if session.LastHumanMove != nil {
		move := *session.LastHumanMove
		clone.LastHumanMove = &move
	}

	if session.LastComputerMove != nil {
		move := *session.LastComputerMove
		clone.LastComputerMove = &move
	}

	return clone
}
