package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-variants/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-variants/internal/game"
)

type memoryGame struct {
	mu    sync.RWMutex
	games map[string][]byte
}

// NewMemoryGameRepository keeps sessions in process memory. Sessions are stored
// encoded, so callers never share state with the repository.
func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string][]byte),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, session *game.Session) error {
	data, err := encodeSession(session)
	if err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[gameKey(session.ID)] = data

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*game.Session, error) {
	that.mu.RLock()
	data, ok := that.games[gameKey(id)]
	that.mu.RUnlock()

	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	return decodeSession(data)
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[gameKey(id)]; !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.games, gameKey(id))

	return nil
}
