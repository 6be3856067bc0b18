package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-variants/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-variants/internal/bot"
	"github.com/rocketscienceinc/tictactoe-variants/internal/game"
	"github.com/rocketscienceinc/tictactoe-variants/pkg/roomcode"
)

// maxCodeAttempts bounds the retries when a generated room code is taken.
const maxCodeAttempts = 5

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, session *game.Session) error
	GetByID(ctx context.Context, id string) (*game.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type strategyDep interface {
	ChooseMove(session *game.Session) (game.Move, error)
}

type NewGameRequest struct {
	Variant game.Variant `json:"variant"`
	Options game.Options `json:"options"`
}

// GameManager loads, plays and stores sessions. Calls on the same session are
// serialized; the engines themselves hold no locks.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepoDep
	strategy strategyDep

	mu    sync.Mutex
	locks map[string]*sessionLock
}

// sessionLock is dropped from the map once no caller holds or waits on it.
type sessionLock struct {
	sync.Mutex
	refs int
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepoDep, strategy strategyDep) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
		strategy: strategy,

		locks: make(map[string]*sessionLock),
	}
}

// CreateGame opens a session under a fresh room code. In cpu mode the computer
// makes the opening move when it starts.
func (that *GameManager) CreateGame(ctx context.Context, req NewGameRequest) (*game.Session, error) {
	log := that.logger.With("method", "CreateGame", "variant", req.Variant)

	id, err := that.newGameID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate game id: %w", err)
	}

	session, err := game.New(id, req.Variant, req.Options)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if session.IsCPUTurn() {
		if err = that.makeBotTurn(session); err != nil {
			return nil, err
		}
	}

	if err = that.updateGame(ctx, session); err != nil {
		return nil, err
	}

	log.Info("game created", "game_id", id, "mode", session.Mode)

	return session, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*game.Session, error) {
	unlock := that.lock(id)
	defer unlock()

	return that.getGameByID(ctx, id)
}

// MakeMove plays a human move and, in cpu mode, the computer's reply. When the
// game ends the final session is returned together with ErrGameFinished.
func (that *GameManager) MakeMove(ctx context.Context, id string, move game.Move) (*game.Session, error) {
	log := that.logger.With("method", "MakeMove", "game_id", id)

	unlock := that.lock(id)
	defer unlock()

	session, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.IsFinished() {
		return session, apperror.ErrGameFinished
	}

	if session.IsCPUTurn() {
		return nil, apperror.ErrNotYourTurn
	}

	if err = session.Apply(move); err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	if !session.IsFinished() && session.IsCPUTurn() {
		if err = that.makeBotTurn(session); err != nil {
			return nil, err
		}
	}

	if err = that.updateGame(ctx, session); err != nil {
		return nil, err
	}

	if session.IsFinished() {
		log.Info("game finished", "status", session.Status().String(), "score", session.Score)

		return session, apperror.ErrGameFinished
	}

	return session, nil
}

// Undo takes back the last human move. In cpu mode the computer's reply is taken
// back with it.
func (that *GameManager) Undo(ctx context.Context, id string) (*game.Session, error) {
	unlock := that.lock(id)
	defer unlock()

	session, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = session.Undo(); err != nil {
		return nil, fmt.Errorf("failed to undo: %w", err)
	}

	if session.IsCPUTurn() {
		if err = session.Undo(); err != nil && !errors.Is(err, apperror.ErrNoHistory) {
			return nil, fmt.Errorf("failed to undo: %w", err)
		}
	}

	// the computer opened the game and everything was taken back
	if session.IsCPUTurn() {
		if err = that.makeBotTurn(session); err != nil {
			return nil, err
		}
	}

	if err = that.updateGame(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Restart starts a new round in the same session, keeping its score.
func (that *GameManager) Restart(ctx context.Context, id string) (*game.Session, error) {
	log := that.logger.With("method", "Restart", "game_id", id)

	unlock := that.lock(id)
	defer unlock()

	session, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Restart()

	if session.IsCPUTurn() {
		if err = that.makeBotTurn(session); err != nil {
			return nil, err
		}
	}

	if err = that.updateGame(ctx, session); err != nil {
		return nil, err
	}

	log.Info("game restarted", "score", session.Score)

	return session, nil
}

// EndGame removes the session from storage.
func (that *GameManager) EndGame(ctx context.Context, id string) error {
	log := that.logger.With("method", "EndGame", "game_id", id)

	unlock := that.lock(id)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	log.Info("game deleted")

	return nil
}

func (that *GameManager) lock(id string) func() {
	that.mu.Lock()
	l, ok := that.locks[id]
	if !ok {
		l = &sessionLock{}
		that.locks[id] = l
	}
	l.refs++
	that.mu.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		that.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(that.locks, id)
		}
		that.mu.Unlock()
	}
}

func (that *GameManager) newGameID(ctx context.Context) (string, error) {
	for range maxCodeAttempts {
		id := roomcode.GenerateGameID()

		_, err := that.gameRepo.GetByID(ctx, id)
		if errors.Is(err, apperror.ErrGameNotFound) {
			return id, nil
		}

		if err != nil {
			return "", fmt.Errorf("failed to check game id: %w", err)
		}
	}

	return "", apperror.ErrGameAlreadyExists
}

func (that *GameManager) makeBotTurn(session *game.Session) error {
	log := that.logger.With("method", "makeBotTurn", "game_id", session.ID)

	move, err := bot.MakeTurn(that.strategy, session)
	if err != nil {
		return fmt.Errorf("failed to make bot turn: %w", err)
	}

	log.Debug("bot moved", "board", move.Board, "cell", move.Cell, "direction", move.Direction)

	return nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*game.Session, error) {
	session, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return session, nil
}

func (that *GameManager) updateGame(ctx context.Context, session *game.Session) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, session); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
