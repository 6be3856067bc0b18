// Package bot picks moves for the computer opponent.
package bot

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-variants/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-variants/internal/game"
)

var ErrNotBotTurn = errors.New("it's not the bot's turn")

// Strategy chooses the next move for the player to move. It must not change
// the session.
type Strategy interface {
	ChooseMove(session *game.Session) (game.Move, error)
}

type randomStrategy struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom returns a strategy that picks uniformly among the legal moves. A
// nil rng is seeded from the clock.
func NewRandom(rng *rand.Rand) Strategy {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok
	}

	return &randomStrategy{rng: rng}
}

func (that *randomStrategy) ChooseMove(session *game.Session) (game.Move, error) {
	moves := session.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, apperror.ErrNoAvailableMoves
	}

	that.mu.Lock()
	chosen := moves[that.rng.Intn(len(moves))]
	that.mu.Unlock()

	return chosen, nil
}

// MakeTurn asks the strategy for the computer's move and applies it.
func MakeTurn(strategy Strategy, session *game.Session) (game.Move, error) {
	if !session.IsCPUTurn() {
		return game.Move{}, ErrNotBotTurn
	}

	move, err := strategy.ChooseMove(session)
	if err != nil {
		return game.Move{}, fmt.Errorf("bot failed to choose move: %w", err)
	}

	if err = session.Apply(move); err != nil {
		return game.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}
