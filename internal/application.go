package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-variants/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-variants/internal/bot"
	"github.com/rocketscienceinc/tictactoe-variants/internal/config"
	"github.com/rocketscienceinc/tictactoe-variants/internal/game"
	"github.com/rocketscienceinc/tictactoe-variants/internal/quixo"
	"github.com/rocketscienceinc/tictactoe-variants/internal/repository"
	"github.com/rocketscienceinc/tictactoe-variants/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-variants/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-variants/pkg/roomcode"
)

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrInvalidMove  = errors.New("invalid move notation")
)

// Summary is the tally of a simulation run.
type Summary struct {
	Games     int             `json:"games"`
	Score     game.Scoreboard `json:"score"`
	Abandoned int             `json:"abandoned"`
}

// RunSimulation plays computer against computer for the configured number of
// games and returns the tally.
func RunSimulation(ctx context.Context, logger *slog.Logger, conf *config.Config) (Summary, error) {
	logger = logger.With("run_id", roomcode.GenerateNewSessionID())
	log := logger.With("component", "simulation")

	variant, err := game.ParseVariant(conf.Simulation.Variant)
	if err != nil {
		return Summary{}, err
	}

	gameRepo, closeRepo, err := newGameRepository(ctx, logger, conf)
	if err != nil {
		return Summary{}, err
	}
	defer closeRepo()

	var rng *rand.Rand
	if conf.Simulation.Seed != 0 {
		rng = rand.New(rand.NewSource(conf.Simulation.Seed)) //nolint: gosec // it's ok
	}

	strategy := bot.NewRandom(rng)
	manager := usecase.NewGameManager(logger, gameRepo, strategy)

	var summary Summary
	for i := range conf.Simulation.Games {
		if err = ctx.Err(); err != nil {
			return summary, fmt.Errorf("simulation interrupted: %w", err)
		}

		session, err := playOut(ctx, manager, strategy, variant, conf)
		if err != nil {
			return summary, fmt.Errorf("failed to play game %d: %w", i+1, err)
		}

		summary.Games++
		if session.IsFinished() {
			summary.Score.Record(session.Status())
		} else {
			summary.Abandoned++
		}

		log.Info("game played", "game", i+1, "game_id", session.ID, "status", session.Status().String())

		if err = manager.EndGame(ctx, session.ID); err != nil {
			log.Error("failed to delete game", "error", err)
		}
	}

	log.Info("simulation finished", "games", summary.Games, "score", summary.Score, "abandoned", summary.Abandoned)

	return summary, nil
}

// playOut plays one game to the end, or until the move limit is reached.
func playOut(
	ctx context.Context,
	manager *usecase.GameManager,
	strategy bot.Strategy,
	variant game.Variant,
	conf *config.Config,
) (*game.Session, error) {
	session, err := manager.CreateGame(ctx, usecase.NewGameRequest{
		Variant: variant,
		Options: conf.Game.Options(game.ModeLocal),
	})
	if err != nil {
		return nil, err
	}

	for moves := 0; conf.Simulation.MaxMoves == 0 || moves < conf.Simulation.MaxMoves; moves++ {
		move, err := strategy.ChooseMove(session)
		if err != nil {
			return nil, err
		}

		session, err = manager.MakeMove(ctx, session.ID, move)
		if errors.Is(err, apperror.ErrGameFinished) {
			return session, nil
		}

		if err != nil {
			return nil, err
		}
	}

	return session, nil
}

// RunScript applies moves to a new local session and writes the board after
// each of them.
func RunScript(
	ctx context.Context,
	logger *slog.Logger,
	conf *config.Config,
	variant game.Variant,
	moves []game.Move,
	out io.Writer,
) (*game.Session, error) {
	logger = logger.With("run_id", roomcode.GenerateNewSessionID())

	gameRepo, closeRepo, err := newGameRepository(ctx, logger, conf)
	if err != nil {
		return nil, err
	}
	defer closeRepo()

	manager := usecase.NewGameManager(logger, gameRepo, bot.NewRandom(nil))

	session, err := manager.CreateGame(ctx, usecase.NewGameRequest{
		Variant: variant,
		Options: conf.Game.Options(game.ModeLocal),
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(out, "game %s (%s)\n%s", session.ID, session.Variant, session)

	for i, move := range moves {
		session, err = manager.MakeMove(ctx, session.ID, move)
		if err != nil && !errors.Is(err, apperror.ErrGameFinished) {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}

		fmt.Fprintf(out, "\nmove %d: %s\n%s", i+1, FormatMove(variant, move), session)

		if session.IsFinished() {
			break
		}
	}

	fmt.Fprintf(out, "\n%s\n", session.Status())

	return session, nil
}

// ParseMove reads the move notation of a variant: "4" for classic and decay,
// "board:cell" for ultimate and "cell:direction" for quixo.
func ParseMove(variant game.Variant, s string) (game.Move, error) {
	first, second, hasSecond := strings.Cut(s, ":")

	cell, err := strconv.Atoi(first)
	if err != nil {
		return game.Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}

	switch variant {
	case game.Classic, game.Decay:
		if hasSecond {
			return game.Move{}, fmt.Errorf("%w: %q takes a cell only", ErrInvalidMove, s)
		}
		return game.Move{Cell: cell}, nil
	case game.Ultimate:
		target, err := strconv.Atoi(second)
		if !hasSecond || err != nil {
			return game.Move{}, fmt.Errorf("%w: %q is not board:cell", ErrInvalidMove, s)
		}
		return game.Move{Board: cell, Cell: target}, nil
	case game.Quixo:
		if !hasSecond {
			return game.Move{}, fmt.Errorf("%w: %q is not cell:direction", ErrInvalidMove, s)
		}
		return game.Move{Cell: cell, Direction: quixo.Direction(strings.ToLower(second))}, nil
	default:
		return game.Move{}, fmt.Errorf("%w: %q", apperror.ErrUnknownVariant, string(variant))
	}
}

func FormatMove(variant game.Variant, move game.Move) string {
	switch variant {
	case game.Ultimate:
		return fmt.Sprintf("%d:%d", move.Board, move.Cell)
	case game.Quixo:
		return fmt.Sprintf("%d:%s", move.Cell, move.Direction)
	default:
		return strconv.Itoa(move.Cell)
	}
}

func newGameRepository(
	ctx context.Context,
	logger *slog.Logger,
	conf *config.Config,
) (repository.GameRepository, func(), error) {
	log := logger.With("component", "storage")

	if !conf.Redis.Enabled {
		return repository.NewMemoryGameRepository(), func() {}, nil
	}

	addr := conf.Redis.GetRedisAddr()
	if addr == "" {
		return nil, nil, ErrAddrNotFound
	}

	client, err := storage.New(ctx, addr)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewGameRepository(client, conf.Redis.TTL), closeFn, nil
}
