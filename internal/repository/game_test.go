package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-variants/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-variants/internal/board"
	"github.com/rocketscienceinc/tictactoe-variants/internal/game"
	"github.com/rocketscienceinc/tictactoe-variants/internal/quixo"
	"github.com/rocketscienceinc/tictactoe-variants/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, id string, variant game.Variant) *game.Session {
	t.Helper()

	session, err := game.New(id, variant, game.Options{MaxTurns: 50})
	require.NoError(t, err)

	return session
}

func testGameRepository(t *testing.T, ctx context.Context, newRepo func() GameRepository) {
	t.Run("CreateOrUpdate", func(t *testing.T) {
		gameRepo := newRepo()

		// Given: a quixo session with one push played
		session := newTestSession(t, "ABC123", game.Quixo)
		require.NoError(t, session.Apply(game.Move{Cell: 0, Direction: quixo.Down}))

		// When: CreateOrUpdate is called
		err := gameRepo.CreateOrUpdate(ctx, session)

		// Then: no error should be returned, and the game is stored
		require.NoError(t, err)

		stored, err := gameRepo.GetByID(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, session, stored)
	})

	t.Run("CreateOrUpdate overwrites", func(t *testing.T) {
		gameRepo := newRepo()

		session := newTestSession(t, "ABC123", game.Classic)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, session))

		// When: the session changes and is saved again
		require.NoError(t, session.Apply(game.Move{Cell: 4}))
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, session))

		// Then: the latest state is returned
		stored, err := gameRepo.GetByID(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, session.Classic.Board, stored.Classic.Board)
		assert.Equal(t, session.Current(), stored.Current())
	})

	t.Run("Stored copy is not shared with the caller", func(t *testing.T) {
		gameRepo := newRepo()

		session := newTestSession(t, "ABC123", game.Decay)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, session))

		require.NoError(t, session.Apply(game.Move{Cell: 4}))

		stored, err := gameRepo.GetByID(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, stored.Decay.Turn)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		gameRepo := newRepo()

		// When: GetByID is called with non-existent ID
		retrieved, err := gameRepo.GetByID(ctx, "ZZZZZZ")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, retrieved)
	})

	t.Run("GetByID_Corrupt", func(t *testing.T) {
		gameRepo := newRepo()

		// Given: a session whose sub-board has two winners
		session := newTestSession(t, "BAD000", game.Ultimate)
		session.Ultimate.Boards[0] = [9]board.Mark{board.First, board.First, board.First, board.Second, board.Second, board.Second}
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, session))

		// When: it is loaded
		_, err := gameRepo.GetByID(ctx, session.ID)

		// Then: the invariant violation surfaces
		require.ErrorIs(t, err, apperror.ErrInvariantViolation)
	})

	t.Run("DeleteByID", func(t *testing.T) {
		gameRepo := newRepo()

		session := newTestSession(t, "ABC123", game.Ultimate)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, session))

		// When: DeleteByID is called with existing ID
		require.NoError(t, gameRepo.DeleteByID(ctx, session.ID))

		// Then: the game is gone
		_, err := gameRepo.GetByID(ctx, session.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		gameRepo := newRepo()

		err := gameRepo.DeleteByID(ctx, "ZZZZZZ")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestMemoryGameRepository(t *testing.T) {
	testGameRepository(t, context.Background(), NewMemoryGameRepository)
}

func TestRedisGameRepository(t *testing.T) {
	ctx, st := suite.New(t)

	testGameRepository(t, ctx, func() GameRepository {
		require.NoError(t, st.Storage.FlushDB(ctx).Err())
		return NewGameRepository(st.Storage, 0)
	})
}

func TestRedisGameRepository_TTL(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage, time.Minute)

	session := newTestSession(t, "TTL001", game.Classic)
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, session))

	ttl, err := st.Storage.TTL(ctx, gameKey(session.ID)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}
