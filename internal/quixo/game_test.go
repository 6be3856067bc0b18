package quixo

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-variants/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-variants/internal/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = board.First
	o = board.Second
	e = board.Neutral
)

func newTestGame(t *testing.T) *Game {
	t.Helper()

	game, err := New(Config{})
	require.NoError(t, err)

	return game
}

func row(game *Game, r int) []board.Mark {
	return append([]board.Mark(nil), game.Cells[r*Side:(r+1)*Side]...)
}

func column(game *Game, c int) []board.Mark {
	marks := make([]board.Mark, 0, Side)
	for r := range Side {
		marks = append(marks, game.Cells[r*Side+c])
	}
	return marks
}

func setRow(game *Game, r int, marks ...board.Mark) {
	copy(game.Cells[r*Side:(r+1)*Side], marks)
}

func TestNew(t *testing.T) {
	t.Run("Starts with a blank grid and nothing selected", func(t *testing.T) {
		game := newTestGame(t)

		assert.Equal(t, [Size]board.Mark{}, game.Cells)
		assert.Equal(t, NoSelection, game.Selected)
		assert.Equal(t, board.First, game.Current)
		assert.Equal(t, board.Undecided, game.Status)
	})

	t.Run("Rejects a negative turn limit", func(t *testing.T) {
		_, err := New(Config{MaxTurns: -1})
		require.ErrorIs(t, err, apperror.ErrNegativeMaxTurns)
		require.ErrorIs(t, err, apperror.ErrInvalidConfig)
	})
}

func TestIsEdge(t *testing.T) {
	edges := 0
	for index := range Size {
		if IsEdge(index) {
			edges++
		}
	}

	assert.Equal(t, 16, edges)
	assert.False(t, IsEdge(6))
	assert.False(t, IsEdge(12))
	assert.False(t, IsEdge(-1))
	assert.False(t, IsEdge(Size))
}

func TestValidDirections(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []Direction
	}{
		{name: "top left corner", index: 0, want: []Direction{Down, Right}},
		{name: "top right corner", index: 4, want: []Direction{Down, Left}},
		{name: "bottom left corner", index: 20, want: []Direction{Up, Right}},
		{name: "bottom right corner", index: 24, want: []Direction{Up, Left}},
		{name: "top edge", index: 2, want: []Direction{Down, Left, Right}},
		{name: "left edge", index: 10, want: []Direction{Up, Down, Right}},
		{name: "right edge", index: 14, want: []Direction{Up, Down, Left}},
		{name: "bottom edge", index: 22, want: []Direction{Up, Left, Right}},
		{name: "inner cell", index: 12, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidDirections(tt.index))
		})
	}
}

func TestGame_SelectCube(t *testing.T) {
	t.Run("Selecting twice toggles the selection off", func(t *testing.T) {
		game := newTestGame(t)

		require.NoError(t, game.SelectCube(0))
		assert.Equal(t, 0, game.Selected)

		require.NoError(t, game.SelectCube(0))
		assert.Equal(t, NoSelection, game.Selected)
	})

	t.Run("Selecting another cube moves the selection", func(t *testing.T) {
		game := newTestGame(t)

		require.NoError(t, game.SelectCube(0))
		require.NoError(t, game.SelectCube(4))

		assert.Equal(t, 4, game.Selected)
	})

	t.Run("Own cube may be taken", func(t *testing.T) {
		game := newTestGame(t)
		game.Cells[3] = x

		require.NoError(t, game.SelectCube(3))
	})

	t.Run("Inner cube is refused", func(t *testing.T) {
		game := newTestGame(t)

		err := game.SelectCube(12)

		require.ErrorIs(t, err, apperror.ErrNotEdge)
		require.ErrorIs(t, err, apperror.ErrIllegalSelection)
		assert.Equal(t, NoSelection, game.Selected)
	})

	t.Run("Opponent cube is refused", func(t *testing.T) {
		game := newTestGame(t)
		game.Cells[3] = o

		err := game.SelectCube(3)

		require.ErrorIs(t, err, apperror.ErrOpponentCube)
		assert.Equal(t, NoSelection, game.Selected)
	})
}

func TestGame_Push(t *testing.T) {
	t.Run("Corner 0 can only go right or down", func(t *testing.T) {
		// Given: X holds the blank corner 0
		game := newTestGame(t)
		require.NoError(t, game.SelectCube(0))

		// When: pushing up or left
		// Then: both are refused and the selection is kept
		require.ErrorIs(t, game.Push(Up), apperror.ErrBlockedDirection)
		require.ErrorIs(t, game.Push(Left), apperror.ErrIllegalPush)
		assert.Equal(t, 0, game.Selected)
		assert.Equal(t, board.First, game.Current)

		// When: pushing right
		require.NoError(t, game.Push(Right))

		// Then: X enters at the far end of row 0
		assert.Equal(t, []board.Mark{e, e, e, e, x}, row(game, 0))
		assert.Equal(t, NoSelection, game.Selected)
		assert.Equal(t, board.Second, game.Current)
		assert.Equal(t, 1, game.Turn)
	})

	t.Run("Pushing right from the left end shifts the row left", func(t *testing.T) {
		// Given: row 0 is [. O X . O]
		game := newTestGame(t)
		setRow(game, 0, e, o, x, e, o)
		require.NoError(t, game.SelectCube(0))

		// When: X pushes right
		require.NoError(t, game.Push(Right))

		// Then: every cube slides one slot toward cell 0 and X lands on cell 4
		assert.Equal(t, []board.Mark{o, x, e, o, x}, row(game, 0))
	})

	t.Run("Pushing left from the middle only touches the cells before it", func(t *testing.T) {
		// Given: row 0 is [O X . O X]
		game := newTestGame(t)
		setRow(game, 0, o, x, e, o, x)
		require.NoError(t, game.SelectCube(2))

		// When: X pushes left
		require.NoError(t, game.Push(Left))

		// Then: cells 0 and 1 slide right, X lands on cell 0 and cells 3 and 4 stay
		assert.Equal(t, []board.Mark{x, o, x, o, x}, row(game, 0))
	})

	t.Run("Pushing up shifts the column down", func(t *testing.T) {
		// Given: column 0 reads top to bottom [O . X O .]
		game := newTestGame(t)
		game.Cells[0] = o
		game.Cells[10] = x
		game.Cells[15] = o

		require.NoError(t, game.SelectCube(20))

		// When: X pushes the bottom corner up
		require.NoError(t, game.Push(Up))

		// Then: the column slides toward cell 20 and X enters at the top
		assert.Equal(t, []board.Mark{x, o, e, x, o}, column(game, 0))
	})

	t.Run("Pushing down from the top edge", func(t *testing.T) {
		// Given: column 2 reads [X O . . O] and X takes its own cube on top
		game := newTestGame(t)
		game.Cells[2] = x
		game.Cells[7] = o
		game.Cells[22] = o

		require.NoError(t, game.SelectCube(2))

		// When: X pushes down
		require.NoError(t, game.Push(Down))

		// Then: the taken cube leaves and X enters at the bottom
		assert.Equal(t, []board.Mark{o, e, e, o, x}, column(game, 2))
	})

	t.Run("Push without a selection", func(t *testing.T) {
		game := newTestGame(t)

		err := game.Push(Right)

		require.ErrorIs(t, err, apperror.ErrNoSelection)
		assert.Equal(t, 0, game.Turn)
	})

	t.Run("Unknown direction", func(t *testing.T) {
		game := newTestGame(t)
		require.NoError(t, game.SelectCube(2))

		err := game.Push("sideways")

		require.ErrorIs(t, err, apperror.ErrInvalidDirection)
		assert.Equal(t, 2, game.Selected)
	})
}

func TestGame_Push_Outcome(t *testing.T) {
	t.Run("Completing a row wins", func(t *testing.T) {
		// Given: row 1 is [X X X X .]
		game := newTestGame(t)
		setRow(game, 1, x, x, x, x, e)
		require.NoError(t, game.SelectCube(9))

		// When: X pushes the blank cube in from the right
		require.NoError(t, game.Push(Left))

		// Then: row 1 is all X and the game is over
		assert.Equal(t, []board.Mark{x, x, x, x, x}, row(game, 1))
		assert.Equal(t, board.WonBy(x), game.Status)
		assert.Equal(t, board.First, game.Current)
		assert.Empty(t, game.LegalMoves())
		require.ErrorIs(t, game.SelectCube(0), apperror.ErrSelectionFinished)
	})

	t.Run("Completing lines for both players goes to the first line found", func(t *testing.T) {
		// Given: X owns cells 1-4 of row 0, O owns cells 11-14 of row 2 and
		// cell 5 holds O
		game := newTestGame(t)
		setRow(game, 0, e, x, x, x, x)
		setRow(game, 2, e, o, o, o, o)
		game.Cells[5] = o
		require.NoError(t, game.SelectCube(20))

		// When: X pushes column 0 up, completing row 0 for X and row 2 for O
		require.NoError(t, game.Push(Up))

		// Then: row 0 is checked first, so X wins
		assert.Equal(t, []board.Mark{x, x, x, x, x}, row(game, 0))
		assert.Equal(t, []board.Mark{o, o, o, o, o}, row(game, 2))
		assert.Equal(t, board.WonBy(x), game.Status)
		assert.Equal(t, board.First, game.Current)
	})

	t.Run("Completing only the opponent's line loses", func(t *testing.T) {
		// Given: O owns cells 11-14 of row 2 and cell 5 holds O
		game := newTestGame(t)
		setRow(game, 2, e, o, o, o, o)
		game.Cells[5] = o
		require.NoError(t, game.SelectCube(20))

		// When: X pushes column 0 up
		require.NoError(t, game.Push(Up))

		// Then: O wins
		assert.Equal(t, board.WonBy(o), game.Status)
	})

	t.Run("Full grid without a line keeps going", func(t *testing.T) {
		// Given: every cube is taken and no line is complete
		game := newTestGame(t)
		setRow(game, 0, x, o, x, o, x)
		setRow(game, 1, o, x, x, o, o)
		setRow(game, 2, o, x, o, x, o)
		setRow(game, 3, x, o, x, x, o)
		setRow(game, 4, x, x, o, x, x)

		// When: X pushes cube 0 right
		require.NoError(t, game.ApplyMove(Move{Cell: 0, Direction: Right}))

		// Then: the grid is still full and O is to move
		assert.Equal(t, []board.Mark{o, x, o, x, x}, row(game, 0))
		assert.Equal(t, board.Undecided, game.Status)
		assert.Equal(t, board.Second, game.Current)
	})

	t.Run("Turn limit ends in a draw", func(t *testing.T) {
		game, err := New(Config{MaxTurns: 2})
		require.NoError(t, err)

		require.NoError(t, game.ApplyMove(Move{Cell: 0, Direction: Right}))
		assert.Equal(t, board.Undecided, game.Status)

		require.NoError(t, game.ApplyMove(Move{Cell: 20, Direction: Up}))
		assert.Equal(t, board.Draw, game.Status)
	})
}

func TestGame_ApplyMove(t *testing.T) {
	t.Run("Selects and pushes in one step", func(t *testing.T) {
		game := newTestGame(t)

		require.NoError(t, game.ApplyMove(Move{Cell: 0, Direction: Down}))

		assert.Equal(t, []board.Mark{e, e, e, e, x}, column(game, 0))
		assert.Equal(t, board.Second, game.Current)
	})

	t.Run("Keeps an existing selection of the same cube", func(t *testing.T) {
		game := newTestGame(t)
		require.NoError(t, game.SelectCube(4))

		require.NoError(t, game.ApplyMove(Move{Cell: 4, Direction: Left}))

		assert.Equal(t, []board.Mark{x, e, e, e, e}, row(game, 0))
	})

	t.Run("Failed push restores the previous selection", func(t *testing.T) {
		game := newTestGame(t)
		require.NoError(t, game.SelectCube(4))
		before := *game

		err := game.ApplyMove(Move{Cell: 0, Direction: Up})

		require.ErrorIs(t, err, apperror.ErrBlockedDirection)
		assert.Equal(t, before, *game)
	})
}

func TestGame_LegalMoves(t *testing.T) {
	t.Run("Blank grid", func(t *testing.T) {
		game := newTestGame(t)

		// 4 corners with two directions, 12 edge cells with three
		assert.Len(t, game.LegalMoves(), 4*2+12*3)
	})

	t.Run("Opponent cubes are skipped", func(t *testing.T) {
		game := newTestGame(t)
		game.Cells[0] = o

		for _, move := range game.LegalMoves() {
			assert.NotEqual(t, 0, move.Cell)
		}
	})
}

func TestGame_Restart(t *testing.T) {
	game, err := New(Config{MaxTurns: 40, Starter: board.StartSecond})
	require.NoError(t, err)
	require.NoError(t, game.ApplyMove(Move{Cell: 0, Direction: Right}))

	fresh := game.Restart()

	assert.Equal(t, [Size]board.Mark{}, fresh.Cells)
	assert.Equal(t, 40, fresh.MaxTurns)
	assert.Equal(t, board.Second, fresh.Current)
	assert.Equal(t, NoSelection, fresh.Selected)
}

func TestGame_Verify(t *testing.T) {
	game := newTestGame(t)
	game.Selected = 12

	require.ErrorIs(t, game.Verify(), apperror.ErrInvariantViolation)
}
