// Package classic implements plain 3x3 tic-tac-toe with undo.
package classic

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-variants/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-variants/internal/board"
)

const Size = 9

type Config struct {
	Starter board.Starter `json:"starter,omitempty"`
}

// Move is one applied placement, kept for undo.
type Move struct {
	Mark board.Mark `json:"mark"`
	Cell int        `json:"cell"`
}

type Game struct {
	Board    [Size]board.Mark `json:"board"`
	Current  board.Mark       `json:"current"`
	Starting board.Mark       `json:"starting"`
	Turn     int              `json:"turn"`
	Status   board.Outcome    `json:"status"`
	History  []Move           `json:"history,omitempty"`
}

func New(cfg Config) (*Game, error) {
	starting, err := cfg.Starter.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve starting player: %w", err)
	}

	return newGame(starting), nil
}

func newGame(starting board.Mark) *Game {
	return &Game{
		Current:  starting,
		Starting: starting,
		Status:   board.Undecided,
	}
}

// ApplyMove places the current player's mark on the cell.
func (that *Game) ApplyMove(cell int) error {
	if err := that.validateMove(cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Board[cell] = that.Current
	that.History = append(that.History, Move{Mark: that.Current, Cell: cell})
	that.updateGameStatus()

	return nil
}

// validateMove - checks if the move is valid.
func (that *Game) validateMove(cell int) error {
	if that.Status.IsDecided() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= Size {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Board[cell] != board.Empty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func (that *Game) updateGameStatus() {
	switch result := board.Evaluate(that.Board[:], board.Classic); result {
	case board.Undecided:
		that.Current = that.Current.Opponent()
		that.Turn++
	default:
		that.Status = result
	}
}

// Undo takes back the last move. The mover of that move is to play again and the
// game is back in progress even if the move had ended it.
func (that *Game) Undo() error {
	if len(that.History) == 0 {
		return apperror.ErrNoHistory
	}

	last := that.History[len(that.History)-1]
	that.History = that.History[:len(that.History)-1]

	// a move that ended the game did not advance the turn counter
	if !that.Status.IsDecided() {
		that.Turn--
	}

	that.Board[last.Cell] = board.Empty
	that.Current = last.Mark
	that.Status = board.Undecided

	return nil
}

// Restart returns a new game with the same starting player.
func (that *Game) Restart() *Game {
	return newGame(that.Starting)
}

// LegalMoves lists the empty cells, or nothing once the game is over.
func (that *Game) LegalMoves() []int {
	if that.Status.IsDecided() {
		return nil
	}

	cells := make([]int, 0, Size)
	for i, cell := range that.Board {
		if cell == board.Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

// Verify checks invariants of a game restored from storage.
func (that *Game) Verify() error {
	return board.Verify(that.Board[:], board.Classic)
}

func (that *Game) String() string {
	return board.Render(that.Board[:], 3)
}
