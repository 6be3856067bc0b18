// Package ultimate implements ultimate tic-tac-toe: nine 3x3 sub-boards laid out
// on a 3x3 meta-board, where the cell you play decides the board your opponent
// must play in.
package ultimate

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-variants/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-variants/internal/board"
)

const (
	Size = 9

	// AnyBoard lifts the active board constraint.
	AnyBoard = -1

	DefaultGridSize = 3
)

type Config struct {
	// GridSize is the nominal meta-grid size picked in the lobby. It is kept for
	// display; sub-boards are always 3x3.
	GridSize int           `json:"grid_size,omitempty"`
	Starter  board.Starter `json:"starter,omitempty"`
}

func (that Config) Validate() error {
	switch that.GridSize {
	case 0, 3, 4, 5:
		return nil
	default:
		return fmt.Errorf("%w: got %d", apperror.ErrGridSize, that.GridSize)
	}
}

type Move struct {
	Board int `json:"board"`
	Cell  int `json:"cell"`
}

type Game struct {
	Boards   [Size][Size]board.Mark `json:"boards"`
	Active   int                    `json:"active"`
	GridSize int                    `json:"grid_size"`
	Current  board.Mark             `json:"current"`
	Starting board.Mark             `json:"starting"`
	Turn     int                    `json:"turn"`
	Status   board.Outcome          `json:"status"`
}

func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	starting, err := cfg.Starter.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve starting player: %w", err)
	}

	gridSize := cfg.GridSize
	if gridSize == 0 {
		gridSize = DefaultGridSize
	}

	return newGame(gridSize, starting), nil
}

func newGame(gridSize int, starting board.Mark) *Game {
	return &Game{
		Active:   AnyBoard,
		GridSize: gridSize,
		Current:  starting,
		Starting: starting,
		Status:   board.Undecided,
	}
}

// SubOutcome evaluates one sub-board from its cells.
func (that *Game) SubOutcome(sub int) board.Outcome {
	return board.Evaluate(that.Boards[sub][:], board.Classic)
}

// Outcomes evaluates every sub-board.
func (that *Game) Outcomes() [Size]board.Outcome {
	var outcomes [Size]board.Outcome
	for i := range that.Boards {
		outcomes[i] = that.SubOutcome(i)
	}
	return outcomes
}

// MetaOutcome evaluates the meta-board built from the sub-board outcomes. A
// drawn sub-board fills its meta cell without counting for either player.
func (that *Game) MetaOutcome() board.Outcome {
	outcomes := that.Outcomes()

	meta := make([]board.Mark, Size)
	for i, outcome := range outcomes {
		meta[i] = outcome.AsMark()
	}

	return board.Evaluate(meta, board.Classic)
}

// ApplyMove places the current player's mark in cell of sub-board sub.
func (that *Game) ApplyMove(sub, cell int) error {
	if err := that.validateMove(sub, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Boards[sub][cell] = that.Current
	that.Turn++

	// outcomes are read after placement so the forcing rule sees the board
	// that was just decided
	if that.SubOutcome(cell).IsDecided() {
		that.Active = AnyBoard
	} else {
		that.Active = cell
	}

	switch result := that.MetaOutcome(); result {
	case board.Undecided:
		that.Current = that.Current.Opponent()
	default:
		that.Status = result
		that.Active = AnyBoard
	}

	return nil
}

func (that *Game) validateMove(sub, cell int) error {
	if that.Status.IsDecided() {
		return apperror.ErrGameFinished
	}

	if sub < 0 || sub >= Size {
		return fmt.Errorf("%w: board %d", apperror.ErrInvalidBoard, sub)
	}

	if cell < 0 || cell >= Size {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Active != AnyBoard && that.Active != sub {
		return fmt.Errorf("%w: board %d, active %d", apperror.ErrWrongBoard, sub, that.Active)
	}

	if that.SubOutcome(sub).IsDecided() {
		return fmt.Errorf("%w: board %d", apperror.ErrBoardDecided, sub)
	}

	if that.Boards[sub][cell] != board.Empty {
		return fmt.Errorf("%w: board %d cell %d", apperror.ErrCellOccupied, sub, cell)
	}

	return nil
}

// Restart returns a new game with the same grid size and starting player.
func (that *Game) Restart() *Game {
	return newGame(that.GridSize, that.Starting)
}

// LegalMoves lists every playable cell, honouring the active board.
func (that *Game) LegalMoves() []Move {
	if that.Status.IsDecided() {
		return nil
	}

	outcomes := that.Outcomes()

	var moves []Move
	for sub := range that.Boards {
		if that.Active != AnyBoard && that.Active != sub {
			continue
		}
		if outcomes[sub].IsDecided() {
			continue
		}
		for cell, mark := range that.Boards[sub] {
			if mark == board.Empty {
				moves = append(moves, Move{Board: sub, Cell: cell})
			}
		}
	}

	return moves
}

// Verify checks invariants of a game restored from storage.
func (that *Game) Verify() error {
	for sub := range that.Boards {
		if err := board.Verify(that.Boards[sub][:], board.Classic); err != nil {
			return fmt.Errorf("board %d: %w", sub, err)
		}
	}

	if that.Active != AnyBoard && (that.Active < 0 || that.Active >= Size) {
		return fmt.Errorf("%w: active board %d", apperror.ErrInvariantViolation, that.Active)
	}

	return nil
}

// String renders the 9x9 cell grid row by row.
func (that *Game) String() string {
	cells := make([]board.Mark, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			sub := (row/3)*3 + col/3
			cell := (row%3)*3 + col%3
			cells = append(cells, that.Boards[sub][cell])
		}
	}
	return board.Render(cells, Size)
}
