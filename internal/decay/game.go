// Package decay implements 3x3 tic-tac-toe where every mark disappears after a
// fixed number of turns.
package decay

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-variants/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-variants/internal/board"
)

const (
	Size = 9

	MinLifespan     = 3
	MaxLifespan     = 12
	DefaultLifespan = 4
)

type Config struct {
	// Lifespan is the number of turns a mark survives. Zero selects DefaultLifespan.
	Lifespan int           `json:"lifespan,omitempty"`
	Starter  board.Starter `json:"starter,omitempty"`
}

// Validate checks the lifespan range.
func (that Config) Validate() error {
	if that.Lifespan == 0 {
		return nil
	}

	if that.Lifespan < MinLifespan || that.Lifespan > MaxLifespan {
		return fmt.Errorf("%w: got %d", apperror.ErrLifespanRange, that.Lifespan)
	}

	return nil
}

// Cell holds a mark and the turn it was placed on. PlacedAt is zero exactly
// when the cell is empty; turns are counted from 1.
type Cell struct {
	Mark     board.Mark `json:"mark,omitempty"`
	PlacedAt int        `json:"placed_at,omitempty"`
}

type Game struct {
	Cells    [Size]Cell    `json:"cells"`
	Lifespan int           `json:"lifespan"`
	Current  board.Mark    `json:"current"`
	Starting board.Mark    `json:"starting"`
	Turn     int           `json:"turn"`
	Status   board.Outcome `json:"status"`
}

func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	starting, err := cfg.Starter.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve starting player: %w", err)
	}

	lifespan := cfg.Lifespan
	if lifespan == 0 {
		lifespan = DefaultLifespan
	}

	return newGame(lifespan, starting), nil
}

func newGame(lifespan int, starting board.Mark) *Game {
	return &Game{
		Lifespan: lifespan,
		Current:  starting,
		Starting: starting,
		Status:   board.Undecided,
	}
}

// ApplyMove places the current player's mark, then removes every other mark
// that has reached its lifespan, then evaluates the remaining board.
func (that *Game) ApplyMove(cell int) error {
	if err := that.validateMove(cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Turn++
	that.Cells[cell] = Cell{Mark: that.Current, PlacedAt: that.Turn}

	for i := range that.Cells {
		if i == cell || that.Cells[i].Mark == board.Empty {
			continue
		}
		if that.Turn-that.Cells[i].PlacedAt >= that.Lifespan {
			that.Cells[i] = Cell{}
		}
	}

	switch result := board.Evaluate(that.Marks(), board.Classic); result {
	case board.Undecided:
		that.Current = that.Current.Opponent()
	default:
		that.Status = result
	}

	return nil
}

func (that *Game) validateMove(cell int) error {
	if that.Status.IsDecided() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= Size {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Cells[cell].Mark != board.Empty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// Marks returns the bare marks of the board.
func (that *Game) Marks() []board.Mark {
	marks := make([]board.Mark, Size)
	for i, cell := range that.Cells {
		marks[i] = cell.Mark
	}
	return marks
}

// OldestActiveAge returns how many turns ago the oldest mark still on the board
// was placed. It reports false on an empty board.
func (that *Game) OldestActiveAge() (int, bool) {
	oldest := 0
	for _, cell := range that.Cells {
		if cell.Mark == board.Empty {
			continue
		}
		if oldest == 0 || cell.PlacedAt < oldest {
			oldest = cell.PlacedAt
		}
	}

	if oldest == 0 {
		return 0, false
	}

	return that.Turn - oldest, true
}

// ExpiresNext reports whether the oldest mark will vanish on the next move.
func (that *Game) ExpiresNext() bool {
	age, ok := that.OldestActiveAge()
	return ok && age+1 >= that.Lifespan
}

// Restart returns a new game with the same lifespan and starting player.
func (that *Game) Restart() *Game {
	return newGame(that.Lifespan, that.Starting)
}

func (that *Game) LegalMoves() []int {
	if that.Status.IsDecided() {
		return nil
	}

	cells := make([]int, 0, Size)
	for i, cell := range that.Cells {
		if cell.Mark == board.Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

// Verify checks invariants of a game restored from storage.
func (that *Game) Verify() error {
	for i, cell := range that.Cells {
		if (cell.Mark == board.Empty) != (cell.PlacedAt == 0) {
			return fmt.Errorf("%w: cell %d has mark %q placed at %d", apperror.ErrInvariantViolation, i, cell.Mark, cell.PlacedAt)
		}
	}

	return board.Verify(that.Marks(), board.Classic)
}

func (that *Game) String() string {
	return board.Render(that.Marks(), 3)
}
