// Package quixo implements Quixo on a 5x5 grid: a player takes a blank or own
// cube from the edge and pushes it back in, shifting the rest of its line.
package quixo

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-variants/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-variants/internal/board"
)

const (
	Side = 5
	Size = Side * Side

	// NoSelection marks a turn where no cube has been taken yet.
	NoSelection = -1
)

var lines = board.Lines(Side)

type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Directions lists every direction in a stable order.
var Directions = []Direction{Up, Down, Left, Right}

// step returns the index delta of one move in the direction.
func (d Direction) step() (int, bool) {
	switch d {
	case Up:
		return -Side, true
	case Down:
		return Side, true
	case Left:
		return -1, true
	case Right:
		return 1, true
	default:
		return 0, false
	}
}

// blockedAt reports whether a cube at index sits on the edge the direction
// points at.
func (d Direction) blockedAt(index int) bool {
	row, col := index/Side, index%Side

	switch d {
	case Up:
		return row == 0
	case Down:
		return row == Side-1
	case Left:
		return col == 0
	case Right:
		return col == Side-1
	default:
		return true
	}
}

type Config struct {
	Starter board.Starter `json:"starter,omitempty"`

	// MaxTurns ends the game in a draw after that many pushes. Zero means no limit.
	MaxTurns int `json:"max_turns,omitempty"`
}

func (that Config) Validate() error {
	if that.MaxTurns < 0 {
		return fmt.Errorf("%w: got %d", apperror.ErrNegativeMaxTurns, that.MaxTurns)
	}
	return nil
}

// Move is one full turn: take the cube at Cell and push it in Direction.
type Move struct {
	Cell      int       `json:"cell"`
	Direction Direction `json:"direction"`
}

type Game struct {
	Cells    [Size]board.Mark `json:"cells"`
	Selected int              `json:"selected"`
	MaxTurns int              `json:"max_turns,omitempty"`
	Current  board.Mark       `json:"current"`
	Starting board.Mark       `json:"starting"`
	Turn     int              `json:"turn"`
	Status   board.Outcome    `json:"status"`
}

func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	starting, err := cfg.Starter.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve starting player: %w", err)
	}

	return newGame(cfg.MaxTurns, starting), nil
}

func newGame(maxTurns int, starting board.Mark) *Game {
	return &Game{
		Selected: NoSelection,
		MaxTurns: maxTurns,
		Current:  starting,
		Starting: starting,
		Status:   board.Undecided,
	}
}

// IsEdge reports whether the index lies on the border of the grid.
func IsEdge(index int) bool {
	if index < 0 || index >= Size {
		return false
	}

	row, col := index/Side, index%Side
	return row == 0 || row == Side-1 || col == 0 || col == Side-1
}

// ValidDirections lists the directions a cube at index may be pushed in.
// Corners have two, other edge cells three.
func ValidDirections(index int) []Direction {
	if !IsEdge(index) {
		return nil
	}

	var dirs []Direction
	for _, d := range Directions {
		if !d.blockedAt(index) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// SelectCube takes the cube at index. Selecting the held cube again puts it back.
func (that *Game) SelectCube(index int) error {
	if err := that.validateSelection(index); err != nil {
		return fmt.Errorf("invalid selection: %w", err)
	}

	if that.Selected == index {
		that.Selected = NoSelection
		return nil
	}

	that.Selected = index

	return nil
}

func (that *Game) validateSelection(index int) error {
	if that.Status.IsDecided() {
		return apperror.ErrSelectionFinished
	}

	if !IsEdge(index) {
		return fmt.Errorf("%w: cell %d", apperror.ErrNotEdge, index)
	}

	if that.Cells[index] == that.Current.Opponent() {
		return fmt.Errorf("%w: cell %d", apperror.ErrOpponentCube, index)
	}

	return nil
}

// Push slides the held cube out along its line in the given direction. Every
// cube between the selection and the far edge moves one slot back toward the
// selection and the current player's mark enters at the far edge.
func (that *Game) Push(dir Direction) error {
	step, err := that.validatePush(dir)
	if err != nil {
		return fmt.Errorf("invalid push: %w", err)
	}

	pos := that.Selected
	for !dir.blockedAt(pos) {
		that.Cells[pos] = that.Cells[pos+step]
		pos += step
	}
	that.Cells[pos] = that.Current

	that.Selected = NoSelection
	that.Turn++
	that.updateGameStatus()

	return nil
}

func (that *Game) validatePush(dir Direction) (int, error) {
	if that.Status.IsDecided() {
		return 0, apperror.ErrPushFinished
	}

	if that.Selected == NoSelection {
		return 0, apperror.ErrNoSelection
	}

	step, ok := dir.step()
	if !ok {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidDirection, string(dir))
	}

	if dir.blockedAt(that.Selected) {
		return 0, fmt.Errorf("%w: cell %d %s", apperror.ErrBlockedDirection, that.Selected, dir)
	}

	return step, nil
}

// updateGameStatus - the first completed line decides the game, rows first. A
// full grid is not a draw since cubes are never removed.
func (that *Game) updateGameStatus() {
	if outcome := board.Evaluate(that.Cells[:], lines); outcome != board.Draw && outcome.IsDecided() {
		that.Status = outcome
		return
	}

	if that.MaxTurns > 0 && that.Turn >= that.MaxTurns {
		that.Status = board.Draw
		return
	}

	that.Current = that.Current.Opponent()
}

// ApplyMove selects and pushes in one step. On failure the previous selection
// is kept.
func (that *Game) ApplyMove(move Move) error {
	previous := that.Selected

	if that.Selected != move.Cell {
		if err := that.SelectCube(move.Cell); err != nil {
			return err
		}
	}

	if err := that.Push(move.Direction); err != nil {
		that.Selected = previous
		return err
	}

	return nil
}

// Restart returns a new game with the same turn limit and starting player.
func (that *Game) Restart() *Game {
	return newGame(that.MaxTurns, that.Starting)
}

// LegalMoves lists every selectable cube paired with each direction it may take.
func (that *Game) LegalMoves() []Move {
	if that.Status.IsDecided() {
		return nil
	}

	var moves []Move
	for index := range Size {
		if that.validateSelection(index) != nil {
			continue
		}
		for _, dir := range ValidDirections(index) {
			moves = append(moves, Move{Cell: index, Direction: dir})
		}
	}

	return moves
}

// Verify checks invariants of a game restored from storage.
func (that *Game) Verify() error {
	if that.Selected == NoSelection {
		return nil
	}

	if !IsEdge(that.Selected) {
		return fmt.Errorf("%w: selected cell %d is not on the edge", apperror.ErrInvariantViolation, that.Selected)
	}

	if that.Cells[that.Selected] == that.Current.Opponent() {
		return fmt.Errorf("%w: selected cell %d holds the opponent's cube", apperror.ErrInvariantViolation, that.Selected)
	}

	return nil
}

func (that *Game) String() string {
	return board.Render(that.Cells[:], Side)
}
