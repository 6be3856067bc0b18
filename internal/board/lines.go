package board

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-variants/internal/apperror"
)

// Line is an ordered set of cell indices that wins when one player owns all of them.
type Line []int

// Classic is the standard 3x3 line set: rows, columns and both diagonals.
var Classic = []Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Lines builds the full-length rows, columns and diagonals of a size x size grid.
func Lines(size int) []Line {
	lines := make([]Line, 0, 2*size+2)

	for row := range size {
		line := make(Line, size)
		for col := range size {
			line[col] = row*size + col
		}
		lines = append(lines, line)
	}

	for col := range size {
		line := make(Line, size)
		for row := range size {
			line[row] = row*size + col
		}
		lines = append(lines, line)
	}

	diag, anti := make(Line, size), make(Line, size)
	for i := range size {
		diag[i] = i*size + i
		anti[i] = i*size + size - 1 - i
	}

	return append(lines, diag, anti)
}

// Evaluate returns the owner of the first completed line, Draw when no cell is
// empty, and Undecided otherwise. Only player marks complete a line.
func Evaluate(cells []Mark, lines []Line) Outcome {
	for _, line := range lines {
		if owner, ok := lineOwner(cells, line); ok {
			return WonBy(owner)
		}
	}

	for _, cell := range cells {
		if cell == Empty {
			return Undecided
		}
	}

	return Draw
}

// WinningMarks lists each distinct player owning at least one completed line,
// in the order their first line is found.
func WinningMarks(cells []Mark, lines []Line) []Mark {
	var marks []Mark
	for _, line := range lines {
		owner, ok := lineOwner(cells, line)
		if !ok {
			continue
		}
		if len(marks) == 0 || (len(marks) == 1 && marks[0] != owner) {
			marks = append(marks, owner)
		}
	}
	return marks
}

// Verify reports ErrTwoWinners when both players own a completed line, a state
// that legal Classic, Decay and Ultimate play can never reach.
func Verify(cells []Mark, lines []Line) error {
	if marks := WinningMarks(cells, lines); len(marks) > 1 {
		return fmt.Errorf("%w: %v", apperror.ErrTwoWinners, marks)
	}
	return nil
}

func lineOwner(cells []Mark, line Line) (Mark, bool) {
	if len(line) == 0 {
		return Empty, false
	}

	owner := cells[line[0]]
	if !owner.IsPlayer() {
		return Empty, false
	}

	for _, idx := range line[1:] {
		if cells[idx] != owner {
			return Empty, false
		}
	}

	return owner, true
}
