// Package board holds the primitives shared by every variant: marks,
// outcomes and the line-win evaluator.
package board

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/rocketscienceinc/tictactoe-variants/internal/apperror"
)

// Mark is the content of a single cell.
type Mark string

const (
	Empty  Mark = ""
	First  Mark = "X"
	Second Mark = "O"

	// Neutral is the blank Quixo cube. It is the same value as Empty.
	Neutral = Empty
)

// IsPlayer reports whether the mark belongs to one of the two players.
func (m Mark) IsPlayer() bool {
	return m == First || m == Second
}

// Opponent returns the other player's mark.
func (m Mark) Opponent() Mark {
	if m == First {
		return Second
	}
	return First
}

// Outcome is the result of evaluating a board. It also serves as the status of
// a running game: Undecided means the game is still in progress.
type Outcome string

const (
	Undecided Outcome = ""
	Draw      Outcome = "-"
)

// WonBy returns the outcome in which the given player owns a line.
func WonBy(m Mark) Outcome {
	return Outcome(m)
}

// Winner returns the winning mark, if any.
func (o Outcome) Winner() (Mark, bool) {
	m := Mark(o)
	return m, m.IsPlayer()
}

// IsDecided reports whether the outcome is terminal.
func (o Outcome) IsDecided() bool {
	return o != Undecided
}

// AsMark turns a decided sub-board into a cell of a meta-board. A drawn board
// becomes a filled cell that no player owns.
func (o Outcome) AsMark() Mark {
	return Mark(o)
}

func (o Outcome) String() string {
	switch o {
	case Undecided:
		return "in progress"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("%s wins", string(o))
	}
}

// Starter selects who moves first in a new game.
type Starter string

const (
	StartFirst  Starter = "X"
	StartSecond Starter = "O"
	StartRandom Starter = "random"
)

// Resolve picks the concrete starting mark. A random starter is rolled once.
func (that Starter) Resolve(rng *rand.Rand) (Mark, error) {
	switch that {
	case "", StartFirst:
		return First, nil
	case StartSecond:
		return Second, nil
	case StartRandom:
		if rng == nil {
			if rand.Intn(2) == 0 { //nolint: gosec // it's ok
				return First, nil
			}
			return Second, nil
		}
		if rng.Intn(2) == 0 {
			return First, nil
		}
		return Second, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrUnknownStarter, string(that))
	}
}

// Render draws a square grid of marks, one row per line.
func Render(cells []Mark, size int) string {
	var sb strings.Builder
	for i, cell := range cells {
		if cell == Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteString(string(cell))
		}
		if (i+1)%size == 0 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
