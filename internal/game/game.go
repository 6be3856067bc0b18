// Package game wraps the variant engines in a single session type so callers
// can create, play and store any variant through one API.
package game

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-variants/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-variants/internal/board"
	"github.com/rocketscienceinc/tictactoe-variants/internal/classic"
	"github.com/rocketscienceinc/tictactoe-variants/internal/decay"
	"github.com/rocketscienceinc/tictactoe-variants/internal/quixo"
	"github.com/rocketscienceinc/tictactoe-variants/internal/ultimate"
)

func ParseVariant(name string) (Variant, error) {
	variant := Variant(name)
	if !slices.Contains(Variants, variant) {
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownVariant, name)
	}
	return variant, nil
}

func (that Mode) Validate() error {
	switch that {
	case ModeLocal, ModeCPU, ModeOnline:
		return nil
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownMode, string(that))
	}
}

// Record adds a finished game to the tally.
func (that *Scoreboard) Record(outcome board.Outcome) {
	switch outcome {
	case board.WonBy(board.First):
		that.X++
	case board.WonBy(board.Second):
		that.O++
	case board.Draw:
		that.Draws++
	}
}

func (that *Scoreboard) revert(outcome board.Outcome) {
	switch outcome {
	case board.WonBy(board.First):
		that.X--
	case board.WonBy(board.Second):
		that.O--
	case board.Draw:
		that.Draws--
	}
}

// New builds a session of the given variant.
func New(id string, variant Variant, opts Options) (*Session, error) {
	if opts.Mode == "" {
		opts.Mode = ModeLocal
	}

	if err := opts.Mode.Validate(); err != nil {
		return nil, err
	}

	session := &Session{
		ID:      id,
		Variant: variant,
		Mode:    opts.Mode,
	}

	if opts.Mode == ModeCPU {
		session.CPU = opts.CPU
		if !session.CPU.IsPlayer() {
			session.CPU = board.Second
		}
	}

	var err error
	switch variant {
	case Classic:
		session.Classic, err = classic.New(classic.Config{Starter: opts.Starter})
	case Decay:
		session.Decay, err = decay.New(decay.Config{Lifespan: opts.Lifespan, Starter: opts.Starter})
	case Ultimate:
		session.Ultimate, err = ultimate.New(ultimate.Config{GridSize: opts.GridSize, Starter: opts.Starter})
	case Quixo:
		session.Quixo, err = quixo.New(quixo.Config{MaxTurns: opts.MaxTurns, Starter: opts.Starter})
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownVariant, string(variant))
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create %s game: %w", variant, err)
	}

	return session, nil
}

// Apply plays a move for the current player. A Quixo move selects and pushes
// in one step.
func (that *Session) Apply(move Move) error {
	var err error

	switch that.Variant {
	case Classic:
		err = that.Classic.ApplyMove(move.Cell)
	case Decay:
		err = that.Decay.ApplyMove(move.Cell)
	case Ultimate:
		err = that.Ultimate.ApplyMove(move.Board, move.Cell)
	case Quixo:
		err = that.Quixo.ApplyMove(quixo.Move{Cell: move.Cell, Direction: move.Direction})
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownVariant, string(that.Variant))
	}

	if err != nil {
		return err
	}

	that.Score.Record(that.Status())

	return nil
}

// Undo takes back the last move. Only Classic keeps a history.
func (that *Session) Undo() error {
	if that.Variant != Classic {
		return fmt.Errorf("%w: %s", apperror.ErrUndoNotSupported, that.Variant)
	}

	status := that.Classic.Status
	if err := that.Classic.Undo(); err != nil {
		return err
	}

	that.Score.revert(status)

	return nil
}

// Restart replaces the board with a fresh one. Settings, the resolved starting
// player and the scoreboard carry over.
func (that *Session) Restart() {
	switch that.Variant {
	case Classic:
		that.Classic = that.Classic.Restart()
	case Decay:
		that.Decay = that.Decay.Restart()
	case Ultimate:
		that.Ultimate = that.Ultimate.Restart()
	case Quixo:
		that.Quixo = that.Quixo.Restart()
	}
}

func (that *Session) Status() board.Outcome {
	switch that.Variant {
	case Classic:
		return that.Classic.Status
	case Decay:
		return that.Decay.Status
	case Ultimate:
		return that.Ultimate.Status
	case Quixo:
		return that.Quixo.Status
	default:
		return board.Undecided
	}
}

// Current returns the player to move.
func (that *Session) Current() board.Mark {
	switch that.Variant {
	case Classic:
		return that.Classic.Current
	case Decay:
		return that.Decay.Current
	case Ultimate:
		return that.Ultimate.Current
	case Quixo:
		return that.Quixo.Current
	default:
		return board.Empty
	}
}

func (that *Session) IsFinished() bool {
	return that.Status().IsDecided()
}

// IsCPUTurn reports whether the computer is to move in a cpu session.
func (that *Session) IsCPUTurn() bool {
	return that.Mode == ModeCPU && !that.IsFinished() && that.Current() == that.CPU
}

// LegalMoves lists every move the current player may make.
func (that *Session) LegalMoves() []Move {
	var moves []Move

	switch that.Variant {
	case Classic:
		for _, cell := range that.Classic.LegalMoves() {
			moves = append(moves, Move{Cell: cell})
		}
	case Decay:
		for _, cell := range that.Decay.LegalMoves() {
			moves = append(moves, Move{Cell: cell})
		}
	case Ultimate:
		for _, m := range that.Ultimate.LegalMoves() {
			moves = append(moves, Move{Board: m.Board, Cell: m.Cell})
		}
	case Quixo:
		for _, m := range that.Quixo.LegalMoves() {
			moves = append(moves, Move{Cell: m.Cell, Direction: m.Direction})
		}
	}

	return moves
}

// Verify checks that exactly the engine named by Variant is present and that
// its state is consistent.
func (that *Session) Verify() error {
	engines := 0
	for _, present := range []bool{that.Classic != nil, that.Decay != nil, that.Ultimate != nil, that.Quixo != nil} {
		if present {
			engines++
		}
	}

	if engines != 1 {
		return fmt.Errorf("%w: session %s holds %d engines", apperror.ErrInvariantViolation, that.ID, engines)
	}

	var engine verifier
	switch {
	case that.Variant == Classic && that.Classic != nil:
		engine = that.Classic
	case that.Variant == Decay && that.Decay != nil:
		engine = that.Decay
	case that.Variant == Ultimate && that.Ultimate != nil:
		engine = that.Ultimate
	case that.Variant == Quixo && that.Quixo != nil:
		engine = that.Quixo
	default:
		return fmt.Errorf("%w: session %s has no %q engine", apperror.ErrInvariantViolation, that.ID, string(that.Variant))
	}

	if err := engine.Verify(); err != nil {
		return fmt.Errorf("session %s: %w", that.ID, err)
	}

	return nil
}

type verifier interface {
	Verify() error
}

func (that *Session) String() string {
	switch that.Variant {
	case Classic:
		return that.Classic.String()
	case Decay:
		return that.Decay.String()
	case Ultimate:
		return that.Ultimate.String()
	case Quixo:
		return that.Quixo.String()
	default:
		return ""
	}
}
