package game

import (
	"github.com/rocketscienceinc/tictactoe-variants/internal/board"
	"github.com/rocketscienceinc/tictactoe-variants/internal/classic"
	"github.com/rocketscienceinc/tictactoe-variants/internal/decay"
	"github.com/rocketscienceinc/tictactoe-variants/internal/quixo"
	"github.com/rocketscienceinc/tictactoe-variants/internal/ultimate"
)

// Variant tags which engine a session runs.
type Variant string

const (
	Classic  Variant = "classic"
	Decay    Variant = "decay"
	Ultimate Variant = "ultimate"
	Quixo    Variant = "quixo"
)

var Variants = []Variant{Classic, Decay, Ultimate, Quixo}

// Mode is the lobby tab a session was opened from.
type Mode string

const (
	ModeLocal  Mode = "local"
	ModeCPU    Mode = "cpu"
	ModeOnline Mode = "online"
)

// Options collects every setting a new session may take. Settings that do not
// apply to the chosen variant are ignored.
type Options struct {
	Mode     Mode          `json:"mode,omitempty"`
	Starter  board.Starter `json:"starter,omitempty"`
	Lifespan int           `json:"lifespan,omitempty"`
	GridSize int           `json:"grid_size,omitempty"`
	MaxTurns int           `json:"max_turns,omitempty"`

	// CPU is the mark played by the computer in cpu mode. Defaults to O.
	CPU board.Mark `json:"cpu,omitempty"`
}

// Scoreboard counts finished games of a session across restarts.
type Scoreboard struct {
	X     int `json:"x"`
	O     int `json:"o"`
	Draws int `json:"draws"`
}

// Move is a variant-independent move. Board is read by Ultimate only and
// Direction by Quixo only.
type Move struct {
	Board     int             `json:"board,omitempty"`
	Cell      int             `json:"cell"`
	Direction quixo.Direction `json:"direction,omitempty"`
}

// Session is one running game. Exactly one engine field is set, the one
// matching Variant.
type Session struct {
	ID      string     `json:"id"`
	Variant Variant    `json:"variant"`
	Mode    Mode       `json:"mode"`
	CPU     board.Mark `json:"cpu,omitempty"`
	Score   Scoreboard `json:"score"`

	Classic  *classic.Game  `json:"classic,omitempty"`
	Decay    *decay.Game    `json:"decay,omitempty"`
	Ultimate *ultimate.Game `json:"ultimate,omitempty"`
	Quixo    *quixo.Game    `json:"quixo,omitempty"`
}
