package apperror

import (
	"errors"
	"fmt"
)

// Categories. Every detailed error below wraps exactly one of them, so callers
// may match either the category or the precise reason with errors.Is.
var (
	ErrIllegalMove        = errors.New("illegal move")
	ErrIllegalSelection   = errors.New("illegal selection")
	ErrIllegalPush        = errors.New("illegal push")
	ErrNoHistory          = errors.New("no history")
	ErrInvalidConfig      = errors.New("invalid config")
	ErrInvariantViolation = errors.New("invariant violation")
)

var (
	ErrGameFinished = fmt.Errorf("%w: game is already finished", ErrIllegalMove)
	ErrInvalidCell  = fmt.Errorf("%w: invalid cell index", ErrIllegalMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrIllegalMove)
	ErrInvalidBoard = fmt.Errorf("%w: invalid board index", ErrIllegalMove)
	ErrWrongBoard   = fmt.Errorf("%w: move must be played in the active board", ErrIllegalMove)
	ErrBoardDecided = fmt.Errorf("%w: board is already decided", ErrIllegalMove)
	ErrNotYourTurn  = fmt.Errorf("%w: it's not your turn", ErrIllegalMove)

	ErrSelectionFinished = fmt.Errorf("%w: game is already finished", ErrIllegalSelection)
	ErrNotEdge           = fmt.Errorf("%w: cube is not on the edge", ErrIllegalSelection)
	ErrOpponentCube      = fmt.Errorf("%w: cube belongs to the opponent", ErrIllegalSelection)

	ErrPushFinished      = fmt.Errorf("%w: game is already finished", ErrIllegalPush)
	ErrNoSelection       = fmt.Errorf("%w: no cube selected", ErrIllegalPush)
	ErrInvalidDirection  = fmt.Errorf("%w: unknown direction", ErrIllegalPush)
	ErrBlockedDirection  = fmt.Errorf("%w: cube cannot be pushed in this direction", ErrIllegalPush)
	ErrUndoNotSupported  = fmt.Errorf("%w: variant does not support undo", ErrNoHistory)
	ErrLifespanRange     = fmt.Errorf("%w: lifespan must be between 3 and 12", ErrInvalidConfig)
	ErrUnknownStarter    = fmt.Errorf("%w: unknown starting player", ErrInvalidConfig)
	ErrGridSize          = fmt.Errorf("%w: grid size must be 3, 4 or 5", ErrInvalidConfig)
	ErrNegativeMaxTurns  = fmt.Errorf("%w: max turns must not be negative", ErrInvalidConfig)
	ErrUnknownVariant    = fmt.Errorf("%w: unknown variant", ErrInvalidConfig)
	ErrUnknownMode       = fmt.Errorf("%w: unknown game mode", ErrInvalidConfig)
	ErrTwoWinners        = fmt.Errorf("%w: both players own a completed line", ErrInvariantViolation)
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrGameNotFound      = errors.New("game not found")
	ErrGameAlreadyExists = errors.New("game already exists")
)
