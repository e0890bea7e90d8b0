package deck

import "errors"

// Guard errors are logged by the controller and never returned from input
// operations. ErrDuplicateItem is the only one callers see.
var (
	ErrInvalidDirection = errors.New("invalid direction")
	ErrBusy             = errors.New("transition in flight")
	ErrAtStart          = errors.New("nothing to roll back")
	ErrExhausted        = errors.New("deck exhausted")
	ErrNotDragging      = errors.New("no drag in progress")
	ErrStaleCompletion  = errors.New("stale completion")
	ErrDuplicateItem    = errors.New("duplicate item id")
)
