package deck

import (
	"fmt"
	"strings"
)

// Action is the classified outcome of a swipe.
type Action int

const (
	ActionNone Action = iota
	ActionReject
	ActionAccept
)

func (a Action) String() string {
	switch a {
	case ActionReject:
		return "reject"
	case ActionAccept:
		return "accept"
	default:
		return "none"
	}
}

// Direction returns the lateral direction for a decisive action.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionReject:
		return DirectionLeading, true
	case ActionAccept:
		return DirectionTrailing, true
	default:
		return DirectionNone, false
	}
}

// ParseAction accepts the names produced by String.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return ActionNone, nil
	case "reject":
		return ActionReject, nil
	case "accept":
		return ActionAccept, nil
	}
	return ActionNone, fmt.Errorf("unknown action %q", s)
}

// Direction is the lateral side used by triggers and rollbacks. Leading
// is the negative x side (reject), trailing the positive side (accept).
// DirectionNone and anything outside the two constants is invalid.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeading
	DirectionTrailing
)

func (d Direction) Valid() bool {
	return d == DirectionLeading || d == DirectionTrailing
}

func (d Direction) String() string {
	switch d {
	case DirectionLeading:
		return "leading"
	case DirectionTrailing:
		return "trailing"
	case DirectionNone:
		return "none"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Action maps the direction onto the outcome it commits.
func (d Direction) Action() Action {
	switch d {
	case DirectionLeading:
		return ActionReject
	case DirectionTrailing:
		return ActionAccept
	default:
		return ActionNone
	}
}

// sign is -1 for leading, +1 for trailing, 0 otherwise.
func (d Direction) sign() float64 {
	switch d {
	case DirectionLeading:
		return -1
	case DirectionTrailing:
		return 1
	default:
		return 0
	}
}

// ParseDirection understands the direction names plus the left/right and
// like/dislike aliases used by buttons and config files.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "leading", "left", "reject", "dislike", "nope":
		return DirectionLeading, nil
	case "trailing", "right", "accept", "like":
		return DirectionTrailing, nil
	}
	return DirectionNone, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
