package entity

import "fmt"

// Action is a change requested for a single cell.
type Action int

const (
	ActionMark Action = iota + 1
	ActionFlag
	ActionReveal
)

// wire tags understood by the game server.
var actionTags = map[Action]string{
	ActionMark:   CellMarked,
	ActionFlag:   CellFlagged,
	ActionReveal: CellCleared,
}

func (that Action) String() string {
	switch that {
	case ActionMark:
		return "mark"
	case ActionFlag:
		return "flag"
	case ActionReveal:
		return "reveal"
	default:
		return fmt.Sprintf("action(%d)", int(that))
	}
}

// WireTag returns the cell status sent to the server for this action.
func (that Action) WireTag() (string, error) {
	tag, ok := actionTags[that]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownAction, int(that))
	}
	return tag, nil
}
