package graphmodel

// State is the interaction state of a node. StateSelectedMoving is
// reached when a selected node is picked up for a move.
type State uint8

const (
	StateIdle State = iota
	StateSelected
	StateMoving
	StateSelectedMoving
)

var stateNames = map[State]string{
	StateIdle:           "idle",
	StateSelected:       "selected",
	StateMoving:         "moving",
	StateSelectedMoving: "selected+moving",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "invalid"
}

// IsSelected reports whether the selected bit is set.
func (s State) IsSelected() bool {
	return s == StateSelected || s == StateSelectedMoving
}

// IsMoving reports whether the node is the one being dragged.
func (s State) IsMoving() bool {
	return s == StateMoving || s == StateSelectedMoving
}

// WithSelected returns s with the selected bit set or cleared.
func (s State) WithSelected(on bool) State {
	return compose(on, s.IsMoving())
}

// WithMoving returns s with the moving bit set or cleared.
func (s State) WithMoving(on bool) State {
	return compose(s.IsSelected(), on)
}

func compose(selected, moving bool) State {
	switch {
	case selected && moving:
		return StateSelectedMoving
	case selected:
		return StateSelected
	case moving:
		return StateMoving
	default:
		return StateIdle
	}
}
