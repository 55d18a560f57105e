package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionSouth              // S, Down arrow
	ActionWest               // A, Left arrow
	ActionNorth              // W, Up arrow
	ActionEast               // D, Right arrow
	ActionPause              // Space - start/pause
	ActionToggleWalls        // T - toggle wall collisions
	ActionRestart            // R - restart after game over
	ActionBack               // B, Escape - back to menu
	ActionQuit               // Q, Ctrl+C
)

// directionActions lists the movement actions in Direction ordinal order.
var directionActions = [...]Action{ActionSouth, ActionWest, ActionNorth, ActionEast}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSouth:
		return "South"
	case ActionWest:
		return "West"
	case ActionNorth:
		return "North"
	case ActionEast:
		return "East"
	case ActionPause:
		return "Pause"
	case ActionToggleWalls:
		return "ToggleWalls"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ActionForDirection returns the movement action for d.
func ActionForDirection(d Direction) Action {
	if !d.Valid() {
		return ActionNone
	}
	return directionActions[d]
}

// DirectionForAction returns the direction carried by a movement action.
func DirectionForAction(a Action) (Direction, bool) {
	for i, da := range directionActions {
		if da == a {
			return Direction(i), true
		}
	}
	return South, false
}

// InputFrame represents the input state for a single frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Directions returns the directions requested this frame in ordinal order,
// so that replaying the same frame always applies turns identically.
func (f InputFrame) Directions() []Direction {
	var dirs []Direction
	for i, a := range directionActions {
		if f.Has(a) {
			dirs = append(dirs, Direction(i))
		}
	}
	return dirs
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
