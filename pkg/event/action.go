package event

type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionRotate
	ActionHardDrop
	ActionTogglePause
	ActionRestart
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionSoftDrop:
		return "soft-drop"
	case ActionRotate:
		return "rotate"
	case ActionHardDrop:
		return "hard-drop"
	case ActionTogglePause:
		return "pause"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Movement reports whether a only applies to a running game.
func (a Action) Movement() bool {
	switch a {
	case ActionMoveLeft, ActionMoveRight, ActionSoftDrop, ActionRotate, ActionHardDrop:
		return true
	default:
		return false
	}
}
