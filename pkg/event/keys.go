package event

// Ctrl-C as read from a terminal in raw mode.
const KeyInterrupt = 0x03

type Keybinding struct {
	r rune

	a Action
}

var keybindings = []*Keybinding{
	{r: 'a', a: ActionMoveLeft},
	{r: 'A', a: ActionMoveLeft},
	{r: 'd', a: ActionMoveRight},
	{r: 'D', a: ActionMoveRight},
	{r: 's', a: ActionSoftDrop},
	{r: 'S', a: ActionSoftDrop},
	{r: 'w', a: ActionRotate},
	{r: 'W', a: ActionRotate},
	{r: ' ', a: ActionHardDrop},
	{r: 'p', a: ActionTogglePause},
	{r: 'P', a: ActionTogglePause},
	{r: 'r', a: ActionRestart},
	{r: 'R', a: ActionRestart},
	{r: 'x', a: ActionQuit},
	{r: 'X', a: ActionQuit},
	{r: KeyInterrupt, a: ActionQuit},
}

// KeyAction maps a key press to its action. Unbound keys map to ActionNone.
func KeyAction(r rune) Action {
	for _, bind := range keybindings {
		if bind.r == r {
			return bind.a
		}
	}

	return ActionNone
}

// Legend describes the controls, one entry per line.
var Legend = []string{
	"a/d  move",
	"s    soft drop",
	"w    rotate",
	"spc  hard drop",
	"p    pause",
	"r    restart",
	"x    quit",
}
