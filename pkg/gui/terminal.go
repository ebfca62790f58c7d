package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
)

// Terminal draws games on a tcell screen and reads the player's keys from it
type Terminal struct {
	S     tcell.Screen // Screen
	Theme Theme        // Theme
}

// NewTerminal takes over the controlling terminal. Close must be called to
// give it back.
func NewTerminal(theme Theme) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("gui: create screen: %w", err)
	}

	return Open(s, theme)
}

// Open initializes s for drawing games
func Open(s tcell.Screen, theme Theme) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("gui: init screen: %w", err)
	}

	s.SetStyle(DefStyle)
	s.HideCursor()
	s.Clear()

	return &Terminal{S: s, Theme: theme}, nil
}

// Close restores the terminal
func (t *Terminal) Close() error {
	t.S.Fini()
	return nil
}

// Poll returns the action bound to the oldest pending key press. It never
// waits for one.
func (t *Terminal) Poll() event.Action {
	for t.S.HasPendingEvent() {
		switch ev := t.S.PollEvent().(type) {
		case *tcell.EventResize:
			t.S.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyCtrlC:
				return event.ActionQuit
			case tcell.KeyRune:
				return event.KeyAction(ev.Rune())
			default:
				return event.ActionNone
			}
		}
	}

	return event.ActionNone
}

func (t *Terminal) Render(snap game.Snapshot) error {
	Render(t.S, &snap, t.Theme)
	return nil
}
