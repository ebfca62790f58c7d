package tty

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"golang.org/x/term"
)

const (
	keyBuffer = 64

	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
	resetStyle = "\033[0m"
)

var ErrNotTerminal = errors.New("tty: not a terminal")

// Terminal plays in the raw mode of an ordinary terminal with plain ANSI
// output.
type Terminal struct {
	Palette *Palette

	out io.Writer

	fd    int
	state *term.State

	keys chan rune
	done chan struct{}
}

// NewTerminal switches in to raw mode. Close must be called to restore it.
func NewTerminal(in *os.File, out io.Writer) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("tty: enter raw mode: %w", err)
	}

	t := newTerminal(in, out)
	t.Palette = NewPalette(!color.NoColor)
	t.fd = fd
	t.state = state

	return t, nil
}

func newTerminal(in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{
		Palette: NewPalette(true),
		out:     out,
		fd:      -1,
		keys:    make(chan rune, keyBuffer),
		done:    make(chan struct{}),
	}

	go t.read(in)
	io.WriteString(out, hideCursor)

	return t
}

func (t *Terminal) read(in io.Reader) {
	defer close(t.keys)

	r := bufio.NewReader(in)
	for {
		c, _, err := r.ReadRune()
		if err != nil {
			return
		}

		select {
		case t.keys <- c:
		case <-t.done:
			return
		}
	}
}

// Close restores the terminal mode it was opened with.
func (t *Terminal) Close() error {
	select {
	case <-t.done:
		return nil
	default:
		close(t.done)
	}

	io.WriteString(t.out, resetStyle+showCursor+"\r\n")

	if t.state == nil {
		return nil
	}
	if err := term.Restore(t.fd, t.state); err != nil {
		return fmt.Errorf("tty: restore: %w", err)
	}

	return nil
}

// Poll returns the action bound to the oldest unread key, without waiting.
func (t *Terminal) Poll() event.Action {
	select {
	case r, ok := <-t.keys:
		if !ok {
			return event.ActionNone
		}
		return event.KeyAction(r)
	default:
		return event.ActionNone
	}
}

func (t *Terminal) Render(snap game.Snapshot) error {
	if _, err := io.WriteString(t.out, Frame(&snap, t.Palette)); err != nil {
		return fmt.Errorf("tty: write frame: %w", err)
	}

	return nil
}
