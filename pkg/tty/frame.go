package tty

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	clearScreen = "\033[H\033[J"

	// Raw mode does not translate newlines.
	newline = "\r\n"
)

// Palette holds the escape sequences cells are drawn with.
type Palette struct {
	blocks [mino.BlockCount]*color.Color
	ghost  *color.Color
	colors bool
}

// NewPalette returns the block colors. Without colors blocks are drawn as
// brackets.
func NewPalette(colors bool) *Palette {
	p := &Palette{
		blocks: [mino.BlockCount]*color.Color{
			mino.BlockNone:         color.New(color.Reset),
			mino.BlockSolidBlue:    color.New(color.BgBlue),
			mino.BlockSolidCyan:    color.New(color.BgCyan),
			mino.BlockSolidRed:     color.New(color.BgRed),
			mino.BlockSolidYellow:  color.New(color.BgYellow),
			mino.BlockSolidMagenta: color.New(color.BgMagenta),
			mino.BlockSolidGreen:   color.New(color.BgGreen),
			mino.BlockSolidOrange:  color.BgRGB(255, 165, 0),
		},
		ghost:  color.New(color.FgHiBlack),
		colors: colors,
	}

	for _, c := range append(p.blocks[:], p.ghost) {
		if colors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Cell returns the two columns drawn for one board cell.
func (p *Palette) Cell(b mino.Block, ghost bool) string {
	switch {
	case ghost && p.colors:
		return p.ghost.Sprint("░░")
	case ghost:
		return ".."
	case b == mino.BlockNone:
		return "  "
	case p.colors:
		return p.blocks[b].Sprint("  ")
	default:
		return "[]"
	}
}

// Frame lays out one snapshot: the bordered well, the statistics line and
// the key legend.
func Frame(snap *game.Snapshot, p *Palette) string {
	var b strings.Builder
	b.WriteString(clearScreen)

	for y := 0; y < snap.Height; y++ {
		b.WriteString("|")
		for x := 0; x < snap.Width; x++ {
			b.WriteString(p.Cell(snap.Cell(x, y)))
		}
		b.WriteString("|" + newline)
	}
	b.WriteString(" " + strings.Repeat("--", snap.Width) + newline)

	fmt.Fprintf(&b, "Score: %d  Level: %d  Lines: %d", snap.Score, snap.Level, snap.LinesCleared)
	if snap.Name != "" {
		fmt.Fprintf(&b, "  [%s]", snap.Name)
	}
	b.WriteString(newline)
	b.WriteString("[A] Left  [D] Right  [S] Down  [W] Rotate  [Space] Hard Drop" + newline)
	b.WriteString("[P] Pause  [R] Restart  [X] Exit" + newline)

	if snap.GameOver {
		b.WriteString("Game Over! Press 'r' to restart or 'x' to exit." + newline)
	} else if snap.Paused {
		b.WriteString("Game Paused. Press 'p' to resume..." + newline)
	}

	return b.String()
}
