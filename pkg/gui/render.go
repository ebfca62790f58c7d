package gui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
	"github.com/rivo/tview"
)

const (
	leftMargin = 2
	topMargin  = 1

	// Every cell is two columns wide to look square
	cellWidth = 2

	hudGap   = 3
	hudWidth = 20
)

// DefStyle is the default style for tcell rendering
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// cellPos returns the screen position of the left column of board cell (x, y)
func cellPos(x, y int) (int, int) {
	return leftMargin + 1 + x*cellWidth, topMargin + y
}

func hudLeft(w int) int {
	return leftMargin + w*cellWidth + 2 + hudGap
}

// drawCell draws one board cell
func drawCell(s tcell.Screen, x, y int, b mino.Block, ghost bool, t Theme) {
	col, row := cellPos(x, y)
	style := tcell.StyleDefault.Background(t.Well)

	r := ' '
	if ghost {
		r = '░'
		style = style.Foreground(t.Ghost(b))
	} else if b != mino.BlockNone {
		r = b.Rune()
		style = style.Foreground(t.Block(b))
	}

	for i := 0; i < cellWidth; i++ {
		drawRune(s, col+i, row, style, r)
	}
}

// drawWell draws the border around the board
func drawWell(s tcell.Screen, w, h int, t Theme) {
	style := tcell.StyleDefault.Foreground(t.Border)
	inner := strings.Repeat("─", w*cellWidth)

	drawText(s, leftMargin, topMargin-1, style, "┌"+inner+"┐")
	for y := 0; y < h; y++ {
		drawRune(s, leftMargin, topMargin+y, style, '│')
		drawRune(s, leftMargin+w*cellWidth+1, topMargin+y, style, '│')
	}
	drawText(s, leftMargin, topMargin+h, style, "└"+inner+"┘")
}

// drawBoard draws the grid with the falling piece and its ghost on top
func drawBoard(s tcell.Screen, snap *game.Snapshot, t Theme) {
	drawWell(s, snap.Width, snap.Height, t)

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			b, ghost := snap.Cell(x, y)
			drawCell(s, x, y, b, ghost, t)
		}
	}
}

// drawStats displays the session name and the scores next to the board
func drawStats(s tcell.Screen, snap *game.Snapshot, t Theme) {
	x := hudLeft(snap.Width)
	y := topMargin

	if snap.Name != "" {
		tview.Print(s, tview.Escape(snap.Name), x, y, hudWidth, tview.AlignLeft, t.Value)
		y += 2
	}

	label, value := colorTag(t.Label), colorTag(t.Value)
	for _, stat := range []struct {
		name  string
		value int
	}{
		{"Score", snap.Score},
		{"Level", snap.Level},
		{"Lines", snap.LinesCleared},
	} {
		line := fmt.Sprintf("%s%-7s%s%d", label, stat.name, value, stat.value)
		tview.Print(s, line, x, y, hudWidth, tview.AlignLeft, t.Value)
		y++
	}
}

// drawLegend lists the controls below the scores
func drawLegend(s tcell.Screen, snap *game.Snapshot, t Theme) {
	x := hudLeft(snap.Width)
	y := topMargin + snap.Height - len(event.Legend)

	for i, line := range event.Legend {
		tview.Print(s, line, x, y+i, hudWidth, tview.AlignLeft, t.Legend)
	}
}

// drawBanner centers lines over the middle of the board
func drawBanner(s tcell.Screen, snap *game.Snapshot, t Theme, lines ...string) {
	width := snap.Width * cellWidth
	x := leftMargin + 1
	y := topMargin + snap.Height/2 - len(lines)/2

	bg := tcell.StyleDefault.Background(t.BannerB)
	for i, line := range lines {
		drawText(s, x, y+i, bg, strings.Repeat(" ", width))
		tview.Print(s, tview.Escape(line), x, y+i, width, tview.AlignCenter, t.Banner)
	}
}

// Render draws the screen
func Render(s tcell.Screen, snap *game.Snapshot, t Theme) {
	s.Clear()

	drawBoard(s, snap, t)
	drawStats(s, snap, t)
	drawLegend(s, snap, t)

	if snap.GameOver {
		drawBanner(s, snap, t, "GAME OVER", fmt.Sprintf("score %d", snap.Score), "r restart  x quit")
	} else if snap.Paused {
		drawBanner(s, snap, t, "PAUSED", "p resume")
	}

	s.Show()
}
