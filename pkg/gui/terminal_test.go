package gui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimTerminal(t testing.TB) (*Terminal, tcell.SimulationScreen) {
	s := tcell.NewSimulationScreen("UTF-8")
	term, err := Open(s, ThemeBasic)
	require.NoError(t, err)
	t.Cleanup(func() { term.Close() })

	return term, s
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()

	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()

	rows := make([]string, h)
	for y := range rows {
		rows[y] = rowText(s, y)
	}
	return strings.Join(rows, "\n")
}

func testSnapshot(types ...mino.PieceType) (*game.Game, game.Snapshot) {
	g := game.NewGame(mino.NewSequence(types...))
	return g, g.Snapshot()
}

func TestTerminalPoll(t *testing.T) {
	term, s := newSimTerminal(t)

	assert.Equal(t, event.ActionNone, term.Poll(), "poll must not wait for a key")

	s.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'W', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	s.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	assert.Equal(t, event.ActionMoveLeft, term.Poll())
	assert.Equal(t, event.ActionRotate, term.Poll())
	assert.Equal(t, event.ActionHardDrop, term.Poll())
	assert.Equal(t, event.ActionNone, term.Poll())
	assert.Equal(t, event.ActionNone, term.Poll())
	assert.Equal(t, event.ActionQuit, term.Poll())
	assert.Equal(t, event.ActionNone, term.Poll())
}

func TestTerminalPollSkipsResize(t *testing.T) {
	term, s := newSimTerminal(t)

	require.NoError(t, s.PostEvent(tcell.NewEventResize(100, 40)))
	s.InjectKey(tcell.KeyRune, 'p', tcell.ModNone)

	assert.Equal(t, event.ActionTogglePause, term.Poll())
}

func TestTerminalRender(t *testing.T) {
	term, s := newSimTerminal(t)
	g, snap := testSnapshot(mino.PieceO)
	g.Board.SetBlock(0, 19, mino.BlockSolidBlue)
	snap = g.Snapshot()

	require.NoError(t, term.Render(snap))

	// falling piece
	x, y := cellPos(3, 0)
	r, _, style, _ := s.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, '█', r)
	assert.Equal(t, ThemeBasic.Yellow, fg)
	assert.Equal(t, ThemeBasic.Well, bg)

	// settled block
	x, y = cellPos(0, 19)
	r, _, style, _ = s.GetContent(x+1, y)
	fg, _, _ = style.Decompose()
	assert.Equal(t, '█', r)
	assert.Equal(t, ThemeBasic.Blue, fg)

	// ghost
	x, y = cellPos(4, 19)
	r, _, style, _ = s.GetContent(x, y)
	fg, _, _ = style.Decompose()
	assert.Equal(t, '░', r)
	assert.Equal(t, ThemeBasic.Ghost(mino.BlockSolidYellow), fg)

	// empty cell
	x, y = cellPos(8, 8)
	r, _, _, _ = s.GetContent(x, y)
	assert.Equal(t, ' ', r)

	text := screenText(s)
	assert.Contains(t, text, "Score  0")
	assert.Contains(t, text, "Level  1")
	assert.Contains(t, text, "Lines  0")
	assert.Contains(t, text, "x    quit")
	assert.Contains(t, rowText(s, topMargin-1), "┌────")
	assert.Contains(t, rowText(s, topMargin+20), "┘")
	assert.NotContains(t, text, "PAUSED")
}

func TestTerminalRenderBanners(t *testing.T) {
	term, s := newSimTerminal(t)
	g, _ := testSnapshot(mino.PieceT)
	g.Name = "calm-lynx"

	g.Paused = true
	require.NoError(t, term.Render(g.Snapshot()))
	text := screenText(s)
	assert.Contains(t, text, "PAUSED")
	assert.Contains(t, text, "calm-lynx")

	g.Paused = false
	g.GameOver = true
	g.Board.Score = 1234
	require.NoError(t, term.Render(g.Snapshot()))
	text = screenText(s)
	assert.NotContains(t, text, "PAUSED")
	assert.Contains(t, text, "GAME OVER")
	assert.Contains(t, text, "score 1234")
	assert.Contains(t, text, "r restart  x quit")
}

func BenchmarkRender(b *testing.B) {
	term, _ := newSimTerminal(b)
	g, _ := testSnapshot(mino.PieceI, mino.PieceT, mino.PieceZ)
	for x := 0; x < 9; x++ {
		for y := 10; y < 20; y++ {
			g.Board.SetBlock(x, y, mino.BlockSolidGreen)
		}
	}
	snap := g.Snapshot()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		term.Render(snap)
	}
}
