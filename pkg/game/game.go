package game

import (
	"fmt"
	"log"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	LogStandard = iota
	LogDebug
	LogVerbose
)

type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Game owns the board and the falling piece. It is not safe for concurrent
// use; Run is its only mutator while a session is live.
type Game struct {
	Board *mino.Board
	Piece *mino.Piece

	GameOver bool
	Paused   bool

	// Name is shown by renderers and prefixed to log lines.
	Name     string
	LogLevel int

	source mino.Source
	quit   bool
}

func NewGame(source mino.Source) *Game {
	g := &Game{
		Board:  mino.NewBoard(mino.DefaultWidth, mino.DefaultHeight),
		source: source,
	}
	g.spawn()

	return g
}

func (g *Game) Logf(level int, format string, a ...interface{}) {
	if level > g.LogLevel {
		return
	}

	if g.Name != "" {
		format = "[" + g.Name + "] " + format
	}
	log.Printf(format, a...)
}

func (g *Game) State() State {
	if g.GameOver {
		return StateGameOver
	} else if g.Paused {
		return StatePaused
	}

	return StateRunning
}

// Quit reports whether the player asked to end the session.
func (g *Game) Quit() bool {
	return g.quit
}

func (g *Game) spawn() {
	g.Piece = mino.NewPiece(g.source.Next(), g.Board.W)

	if !g.Board.CanMove(g.Piece, 0, 0) {
		g.GameOver = true
		g.Logf(LogStandard, "Game over: score %d level %d lines %d", g.Board.Score, g.Board.Level, g.Board.LinesCleared)
		g.Logf(LogVerbose, "Final board:\n%s", g.Board.Render())
		return
	}

	g.Logf(LogVerbose, "Spawned %s", g.Piece)
}

func (g *Game) ProcessAction(a event.Action) {
	g.Logf(LogVerbose, "Action %s in state %s", a, g.State())

	switch a {
	case event.ActionTogglePause:
		if !g.GameOver {
			g.Paused = !g.Paused
		}
		return
	case event.ActionRestart:
		g.Restart()
		return
	case event.ActionQuit:
		g.quit = true
		return
	}

	if !a.Movement() || g.State() != StateRunning {
		return
	}

	switch a {
	case event.ActionMoveLeft:
		g.move(-1, 0)
	case event.ActionMoveRight:
		g.move(1, 0)
	case event.ActionSoftDrop:
		g.move(0, 1)
	case event.ActionRotate:
		g.Piece.Rotate()
	case event.ActionHardDrop:
		g.hardDrop()
	}
}

func (g *Game) move(dx, dy int) bool {
	if !g.Board.CanMove(g.Piece, dx, dy) {
		return false
	}

	g.Piece.Translate(dx, dy)
	return true
}

func (g *Game) hardDrop() {
	rows := g.Board.DropDistance(g.Piece)
	g.Piece.Translate(0, rows)
	g.Board.Score += rows

	g.Tick()
}

// Tick applies one step of gravity. A piece that cannot fall is placed and
// replaced by a new one.
func (g *Game) Tick() {
	if g.State() != StateRunning {
		return
	}

	if g.move(0, 1) {
		return
	}

	level := g.Board.Level
	cleared := g.Board.Place(g.Piece)
	g.Logf(LogDebug, "Placed %s", g.Piece)
	if cleared > 0 {
		g.Logf(LogStandard, "Cleared %d %s, score %d", cleared, plural(cleared, "line", "lines"), g.Board.Score)
	}
	if g.Board.Level != level {
		g.Logf(LogStandard, "Reached level %d", g.Board.Level)
	}

	g.spawn()
}

// Restart resets the board and spawns a new piece, from any state.
func (g *Game) Restart() {
	g.Board.Clear()
	g.GameOver = false
	g.Paused = false

	g.Logf(LogStandard, "Restarted")
	g.spawn()
}

func (g *Game) String() string {
	return fmt.Sprintf("%s: score %d level %d lines %d", g.State(), g.Board.Score, g.Board.Level, g.Board.LinesCleared)
}

func plural(n int, singular, many string) string {
	if n == 1 {
		return singular
	}

	return many
}
