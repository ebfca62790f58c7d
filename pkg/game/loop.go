package game

import (
	"context"

	"github.com/qnkhuat/tetristerm/pkg/event"
)

// Input yields the next pending action, or event.ActionNone. Poll must not
// block.
type Input interface {
	Poll() event.Action
}

type Renderer interface {
	Render(Snapshot) error
}

// Pacer waits out the interval between two iterations of the game loop.
type Pacer interface {
	Wait(ctx context.Context, level int) error
}

// Run drives the game until the player quits, ctx is done, or a
// collaborator fails. Quitting returns nil.
func (g *Game) Run(ctx context.Context, in Input, out Renderer, pace Pacer) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		g.ProcessAction(in.Poll())
		if g.Quit() {
			g.Logf(LogStandard, "Quit: %s", g)
			return nil
		}

		wasOver := g.GameOver
		g.Tick()

		frame := g.Snapshot()
		if g.GameOver && !wasOver {
			g.Logf(LogDebug, "Final frame %s", frame.JSON())
		}

		if err := out.Render(frame); err != nil {
			return err
		}

		if err := pace.Wait(ctx, g.Board.Level); err != nil {
			return err
		}
	}
}
