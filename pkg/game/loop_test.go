package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedInput struct {
	actions []event.Action
	polls   int
}

func (in *scriptedInput) Poll() event.Action {
	in.polls++
	if len(in.actions) == 0 {
		return event.ActionNone
	}

	a := in.actions[0]
	in.actions = in.actions[1:]
	return a
}

type recordingRenderer struct {
	frames []Snapshot
	err    error
}

func (r *recordingRenderer) Render(s Snapshot) error {
	r.frames = append(r.frames, s)
	return r.err
}

type instantPacer struct {
	levels []int
	cancel context.CancelFunc
	after  int
}

func (p *instantPacer) Wait(ctx context.Context, level int) error {
	p.levels = append(p.levels, level)
	if p.cancel != nil && len(p.levels) == p.after {
		p.cancel()
	}

	return ctx.Err()
}

func TestRunQuit(t *testing.T) {
	g := newTestGame(mino.PieceO)
	in := &scriptedInput{actions: []event.Action{event.ActionNone, event.ActionMoveLeft, event.ActionQuit}}
	out := &recordingRenderer{}
	pace := &instantPacer{}

	require.NoError(t, g.Run(context.Background(), in, out, pace))

	assert.Equal(t, 3, in.polls)
	require.Len(t, out.frames, 2, "nothing is rendered after quit")
	assert.Equal(t, mino.Point{X: 3, Y: 1}, out.frames[0].Piece.Point)
	assert.Equal(t, mino.Point{X: 2, Y: 2}, out.frames[1].Piece.Point)
	assert.Equal(t, []int{1, 1}, pace.levels)
}

func TestRunPausedSkipsGravity(t *testing.T) {
	g := newTestGame(mino.PieceO)
	in := &scriptedInput{actions: []event.Action{event.ActionTogglePause, event.ActionNone, event.ActionNone, event.ActionQuit}}
	out := &recordingRenderer{}

	require.NoError(t, g.Run(context.Background(), in, out, &instantPacer{}))

	require.Len(t, out.frames, 3)
	for _, f := range out.frames {
		assert.True(t, f.Paused)
		assert.Equal(t, 0, f.Piece.Y)
	}
}

func TestRunKeepsRenderingAfterGameOver(t *testing.T) {
	g := newTestGame(mino.PieceI, mino.PieceO)
	g.Board.SetBlock(3, 1, mino.BlockSolidRed)
	g.Piece.Y = 19

	in := &scriptedInput{actions: []event.Action{event.ActionNone, event.ActionNone, event.ActionRestart, event.ActionQuit}}
	out := &recordingRenderer{}

	require.NoError(t, g.Run(context.Background(), in, out, &instantPacer{}))

	require.Len(t, out.frames, 3)
	assert.True(t, out.frames[0].GameOver)
	assert.True(t, out.frames[1].GameOver)
	assert.False(t, out.frames[2].GameOver)
	assert.Equal(t, 1, out.frames[2].Piece.Y)
}

func TestRunContextCanceled(t *testing.T) {
	g := newTestGame(mino.PieceO)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &recordingRenderer{}
	pace := &instantPacer{cancel: cancel, after: 5}

	err := g.Run(ctx, &scriptedInput{}, out, pace)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, out.frames, 5)
}

func TestRunRenderError(t *testing.T) {
	g := newTestGame(mino.PieceO)
	broken := errors.New("screen gone")

	err := g.Run(context.Background(), &scriptedInput{}, &recordingRenderer{err: broken}, &instantPacer{})

	assert.ErrorIs(t, err, broken)
}

func TestDelay(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, Delay(1))
	assert.Equal(t, 250*time.Millisecond, Delay(2))
	assert.Equal(t, 50*time.Millisecond, Delay(10))
	assert.Equal(t, 500*time.Millisecond, Delay(0))
}

func TestLevelPacer(t *testing.T) {
	p := NewLevelPacer()

	start := time.Now()
	require.NoError(t, p.Wait(context.Background(), 100))
	require.NoError(t, p.Wait(context.Background(), 100))
	assert.GreaterOrEqual(t, time.Since(start), 2*Delay(100))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start = time.Now()
	assert.ErrorIs(t, p.Wait(ctx, 1), context.Canceled)
	assert.Less(t, time.Since(start), Delay(1))
}
