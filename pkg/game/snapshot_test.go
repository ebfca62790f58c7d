package game

import (
	"encoding/json"
	"testing"

	"github.com/qnkhuat/tetristerm/pkg/mino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	g := newTestGame(mino.PieceO)
	g.Board.SetBlock(0, 19, mino.BlockSolidBlue)
	g.Board.Score = 42

	s := g.Snapshot()

	assert.Equal(t, mino.DefaultWidth, s.Width)
	assert.Equal(t, mino.DefaultHeight, s.Height)
	assert.Equal(t, 18, s.GhostY)
	assert.Equal(t, 42, s.Score)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, mino.BlockSolidBlue, s.Grid[19][0])

	// later changes do not leak into the frame
	g.Piece.Translate(1, 1)
	g.Piece.Rotate()
	g.Board.SetBlock(1, 19, mino.BlockSolidRed)
	g.Paused = true

	assert.Equal(t, mino.Point{X: 3, Y: 0}, s.Piece.Point)
	assert.Equal(t, mino.ShapeOf(mino.PieceO), s.Piece.Shape)
	assert.Equal(t, mino.BlockNone, s.Grid[19][1])
	assert.False(t, s.Paused)
}

func TestSnapshotCell(t *testing.T) {
	g := newTestGame(mino.PieceO)
	g.Board.SetBlock(0, 19, mino.BlockSolidBlue)

	s := g.Snapshot()

	block, ghost := s.Cell(3, 0)
	assert.Equal(t, mino.BlockSolidYellow, block)
	assert.False(t, ghost)

	block, ghost = s.Cell(4, 19)
	assert.Equal(t, mino.BlockSolidYellow, block)
	assert.True(t, ghost)

	block, ghost = s.Cell(0, 19)
	assert.Equal(t, mino.BlockSolidBlue, block)
	assert.False(t, ghost)

	block, _ = s.Cell(5, 5)
	assert.Equal(t, mino.BlockNone, block)

	block, _ = s.Cell(-1, 40)
	assert.Equal(t, mino.BlockNone, block)
}

func TestSnapshotCellNoGhostWhenLanded(t *testing.T) {
	g := newTestGame(mino.PieceO)
	g.Piece.Y = 18

	s := g.Snapshot()
	require.Equal(t, s.Piece.Y, s.GhostY)

	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			_, ghost := s.Cell(x, y)
			assert.False(t, ghost, "(%d,%d)", x, y)
		}
	}
}

func TestSnapshotJSON(t *testing.T) {
	g := newTestGame(mino.PieceO)
	g.Name = "brave-heron"
	g.Board.Score = 900

	s := g.Snapshot()

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s.JSON()), &decoded))
	assert.Equal(t, "brave-heron", decoded["name"])
	assert.EqualValues(t, 900, decoded["score"])
	assert.EqualValues(t, 10, decoded["width"])
	assert.Len(t, decoded["grid"], 20)
}
