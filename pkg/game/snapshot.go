package game

import (
	"encoding/json"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Snapshot is a frame handed to a Renderer. It shares no memory with the
// Game it was taken from.
type Snapshot struct {
	Name string `json:"name,omitempty"`

	Width  int            `json:"width"`
	Height int            `json:"height"`
	Grid   [][]mino.Block `json:"grid"`

	Piece mino.Piece `json:"-"`
	// GhostY is the row the piece anchor would come to rest on.
	GhostY int `json:"-"`

	Score        int  `json:"score"`
	Level        int  `json:"level"`
	LinesCleared int  `json:"lines"`
	Paused       bool `json:"paused"`
	GameOver     bool `json:"game_over"`
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Name:         g.Name,
		Width:        g.Board.W,
		Height:       g.Board.H,
		Grid:         g.Board.Grid(),
		Piece:        *g.Piece,
		GhostY:       g.Piece.Y + g.Board.DropDistance(g.Piece),
		Score:        g.Board.Score,
		Level:        g.Board.Level,
		LinesCleared: g.Board.LinesCleared,
		Paused:       g.Paused,
		GameOver:     g.GameOver,
	}
}

// Cell returns what should be drawn at (x, y): the falling piece wins over
// the grid, and ghost is set where only the piece's landing outline is.
func (s *Snapshot) Cell(x, y int) (block mino.Block, ghost bool) {
	if y >= 0 && y < len(s.Grid) && x >= 0 && x < len(s.Grid[y]) {
		block = s.Grid[y][x]
	}

	points := s.Piece.Shape.Points()
	for _, c := range points {
		if c.X+s.Piece.X == x && c.Y+s.Piece.Y == y {
			return s.Piece.Block, false
		}
	}

	if block != mino.BlockNone || s.GameOver || s.GhostY == s.Piece.Y {
		return block, false
	}
	for _, c := range points {
		if c.X+s.Piece.X == x && c.Y+s.GhostY == y {
			return s.Piece.Block, true
		}
	}

	return block, false
}

// JSON is used to log finished games.
func (s *Snapshot) JSON() string {
	b, err := json.Marshal(s)
	if err != nil {
		return err.Error()
	}

	return string(b)
}
