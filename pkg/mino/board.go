package mino

import (
	"strings"

	"github.com/kamstrup/intmap"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20

	LinesPerLevel = 10
)

var lineScores = [...]int{0, 100, 300, 500, 800}

// LineScore returns the points awarded for clearing n rows in one placement.
func LineScore(n int) int {
	if n < 0 || n >= len(lineScores) {
		return 0
	}

	return lineScores[n]
}

// Board is the playfield. Row 0 is the top row. Only occupied cells are
// stored.
type Board struct {
	W int // Width
	H int // Height

	M *intmap.Map[int, Block] // Occupied cells

	Score        int
	Level        int
	LinesCleared int
}

func I(x int, y int, w int) int {
	return (y * w) + x
}

func NewBoard(w int, h int) *Board {
	return &Board{W: w, H: h, M: intmap.New[int, Block](w * h), Level: 1}
}

func (b *Board) Block(x int, y int) Block {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return BlockNone
	}

	block, _ := b.M.Get(I(x, y, b.W))
	return block
}

func (b *Board) Empty(x int, y int) bool {
	return b.Block(x, y) == BlockNone
}

func (b *Board) setBlock(x int, y int, block Block) {
	if block == BlockNone {
		b.M.Del(I(x, y, b.W))
		return
	}

	b.M.Put(I(x, y, b.W), block)
}

// SetBlock fills an empty cell. It reports false when the cell is outside
// the grid or already occupied.
func (b *Board) SetBlock(x int, y int, block Block) bool {
	if x < 0 || x >= b.W || y < 0 || y >= b.H || !b.Empty(x, y) {
		return false
	}

	b.setBlock(x, y, block)
	return true
}

// CanMove reports whether p fits once shifted by (dx, dy). Cells above the
// top row only have to be within the side walls.
func (b *Board) CanMove(p *Piece, dx int, dy int) bool {
	for _, c := range p.Cells() {
		x := c.X + dx
		y := c.Y + dy

		if x < 0 || x >= b.W || y >= b.H {
			return false
		}

		if y >= 0 && !b.Empty(x, y) {
			return false
		}
	}

	return true
}

// DropDistance returns how many rows p can still fall.
func (b *Board) DropDistance(p *Piece) int {
	d := 0
	for b.CanMove(p, 0, d+1) {
		d++
	}

	return d
}

// Place writes p into the grid and clears any rows it completes. Legality is
// the caller's concern; cells outside the grid are dropped.
func (b *Board) Place(p *Piece) int {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.W || c.Y < 0 || c.Y >= b.H {
			continue
		}

		b.setBlock(c.X, c.Y, p.Block)
	}

	return b.ClearLines()
}

func (b *Board) LineFilled(y int) bool {
	for x := 0; x < b.W; x++ {
		if b.Empty(x, y) {
			return false
		}
	}

	return true
}

// ClearLines removes full rows in a single top to bottom pass, scores them
// and advances the level at most once. It returns the number of rows removed.
func (b *Board) ClearLines() int {
	cleared := 0

	for y := 0; y < b.H; y++ {
		if !b.LineFilled(y) {
			continue
		}

		cleared++

		for my := y; my > 0; my-- {
			for mx := 0; mx < b.W; mx++ {
				b.setBlock(mx, my, b.Block(mx, my-1))
			}
		}
		for mx := 0; mx < b.W; mx++ {
			b.setBlock(mx, 0, BlockNone)
		}
	}

	b.Score += LineScore(cleared)
	b.LinesCleared += cleared
	if b.LinesCleared >= b.Level*LinesPerLevel {
		b.Level++
	}

	return cleared
}

// Clear empties the grid and resets the statistics.
func (b *Board) Clear() {
	b.M.Clear()

	b.Score = 0
	b.Level = 1
	b.LinesCleared = 0
}

// Grid returns a copy of the cells, indexed [row][column].
func (b *Board) Grid() [][]Block {
	grid := make([][]Block, b.H)
	for y := range grid {
		grid[y] = make([]Block, b.W)
		for x := range grid[y] {
			grid[y][x] = b.Block(x, y)
		}
	}

	return grid
}

func (b *Board) Render() string {
	var s strings.Builder

	for y := 0; y < b.H; y++ {
		if y > 0 {
			s.WriteRune('\n')
		}
		for x := 0; x < b.W; x++ {
			s.WriteRune(b.Block(x, y).Rune())
		}
	}

	return s.String()
}
