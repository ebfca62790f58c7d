package mino

import "fmt"

type Piece struct {
	Point
	Shape
	Type  PieceType
	Block Block
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s@%s", p.Type, p.Point)
}

// NewPiece returns a piece of type t in its spawn orientation, anchored at
// the horizontal center of a board w columns wide.
func NewPiece(t PieceType, w int) *Piece {
	return &Piece{
		Point: Point{w/2 - 2, 0},
		Shape: ShapeOf(t),
		Type:  t,
		Block: BlockOf(t),
	}
}

// Rotate turns the piece in place. The board is not consulted.
func (p *Piece) Rotate() {
	p.Shape = p.Shape.Rotate()
}

func (p *Piece) Translate(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Cells returns the board coordinates the piece occupies.
func (p *Piece) Cells() []Point {
	points := p.Shape.Points()
	for i := range points {
		points[i] = points[i].Add(p.Point)
	}

	return points
}
