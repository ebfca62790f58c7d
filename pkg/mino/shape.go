package mino

import "strings"

// ShapeSize is the side of the local frame every shape is defined in.
const ShapeSize = 4

// Shape is an occupancy pattern indexed [row][column].
type Shape [ShapeSize][ShapeSize]bool

type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL

	PieceCount
)

func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "?"
	}
}

var shapes = [PieceCount]Shape{
	PieceI: parseShape("1111"),
	PieceO: parseShape("11", "11"),
	PieceT: parseShape("01", "111"),
	PieceS: parseShape("011", "11"),
	PieceZ: parseShape("11", "011"),
	PieceJ: parseShape("1", "111"),
	PieceL: parseShape("001", "111"),
}

var blocks = [PieceCount]Block{
	PieceI: BlockSolidCyan,
	PieceO: BlockSolidYellow,
	PieceT: BlockSolidMagenta,
	PieceS: BlockSolidGreen,
	PieceZ: BlockSolidRed,
	PieceJ: BlockSolidBlue,
	PieceL: BlockSolidOrange,
}

// ShapeOf returns the spawn orientation of t.
func ShapeOf(t PieceType) Shape {
	return shapes[t]
}

// BlockOf returns the tag cells of t are placed with.
func BlockOf(t PieceType) Block {
	return blocks[t]
}

func parseShape(rows ...string) Shape {
	var s Shape
	for i, row := range rows {
		for j, c := range row {
			s[i][j] = c == '1'
		}
	}

	return s
}

// Rotate turns the pattern a quarter: the occupancy at (i, j) moves to
// (j, 3-i).
func (s Shape) Rotate() Shape {
	var r Shape
	for i := 0; i < ShapeSize; i++ {
		for j := 0; j < ShapeSize; j++ {
			r[j][ShapeSize-1-i] = s[i][j]
		}
	}

	return r
}

// Points returns the occupied local cells as (column, row) points.
func (s Shape) Points() []Point {
	var points []Point
	for i := 0; i < ShapeSize; i++ {
		for j := 0; j < ShapeSize; j++ {
			if s[i][j] {
				points = append(points, Point{j, i})
			}
		}
	}

	return points
}

func (s Shape) String() string {
	var b strings.Builder
	for i := 0; i < ShapeSize; i++ {
		if i > 0 {
			b.WriteRune('\n')
		}
		for j := 0; j < ShapeSize; j++ {
			if s[i][j] {
				b.WriteRune('X')
			} else {
				b.WriteRune('.')
			}
		}
	}

	return b.String()
}
