package mino

type Block int

func (b Block) String() string {
	return string(b.Rune())
}

func (b Block) Rune() rune {
	switch b {
	case BlockNone:
		return ' '
	case BlockSolidBlue, BlockSolidCyan, BlockSolidRed, BlockSolidYellow, BlockSolidMagenta, BlockSolidGreen, BlockSolidOrange:
		return '█'
	default:
		return '?'
	}
}

// Name returns the color name of the block, used by themes.
func (b Block) Name() string {
	switch b {
	case BlockNone:
		return "none"
	case BlockSolidBlue:
		return "blue"
	case BlockSolidCyan:
		return "cyan"
	case BlockSolidRed:
		return "red"
	case BlockSolidYellow:
		return "yellow"
	case BlockSolidMagenta:
		return "magenta"
	case BlockSolidGreen:
		return "green"
	case BlockSolidOrange:
		return "orange"
	default:
		return "unknown"
	}
}

const (
	BlockNone Block = iota
	BlockSolidBlue
	BlockSolidCyan
	BlockSolidRed
	BlockSolidYellow
	BlockSolidMagenta
	BlockSolidGreen
	BlockSolidOrange

	BlockCount
)
