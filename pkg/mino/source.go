package mino

import (
	"math/rand"
	"sync"
)

// Source yields the type of every piece spawned in a game.
type Source interface {
	Next() PieceType
}

// RandomSource picks each piece uniformly among the seven types.
type RandomSource struct {
	randomizer *rand.Rand
	*sync.Mutex
}

func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{randomizer: rand.New(rand.NewSource(seed)), Mutex: new(sync.Mutex)}
}

func (s *RandomSource) Next() PieceType {
	s.Lock()
	defer s.Unlock()

	return PieceType(s.randomizer.Intn(int(PieceCount)))
}

// Sequence replays a fixed list of piece types, starting over once exhausted.
// An empty Sequence yields PieceI.
type Sequence struct {
	Types []PieceType

	i int
}

func NewSequence(types ...PieceType) *Sequence {
	return &Sequence{Types: types}
}

func (s *Sequence) Next() PieceType {
	if len(s.Types) == 0 {
		return PieceI
	}
	if s.i >= len(s.Types) {
		s.i = 0
	}

	t := s.Types[s.i]
	if s.i == len(s.Types)-1 {
		s.i = 0
	} else {
		s.i++
	}

	return t
}
