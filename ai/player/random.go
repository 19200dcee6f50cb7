package player

import (
	"lukechampine.com/frand"

	"github.com/aygp-dr/ttt-1973-vs-2024/board"
)

// RandomPlayer plays a uniformly random legal move. It exists as a
// self-play adversary for exercising the other engines.
type RandomPlayer struct {
	symbol board.Cell
}

// NewRandomPlayer returns a random player moving as symbol.
func NewRandomPlayer(symbol board.Cell) *RandomPlayer {
	return &RandomPlayer{symbol: symbol}
}

func (p *RandomPlayer) Name() string {
	return "random"
}

func (p *RandomPlayer) ChooseMove(b *board.Board) int {
	empties := b.EmptyCells()
	if len(empties) == 0 {
		panic("player: move requested on a full board")
	}
	return empties[frand.Intn(len(empties))]
}

func (p *RandomPlayer) UpdateKnowledge(history []int, winner board.Cell) {}
