package player

import (
	"github.com/aygp-dr/ttt-1973-vs-2024/board"
)

// RulePlayer plays the Newell & Simon priority rules (1972): win,
// block, center, corner, edge. Two rule players always draw each
// other. It is a fixed heuristic, not a game-tree search; without the
// full fork rules it can be trapped by an opposite-corner opening.
type RulePlayer struct {
	symbol board.Cell
}

// NewRulePlayer returns a rule player moving as symbol.
func NewRulePlayer(symbol board.Cell) *RulePlayer {
	return &RulePlayer{symbol: symbol}
}

func (p *RulePlayer) Name() string {
	return "rules"
}

// ChooseMove evaluates the rules in order and returns the first match.
func (p *RulePlayer) ChooseMove(b *board.Board) int {
	if b.IsFull() {
		panic("player: move requested on a full board")
	}
	opponent := p.symbol.Opponent()

	// 1. Complete our own line.
	if pos := winningMove(b, p.symbol); pos != board.NoMove {
		return pos
	}
	// 2. Block the opponent's.
	if pos := winningMove(b, opponent); pos != board.NoMove {
		return pos
	}
	// 3. Center.
	if b.Cell(board.CenterCell) == board.Empty {
		return board.CenterCell
	}
	// 4. Corner, preferring the one diagonally opposite an opponent
	// corner.
	for _, c := range board.Corners {
		opp := board.OppositeCorner(c)
		if b.Cell(c) == opponent && b.Cell(opp) == board.Empty {
			return opp
		}
	}
	for _, c := range board.Corners {
		if b.Cell(c) == board.Empty {
			return c
		}
	}
	// 5. Edge.
	for _, e := range board.Edges {
		if b.Cell(e) == board.Empty {
			return e
		}
	}
	return board.NoMove
}

// UpdateKnowledge is a no-op; the rule player is stateless.
func (p *RulePlayer) UpdateKnowledge(history []int, winner board.Cell) {}

// winningMove returns the empty cell completing a line that already
// holds two of c's symbols, scanning lines in the fixed order, or
// NoMove if there is none.
func winningMove(b *board.Board, c board.Cell) int {
	for _, line := range board.WinningLines() {
		count, empty := 0, board.NoMove
		for _, pos := range line {
			switch b.Cell(pos) {
			case c:
				count++
			case board.Empty:
				empty = pos
			}
		}
		if count == 2 && empty != board.NoMove {
			return empty
		}
	}
	return board.NoMove
}
