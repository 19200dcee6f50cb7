// Package player implements the two automatic tic-tac-toe players: the
// learning agent of the 1973 Unix game and the rule-based agent that
// plays the Newell & Simon strategy.
package player

import (
	"github.com/aygp-dr/ttt-1973-vs-2024/board"
)

// Player describes an automatic player. Both engines are synchronous
// and single-game; neither is safe for concurrent use.
type Player interface {
	Name() string

	// ChooseMove returns the cell the player takes on b. The board is
	// unchanged when ChooseMove returns. It panics if b is full: the
	// driver must check the outcome before asking for a move.
	ChooseMove(b *board.Board) int

	// UpdateKnowledge is called once per finished game with the full
	// move history and the winning symbol (board.Empty for a draw).
	// It is a no-op for stateless players.
	UpdateKnowledge(history []int, winner board.Cell)
}

// fallbackMove returns the first empty cell in the fixed preference
// order center, corners, edges, or panics on a full board.
func fallbackMove(b *board.Board) int {
	for _, pos := range board.Priority {
		if b.Cell(pos) == board.Empty {
			return pos
		}
	}
	panic("player: move requested on a full board")
}
