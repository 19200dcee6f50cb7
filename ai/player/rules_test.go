package player

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/aygp-dr/ttt-1973-vs-2024/board"
)

func mustPlay(t *testing.T, b *board.Board, moves map[int]board.Cell) {
	t.Helper()
	for pos, c := range moves {
		if err := b.SetCell(pos, c); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRuleWinNow(t *testing.T) {
	is := is.New(t)
	p := NewRulePlayer(board.Computer)
	b := &board.Board{}
	// O can complete the top row; a block at 6 is also available but
	// winning takes precedence.
	mustPlay(t, b, map[int]board.Cell{
		0: board.Computer, 1: board.Computer,
		4: board.Human, 5: board.Human,
	})
	is.Equal(p.ChooseMove(b), 2)
}

func TestRuleBlock(t *testing.T) {
	is := is.New(t)
	p := NewRulePlayer(board.Computer)
	b := &board.Board{}
	mustPlay(t, b, map[int]board.Cell{
		0: board.Human, 1: board.Human,
		4: board.Computer,
	})
	is.Equal(p.ChooseMove(b), 2)
}

func TestRuleCenter(t *testing.T) {
	is := is.New(t)
	p := NewRulePlayer(board.Computer)
	b := &board.Board{}
	mustPlay(t, b, map[int]board.Cell{0: board.Human})
	is.Equal(p.ChooseMove(b), board.CenterCell)
}

func TestRuleCornerAfterCenterTaken(t *testing.T) {
	is := is.New(t)
	p := NewRulePlayer(board.Computer)
	b := &board.Board{}
	// Human opens in the center; no win or block applies, so the
	// engine takes the first corner in fixed order.
	mustPlay(t, b, map[int]board.Cell{4: board.Human})
	is.Equal(p.ChooseMove(b), 0)
}

func TestRuleOppositeCorner(t *testing.T) {
	is := is.New(t)
	p := NewRulePlayer(board.Computer)
	b := &board.Board{}
	// X holds corner 0; with the center gone and no threats on the
	// board, O prefers the diagonally opposite corner.
	mustPlay(t, b, map[int]board.Cell{
		0: board.Human, 7: board.Human,
		4: board.Computer,
	})
	is.Equal(p.ChooseMove(b), 8)
}

func TestRuleEdgeWhenCornersGone(t *testing.T) {
	is := is.New(t)
	// Center and corners all occupied with no completable line for
	// either side. Any such board is already terminal under legal
	// play, so this only checks the rule mechanism: first edge wins.
	b := &board.Board{}
	mustPlay(t, b, map[int]board.Cell{
		0: board.Human, 8: board.Human, 4: board.Human,
		2: board.Computer, 6: board.Computer,
	})
	o := NewRulePlayer(board.Computer)
	is.Equal(o.ChooseMove(b), 1)
}

// playGame runs moveFor against itself until a terminal state and
// returns the winner (board.Empty for a draw).
func playGame(t *testing.T, moveFor func(b *board.Board, c board.Cell) int) board.Cell {
	t.Helper()
	b := &board.Board{}
	turn := board.Human
	for {
		pos := moveFor(b, turn)
		if err := b.SetCell(pos, turn); err != nil {
			t.Fatal(err)
		}
		if w := b.Winner(); w != board.Empty {
			return w
		}
		if b.IsFull() {
			return board.Empty
		}
		turn = turn.Opponent()
	}
}

func TestRuleVersusRuleDraws(t *testing.T) {
	is := is.New(t)
	x := NewRulePlayer(board.Human)
	o := NewRulePlayer(board.Computer)
	w := playGame(t, func(b *board.Board, c board.Cell) int {
		if c == board.Human {
			return x.ChooseMove(b)
		}
		return o.ChooseMove(b)
	})
	is.Equal(w, board.Empty)
}

// TestDoubleCornerTrap pins down the engine's play in the opposite
// corner opening. The hierarchy has no fork rule, so its forced corner
// reply opens the historical double threat; this documents the 1972
// rule list's known blind spot rather than hiding it.
func TestDoubleCornerTrap(t *testing.T) {
	is := is.New(t)
	o := NewRulePlayer(board.Computer)
	b := &board.Board{}

	is.NoErr(b.SetCell(0, board.Human)) // X corner
	is.Equal(o.ChooseMove(b), 4)        // center
	is.NoErr(b.SetCell(4, board.Computer))

	is.NoErr(b.SetCell(8, board.Human)) // opposite corner
	is.Equal(o.ChooseMove(b), 2)        // first empty corner; threatens 2,4,6
	is.NoErr(b.SetCell(2, board.Computer))

	is.NoErr(b.SetCell(6, board.Human)) // block, forking 0,3,6 and 6,7,8
	is.Equal(o.ChooseMove(b), 7)        // row scan blocks 6,7,8 first
	is.NoErr(b.SetCell(7, board.Computer))

	is.NoErr(b.SetCell(3, board.Human))
	is.Equal(b.Winner(), board.Human)
}

func TestRuleEngineRarelyLosesToRandomPlay(t *testing.T) {
	losses := 0
	for i := 0; i < 500; i++ {
		random := NewRandomPlayer(board.Human)
		engine := NewRulePlayer(board.Computer)
		w := playGame(t, func(b *board.Board, c board.Cell) int {
			if c == board.Human {
				return random.ChooseMove(b)
			}
			return engine.ChooseMove(b)
		})
		if w == board.Human {
			losses++
		}
	}
	// Only corner-trap lines beat the engine; a random adversary finds
	// one a percent or two of the time.
	assert.Less(t, losses, 50, "rule engine lost %d of 500 random games", losses)
}
