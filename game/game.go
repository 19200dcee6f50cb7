// Package game encapsulates one human-versus-computer tic-tac-toe
// session: the board, the move history, and the driver-facing API that
// outer layers (shell, self-play runner) call into. The human plays X
// and always moves first; the computer plays O.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/aygp-dr/ttt-1973-vs-2024/ai/player"
	"github.com/aygp-dr/ttt-1973-vs-2024/board"
	"github.com/aygp-dr/ttt-1973-vs-2024/knowledge"
)

// Outcome is the terminal state of a game, or Playing while moves
// remain to be made.
type Outcome int

const (
	Playing Outcome = iota
	HumanWin
	ComputerWin
	Draw
)

func (o Outcome) String() string {
	switch o {
	case HumanWin:
		return "human win"
	case ComputerWin:
		return "computer win"
	case Draw:
		return "draw"
	}
	return "playing"
}

// ErrOutOfTurn is returned when a move arrives for the player whose
// turn it is not. Strict alternation keeps the history's move
// attribution sound: even indices human, odd indices computer.
var ErrOutOfTurn = errors.New("move out of turn")

// ErrGameOver is returned when a move arrives after a terminal state.
var ErrGameOver = errors.New("game is over")

// Game is a single session. It owns the board and the move history;
// the engine and knowledge store are shared across games so learning
// accumulates. A Game is not safe for concurrent use.
type Game struct {
	board   *board.Board
	history []int
	engine  player.Player
	store   *knowledge.Store
}

// NewGame returns a fresh session played by engine. store may be nil
// for engines without persistence; the learning engine should be given
// the same store it consults.
func NewGame(engine player.Player, store *knowledge.Store) *Game {
	return &Game{board: &board.Board{}, engine: engine, store: store}
}

// Reset clears the board and the move history for a new game. Learned
// knowledge is kept.
func (g *Game) Reset() {
	g.board.Reset()
	g.history = g.history[:0]
}

// Board exposes the current position for display.
func (g *Game) Board() *board.Board {
	return g.board
}

// History returns a copy of the moves made so far, in order.
func (g *Game) History() []int {
	return append([]int(nil), g.history...)
}

// Engine returns the computer player for this session.
func (g *Game) Engine() player.Player {
	return g.engine
}

// ApplyHumanMove places X at pos. It returns board.ErrIllegalMove for
// an occupied or out-of-range cell, ErrOutOfTurn when it is the
// computer's move, and ErrGameOver after a terminal state. No state
// changes on error; the caller re-prompts.
func (g *Game) ApplyHumanMove(pos int) error {
	if g.CheckOutcome() != Playing {
		return ErrGameOver
	}
	if len(g.history)%2 != 0 {
		return ErrOutOfTurn
	}
	if err := g.board.SetCell(pos, board.Human); err != nil {
		return err
	}
	g.history = append(g.history, pos)
	return nil
}

// ComputerMove asks the engine for a move and plays it, returning the
// chosen cell.
func (g *Game) ComputerMove() (int, error) {
	if g.CheckOutcome() != Playing {
		return board.NoMove, ErrGameOver
	}
	if len(g.history)%2 != 1 {
		return board.NoMove, ErrOutOfTurn
	}
	pos := g.engine.ChooseMove(g.board)
	if err := g.board.SetCell(pos, board.Computer); err != nil {
		// The engine proposed an occupied cell; that is an engine bug,
		// not a recoverable input error.
		panic(fmt.Sprintf("game: engine %s chose illegal move %d", g.engine.Name(), pos))
	}
	g.history = append(g.history, pos)
	return pos, nil
}

// CheckOutcome reports the current terminal state, or Playing.
func (g *Game) CheckOutcome() Outcome {
	switch g.board.Winner() {
	case board.Human:
		return HumanWin
	case board.Computer:
		return ComputerWin
	}
	if g.board.IsFull() {
		return Draw
	}
	return Playing
}

// FinishGame reinforces the engine's knowledge from the finished
// game's history. It is a no-op for stateless engines. Persisting the
// updated knowledge is a separate, caller-invoked step.
func (g *Game) FinishGame(outcome Outcome) {
	var winner board.Cell
	switch outcome {
	case HumanWin:
		winner = board.Human
	case ComputerWin:
		winner = board.Computer
	}
	g.engine.UpdateKnowledge(g.history, winner)
	log.Debug().Stringer("outcome", outcome).Ints("history", g.history).
		Msg("game finished")
}

// LoadKnowledge replaces the session's knowledge from path, returning
// the number of entries loaded. A missing file is a normal first run
// and loads nothing.
func (g *Game) LoadKnowledge(path string) int {
	if g.store == nil {
		return 0
	}
	return g.store.LoadFile(path)
}

// SaveKnowledge persists the session's knowledge to path, returning
// the entry count. Save failures are surfaced.
func (g *Game) SaveKnowledge(path string) (int, error) {
	if g.store == nil {
		return 0, nil
	}
	return g.store.SaveFile(path)
}
