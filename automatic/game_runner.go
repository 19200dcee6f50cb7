// Package automatic plays engines against each other without a human
// in the loop. It drives the same session API the shell uses, so the
// learning engine trains and accumulates knowledge exactly as it would
// against a person.
package automatic

import (
	"github.com/rs/zerolog/log"

	"github.com/aygp-dr/ttt-1973-vs-2024/ai/player"
	"github.com/aygp-dr/ttt-1973-vs-2024/board"
	"github.com/aygp-dr/ttt-1973-vs-2024/game"
	"github.com/aygp-dr/ttt-1973-vs-2024/knowledge"
)

// Stats accumulates outcomes over a run of games, from the X seat's
// point of view.
type Stats struct {
	Games int
	XWins int
	OWins int
	Draws int
}

// GameRunner is the master struct for automatic play. The X seat
// stands in for the human; the O seat is the computer engine under
// test (or training), so learning updates attribute odd history
// entries to it correctly.
type GameRunner struct {
	xplayer player.Player
	game    *game.Game
	stats   Stats
}

// NewGameRunner wires xplayer into the human seat of a session played
// by oplayer. store may be nil when oplayer does not learn.
func NewGameRunner(xplayer, oplayer player.Player, store *knowledge.Store) *GameRunner {
	return &GameRunner{
		xplayer: xplayer,
		game:    game.NewGame(oplayer, store),
	}
}

// Game exposes the underlying session.
func (r *GameRunner) Game() *game.Game {
	return r.game
}

// Stats returns the outcomes accumulated so far.
func (r *GameRunner) Stats() Stats {
	return r.stats
}

// PlayGame plays a single game to completion, applies the learning
// update, and returns the outcome.
func (r *GameRunner) PlayGame() game.Outcome {
	r.game.Reset()
	for r.game.CheckOutcome() == game.Playing {
		xmove := r.xplayer.ChooseMove(r.game.Board())
		if err := r.game.ApplyHumanMove(xmove); err != nil {
			panic(err)
		}
		if r.game.CheckOutcome() != game.Playing {
			break
		}
		if _, err := r.game.ComputerMove(); err != nil {
			panic(err)
		}
	}

	outcome := r.game.CheckOutcome()
	r.game.FinishGame(outcome)

	r.stats.Games++
	switch outcome {
	case game.HumanWin:
		r.stats.XWins++
	case game.ComputerWin:
		r.stats.OWins++
	default:
		r.stats.Draws++
	}
	return outcome
}

// PlayGames plays n games back to back and returns the cumulative
// stats.
func (r *GameRunner) PlayGames(n int) Stats {
	for i := 0; i < n; i++ {
		r.PlayGame()
	}
	log.Info().Int("games", r.stats.Games).Int("xwins", r.stats.XWins).
		Int("owins", r.stats.OWins).Int("draws", r.stats.Draws).
		Str("x", r.xplayer.Name()).Str("o", r.game.Engine().Name()).
		Msg("automatic run complete")
	return r.stats
}

// NewPlayer builds a player for the given engine name and seat.
// Recognized names are "learn", "rules" and "random"; store is only
// used by the learning engine.
func NewPlayer(name string, symbol board.Cell, store *knowledge.Store) player.Player {
	switch name {
	case "rules":
		return player.NewRulePlayer(symbol)
	case "random":
		return player.NewRandomPlayer(symbol)
	default:
		return player.NewLearningPlayer(store, symbol)
	}
}
