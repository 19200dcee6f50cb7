package player

import (
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/aygp-dr/ttt-1973-vs-2024/board"
	"github.com/aygp-dr/ttt-1973-vs-2024/knowledge"
)

// TieBreakPolicy selects among moves of equal learned weight.
type TieBreakPolicy int

const (
	// TieBreakFirst takes the first best move in scan order 0..8.
	TieBreakFirst TieBreakPolicy = iota
	// TieBreakRandom draws uniformly among the best moves, like the
	// bead-drawing matchbox machine this algorithm imitates.
	TieBreakRandom
)

// Reinforcement deltas applied to every position the computer produced
// during a game. Every such position shares the terminal outcome
// equally; there is no temporal discounting.
const (
	WinDelta  = 3
	DrawDelta = 1
	LossDelta = -2
)

// LearningPlayer chooses moves by one-move lookahead against a learned
// weight table and reinforces the table from finished games.
type LearningPlayer struct {
	store    *knowledge.Store
	symbol   board.Cell
	tieBreak TieBreakPolicy
}

// NewLearningPlayer returns a learning player moving as symbol, backed
// by store. The default tie-break is deterministic first-match.
func NewLearningPlayer(store *knowledge.Store, symbol board.Cell) *LearningPlayer {
	return &LearningPlayer{store: store, symbol: symbol}
}

// SetTieBreak sets the equal-weight tie-break policy.
func (p *LearningPlayer) SetTieBreak(tb TieBreakPolicy) {
	p.tieBreak = tb
}

func (p *LearningPlayer) Name() string {
	return "learn"
}

// Store returns the backing knowledge table.
func (p *LearningPlayer) Store() *knowledge.Store {
	return p.store
}

// ChooseMove tries the player's symbol in every empty cell, looks up
// the weight of the resulting position, and reverts the placement; the
// board is bit-identical afterwards. If no candidate has a weight above
// neutral the learned choice is overridden by the fixed opening order
// center, corners, edges.
func (p *LearningPlayer) ChooseMove(b *board.Board) int {
	bestWeight := knowledge.MinWeight - 1
	var best []int

	for pos := 0; pos < board.NumCells; pos++ {
		if b.Cell(pos) != board.Empty {
			continue
		}
		if err := b.SetCell(pos, p.symbol); err != nil {
			panic(err)
		}
		w := int(p.store.Lookup(b.Encode()))
		b.ClearCell(pos)

		if w > bestWeight {
			bestWeight = w
			best = best[:0]
		}
		if w == bestWeight {
			best = append(best, pos)
		}
	}

	if len(best) == 0 {
		panic("player: move requested on a full board")
	}
	if bestWeight <= 0 {
		// Nothing learned favors any move; fall back to the opening
		// book ordering.
		return fallbackMove(b)
	}

	move := best[0]
	if p.tieBreak == TieBreakRandom && len(best) > 1 {
		move = best[frand.Intn(len(best))]
	}
	log.Debug().Int("move", move).Int("weight", bestWeight).
		Int("candidates", len(best)).Msg("learned move")
	return move
}

// UpdateKnowledge replays history from an empty board, alternating
// human then computer placements, and applies the outcome delta to the
// position after each computer move. Human moves are not scored.
func (p *LearningPlayer) UpdateKnowledge(history []int, winner board.Cell) {
	var delta int
	switch winner {
	case board.Computer:
		delta = WinDelta
	case board.Empty:
		delta = DrawDelta
	default:
		delta = LossDelta
	}

	replay := &board.Board{}
	for i, pos := range history {
		c := board.Human
		if i%2 == 1 {
			c = board.Computer
		}
		if err := replay.SetCell(pos, c); err != nil {
			log.Error().Err(err).Int("turn", i).Msg("corrupt move history; update aborted")
			return
		}
		if i%2 == 1 {
			p.store.Apply(replay.Encode(), delta)
		}
	}
	log.Debug().Int("delta", delta).Int("entries", p.store.Len()).
		Msg("knowledge updated")
}
