// Package shell implements the interactive terminal front end: move
// entry, board display, and knowledge management commands around the
// decision core.
package shell

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/aygp-dr/ttt-1973-vs-2024/ai/player"
	"github.com/aygp-dr/ttt-1973-vs-2024/automatic"
	"github.com/aygp-dr/ttt-1973-vs-2024/board"
	"github.com/aygp-dr/ttt-1973-vs-2024/config"
	"github.com/aygp-dr/ttt-1973-vs-2024/game"
	"github.com/aygp-dr/ttt-1973-vs-2024/knowledge"
)

type ShellController struct {
	l   *readline.Instance
	out io.Writer

	cfg   *config.Config
	store *knowledge.Store
	game  *game.Game
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "ttt> ",
		HistoryFile:     "/tmp/ttt_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc := newController(cfg, l.Stdout())
	sc.l = l
	return sc
}

// newController wires everything but the readline instance, so the
// command handling is testable against a plain writer.
func newController(cfg *config.Config, out io.Writer) *ShellController {
	store := knowledge.NewStore()
	engine := newEngine(cfg, store)
	return &ShellController{
		out:   out,
		cfg:   cfg,
		store: store,
		game:  game.NewGame(engine, store),
	}
}

func newEngine(cfg *config.Config, store *knowledge.Store) player.Player {
	if cfg.Engine == "rules" {
		return player.NewRulePlayer(board.Computer)
	}
	p := player.NewLearningPlayer(store, board.Computer)
	if cfg.TieBreak == "random" {
		p.SetTieBreak(player.TieBreakRandom)
	}
	return p
}

func (sc *ShellController) showMessage(msg string) {
	io.WriteString(sc.out, msg)
	io.WriteString(sc.out, "\n")
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// Start asks the 1973 question and begins the first game.
func (sc *ShellController) Start() {
	sc.l.SetPrompt("Accumulated knowledge? ")
	line, err := sc.l.Readline()
	sc.l.SetPrompt("ttt> ")
	if err == nil && strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y") {
		if n := sc.game.LoadKnowledge(sc.cfg.KnowledgePath); n > 0 {
			sc.showMessage(fmt.Sprintf("%d 'bits' of knowledge", n*3))
		}
	}
	sc.showMessage("new game")
	sc.showMessage(sc.game.Board().String())
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		quit, err := sc.handleLine(strings.TrimSpace(line))
		if err != nil {
			sc.showError(err)
		}
		if quit {
			sig <- syscall.SIGINT
			break
		}
	}
	log.Debug().Msg("exiting readline loop")
}

func (sc *ShellController) handleLine(line string) (bool, error) {
	switch {
	case line == "":
		return false, nil

	case line == "exit" || line == "bye" || line == "quit":
		return true, nil

	case line == "new":
		sc.game.Reset()
		sc.showMessage("new game")
		sc.showMessage(sc.game.Board().String())

	case line == "show" || line == "s":
		sc.showMessage(sc.game.Board().String())

	case line == "stats":
		st := sc.store.Stats()
		sc.showMessage(fmt.Sprintf(
			"%d/%d positions (%d 'bits'), %d favored, %d avoided, weights %d..%d",
			st.Entries, st.Capacity, st.Bits, st.Positive, st.Negative,
			st.MinWeight, st.MaxWeight))

	case line == "load":
		n := sc.game.LoadKnowledge(sc.cfg.KnowledgePath)
		sc.showMessage(fmt.Sprintf("%d 'bits' of knowledge", n*3))

	case line == "save":
		n, err := sc.game.SaveKnowledge(sc.cfg.KnowledgePath)
		if err != nil {
			return false, err
		}
		sc.showMessage(fmt.Sprintf("%d 'bits' returned", n*3))

	case strings.HasPrefix(line, "engine "):
		name := strings.TrimSpace(line[7:])
		if name != "learn" && name != "rules" {
			return false, fmt.Errorf("unknown engine %q", name)
		}
		sc.cfg.Engine = name
		sc.game = game.NewGame(newEngine(sc.cfg, sc.store), sc.store)
		sc.showMessage("new game against " + name)
		sc.showMessage(sc.game.Board().String())

	case strings.HasPrefix(line, "selfplay"):
		return false, sc.selfplay(line)

	case line == "help":
		sc.showMessage(helpText)

	default:
		pos, err := strconv.Atoi(line)
		if err != nil {
			return false, fmt.Errorf("say a cell 1-9, or help")
		}
		return false, sc.humanMove(pos)
	}
	return false, nil
}

// humanMove plays the human's cell (1-based, as printed on the board),
// answers with the computer's move, and settles the game if either
// move ended it.
func (sc *ShellController) humanMove(cell int) error {
	if err := sc.game.ApplyHumanMove(cell - 1); err != nil {
		return err
	}
	if sc.settleIfOver() {
		return nil
	}
	pos, err := sc.game.ComputerMove()
	if err != nil {
		return err
	}
	sc.showMessage(fmt.Sprintf("I play %d", pos+1))
	sc.showMessage(sc.game.Board().String())
	sc.settleIfOver()
	return nil
}

// settleIfOver reports a finished game, applies the learning update,
// and saves knowledge when configured to.
func (sc *ShellController) settleIfOver() bool {
	outcome := sc.game.CheckOutcome()
	if outcome == game.Playing {
		return false
	}
	switch outcome {
	case game.HumanWin:
		sc.showMessage(sc.game.Board().String())
		sc.showMessage("You win")
	case game.ComputerWin:
		sc.showMessage("I win")
	case game.Draw:
		sc.showMessage("Draw")
	}
	sc.game.FinishGame(outcome)
	if sc.cfg.AutoSave && sc.cfg.Engine != "rules" {
		n, err := sc.game.SaveKnowledge(sc.cfg.KnowledgePath)
		if err != nil {
			sc.showError(err)
		} else if n > 0 {
			sc.showMessage(fmt.Sprintf("%d 'bits' returned", n*3))
		}
	}
	sc.showMessage(`type "new" for another game`)
	return true
}

func (sc *ShellController) selfplay(line string) error {
	n := 100
	xname := "random"
	fields := strings.Fields(line)
	if len(fields) > 1 {
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("selfplay [games] [x-engine]: %w", err)
		}
		n = v
	}
	if len(fields) > 2 {
		xname = fields[2]
	}

	runner := automatic.NewGameRunner(
		automatic.NewPlayer(xname, board.Human, sc.store),
		sc.game.Engine(), sc.store)
	stats := runner.PlayGames(n)
	sc.showMessage(fmt.Sprintf("%d games: X %d, O %d, draws %d",
		stats.Games, stats.XWins, stats.OWins, stats.Draws))
	if sc.cfg.AutoSave && sc.cfg.Engine != "rules" {
		if _, err := sc.game.SaveKnowledge(sc.cfg.KnowledgePath); err != nil {
			return err
		}
	}
	// The runner played on its own session; start the human a fresh
	// board.
	sc.game.Reset()
	return nil
}

const helpText = `Commands:
  1-9             play the numbered cell
  new             start a new game
  show            display the board
  engine <name>   switch engine: learn (1973) or rules (2024)
  selfplay [n] [x-engine]
                  play n automatic games (x-engine: random, rules, learn)
  load / save     read or write the knowledge file
  stats           summarize learned knowledge
  exit            leave`
