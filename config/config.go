package config

import "github.com/namsral/flag"

type Config struct {
	KnowledgePath string
	Engine        string
	TieBreak      string
	AutoSave      bool
	Debug         bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("ttt", flag.ContinueOnError)
	fs.StringVar(&c.KnowledgePath, "knowledge-path", "ttt.k", "file holding the learning engine's accumulated knowledge")
	fs.StringVar(&c.Engine, "engine", "learn", "computer engine to play against: learn (1973) or rules (2024)")
	fs.StringVar(&c.TieBreak, "tie-break", "first", "learning engine tie-break among equal weights: first or random")
	fs.BoolVar(&c.AutoSave, "auto-save", true, "save knowledge after every finished game")
	fs.BoolVar(&c.Debug, "debug", false, "debug logging")
	err := fs.Parse(args)
	return err
}
