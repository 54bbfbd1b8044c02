// build-tables generates the discard and equity lookup tables the bot
// plays from. Builds are deterministic for a given seed.
package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/Nikhilesh-B/mit-poker-2026/internal/builder"
	"github.com/Nikhilesh-B/mit-poker-2026/internal/tables"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`
	Discard DiscardCmd       `cmd:"" help:"Build the discard lookup table"`
	Equity  EquityCmd        `cmd:"" help:"Build equity lookup tables"`
}

type DiscardCmd struct {
	Config           string `short:"c" help:"HCL job file; its discard block overrides flags"`
	Output           string `short:"o" help:"Output filename" default:"discard_table.json"`
	BoardSamples     int    `help:"Number of 4-card board combos to sample" default:"5000"`
	MaxBoardsPerHand int    `help:"Boards evaluated per hand (0 = all sampled)" default:"100"`
	HandSamples      int    `help:"Cap on canonical 3-card hands (0 = all 22100)" default:"0"`
	Trials           int    `help:"Monte Carlo trials per discard candidate" default:"120"`
	FinalBoard       int    `help:"Board size trials complete to (0 = showdown board)" default:"0"`
	Seed             int64  `help:"RNG seed" default:"7"`
	Workers          int    `help:"Parallel workers (0 = GOMAXPROCS)" default:"0"`
}

func (c *DiscardCmd) Run(logger zerolog.Logger) error {
	if c.Config != "" {
		file, err := loadBuildFile(c.Config)
		if err != nil {
			return err
		}
		c.applyConfig(file.Discard)
	}
	cfg := builder.DiscardConfig{
		BoardSamples:     c.BoardSamples,
		MaxBoardsPerHand: c.MaxBoardsPerHand,
		HandSamples:      c.HandSamples,
		Trials:           c.Trials,
		FinalBoardSize:   c.FinalBoard,
		Seed:             c.Seed,
		Workers:          c.Workers,
	}
	table, err := builder.BuildDiscard(context.Background(), cfg, logger, quartz.NewReal())
	if err != nil {
		return err
	}
	if err := tables.SaveDiscard(c.Output, table); err != nil {
		return err
	}
	logger.Info().Str("path", c.Output).Int("entries", len(table)).Msg("wrote discard table")
	return nil
}

type EquityCmd struct {
	Config       string `short:"c" help:"HCL job file; its equity block overrides flags"`
	Output       string `short:"o" help:"Output filename (defaults by hand/board size)"`
	HandSize     int    `help:"Cards in hand: 3 pre-discard, 2 after" default:"3"`
	BoardSizes   []int  `help:"Board sizes to build" default:"0,2,3,4,5,6"`
	HandSamples  int    `help:"Cap on canonical hands (0 = all)" default:"0"`
	BoardSamples int    `help:"Boards sampled per hand (0 = full enumeration)" default:"0"`
	Trials       int    `help:"Monte Carlo trials per entry" default:"160"`
	Seed         int64  `help:"RNG seed" default:"7"`
	Workers      int    `help:"Parallel workers (0 = GOMAXPROCS)" default:"0"`
}

func (c *EquityCmd) Run(logger zerolog.Logger) error {
	if c.Config != "" {
		file, err := loadBuildFile(c.Config)
		if err != nil {
			return err
		}
		c.applyConfig(file.Equity)
	}
	cfg := builder.EquityConfig{
		HandSize:     c.HandSize,
		BoardSizes:   c.BoardSizes,
		HandSamples:  c.HandSamples,
		BoardSamples: c.BoardSamples,
		Trials:       c.Trials,
		Seed:         c.Seed,
		Workers:      c.Workers,
	}
	set, err := builder.BuildEquitySet(context.Background(), cfg, logger, quartz.NewReal())
	if err != nil {
		return err
	}

	// A single stage writes a per-stage file so the bot can pick it up by
	// name; multiple stages go into one combined set.
	if len(c.BoardSizes) == 1 && c.Output == "" {
		path := tables.EquityFileName(c.HandSize, c.BoardSizes[0])
		table := set[tables.SetKey(c.HandSize, c.BoardSizes[0])]
		if err := tables.SaveEquity(path, table); err != nil {
			return err
		}
		logger.Info().Str("path", path).Int("entries", len(table)).Msg("wrote equity table")
		return nil
	}

	path := c.Output
	if path == "" {
		path = "equity_tables.json"
	}
	if err := tables.SaveEquitySet(path, set); err != nil {
		return err
	}
	logger.Info().Str("path", path).Int("stages", len(set)).Msg("wrote equity table set")
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("build-tables"),
		kong.Description("Offline table builder for the Toss or Hold'em bot"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	level := zerolog.InfoLevel
	if cli.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
