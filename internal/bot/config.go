package bot

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config tunes the bot's strategy and table locations.
type Config struct {
	// TablesDir is the directory holding the precomputed JSON tables.
	TablesDir string `hcl:"tables_dir,optional"`
	// StartingStack is each player's stack at the start of a round.
	StartingStack int `hcl:"starting_stack,optional"`
	// FoldEquity is the equity below which an unpriced call is folded.
	FoldEquity float64 `hcl:"fold_equity,optional"`
	// RaiseRatio is the equity-to-variance ratio at which the bot raises.
	RaiseRatio float64 `hcl:"raise_ratio,optional"`
	// LiveTrials is the Monte Carlo trial count used when a hand/board
	// state is missing from the equity tables. Zero disables live
	// estimation and falls back to the heuristic score.
	LiveTrials int `hcl:"live_trials,optional"`
	// FoldScore and RaiseScore bound the heuristic-score fallback policy.
	FoldScore  float64 `hcl:"fold_score,optional"`
	RaiseScore float64 `hcl:"raise_score,optional"`
}

// DefaultConfig returns the stock strategy parameters.
func DefaultConfig() Config {
	return Config{
		TablesDir:     ".",
		StartingStack: 400,
		FoldEquity:    0.35,
		RaiseRatio:    2.0,
		LiveTrials:    120,
		FoldScore:     3,
		RaiseScore:    6,
	}
}

// LoadConfig reads an HCL config file. A missing file yields the defaults;
// fields absent from the file keep their default values.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return config, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return config, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var loaded Config
	diags = gohcl.DecodeBody(file.Body, nil, &loaded)
	if diags.HasErrors() {
		return config, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig()
	if loaded.TablesDir == "" {
		loaded.TablesDir = defaults.TablesDir
	}
	if loaded.StartingStack == 0 {
		loaded.StartingStack = defaults.StartingStack
	}
	if loaded.FoldEquity == 0 {
		loaded.FoldEquity = defaults.FoldEquity
	}
	if loaded.RaiseRatio == 0 {
		loaded.RaiseRatio = defaults.RaiseRatio
	}
	if loaded.LiveTrials == 0 {
		loaded.LiveTrials = defaults.LiveTrials
	}
	if loaded.FoldScore == 0 {
		loaded.FoldScore = defaults.FoldScore
	}
	if loaded.RaiseScore == 0 {
		loaded.RaiseScore = defaults.RaiseScore
	}
	return loaded, nil
}

// Validate checks the strategy parameters.
func (c Config) Validate() error {
	if c.StartingStack <= 0 {
		return fmt.Errorf("starting stack must be positive, got %d", c.StartingStack)
	}
	if c.FoldEquity < 0 || c.FoldEquity > 1 {
		return fmt.Errorf("fold equity must be in [0,1], got %v", c.FoldEquity)
	}
	if c.RaiseRatio <= 0 {
		return fmt.Errorf("raise ratio must be positive, got %v", c.RaiseRatio)
	}
	if c.LiveTrials < 0 {
		return fmt.Errorf("live trials cannot be negative, got %d", c.LiveTrials)
	}
	return nil
}
