package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// buildFile is the optional HCL job file. Values present in the file
// override the command-line flags, so a job can be pinned in version
// control and rerun exactly.
type buildFile struct {
	Discard *discardBlock `hcl:"discard,block"`
	Equity  *equityBlock  `hcl:"equity,block"`
}

type discardBlock struct {
	Output           *string `hcl:"output,optional"`
	BoardSamples     *int    `hcl:"board_samples,optional"`
	MaxBoardsPerHand *int    `hcl:"max_boards_per_hand,optional"`
	HandSamples      *int    `hcl:"hand_samples,optional"`
	Trials           *int    `hcl:"trials,optional"`
	FinalBoard       *int    `hcl:"final_board,optional"`
	Seed             *int64  `hcl:"seed,optional"`
	Workers          *int    `hcl:"workers,optional"`
}

type equityBlock struct {
	Output       *string `hcl:"output,optional"`
	HandSize     *int    `hcl:"hand_size,optional"`
	BoardSizes   []int   `hcl:"board_sizes,optional"`
	HandSamples  *int    `hcl:"hand_samples,optional"`
	BoardSamples *int    `hcl:"board_samples,optional"`
	Trials       *int    `hcl:"trials,optional"`
	Seed         *int64  `hcl:"seed,optional"`
	Workers      *int    `hcl:"workers,optional"`
}

func loadBuildFile(filename string) (*buildFile, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file %s does not exist", filename)
	}
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	var cfg buildFile
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return &cfg, nil
}

func (c *DiscardCmd) applyConfig(b *discardBlock) {
	if b == nil {
		return
	}
	if b.Output != nil {
		c.Output = *b.Output
	}
	if b.BoardSamples != nil {
		c.BoardSamples = *b.BoardSamples
	}
	if b.MaxBoardsPerHand != nil {
		c.MaxBoardsPerHand = *b.MaxBoardsPerHand
	}
	if b.HandSamples != nil {
		c.HandSamples = *b.HandSamples
	}
	if b.Trials != nil {
		c.Trials = *b.Trials
	}
	if b.FinalBoard != nil {
		c.FinalBoard = *b.FinalBoard
	}
	if b.Seed != nil {
		c.Seed = *b.Seed
	}
	if b.Workers != nil {
		c.Workers = *b.Workers
	}
}

func (c *EquityCmd) applyConfig(b *equityBlock) {
	if b == nil {
		return
	}
	if b.Output != nil {
		c.Output = *b.Output
	}
	if b.HandSize != nil {
		c.HandSize = *b.HandSize
	}
	if len(b.BoardSizes) > 0 {
		c.BoardSizes = b.BoardSizes
	}
	if b.HandSamples != nil {
		c.HandSamples = *b.HandSamples
	}
	if b.BoardSamples != nil {
		c.BoardSamples = *b.BoardSamples
	}
	if b.Trials != nil {
		c.Trials = *b.Trials
	}
	if b.Seed != nil {
		c.Seed = *b.Seed
	}
	if b.Workers != nil {
		c.Workers = *b.Workers
	}
}
