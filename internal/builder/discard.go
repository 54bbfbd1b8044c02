package builder

import (
	"context"
	"fmt"
	"runtime"

	rand "math/rand/v2"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Nikhilesh-B/mit-poker-2026/internal/canon"
	"github.com/Nikhilesh-B/mit-poker-2026/internal/deck"
	"github.com/Nikhilesh-B/mit-poker-2026/internal/equity"
	"github.com/Nikhilesh-B/mit-poker-2026/internal/randutil"
	"github.com/Nikhilesh-B/mit-poker-2026/internal/tables"
)

// DiscardConfig parameterizes a discard table build.
type DiscardConfig struct {
	// BoardSamples caps how many 4-card board combos are sampled. Each
	// sampled combo contributes its 3-card prefix and the full 4 cards.
	BoardSamples int
	// MaxBoardsPerHand caps the boards evaluated per hand. Zero means all.
	MaxBoardsPerHand int
	// HandSamples caps the canonical 3-card hands. Zero means all 22100.
	HandSamples int
	// Trials is the Monte Carlo trial count per discard candidate.
	Trials int
	// FinalBoardSize is the board size trials complete to. Zero means the
	// showdown board.
	FinalBoardSize int
	// Seed fixes the build's random streams.
	Seed int64
	// Workers caps build parallelism. Zero means GOMAXPROCS.
	Workers int
}

// Validate checks the configuration for a discard build.
func (c DiscardConfig) Validate() error {
	if c.BoardSamples <= 0 {
		return fmt.Errorf("board samples must be positive, got %d", c.BoardSamples)
	}
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	if c.MaxBoardsPerHand < 0 {
		return fmt.Errorf("max boards per hand cannot be negative, got %d", c.MaxBoardsPerHand)
	}
	if c.HandSamples < 0 {
		return fmt.Errorf("hand samples cannot be negative, got %d", c.HandSamples)
	}
	if c.FinalBoardSize < 0 || c.FinalBoardSize > equity.FinalBoardCards {
		return fmt.Errorf("final board size must be 0-%d, got %d", equity.FinalBoardCards, c.FinalBoardSize)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", c.Workers)
	}
	return nil
}

// BuildDiscard builds a discard table: for each sampled (hand, board) pair
// it Monte Carlo scores all three discards and records the best index under
// the hand's canonical key and board signature. Same-key collisions keep
// the last write, matching lookup behaviour where any representative works.
func BuildDiscard(ctx context.Context, cfg DiscardConfig, logger zerolog.Logger, clock quartz.Clock) (tables.DiscardTable, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := randutil.New(cfg.Seed)
	boards := sampleDiscardBoards(rng, cfg.BoardSamples)
	hands := CanonicalHands(3)
	hands = sampleSlice(rng, hands, cfg.HandSamples)

	logger.Info().
		Int("hands", len(hands)).
		Int("boards", len(boards)).
		Int("trials", cfg.Trials).
		Int64("seed", cfg.Seed).
		Msg("starting discard build")

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	prog := newProgress(logger, clock, len(hands), "hands")

	parts := make([]tables.DiscardTable, len(hands))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, hand := range hands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			hrng := randutil.Derive(cfg.Seed, i)
			part := tables.DiscardTable{}
			perHand := boards
			if cfg.MaxBoardsPerHand > 0 {
				perHand = sampleSlice(hrng, boards, cfg.MaxBoardsPerHand)
			}
			for _, board := range perHand {
				if overlaps(hand, board) {
					continue
				}
				di, err := bestDiscard(hrng, hand, board, cfg)
				if err != nil {
					return err
				}
				part[canon.DiscardKey(hand, board)] = di
			}
			parts[i] = part
			prog.inc()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Merge in hand order so collisions resolve the same way every run.
	table := tables.DiscardTable{}
	for _, part := range parts {
		for k, v := range part {
			table[k] = v
		}
	}
	logger.Info().Int("entries", len(table)).Msg("discard build complete")
	return table, nil
}

// sampleDiscardBoards samples 4-card combos and expands each into its
// 3-card prefix and full 4 cards, deduplicated by suit symmetry. Both
// lengths are needed: the bot discards once on the 3-card board and again
// after the fourth card.
func sampleDiscardBoards(rng *rand.Rand, samples int) [][]deck.Card {
	universe := deck.All()
	all := make([][]deck.Card, 0, samples)
	combinations(len(universe), 4, func(idx []int) bool {
		combo := make([]deck.Card, 4)
		for i, j := range idx {
			combo[i] = universe[j]
		}
		all = append(all, combo)
		return true
	})
	all = sampleSlice(rng, all, samples)

	seen := make(map[string]bool)
	var out [][]deck.Card
	for _, combo := range all {
		for _, board := range [][]deck.Card{combo[:3], combo} {
			key := canon.Key(board)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, board)
		}
	}
	return out
}

// bestDiscard scores each of the three possible discards by Monte Carlo
// equity of the kept two cards on the fixed board and returns the winning
// index. Ties keep the earliest index.
func bestDiscard(rng *rand.Rand, hand3, board []deck.Card, cfg DiscardConfig) (int, error) {
	bestIdx, bestEq := 0, -1.0
	kept := make([]deck.Card, 0, 2)
	for di := 0; di < 3; di++ {
		kept = kept[:0]
		for j, c := range hand3 {
			if j != di {
				kept = append(kept, c)
			}
		}
		eq, err := equity.Estimate(rng, kept, board, cfg.Trials, equity.Options{FinalBoardSize: cfg.FinalBoardSize})
		if err != nil {
			return 0, err
		}
		if eq > bestEq {
			bestEq, bestIdx = eq, di
		}
	}
	return bestIdx, nil
}
