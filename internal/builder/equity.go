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

// EquityConfig parameterizes an equity table build.
type EquityConfig struct {
	// HandSize is the hole cards per entry: 3 pre-discard, 2 after.
	HandSize int
	// BoardSizes lists the board stages to build, each a separate table.
	BoardSizes []int
	// HandSamples caps the canonical hands per stage. Zero means all.
	HandSamples int
	// BoardSamples caps the boards sampled per hand. Zero means full
	// enumeration, which is only practical for small board sizes.
	BoardSamples int
	// Trials is the Monte Carlo trial count per entry.
	Trials int
	// Seed fixes the build's random streams.
	Seed int64
	// Workers caps build parallelism. Zero means GOMAXPROCS.
	Workers int
}

// Validate checks the configuration for an equity build.
func (c EquityConfig) Validate() error {
	if c.HandSize != 2 && c.HandSize != 3 {
		return fmt.Errorf("hand size must be 2 or 3, got %d", c.HandSize)
	}
	if len(c.BoardSizes) == 0 {
		return fmt.Errorf("at least one board size required")
	}
	for _, bs := range c.BoardSizes {
		switch bs {
		case 0, 2, 3, 4, 5, 6:
		default:
			return fmt.Errorf("board size must be one of 0,2,3,4,5,6, got %d", bs)
		}
	}
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	if c.HandSamples < 0 || c.BoardSamples < 0 {
		return fmt.Errorf("sample caps cannot be negative")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", c.Workers)
	}
	return nil
}

// BuildEquitySet builds one equity table per configured board size, keyed
// by stage in the returned set. Each stage reseeds from the configured
// seed, so building stages together or separately yields the same tables.
func BuildEquitySet(ctx context.Context, cfg EquityConfig, logger zerolog.Logger, clock quartz.Clock) (tables.EquityTableSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	set := tables.EquityTableSet{}
	for _, boardSize := range cfg.BoardSizes {
		table, err := buildEquityStage(ctx, cfg, boardSize, logger, clock)
		if err != nil {
			return nil, err
		}
		set[tables.SetKey(cfg.HandSize, boardSize)] = table
		logger.Info().
			Int("hand_size", cfg.HandSize).
			Int("board_size", boardSize).
			Int("entries", len(table)).
			Msg("equity stage complete")
	}
	return set, nil
}

func buildEquityStage(ctx context.Context, cfg EquityConfig, boardSize int, logger zerolog.Logger, clock quartz.Clock) (tables.EquityTable, error) {
	stageSeed := cfg.Seed + int64(boardSize+1)*1_000_003
	rng := randutil.New(stageSeed)

	hands := CanonicalHands(cfg.HandSize)
	hands = sampleSlice(rng, hands, cfg.HandSamples)

	logger.Info().
		Int("hand_size", cfg.HandSize).
		Int("board_size", boardSize).
		Int("hands", len(hands)).
		Int("trials", cfg.Trials).
		Int64("seed", cfg.Seed).
		Msg("starting equity stage")

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	prog := newProgress(logger, clock, len(hands), "hands")

	parts := make([]tables.EquityTable, len(hands))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, hand := range hands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			hrng := randutil.Derive(stageSeed, i)
			part := tables.EquityTable{}
			for _, board := range canonicalBoards(hrng, boardSize, cfg.BoardSamples, hand) {
				eq, err := equity.Estimate(hrng, hand, board, cfg.Trials, equity.Options{})
				if err != nil {
					return err
				}
				part[canon.EquityKey(hand, board)] = eq
			}
			parts[i] = part
			prog.inc()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	table := tables.EquityTable{}
	for _, part := range parts {
		for k, v := range part {
			table[k] = v
		}
	}
	return table, nil
}

// canonicalBoards returns boards of the given size that avoid the hand's
// cards, one per suit-symmetry class. With a sample cap it draws random
// boards instead of enumerating every combination.
func canonicalBoards(rng *rand.Rand, size, samples int, exclude []deck.Card) [][]deck.Card {
	if size == 0 {
		return [][]deck.Card{nil}
	}

	pool := make([]deck.Card, 0, 52)
	for _, c := range deck.All() {
		excluded := false
		for _, e := range exclude {
			if c == e {
				excluded = true
				break
			}
		}
		if !excluded {
			pool = append(pool, c)
		}
	}

	seen := make(map[string]bool)
	var out [][]deck.Card

	if samples > 0 {
		scratch := make([]deck.Card, len(pool))
		for i := 0; i < samples; i++ {
			copy(scratch, pool)
			for j := 0; j < size; j++ {
				k := j + rng.IntN(len(scratch)-j)
				scratch[j], scratch[k] = scratch[k], scratch[j]
			}
			key := canon.Key(scratch[:size])
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, append([]deck.Card(nil), scratch[:size]...))
		}
		return out
	}

	combinations(len(pool), size, func(idx []int) bool {
		board := make([]deck.Card, size)
		for i, j := range idx {
			board[i] = pool[j]
		}
		key := canon.Key(board)
		if seen[key] {
			return true
		}
		seen[key] = true
		out = append(out, board)
		return true
	})
	return out
}
