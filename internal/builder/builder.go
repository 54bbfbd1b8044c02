// Package builder generates the discard and equity lookup tables offline.
// Building is deterministic for a given seed: hands are partitioned across
// workers with per-hand derived random streams, so worker scheduling never
// changes the output.
package builder

import (
	"sync"
	"time"

	rand "math/rand/v2"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/Nikhilesh-B/mit-poker-2026/internal/canon"
	"github.com/Nikhilesh-B/mit-poker-2026/internal/deck"
)

// combinations visits every k-subset of [0, n) in lexicographic order.
// The callback returns false to stop early; idx is reused between calls.
func combinations(n, k int, fn func(idx []int) bool) {
	if k > n {
		return
	}
	if k == 0 {
		fn(nil)
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !fn(idx) {
			return
		}
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// CanonicalHands returns one representative per suit-symmetric hand of the
// given size, in deterministic enumeration order.
func CanonicalHands(size int) [][]deck.Card {
	universe := deck.All()
	seen := make(map[string]bool)
	var hands [][]deck.Card
	combinations(len(universe), size, func(idx []int) bool {
		hand := make([]deck.Card, size)
		for i, j := range idx {
			hand[i] = universe[j]
		}
		key := canon.Key(hand)
		if seen[key] {
			return true
		}
		seen[key] = true
		hands = append(hands, hand)
		return true
	})
	return hands
}

// sampleSlice returns k elements drawn without replacement, or the whole
// slice when k is zero or covers it. The input is not modified.
func sampleSlice[T any](rng *rand.Rand, in []T, k int) []T {
	if k <= 0 || k >= len(in) {
		return in
	}
	out := make([]T, len(in))
	copy(out, in)
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(out)-i)
		out[i], out[j] = out[j], out[i]
	}
	return out[:k]
}

// overlaps reports whether any card appears in both sets.
func overlaps(a, b []deck.Card) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// progress logs throughput at most once per interval. The clock is
// injectable so tests can drive it.
type progress struct {
	logger   zerolog.Logger
	clock    quartz.Clock
	interval time.Duration
	total    int
	unit     string

	mu   sync.Mutex
	done int
	last time.Time
}

func newProgress(logger zerolog.Logger, clock quartz.Clock, total int, unit string) *progress {
	return &progress{
		logger:   logger,
		clock:    clock,
		interval: 5 * time.Second,
		total:    total,
		unit:     unit,
		last:     clock.Now(),
	}
}

func (p *progress) inc() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	now := p.clock.Now()
	if p.done < p.total && now.Sub(p.last) < p.interval {
		return
	}
	p.last = now
	p.logger.Info().
		Int("done", p.done).
		Int("total", p.total).
		Str("unit", p.unit).
		Msg("building")
}
