package builder

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/Nikhilesh-B/mit-poker-2026/internal/deck"
	"github.com/Nikhilesh-B/mit-poker-2026/internal/randutil"
)

func TestCombinations(t *testing.T) {
	var got [][]int
	combinations(5, 3, func(idx []int) bool {
		got = append(got, append([]int(nil), idx...))
		return true
	})
	if len(got) != 10 {
		t.Fatalf("C(5,3) yielded %d subsets", len(got))
	}
	if !reflect.DeepEqual(got[0], []int{0, 1, 2}) {
		t.Errorf("first subset = %v", got[0])
	}
	if !reflect.DeepEqual(got[9], []int{2, 3, 4}) {
		t.Errorf("last subset = %v", got[9])
	}

	count := 0
	combinations(3, 0, func(idx []int) bool {
		count++
		return true
	})
	if count != 1 {
		t.Errorf("C(3,0) yielded %d subsets", count)
	}
	combinations(2, 3, func(idx []int) bool {
		t.Error("C(2,3) should yield nothing")
		return false
	})
}

func TestCanonicalHands(t *testing.T) {
	// 13 singletons; 169 two-card classes (13 pairs, 78 suited, 78 offsuit).
	if got := len(CanonicalHands(1)); got != 13 {
		t.Errorf("1-card classes = %d, want 13", got)
	}
	if got := len(CanonicalHands(2)); got != 169 {
		t.Errorf("2-card classes = %d, want 169", got)
	}
}

func TestSampleSlice(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}

	if got := sampleSlice(randutil.New(1), in, 0); !reflect.DeepEqual(got, in) {
		t.Errorf("cap 0 should return input, got %v", got)
	}
	if got := sampleSlice(randutil.New(1), in, 9); !reflect.DeepEqual(got, in) {
		t.Errorf("oversized cap should return input, got %v", got)
	}

	a := sampleSlice(randutil.New(7), in, 3)
	b := sampleSlice(randutil.New(7), in, 3)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed sampled %v and %v", a, b)
	}
	if len(a) != 3 {
		t.Fatalf("sampled %d elements", len(a))
	}
	seen := map[int]bool{}
	for _, v := range a {
		if seen[v] {
			t.Fatalf("duplicate %d in sample %v", v, a)
		}
		seen[v] = true
	}
	if !reflect.DeepEqual(in, []int{1, 2, 3, 4, 5}) {
		t.Errorf("input mutated: %v", in)
	}
}

func TestCanonicalBoards(t *testing.T) {
	rng := randutil.New(1)

	boards := canonicalBoards(rng, 0, 0, nil)
	if len(boards) != 1 || boards[0] != nil {
		t.Fatalf("size 0 should yield one empty board, got %v", boards)
	}

	exclude := deck.MustParseCards("As Ah Ad")
	for _, board := range canonicalBoards(rng, 3, 50, exclude) {
		if overlaps(board, exclude) {
			t.Fatalf("board %v overlaps excluded cards", board)
		}
	}
}

func TestBuildDiscard(t *testing.T) {
	cfg := DiscardConfig{
		BoardSamples:     5,
		MaxBoardsPerHand: 3,
		HandSamples:      3,
		Trials:           4,
		Seed:             7,
		Workers:          2,
	}
	logger := zerolog.Nop()

	first, err := BuildDiscard(context.Background(), cfg, logger, quartz.NewMock(t))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("empty discard table")
	}
	for k, v := range first {
		if v < 0 || v > 2 {
			t.Errorf("key %q has discard index %d", k, v)
		}
		if !strings.Contains(k, "|") {
			t.Errorf("key %q missing signature separator", k)
		}
	}

	// Same seed, different worker count, same table.
	cfg.Workers = 1
	second, err := BuildDiscard(context.Background(), cfg, logger, quartz.NewMock(t))
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("build is not deterministic across worker counts")
	}
}

func TestBuildDiscardValidate(t *testing.T) {
	bad := []DiscardConfig{
		{BoardSamples: 0, Trials: 10},
		{BoardSamples: 10, Trials: 0},
		{BoardSamples: 10, Trials: 10, FinalBoardSize: 9},
		{BoardSamples: 10, Trials: 10, Workers: -1},
	}
	for i, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Errorf("config %d validated", i)
		}
	}
}

func TestBuildEquitySet(t *testing.T) {
	cfg := EquityConfig{
		HandSize:     2,
		BoardSizes:   []int{0, 3},
		HandSamples:  4,
		BoardSamples: 3,
		Trials:       10,
		Seed:         7,
		Workers:      3,
	}
	logger := zerolog.Nop()

	set, err := BuildEquitySet(context.Background(), cfg, logger, quartz.NewMock(t))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("got %d stages, want 2", len(set))
	}
	preflop, ok := set["h2_b0"]
	if !ok {
		t.Fatal("missing h2_b0 stage")
	}
	if len(preflop) != 4 {
		t.Fatalf("preflop stage has %d entries, want 4", len(preflop))
	}
	for key, eq := range preflop {
		if eq < 0 || eq > 1 {
			t.Errorf("key %q equity %v out of range", key, eq)
		}
		if !strings.HasSuffix(key, "|") {
			t.Errorf("preflop key %q should end with empty board", key)
		}
	}

	// Stages reseed independently: building one stage alone matches it.
	cfg.BoardSizes = []int{3}
	cfg.Workers = 1
	alone, err := BuildEquitySet(context.Background(), cfg, logger, quartz.NewMock(t))
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if !reflect.DeepEqual(set["h2_b3"], alone["h2_b3"]) {
		t.Fatal("stage build depends on sibling stages or worker count")
	}
}

func TestBuildEquityValidate(t *testing.T) {
	bad := []EquityConfig{
		{HandSize: 4, BoardSizes: []int{0}, Trials: 1},
		{HandSize: 2, BoardSizes: nil, Trials: 1},
		{HandSize: 2, BoardSizes: []int{1}, Trials: 1},
		{HandSize: 2, BoardSizes: []int{0}, Trials: 0},
	}
	for i, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Errorf("config %d validated", i)
		}
	}
}
