package bot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Nikhilesh-B/mit-poker-2026/internal/canon"
	"github.com/Nikhilesh-B/mit-poker-2026/internal/deck"
	"github.com/Nikhilesh-B/mit-poker-2026/internal/randutil"
	"github.com/Nikhilesh-B/mit-poker-2026/internal/tables"
)

type fakeState struct {
	actions   []ActionType
	street    int
	hand      []deck.Card
	board     []deck.Card
	heroPip   int
	oppPip    int
	heroStack int
	oppStack  int
	minRaise  int
	maxRaise  int
}

func (s *fakeState) LegalActions() []ActionType { return s.actions }
func (s *fakeState) Street() int                { return s.street }
func (s *fakeState) Hand() []deck.Card          { return s.hand }
func (s *fakeState) Board() []deck.Card         { return s.board }
func (s *fakeState) Pips() (int, int)           { return s.heroPip, s.oppPip }
func (s *fakeState) Stacks() (int, int)         { return s.heroStack, s.oppStack }
func (s *fakeState) RaiseBounds() (int, int)    { return s.minRaise, s.maxRaise }

func newTestBot(t *testing.T, cfg Config) *Bot {
	t.Helper()
	b, err := New(cfg, zerolog.Nop(), randutil.New(1))
	if err != nil {
		t.Fatalf("new bot: %v", err)
	}
	return b
}

func baseConfig(t *testing.T) Config {
	cfg := DefaultConfig()
	cfg.TablesDir = t.TempDir()
	return cfg
}

func TestActDiscardUsesTable(t *testing.T) {
	hand := deck.MustParseCards("As Kd 2c")
	board := deck.MustParseCards("7h 8h 9s")

	cfg := baseConfig(t)
	table := tables.DiscardTable{canon.DiscardKey(hand, board): 1}
	if err := tables.SaveDiscard(filepath.Join(cfg.TablesDir, DiscardTableFile), table); err != nil {
		t.Fatal(err)
	}

	b := newTestBot(t, cfg)
	got := b.Act(&fakeState{actions: []ActionType{Discard}, street: 3, hand: hand, board: board})
	if got.Type != Discard || got.Index != 1 {
		t.Fatalf("got %v, want discard 1", got)
	}
}

func TestActDiscardHeuristicFallback(t *testing.T) {
	cfg := baseConfig(t)
	b := newTestBot(t, cfg)

	// No table: the pair stays, the odd king goes.
	hand := deck.MustParseCards("9s Kd 9h")
	got := b.Act(&fakeState{actions: []ActionType{Discard}, street: 2, hand: hand})
	if got.Type != Discard || got.Index != 1 {
		t.Fatalf("got %v, want discard 1", got)
	}
}

func TestActFoldsBadPriceWeakHand(t *testing.T) {
	hand := deck.MustParseCards("2s 7d")
	board := deck.MustParseCards("Ks Qh 9c")

	cfg := baseConfig(t)
	set := tables.EquityTableSet{
		tables.SetKey(2, 3): {canon.EquityKey(hand, board): 0.10},
	}
	if err := tables.SaveEquitySet(filepath.Join(cfg.TablesDir, EquitySetFile), set); err != nil {
		t.Fatal(err)
	}

	b := newTestBot(t, cfg)
	got := b.Act(&fakeState{
		actions:   []ActionType{Fold, Call},
		hand:      hand,
		board:     board,
		heroPip:   0,
		oppPip:    100,
		heroStack: 400,
		oppStack:  300,
	})
	if got.Type != Fold {
		t.Fatalf("got %v, want fold", got)
	}
}

func TestActRaisesStableEdge(t *testing.T) {
	hand := deck.MustParseCards("As Ah")
	board := deck.MustParseCards("Ad 7h 2c")

	cfg := baseConfig(t)
	set := tables.EquityTableSet{
		tables.SetKey(2, 3): {canon.EquityKey(hand, board): 0.92},
	}
	if err := tables.SaveEquitySet(filepath.Join(cfg.TablesDir, EquitySetFile), set); err != nil {
		t.Fatal(err)
	}

	b := newTestBot(t, cfg)
	got := b.Act(&fakeState{
		actions:   []ActionType{Fold, Check, Raise},
		hand:      hand,
		board:     board,
		heroStack: 350,
		oppStack:  350,
		minRaise:  10,
		maxRaise:  400,
	})
	if got.Type != Raise {
		t.Fatalf("got %v, want raise", got)
	}
	// Pot-sized: hero pip 0 plus 100 in the pot, inside the bounds.
	if got.Amount != 100 {
		t.Fatalf("raise amount = %d, want 100", got.Amount)
	}
}

func TestActChecksMarginalEquity(t *testing.T) {
	hand := deck.MustParseCards("8s 9s")
	board := deck.MustParseCards("Kd 7h 2c")

	cfg := baseConfig(t)
	set := tables.EquityTableSet{
		tables.SetKey(2, 3): {canon.EquityKey(hand, board): 0.40},
	}
	if err := tables.SaveEquitySet(filepath.Join(cfg.TablesDir, EquitySetFile), set); err != nil {
		t.Fatal(err)
	}

	b := newTestBot(t, cfg)
	got := b.Act(&fakeState{
		actions:   []ActionType{Check, Raise},
		hand:      hand,
		board:     board,
		heroStack: 398,
		oppStack:  398,
		minRaise:  4,
		maxRaise:  398,
	})
	if got.Type != Check {
		t.Fatalf("got %v, want check", got)
	}
}

func TestActLiveEstimateFallback(t *testing.T) {
	cfg := baseConfig(t)
	cfg.LiveTrials = 60
	b := newTestBot(t, cfg)

	// No tables exist, so this exercises the Monte Carlo path. Pocket
	// aces against an empty pot should never fold.
	got := b.Act(&fakeState{
		actions:   []ActionType{Fold, Check, Raise},
		hand:      deck.MustParseCards("As Ah"),
		heroStack: 399,
		oppStack:  398,
		minRaise:  4,
		maxRaise:  399,
	})
	if got.Type == Fold {
		t.Fatalf("folded aces: %v", got)
	}
}

func TestActScoreFallback(t *testing.T) {
	cfg := baseConfig(t)
	cfg.LiveTrials = 0
	b := newTestBot(t, cfg)

	// Weak offsuit junk folds when continuing costs chips.
	got := b.Act(&fakeState{
		actions:   []ActionType{Fold, Call},
		hand:      deck.MustParseCards("2s 3h"),
		heroPip:   0,
		oppPip:    50,
		heroStack: 400,
		oppStack:  350,
	})
	if got.Type != Fold {
		t.Fatalf("got %v, want fold", got)
	}

	// Aces full raises.
	got = b.Act(&fakeState{
		actions:   []ActionType{Fold, Check, Raise},
		hand:      deck.MustParseCards("As Ah"),
		board:     deck.MustParseCards("Ad Ks Kh 2c"),
		heroStack: 350,
		oppStack:  350,
		minRaise:  10,
		maxRaise:  350,
	})
	if got.Type != Raise {
		t.Fatalf("got %v, want raise", got)
	}
}

func TestNewMergesStageFiles(t *testing.T) {
	cfg := baseConfig(t)

	set := tables.EquityTableSet{tables.SetKey(2, 0): {"As_Ah|": 0.85}}
	if err := tables.SaveEquitySet(filepath.Join(cfg.TablesDir, EquitySetFile), set); err != nil {
		t.Fatal(err)
	}
	stage := tables.EquityTable{"2s_As_Ks|3h_7d_9s_Td": 0.42}
	stagePath := filepath.Join(cfg.TablesDir, tables.EquityFileName(3, 4))
	if err := tables.SaveEquity(stagePath, stage); err != nil {
		t.Fatal(err)
	}

	b := newTestBot(t, cfg)
	if len(b.equity) != 2 {
		t.Fatalf("loaded %d stages, want 2", len(b.equity))
	}
	if b.equity[tables.SetKey(3, 4)]["2s_As_Ks|3h_7d_9s_Td"] != 0.42 {
		t.Fatal("per-stage file not merged")
	}
}

func TestStageFromFilename(t *testing.T) {
	if stage, ok := stageFromFilename("equity_table_h2_b3.json"); !ok || stage != "h2_b3" {
		t.Fatalf("got %q %v", stage, ok)
	}
	for _, name := range []string{"equity_table.json", "equity_table_hx_b3.json", "other.json"} {
		if _, ok := stageFromFilename(name); ok {
			t.Errorf("%q parsed as stage file", name)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bot.hcl")
	content := "tables_dir = \"/data/tables\"\nfold_equity = 0.4\nlive_trials = 200\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TablesDir != "/data/tables" {
		t.Errorf("tables_dir = %q", cfg.TablesDir)
	}
	if cfg.FoldEquity != 0.4 {
		t.Errorf("fold_equity = %v", cfg.FoldEquity)
	}
	if cfg.LiveTrials != 200 {
		t.Errorf("live_trials = %d", cfg.LiveTrials)
	}
	// Unset fields keep defaults.
	if cfg.RaiseRatio != 2.0 {
		t.Errorf("raise_ratio = %v, want default", cfg.RaiseRatio)
	}
	if cfg.StartingStack != 400 {
		t.Errorf("starting_stack = %d, want default", cfg.StartingStack)
	}

	// Missing file yields pure defaults.
	cfg, err = LoadConfig(filepath.Join(dir, "absent.hcl"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("missing file config = %+v", cfg)
	}
}
