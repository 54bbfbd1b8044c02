// Package bot decides actions for Toss or Hold'em rounds. Strategy is
// table-first: precomputed discard and equity tables answer most states,
// with a live Monte Carlo estimate and then a heuristic score as fallbacks.
package bot

import (
	"math"
	"path/filepath"
	"strconv"
	"strings"

	rand "math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/Nikhilesh-B/mit-poker-2026/internal/canon"
	"github.com/Nikhilesh-B/mit-poker-2026/internal/classify"
	"github.com/Nikhilesh-B/mit-poker-2026/internal/deck"
	"github.com/Nikhilesh-B/mit-poker-2026/internal/equity"
	"github.com/Nikhilesh-B/mit-poker-2026/internal/tables"
)

// DiscardTableFile is the discard table filename inside the tables dir.
const DiscardTableFile = "discard_table.json"

// EquitySetFile is the combined equity table filename inside the tables dir.
const EquitySetFile = "equity_tables.json"

// Bot plays one seat. Tables are loaded once at construction and never
// mutated afterwards, so a Bot is safe to reuse across rounds.
type Bot struct {
	cfg     Config
	logger  zerolog.Logger
	rng     *rand.Rand
	discard tables.DiscardTable
	equity  tables.EquityTableSet
}

// New builds a bot from config, loading whatever tables exist in the
// tables directory. Missing tables are not fatal: play degrades to live
// estimation and heuristics. Corrupt tables are skipped with a warning.
func New(cfg Config, logger zerolog.Logger, rng *rand.Rand) (*Bot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := &Bot{
		cfg:    cfg,
		logger: logger,
		rng:    rng,
		equity: tables.EquityTableSet{},
	}

	discardPath := filepath.Join(cfg.TablesDir, DiscardTableFile)
	discard, err := tables.LoadDiscard(discardPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", discardPath).Msg("discard table unusable")
	}
	b.discard = discard

	setPath := filepath.Join(cfg.TablesDir, EquitySetFile)
	set, err := tables.LoadEquitySet(setPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", setPath).Msg("equity table set unusable")
	}
	for key, table := range set {
		b.equity[key] = table
	}
	b.loadStageFiles()

	logger.Info().
		Int("discard_entries", len(b.discard)).
		Int("equity_stages", len(b.equity)).
		Msg("bot ready")
	return b, nil
}

// loadStageFiles merges per-stage equity files (equity_table_h*_b*.json)
// over any combined set already loaded.
func (b *Bot) loadStageFiles() {
	matches, err := filepath.Glob(filepath.Join(b.cfg.TablesDir, "equity_table_h*_b*.json"))
	if err != nil {
		return
	}
	for _, path := range matches {
		stage, ok := stageFromFilename(filepath.Base(path))
		if !ok {
			continue
		}
		table, err := tables.LoadEquity(path)
		if err != nil {
			b.logger.Warn().Err(err).Str("path", path).Msg("equity table unusable")
			continue
		}
		if len(table) > 0 {
			b.equity[stage] = table
		}
	}
}

func stageFromFilename(name string) (string, bool) {
	name = strings.TrimSuffix(name, ".json")
	parts := strings.Split(name, "_")
	if len(parts) != 4 || !strings.HasPrefix(parts[2], "h") || !strings.HasPrefix(parts[3], "b") {
		return "", false
	}
	handSize, err := strconv.Atoi(parts[2][1:])
	if err != nil {
		return "", false
	}
	boardSize, err := strconv.Atoi(parts[3][1:])
	if err != nil {
		return "", false
	}
	return tables.SetKey(handSize, boardSize), true
}

// Act decides the next action for the current state.
func (b *Bot) Act(state RoundState) Action {
	hand, board := state.Hand(), state.Board()

	if legal(state, Discard) {
		idx := b.chooseDiscard(hand, board)
		b.logger.Debug().Int("index", idx).Int("street", state.Street()).Msg("discarding")
		return DiscardAction(idx)
	}

	heroPip, oppPip := state.Pips()
	continueCost := oppPip - heroPip
	heroStack, oppStack := state.Stacks()
	pot := (b.cfg.StartingStack - heroStack) + (b.cfg.StartingStack - oppStack)

	if eq, ok := b.equityFor(hand, board); ok {
		action := b.equityAction(state, eq, continueCost, pot, heroPip)
		b.logger.Debug().Float64("equity", eq).Stringer("action", action).Msg("acting on equity")
		return action
	}

	action := b.scoreAction(state, hand, board)
	b.logger.Debug().Stringer("action", action).Msg("acting on heuristic score")
	return action
}

// equityFor returns the hand's win probability: table hit first, then a
// live Monte Carlo estimate when configured.
func (b *Bot) equityFor(hand, board []deck.Card) (float64, bool) {
	if table, ok := b.equity[tables.SetKey(len(hand), len(board))]; ok {
		if eq, ok := table[canon.EquityKey(hand, board)]; ok {
			return eq, true
		}
	}
	if b.cfg.LiveTrials > 0 {
		eq, err := equity.Estimate(b.rng, hand, board, b.cfg.LiveTrials, equity.Options{})
		if err == nil {
			return eq, true
		}
		b.logger.Warn().Err(err).Msg("live equity estimate failed")
	}
	return 0, false
}

func (b *Bot) equityAction(state RoundState, eq float64, continueCost, pot, heroPip int) Action {
	potOdds := 0.0
	if continueCost > 0 {
		potOdds = float64(continueCost) / float64(pot+continueCost)
	}

	// Fold only when the price is bad and the hand is weak outright.
	if continueCost > 0 && eq < potOdds && eq < b.cfg.FoldEquity {
		return FoldAction()
	}

	// A high equity-to-variance ratio marks a stable edge worth betting.
	variance := eq * (1.0 - eq)
	ratio := eq / math.Max(variance, 1e-4)
	if ratio >= b.cfg.RaiseRatio && legal(state, Raise) {
		minRaise, maxRaise := state.RaiseBounds()
		target := heroPip + pot
		if target < minRaise {
			target = minRaise
		}
		if target > maxRaise {
			target = maxRaise
		}
		return RaiseAction(target)
	}

	if legal(state, Check) || continueCost == 0 {
		return CheckAction()
	}
	return CallAction()
}

// scoreAction is the no-equity fallback built on the heuristic score.
func (b *Bot) scoreAction(state RoundState, hand, board []deck.Card) Action {
	score := classify.Score(hand, board)

	if score < b.cfg.FoldScore {
		if legal(state, Check) {
			return CheckAction()
		}
		return FoldAction()
	}
	if score > b.cfg.RaiseScore && legal(state, Raise) {
		minRaise, maxRaise := state.RaiseBounds()
		multi := math.Min(1, score/20) / 2
		amount := int(math.Round(float64(minRaise) + float64(maxRaise-minRaise)*multi))
		return RaiseAction(amount)
	}
	if legal(state, Check) {
		return CheckAction()
	}
	return CallAction()
}
