// Package tables defines the precomputed lookup tables the bot plays from
// and their on-disk JSON format. Tables are built offline, loaded once at
// startup and never mutated afterwards.
package tables

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Nikhilesh-B/mit-poker-2026/internal/fileutil"
)

const fileVersion = 1

// DiscardTable maps "<sorted canonical hand>|<board signature>" to the
// index (0-2) of the hole card to discard.
type DiscardTable map[string]int

// EquityTable maps "<sorted canonical hand>|<sorted canonical board>" to a
// Monte Carlo equity estimate in [0, 1].
type EquityTable map[string]float64

// EquityTableSet holds equity tables for several (hand size, board size)
// stages in one file, keyed by SetKey.
type EquityTableSet map[string]EquityTable

// SetKey names one stage inside an EquityTableSet.
func SetKey(handSize, boardSize int) string {
	return fmt.Sprintf("h%d_b%d", handSize, boardSize)
}

// EquityFileName is the default filename for a single-stage equity table.
func EquityFileName(handSize, boardSize int) string {
	return fmt.Sprintf("equity_table_h%d_b%d.json", handSize, boardSize)
}

type discardFile struct {
	Version int          `json:"version"`
	Table   DiscardTable `json:"table"`
}

type equityFile struct {
	Version int         `json:"version"`
	Table   EquityTable `json:"table"`
}

type equitySetFile struct {
	Version int            `json:"version"`
	Tables  EquityTableSet `json:"tables"`
}

// SaveDiscard writes a discard table atomically.
func SaveDiscard(path string, t DiscardTable) error {
	return save(path, discardFile{Version: fileVersion, Table: t})
}

// SaveEquity writes a single-stage equity table atomically.
func SaveEquity(path string, t EquityTable) error {
	return save(path, equityFile{Version: fileVersion, Table: t})
}

// SaveEquitySet writes a multi-stage equity table set atomically.
func SaveEquitySet(path string, s EquityTableSet) error {
	return save(path, equitySetFile{Version: fileVersion, Tables: s})
}

func save(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return fileutil.WriteFileAtomic(path, data, 0o644)
}

// LoadDiscard reads a discard table. A missing file is not an error: the
// bot degrades to heuristic play, so callers get an empty table back. A
// corrupt file also yields an empty table, with the error for logging.
func LoadDiscard(path string) (DiscardTable, error) {
	var f discardFile
	if err := load(path, &f); err != nil {
		return DiscardTable{}, err
	}
	if f.Table == nil {
		return DiscardTable{}, nil
	}
	return f.Table, nil
}

// LoadEquity reads a single-stage equity table, with the same missing and
// corrupt file behaviour as LoadDiscard.
func LoadEquity(path string) (EquityTable, error) {
	var f equityFile
	if err := load(path, &f); err != nil {
		return EquityTable{}, err
	}
	if f.Table == nil {
		return EquityTable{}, nil
	}
	return f.Table, nil
}

// LoadEquitySet reads a multi-stage equity table set, with the same missing
// and corrupt file behaviour as LoadDiscard.
func LoadEquitySet(path string) (EquityTableSet, error) {
	var f equitySetFile
	if err := load(path, &f); err != nil {
		return EquityTableSet{}, err
	}
	if f.Tables == nil {
		return EquityTableSet{}, nil
	}
	return f.Tables, nil
}

func load(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
