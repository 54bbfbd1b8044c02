// Package canon collapses suit-symmetric card sets into canonical
// representatives and derives the string keys used by the lookup tables.
//
// Canonicalization relabels suits in the fixed order s, h, d, c by first
// appearance while scanning hand cards before board cards. The hand-first
// scan order is a system-wide convention: build and lookup paths must agree
// on it or keys silently diverge.
package canon

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Nikhilesh-B/mit-poker-2026/internal/deck"
)

// Cards relabels the suits of an ordered card sequence by first-seen order.
// Ranks and positions are unchanged. The mapping is deterministic,
// idempotent, and invariant under any uniform relabelling of the input
// suits.
func Cards(cards []deck.Card) []deck.Card {
	suitMap := make(map[deck.Suit]deck.Suit, 4)
	next := deck.Spades
	out := make([]deck.Card, len(cards))
	for i, c := range cards {
		mapped, ok := suitMap[c.Suit]
		if !ok {
			mapped = next
			suitMap[c.Suit] = mapped
			next++
		}
		out[i] = deck.NewCard(c.Rank, mapped)
	}
	return out
}

// split canonicalizes hand+board in the mandated hand-first order and
// returns the two canonical halves.
func split(hand, board []deck.Card) (canonHand, canonBoard []deck.Card) {
	combined := make([]deck.Card, 0, len(hand)+len(board))
	combined = append(combined, hand...)
	combined = append(combined, board...)
	canon := Cards(combined)
	return canon[:len(hand)], canon[len(hand):]
}

func sortedCodes(cards []deck.Card) string {
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.String()
	}
	sort.Strings(codes)
	return strings.Join(codes, "_")
}

// Key returns the sorted canonical codes of a standalone card set. The
// builder uses it to deduplicate suit-symmetric hands and boards.
func Key(cards []deck.Card) string {
	return sortedCodes(Cards(cards))
}

// HandKey returns the hand portion of a discard-table key: the sorted codes
// of the canonical hand cards. The board participates in the suit scan but
// does not itself appear in the key.
func HandKey(hand, board []deck.Card) string {
	canonHand, _ := split(hand, board)
	return sortedCodes(canonHand)
}

// DiscardKey returns the full discard-table key:
// "<sortedCanonHand>|<bucketSignature>".
func DiscardKey(hand, board []deck.Card) string {
	return HandKey(hand, board) + "|" + Signature(board, hand)
}

// EquityKey returns the equity-table key:
// "<sortedCanonHand>|<sortedCanonBoard>". Unlike discard keys, equity keys
// carry the literal canonical board rather than its bucket signature; both
// build and lookup depend on this exact form.
func EquityKey(hand, board []deck.Card) string {
	canonHand, canonBoard := split(hand, board)
	return sortedCodes(canonHand) + "|" + sortedCodes(canonBoard)
}

// Signature returns a coarse board-texture descriptor used to widen
// discard-table hit rates: suit texture, board pairing, high card, rank
// spread, and a connectivity bucket. An empty board yields "empty".
// The hand is only used to keep the canonicalization pass consistent with
// the key path.
func Signature(board, hand []deck.Card) string {
	if len(board) == 0 {
		return "empty"
	}
	_, canonBoard := split(hand, board)

	var suitCounts [4]int
	rankSeen := make(map[deck.Rank]bool, len(canonBoard))
	paired := 0
	hi, lo := canonBoard[0].Rank, canonBoard[0].Rank
	for _, c := range canonBoard {
		suitCounts[c.Suit]++
		if rankSeen[c.Rank] {
			paired = 1
		}
		rankSeen[c.Rank] = true
		if c.Rank > hi {
			hi = c.Rank
		}
		if c.Rank < lo {
			lo = c.Rank
		}
	}

	maxSuit := 0
	for _, n := range suitCounts {
		if n > maxSuit {
			maxSuit = n
		}
	}
	tex := "mono"
	switch maxSuit {
	case 1:
		tex = "rainbow"
	case 2:
		tex = "two"
	}

	spread := int(hi - lo)
	connect := "loose"
	switch {
	case spread <= 2:
		connect = "tight"
	case spread <= 4:
		connect = "med"
	}

	return fmt.Sprintf("%s|paired:%d|hi:%s|spread:%d|connect:%s",
		tex, paired, hi, spread, connect)
}
