// Package evaluator ranks poker hands. It is the hand-ranking oracle used
// by the equity estimator: Best picks the strongest 5-card hand from any
// 5-9 known cards and returns an orderable Score.
package evaluator

import (
	"math/bits"

	"github.com/Nikhilesh-B/mit-poker-2026/internal/deck"
)

// HandClass enumerates hand categories from weakest to strongest.
type HandClass uint8

const (
	HighCard HandClass = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable class name.
func (c HandClass) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Score represents the strength of a 5-card hand. Higher is stronger and
// equal scores tie. The class occupies the top bits; below it sit five
// rank nibbles in order of comparison significance.
type Score uint32

// Class returns the hand category of the score.
func (s Score) Class() HandClass {
	return HandClass(s >> 20)
}

// Compare returns 1 if s is stronger than other, -1 if weaker, 0 on a tie.
func (s Score) Compare(other Score) int {
	if s > other {
		return 1
	}
	if s < other {
		return -1
	}
	return 0
}

func pack(class HandClass, ranks ...deck.Rank) Score {
	s := Score(class) << 20
	shift := 16
	for _, r := range ranks {
		s |= Score(r) << shift
		shift -= 4
	}
	return s
}

// Best returns the score of the strongest 5-card hand contained in cards.
// It accepts 5 to 9 cards; fewer than 5 yields 0.
func Best(cards []deck.Card) Score {
	if len(cards) < 5 {
		return 0
	}

	var suitMasks [4]uint16
	var rankCounts [15]int
	for _, c := range cards {
		suitMasks[c.Suit] |= 1 << (c.Rank - deck.Two)
		rankCounts[c.Rank]++
	}
	rankMask := suitMasks[0] | suitMasks[1] | suitMasks[2] | suitMasks[3]

	// With at most nine cards only one suit can hold a flush.
	flushSuit := -1
	for suit, mask := range suitMasks {
		if bits.OnesCount16(mask) >= 5 {
			flushSuit = suit
			break
		}
	}

	if flushSuit >= 0 {
		if hi := straightHigh(suitMasks[flushSuit]); hi > 0 {
			return pack(StraightFlush, hi)
		}
	}

	quads := ranksWithCount(rankCounts, 4, 4)
	if len(quads) > 0 {
		quad := quads[0]
		kicker := highestExcluding(rankMask, quad)
		return pack(FourOfAKind, quad, kicker)
	}

	trips := ranksWithCount(rankCounts, 3, 3)
	pairs := ranksWithCount(rankCounts, 2, 2)
	if len(trips) > 0 {
		fill := deck.Rank(0)
		if len(trips) > 1 {
			fill = trips[1]
		}
		if len(pairs) > 0 && pairs[0] > fill {
			fill = pairs[0]
		}
		if fill > 0 {
			return pack(FullHouse, trips[0], fill)
		}
	}

	if flushSuit >= 0 {
		top := topRanks(suitMasks[flushSuit], 5)
		return pack(Flush, top...)
	}

	if hi := straightHigh(rankMask); hi > 0 {
		return pack(Straight, hi)
	}

	if len(trips) > 0 {
		kickers := topRanksExcluding(rankMask, 2, trips[0])
		return pack(ThreeOfAKind, append([]deck.Rank{trips[0]}, kickers...)...)
	}

	if len(pairs) >= 2 {
		kicker := highestExcluding(rankMask, pairs[0], pairs[1])
		return pack(TwoPair, pairs[0], pairs[1], kicker)
	}

	if len(pairs) == 1 {
		kickers := topRanksExcluding(rankMask, 3, pairs[0])
		return pack(Pair, append([]deck.Rank{pairs[0]}, kickers...)...)
	}

	return pack(HighCard, topRanks(rankMask, 5)...)
}

// straightHigh returns the high rank of the best straight in the rank mask
// (bit i = rank i+2), or 0 when none exists. The wheel counts with Five high.
func straightHigh(mask uint16) deck.Rank {
	const wheel = 0x100F // A-2-3-4-5
	mask &= 0x1FFF

	// Cascade finds every index that starts five consecutive set bits.
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		low := bits.Len16(seq) - 1
		return deck.Rank(low+4) + deck.Two
	}
	if mask&wheel == wheel {
		return deck.Five
	}
	return 0
}

// ranksWithCount returns ranks whose multiplicity lies in [lo, hi], highest
// first. A hi of 4 makes lo an at-least bound.
func ranksWithCount(counts [15]int, lo, hi int) []deck.Rank {
	var out []deck.Rank
	for r := deck.Ace; r >= deck.Two; r-- {
		if counts[r] >= lo && counts[r] <= hi {
			out = append(out, r)
		}
	}
	return out
}

func topRanks(mask uint16, n int) []deck.Rank {
	out := make([]deck.Rank, 0, n)
	for len(out) < n && mask != 0 {
		idx := bits.Len16(mask) - 1
		out = append(out, deck.Rank(idx)+deck.Two)
		mask &^= 1 << idx
	}
	return out
}

func topRanksExcluding(mask uint16, n int, exclude ...deck.Rank) []deck.Rank {
	for _, r := range exclude {
		mask &^= 1 << (r - deck.Two)
	}
	return topRanks(mask, n)
}

func highestExcluding(mask uint16, exclude ...deck.Rank) deck.Rank {
	top := topRanksExcluding(mask, 1, exclude...)
	if len(top) == 0 {
		return 0
	}
	return top[0]
}
