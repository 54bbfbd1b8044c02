package bot

import (
	"github.com/Nikhilesh-B/mit-poker-2026/internal/canon"
	"github.com/Nikhilesh-B/mit-poker-2026/internal/deck"
)

// chooseDiscard picks which hole card to toss: the precomputed table when
// it covers this state, otherwise a keep-pairs/keep-suited/keep-connected
// heuristic.
func (b *Bot) chooseDiscard(hand, board []deck.Card) int {
	if len(b.discard) > 0 && len(hand) > 0 {
		if idx, ok := b.discard[canon.DiscardKey(hand, board)]; ok && idx >= 0 && idx < len(hand) {
			return idx
		}
	}
	return heuristicDiscard(hand, board)
}

// heuristicDiscard keeps made pairs first, then the largest suited
// combination, then the two closest ranks, and finally drops the lowest
// card.
func heuristicDiscard(hand, board []deck.Card) int {
	if len(hand) == 0 {
		return 0
	}

	// Keep a pair: discard the odd card out.
	if pairRank, ok := firstPairedRank(hand); ok {
		for i, c := range hand {
			if c.Rank != pairRank {
				return i
			}
		}
		return lowestIndex(hand)
	}

	// Keep suited cards, counting board cards toward the suit.
	var suitCounts [4]int
	for _, c := range hand {
		suitCounts[c.Suit]++
	}
	for _, c := range board {
		suitCounts[c.Suit]++
	}
	bestSuit, bestCount := deck.Spades, 0
	for _, c := range hand {
		if suitCounts[c.Suit] > bestCount {
			bestSuit, bestCount = c.Suit, suitCounts[c.Suit]
		}
	}
	inSuit := 0
	for _, c := range hand {
		if c.Suit == bestSuit {
			inSuit++
		}
	}
	if inSuit >= 2 && inSuit < len(hand) {
		for i, c := range hand {
			if c.Suit != bestSuit {
				return i
			}
		}
	}

	// Keep the two closest ranks.
	if len(hand) >= 3 {
		bi, bj, bestGap := -1, -1, 99
		for i := 0; i < len(hand); i++ {
			for j := i + 1; j < len(hand); j++ {
				gap := int(hand[i].Rank - hand[j].Rank)
				if gap < 0 {
					gap = -gap
				}
				if gap < bestGap {
					bi, bj, bestGap = i, j, gap
				}
			}
		}
		for i := range hand {
			if i != bi && i != bj {
				return i
			}
		}
	}

	return lowestIndex(hand)
}

// firstPairedRank returns the first rank in hand order held at least twice.
func firstPairedRank(hand []deck.Card) (deck.Rank, bool) {
	var counts [15]int
	for _, c := range hand {
		counts[c.Rank]++
	}
	for _, c := range hand {
		if counts[c.Rank] >= 2 {
			return c.Rank, true
		}
	}
	return 0, false
}

func lowestIndex(hand []deck.Card) int {
	low := 0
	for i, c := range hand {
		if c.Rank < hand[low].Rank {
			low = i
		}
	}
	return low
}
