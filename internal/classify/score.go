package classify

import (
	"math"

	"github.com/Nikhilesh-B/mit-poker-2026/internal/deck"
)

// Score computes the heuristic strength score for a hand against a board.
// The score blends raw rank mass, rank-multiplicity weight, category
// premiums and straight/flush bonuses, normalized by card count so scores
// stay comparable across streets. Returns 0 for no cards.
func Score(hand, board []deck.Card) float64 {
	cards := make([]deck.Card, 0, len(hand)+len(board))
	cards = append(cards, hand...)
	cards = append(cards, board...)
	if len(cards) == 0 {
		return 0
	}

	res := Evaluate(hand, board)

	var rankCounts [15]int
	maxRank := deck.Rank(0)
	score := 0.0
	for _, c := range cards {
		rankCounts[c.Rank]++
		if c.Rank > maxRank {
			maxRank = c.Rank
		}
		score += 0.25 * float64(c.Rank)
	}
	for r, n := range rankCounts {
		if n > 0 {
			score += math.Sqrt(float64(r)) * float64(n*n)
		}
	}

	// Category premiums: ordinal times made/draw flag.
	for c := Category(0); c < numCategories; c++ {
		score += float64(c) * float64(res[c])
	}

	bonus := math.Sqrt(float64(maxRank))
	switch res[Straight] {
	case Made:
		score += 10 * bonus
	case Drawing:
		score += 7 * bonus
	}
	switch res[Flush] {
	case Made:
		score += 12 * bonus
	case Drawing:
		score += 8 * bonus
	}
	switch res[StraightFlush] {
	case Made:
		score += 20 * bonus
	case Drawing:
		score += 10 * bonus
	}

	return score / float64(len(cards))
}
