// Package classify detects made hands and draws from partial information
// and produces the heuristic strength score used for coarse betting
// thresholds.
package classify

import (
	"github.com/Nikhilesh-B/mit-poker-2026/internal/deck"
)

// MaxKnownCards is the card count at which all information is revealed
// (2 hole + 6 board in this variant). Draws are only meaningful below it.
const MaxKnownCards = 8

// Category enumerates the poker hand categories in strength order. The
// ordinal doubles as the category premium in the heuristic score.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	numCategories
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "HighCard"
	case Pair:
		return "Pair"
	case TwoPair:
		return "TwoPair"
	case ThreeOfAKind:
		return "ThreeOfAKind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "FullHouse"
	case FourOfAKind:
		return "FourOfAKind"
	case StraightFlush:
		return "StraightFlush"
	default:
		return "Unknown"
	}
}

// Strength is the three-valued made/draw flag for one category.
type Strength int

const (
	Absent  Strength = 0
	Drawing Strength = 1
	Made    Strength = 2
)

// Result holds a strength flag for every category, indexed by Category.
// HighCard is carried for indexing symmetry and always stays Absent.
type Result [numCategories]Strength

// Flag returns the strength flag for a category.
func (r Result) Flag(c Category) Strength {
	return r[c]
}

// Evaluate classifies the combined hand+board cards (2-8 total). Made-hand
// flags are always computed; draw flags only while total cards remain below
// MaxKnownCards, since a draw is meaningless once everything is revealed.
// The function is pure and total on well-formed inputs.
func Evaluate(hand, board []deck.Card) Result {
	cards := make([]deck.Card, 0, len(hand)+len(board))
	cards = append(cards, hand...)
	cards = append(cards, board...)

	var rankCounts [15]int
	var suitCounts [4]int
	rankSet := make(map[deck.Rank]bool, len(cards))
	for _, c := range cards {
		rankCounts[c.Rank]++
		suitCounts[c.Suit]++
		rankSet[c.Rank] = true
	}

	maxCount, secondCount := topTwoCounts(rankCounts)

	var res Result

	// Made hands.
	if maxCount >= 2 {
		res[Pair] = Made
	}
	if maxCount >= 2 && secondCount >= 2 {
		res[TwoPair] = Made
	}
	if maxCount >= 3 {
		res[ThreeOfAKind] = Made
	}
	if maxCount >= 4 {
		res[FourOfAKind] = Made
	}
	if maxCount >= 3 && secondCount >= 2 {
		res[FullHouse] = Made
	}
	if hasStraight(rankSet) {
		res[Straight] = Made
	}
	var flushSuits []deck.Suit
	for suit, n := range suitCounts {
		if n >= 5 {
			flushSuits = append(flushSuits, deck.Suit(suit))
		}
	}
	if len(flushSuits) > 0 {
		res[Flush] = Made
	}
	if res[Straight] == Made && res[Flush] == Made {
		for _, suit := range flushSuits {
			if hasStraight(suitRanks(cards, suit)) {
				res[StraightFlush] = Made
				break
			}
		}
	}

	if len(cards) >= MaxKnownCards {
		return res
	}

	// Draws: one card short of the made-hand condition.
	if res[Pair] == Absent {
		res[Pair] = Drawing
	}
	if res[TwoPair] == Absent && maxCount == 2 && len(cards) >= 3 {
		res[TwoPair] = Drawing
	}
	if res[ThreeOfAKind] == Absent && maxCount == 2 {
		res[ThreeOfAKind] = Drawing
	}
	if res[FourOfAKind] == Absent && maxCount == 3 {
		res[FourOfAKind] = Drawing
	}
	if res[Flush] == Absent {
		for _, n := range suitCounts {
			if n >= 4 {
				res[Flush] = Drawing
				break
			}
		}
	}
	if res[Straight] == Absent && hasStraightDraw(rankSet) {
		res[Straight] = Drawing
	}
	if res[FullHouse] == Absent {
		trips, pairs, distinct := 0, 0, 0
		for _, n := range rankCounts {
			if n > 0 {
				distinct++
			}
			if n >= 3 {
				trips++
			}
			if n >= 2 {
				pairs++
			}
		}
		if (trips > 0 && distinct >= 2) || pairs >= 2 {
			res[FullHouse] = Drawing
		}
	}
	if res[StraightFlush] == Absent {
		for suit, n := range suitCounts {
			if n >= 4 && hasStraightDraw(suitRanks(cards, deck.Suit(suit))) {
				res[StraightFlush] = Drawing
				break
			}
		}
	}
	return res
}

// topTwoCounts returns the two largest rank multiplicities.
func topTwoCounts(rankCounts [15]int) (first, second int) {
	for _, n := range rankCounts {
		if n > first {
			first, second = n, first
		} else if n > second {
			second = n
		}
	}
	return first, second
}

func suitRanks(cards []deck.Card, suit deck.Suit) map[deck.Rank]bool {
	ranks := make(map[deck.Rank]bool)
	for _, c := range cards {
		if c.Suit == suit {
			ranks[c.Rank] = true
		}
	}
	return ranks
}

// withWheel widens a rank set with the virtual rank 1 when an Ace is
// present, so A-2-3-4-5 windows count.
func withWheel(ranks map[deck.Rank]bool) map[deck.Rank]bool {
	if !ranks[deck.Ace] {
		return ranks
	}
	out := make(map[deck.Rank]bool, len(ranks)+1)
	for r := range ranks {
		out[r] = true
	}
	out[1] = true
	return out
}

func hasStraight(ranks map[deck.Rank]bool) bool {
	ranks = withWheel(ranks)
	for start := deck.Rank(1); start <= deck.Ten; start++ {
		hits := 0
		for i := deck.Rank(0); i < 5; i++ {
			if ranks[start+i] {
				hits++
			}
		}
		if hits == 5 {
			return true
		}
	}
	return false
}

// hasStraightDraw reports whether any 5-consecutive-rank window (wheel
// included) is exactly one card short.
func hasStraightDraw(ranks map[deck.Rank]bool) bool {
	ranks = withWheel(ranks)
	for start := deck.Rank(1); start <= deck.Ten; start++ {
		hits := 0
		for i := deck.Rank(0); i < 5; i++ {
			if ranks[start+i] {
				hits++
			}
		}
		if hits == 4 {
			return true
		}
	}
	return false
}
