// Package equity estimates win probability against a random opponent by
// Monte Carlo simulation.
package equity

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/Nikhilesh-B/mit-poker-2026/internal/deck"
	"github.com/Nikhilesh-B/mit-poker-2026/internal/evaluator"
)

// FinalBoardCards is the community board size at showdown in this variant.
const FinalBoardCards = 6

// Options configures an estimate. The zero value means "showdown board of
// FinalBoardCards cards".
type Options struct {
	// FinalBoardSize is the board size trials complete to. Zero means
	// FinalBoardCards.
	FinalBoardSize int
}

// Estimate runs trials Monte Carlo showdowns of hand against one random
// opponent, completing board to the final board size, and returns
// (wins + 0.5*ties) / trials. Zero trials returns 0. The caller owns the
// random source, so two calls with identically seeded sources produce
// identical estimates.
func Estimate(rng *rand.Rand, hand, board []deck.Card, trials int, opts Options) (float64, error) {
	finalSize := opts.FinalBoardSize
	if finalSize == 0 {
		finalSize = FinalBoardCards
	}
	need := finalSize - len(board)
	if need < 0 {
		return 0, fmt.Errorf("board has %d cards, more than final %d", len(board), finalSize)
	}
	if trials <= 0 {
		return 0, nil
	}

	known := make([]deck.Card, 0, len(hand)+len(board))
	known = append(known, hand...)
	known = append(known, board...)
	d := deck.NewWithout(rng, known...)

	finalBoard := make([]deck.Card, len(board), finalSize)
	copy(finalBoard, board)

	wins, ties := 0, 0
	for i := 0; i < trials; i++ {
		d.Shuffle()
		opp := d.Deal(2)
		draw := d.Deal(need)
		finalBoard = append(finalBoard[:len(board)], draw...)

		// finalBoard is at capacity, so both appends copy.
		mine := evaluator.Best(append(finalBoard, hand...))
		theirs := evaluator.Best(append(finalBoard, opp...))
		switch mine.Compare(theirs) {
		case 1:
			wins++
		case 0:
			ties++
		}
		d.Restore()
	}
	return (float64(wins) + 0.5*float64(ties)) / float64(trials), nil
}
