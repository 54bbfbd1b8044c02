package deck

import (
	"math/rand/v2"
)

// All returns the 52-card universe in deterministic (suit, rank) order.
func All() []Card {
	cards := make([]Card, 0, 52)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Deck is the 52-card universe minus any known cards. It is scoped to a
// single simulation: Deal advances through the shuffled order without
// replacement and Restore returns every dealt card before the next trial.
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// New creates a full 52-card deck using the provided random source.
func New(rng *rand.Rand) *Deck {
	return &Deck{cards: All(), rng: rng}
}

// NewWithout creates a deck excluding the given known cards (hole cards and
// board cards already visible).
func NewWithout(rng *rand.Rand, known ...Card) *Deck {
	exclude := make(map[Card]struct{}, len(known))
	for _, c := range known {
		exclude[c] = struct{}{}
	}
	cards := make([]Card, 0, 52-len(exclude))
	for _, c := range All() {
		if _, ok := exclude[c]; !ok {
			cards = append(cards, c)
		}
	}
	return &Deck{cards: cards, rng: rng}
}

// Shuffle randomizes the deck with Fisher-Yates and restores any dealt cards.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the next n cards. It returns nil when fewer than
// n cards remain.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// Restore returns all dealt cards to the deck. The deck is trial-scoped:
// callers restore between Monte Carlo trials rather than rebuilding it.
func (d *Deck) Restore() {
	d.next = 0
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
