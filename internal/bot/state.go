package bot

import "github.com/Nikhilesh-B/mit-poker-2026/internal/deck"

// RoundState is the bot's view of the hand in progress, from the hero's
// perspective. The game engine implements it; the bot only reads.
type RoundState interface {
	// LegalActions lists the action types the engine will accept now.
	LegalActions() []ActionType
	// Street is the number of board cards dealt so far (0,2,3,4,5,6).
	Street() int
	// Hand returns the hero's hole cards (3 before discarding, 2 after).
	Hand() []deck.Card
	// Board returns the community cards dealt so far.
	Board() []deck.Card
	// Pips returns the chips each player has put in during this betting
	// round, hero first.
	Pips() (hero, opponent int)
	// Stacks returns the chips each player has behind, hero first.
	Stacks() (hero, opponent int)
	// RaiseBounds returns the minimum and maximum legal raise targets.
	RaiseBounds() (min, max int)
}

func legal(state RoundState, t ActionType) bool {
	for _, a := range state.LegalActions() {
		if a == t {
			return true
		}
	}
	return false
}
