package evaluator

import (
	"testing"

	"github.com/Nikhilesh-B/mit-poker-2026/internal/deck"
)

func score(t *testing.T, cards string) Score {
	t.Helper()
	return Best(deck.MustParseCards(cards))
}

func TestBestClasses(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		want  HandClass
	}{
		{"high card", "As Kd 9h 7c 2s", HighCard},
		{"pair", "As Ad 9h 7c 2s", Pair},
		{"two pair", "As Ad 9h 9c 2s", TwoPair},
		{"trips", "As Ad Ah 9c 2s", ThreeOfAKind},
		{"straight", "5s 6d 7h 8c 9s", Straight},
		{"wheel", "As 2d 3h 4c 5s", Straight},
		{"flush", "As Ks 9s 7s 2s", Flush},
		{"full house", "As Ad Ah 9c 9s", FullHouse},
		{"quads", "As Ad Ah Ac 9s", FourOfAKind},
		{"straight flush", "5s 6s 7s 8s 9s", StraightFlush},
		{"steel wheel", "As 2s 3s 4s 5s", StraightFlush},
		{"seven cards make flush", "As Ks 9s 7s 2s Ad Ah", Flush},
		{"flush loses to full house", "As Ks 9s 7s 2s Ad Kd Kh", FullHouse},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := score(t, tc.cards).Class(); got != tc.want {
				t.Fatalf("class = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBestOrdering(t *testing.T) {
	// Each hand must beat every hand before it.
	ladder := []string{
		"As Kd 9h 7c 2s", // ace high
		"2s 2d 3h 4c 5d 7h", // pair of twos
		"As Ad 9h 7c 2s", // pair of aces
		"2s 2d 3h 3c 7h", // two pair
		"As Ad 9h 9c 2s", // aces up
		"2s 2d 2h 4c 5d", // trips
		"As 2d 3h 4c 5s", // wheel
		"2s 3d 4h 5c 6s", // six-high straight
		"Ts Jd Qh Kc As", // broadway
		"2s 3s 4s 8s 9s", // nine-high flush
		"As Ks 9s 7s 2s", // ace-high flush
		"2s 2d 2h 3c 3s", // small full house
		"As Ad Ah Kc Ks", // aces full
		"2s 2d 2h 2c 3s", // quad twos
		"As Ad Ah Ac Ks", // quad aces
		"As 2s 3s 4s 5s", // steel wheel
		"Ts Js Qs Ks As", // royal
	}
	for i := 1; i < len(ladder); i++ {
		lo, hi := score(t, ladder[i-1]), score(t, ladder[i])
		if hi.Compare(lo) != 1 {
			t.Errorf("%q (%#x) does not beat %q (%#x)", ladder[i], hi, ladder[i-1], lo)
		}
	}
}

func TestBestKickers(t *testing.T) {
	tests := []struct {
		name       string
		weak, strong string
	}{
		{"high card fifth kicker", "As Kd Qh 9c 6s", "As Kd Qh 9c 7s"},
		{"pair kicker", "As Ad 9h 7c 2s", "As Ad 9h 7c 3s"},
		{"two pair low pair", "As Ad 8h 8c Ks", "As Ad 9h 9c 2s"},
		{"two pair kicker", "As Ad 9h 9c Qs", "As Ad 9h 9c Ks"},
		{"trips kicker", "As Ad Ah Qc 2s", "As Ad Ah Kc 2s"},
		{"quads kicker", "As Ad Ah Ac 9s", "As Ad Ah Ac Ks"},
		{"full house fill", "As Ad Ah Qc Qs", "As Ad Ah Kc Ks"},
		{"flush second card", "As Qs 9s 7s 2s", "As Ks 9s 7s 2s"},
		{"wheel below six high", "As 2d 3h 4c 5s", "2s 3d 4h 5c 6s"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, s := score(t, tc.weak), score(t, tc.strong)
			if s.Compare(w) != 1 {
				t.Fatalf("%q (%#x) does not beat %q (%#x)", tc.strong, s, tc.weak, w)
			}
		})
	}
}

func TestBestTies(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"suits never matter offsuit", "As Kd 9h 7c 2s", "Ah Kc 9d 7s 2h"},
		{"flush rank-for-rank", "As Ks 9s 7s 2s", "Ah Kh 9h 7h 2h"},
		{"sixth card ignored", "As Ad 9h 7c 2s", "As Ad 9h 7c 2s 2d 2h"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := score(t, tc.a), score(t, tc.b)
			if a.Compare(b) != 0 {
				t.Fatalf("%q (%#x) != %q (%#x)", tc.a, a, tc.b, b)
			}
		})
	}
}

func TestBestPicksFromEight(t *testing.T) {
	// Two hole cards plus a six-card board: the board straight is beaten
	// by the hole-card flush.
	cards := deck.MustParseCards("As Ks 2s 5s 6s 7d 8c 9h")
	if got := Best(cards); got.Class() != Flush {
		t.Fatalf("class = %v, want flush", got.Class())
	}
}

func TestBestTooFewCards(t *testing.T) {
	if got := Best(deck.MustParseCards("As Kd 9h 7c")); got != 0 {
		t.Fatalf("four cards scored %#x, want 0", got)
	}
}
