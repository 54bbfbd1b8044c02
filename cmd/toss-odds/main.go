// toss-odds inspects a Toss or Hold'em hand: classification, heuristic
// score, table keys and Monte Carlo equity, plus discard comparison for
// 3-card hands.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	rand "math/rand/v2"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/Nikhilesh-B/mit-poker-2026/internal/canon"
	"github.com/Nikhilesh-B/mit-poker-2026/internal/classify"
	"github.com/Nikhilesh-B/mit-poker-2026/internal/deck"
	"github.com/Nikhilesh-B/mit-poker-2026/internal/equity"
	"github.com/Nikhilesh-B/mit-poker-2026/internal/randutil"
)

type CLI struct {
	Hand   string `arg:"" help:"Hole cards, 2 or 3 (e.g. 'AsKd2c')" required:""`
	Board  string `short:"b" help:"Community board cards (e.g. 'Td7s8h')"`
	Trials int    `short:"t" help:"Monte Carlo trials" default:"10000"`
	Seed   *int64 `help:"Random seed for reproducible results"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	madeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	drawStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("toss-odds"),
		kong.Description("Hand inspector for Toss or Hold'em"),
		kong.UsageOnError(),
	)

	hand, err := deck.ParseCards(cli.Hand)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing hand: %v\n", err)
		ctx.Exit(1)
	}
	if len(hand) != 2 && len(hand) != 3 {
		fmt.Fprintf(os.Stderr, "Hand must have 2 or 3 cards, got %d\n", len(hand))
		ctx.Exit(1)
	}

	var board []deck.Card
	if cli.Board != "" {
		board, err = deck.ParseCards(cli.Board)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing board: %v\n", err)
			ctx.Exit(1)
		}
		if len(board) > equity.FinalBoardCards {
			fmt.Fprintf(os.Stderr, "Board cannot have more than %d cards\n", equity.FinalBoardCards)
			ctx.Exit(1)
		}
	}
	if err := checkDuplicates(hand, board); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	seed := time.Now().UnixNano()
	if cli.Seed != nil {
		seed = *cli.Seed
	}
	rng := randutil.New(seed)

	fmt.Println(headerStyle.Render("Hand"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cards:\t%s\n", handStyle.Render(cards(hand)))
	if len(board) > 0 {
		fmt.Fprintf(w, "  Board:\t%s\n", handStyle.Render(cards(board)))
	}
	fmt.Fprintf(w, "  Score:\t%s\n", valueStyle.Render(fmt.Sprintf("%.3f", classify.Score(hand, board))))
	fmt.Fprintf(w, "  Signature:\t%s\n", canon.Signature(board, hand))
	fmt.Fprintf(w, "  Equity key:\t%s\n", canon.EquityKey(hand, board))
	if len(hand) == 3 {
		fmt.Fprintf(w, "  Discard key:\t%s\n", canon.DiscardKey(hand, board))
	}
	w.Flush()

	printClassification(hand, board)

	eq, err := equity.Estimate(rng, hand, board, cli.Trials, equity.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error estimating equity: %v\n", err)
		ctx.Exit(1)
	}
	fmt.Println()
	fmt.Println(headerStyle.Render("Equity vs random opponent"))
	fmt.Printf("  %s  (%d trials)\n", valueStyle.Render(fmt.Sprintf("%.2f%%", eq*100)), cli.Trials)

	if len(hand) == 3 {
		printDiscards(rng, hand, board, cli.Trials)
	}
}

func printClassification(hand, board []deck.Card) {
	res := classify.Evaluate(hand, board)
	fmt.Println()
	fmt.Println(headerStyle.Render("Classification"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for c := classify.Pair; c <= classify.StraightFlush; c++ {
		switch res.Flag(c) {
		case classify.Made:
			fmt.Fprintf(w, "  %s:\t%s\n", c, madeStyle.Render("made"))
		case classify.Drawing:
			fmt.Fprintf(w, "  %s:\t%s\n", c, drawStyle.Render("drawing"))
		}
	}
	w.Flush()
}

// printDiscards compares the equity of keeping each 2-card combination.
func printDiscards(rng *rand.Rand, hand, board []deck.Card, trials int) {
	fmt.Println()
	fmt.Println(headerStyle.Render("Discard comparison"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	bestIdx, bestEq := 0, -1.0
	eqs := make([]float64, len(hand))
	for di := range hand {
		kept := make([]deck.Card, 0, 2)
		for j, c := range hand {
			if j != di {
				kept = append(kept, c)
			}
		}
		eq, err := equity.Estimate(rng, kept, board, trials, equity.Options{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error estimating equity: %v\n", err)
			os.Exit(1)
		}
		eqs[di] = eq
		if eq > bestEq {
			bestEq, bestIdx = eq, di
		}
	}
	for di, eq := range eqs {
		marker := ""
		if di == bestIdx {
			marker = madeStyle.Render("  <- best")
		}
		kept := make([]deck.Card, 0, 2)
		for j, c := range hand {
			if j != di {
				kept = append(kept, c)
			}
		}
		fmt.Fprintf(w, "  Toss %s keep %s:\t%s%s\n",
			handStyle.Render(hand[di].String()),
			cards(kept),
			valueStyle.Render(fmt.Sprintf("%.2f%%", eq*100)),
			marker)
	}
	w.Flush()
}

func checkDuplicates(hand, board []deck.Card) error {
	seen := make(map[deck.Card]bool)
	for _, c := range append(append([]deck.Card{}, hand...), board...) {
		if seen[c] {
			return fmt.Errorf("duplicate card %v", c)
		}
		seen[c] = true
	}
	return nil
}

func cards(cs []deck.Card) string {
	out := ""
	for i, c := range cs {
		if i > 0 {
			out += " "
		}
		out += c.String()
	}
	return out
}
