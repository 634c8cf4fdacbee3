// Package report renders game analyses as plain-text tables.
package report

import (
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/timpalpant/geonash"
	"github.com/timpalpant/geonash/matrixgame"
)

const width = 90

type Printer struct {
	w io.Writer
	p *message.Printer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w, p: message.NewPrinter(language.English)}
}

func (r *Printer) printf(format string, args ...interface{}) {
	r.p.Fprintf(r.w, format, args...)
}

func (r *Printer) rule(c string) {
	r.printf("%s\n", strings.Repeat(c, width))
}

func (r *Printer) title(s string) {
	r.printf("\n")
	r.rule("=")
	r.printf("%s\n", s)
	r.rule("=")
}

// Analysis prints the equilibria of a, preceded by the payoff tables and
// followed by summary statistics and best responses if verbose is set.
func (r *Printer) Analysis(a *geonash.Analysis, verbose bool) {
	if verbose {
		r.PayoffTables(a)
	}

	r.Equilibria(a)

	if verbose {
		r.Summary(a)
		r.BestResponses(a)
	}
}

// PayoffTables prints one table per Israel strategy, with Opposition
// strategies as rows and Regime strategies as columns.
func (r *Printer) PayoffTables(a *geonash.Analysis) {
	r.title(r.p.Sprintf("GAME PAYOFF TABLES (0-%.0f scale)", a.Scale))
	for p3 := 0; p3 < geonash.NumIsraelStrategies; p3++ {
		r.printf("\n%s: %s\n", strings.ToUpper(geonash.PlayerName(geonash.Israel)),
			strings.ToUpper(geonash.StrategyLabel(geonash.Israel, p3)))
		r.printf("%-15s", geonash.PlayerName(geonash.Opposition))
		for p2 := 0; p2 < geonash.NumRegimeStrategies; p2++ {
			r.printf("%-20s", geonash.ShortStrategyLabel(geonash.Regime, p2))
		}
		r.printf("\n")
		r.rule("-")

		for p1 := 0; p1 < geonash.NumOppositionStrategies; p1++ {
			r.printf("%-15s", geonash.StrategyLabel(geonash.Opposition, p1))
			for p2 := 0; p2 < geonash.NumRegimeStrategies; p2++ {
				t := a.Tensor.Payoffs(matrixgame.Profile{p1, p2, p3})
				r.printf("(%5.2f,%5.2f,%5.2f)  ", t[0], t[1], t[2])
			}
			r.printf("\n")
		}
	}
}

// Equilibria prints every pure Nash equilibrium with its payoffs.
func (r *Printer) Equilibria(a *geonash.Analysis) {
	r.title("PURE STRATEGY NASH EQUILIBRIA")
	if len(a.Equilibria) == 0 {
		r.printf("\nNo pure strategy Nash equilibria found.\n")
		r.printf("The game may only have mixed strategy equilibria.\n")
		return
	}

	r.printf("\nFound %d pure strategy Nash equilibria:\n\n", len(a.Equilibria))
	for i, eq := range a.Equilibria {
		r.printf("%s\n", strings.Repeat("-", 70))
		r.printf("EQUILIBRIUM %d\n", i+1)
		r.printf("%s\n", strings.Repeat("-", 70))
		for j, player := range players {
			r.printf("  Player %d (%s): %s (Strategy %d)\n", j+1,
				geonash.PlayerName(player), geonash.StrategyLabel(player, eq.Profile[player]),
				eq.Profile[player])
		}
		r.printf("\n  Payoffs:\n")
		for _, player := range players {
			r.printf("    %-11s %.2f\n", geonash.PlayerName(player)+":", eq.Payoffs[player])
		}
		r.printf("\n")
	}
}

var players = []matrixgame.Player{geonash.Opposition, geonash.Regime, geonash.Israel}

// Summary prints min, max, mean and median payoff of each player.
func (r *Printer) Summary(a *geonash.Analysis) {
	r.title("PAYOFF SUMMARY STATISTICS")
	for _, player := range players {
		s := a.Summary[player]
		r.printf("\n%s:\n", geonash.PlayerName(player))
		r.printf("  Min:    %.2f\n", s.Min)
		r.printf("  Max:    %.2f\n", s.Max)
		r.printf("  Mean:   %.2f\n", s.Mean)
		r.printf("  Median: %.2f\n", s.Median)
	}
}

// BestResponses prints each player's best responses to every
// combination of the other players' strategies.
func (r *Printer) BestResponses(a *geonash.Analysis) {
	r.title("BEST RESPONSE ANALYSIS")
	for _, player := range players {
		r.printf("\n%s best responses:\n", strings.ToUpper(geonash.PlayerName(player)))
		for _, br := range a.BestResponses[player] {
			var against []string
			for _, other := range players {
				if other == player {
					continue
				}
				against = append(against, geonash.PlayerName(other)+"="+
					geonash.ShortStrategyLabel(other, br.Against[other]))
			}

			var labels []string
			for _, s := range br.Strategies {
				labels = append(labels, geonash.ShortStrategyLabel(player, s))
			}

			r.printf("  vs %s: [%s]\n", strings.Join(against, ", "), strings.Join(labels, ", "))
		}
	}
}
