package geonash

import (
	"math"
	"math/rand"

	"github.com/timpalpant/geonash/matrixgame"
	"github.com/timpalpant/geonash/payoff"
)

// exampleRow lists the inputs that vary across the documented example.
// All Opposition Stage II goals are certain, Stage I is driven by MI alone,
// and every Israel goal shares the same probability.
type exampleRow struct {
	profile matrixgame.Profile
	mi      float64 // Opposition Material Improvement
	s       float64 // Regime Survival
	mr      float64 // Regime M + R, split evenly
	v       float64 // Regime V
	g       float64 // Israel G1..G5
}

var exampleRows = []exampleRow{
	{matrixgame.Profile{0, 0, 0}, 0.25, 0.9, 0.50, 0.3, 0.35},
	{matrixgame.Profile{0, 0, 1}, 0.30, 0.9, 0.75, 0.3, 0.30},
	{matrixgame.Profile{0, 1, 0}, 0.20, 0.8, 0.00, 0.4, 0.30},
	{matrixgame.Profile{0, 1, 1}, 0.25, 0.8, 0.25, 0.4, 0.25},
	{matrixgame.Profile{0, 2, 0}, 0.40, 0.2, 0.60, 0.5, 0.35},
	{matrixgame.Profile{0, 2, 1}, 0.35, 0.2, 0.60, 0.75, 0.30},
	{matrixgame.Profile{0, 3, 0}, 0.50, 0.8, 0.25, 0.4, 0.20},
	{matrixgame.Profile{0, 3, 1}, 0.45, 0.7, 0.00, 0.4, 0.10},
	{matrixgame.Profile{1, 0, 0}, 0.50, 0.9, 1.00, 0.3, 0.40},
	{matrixgame.Profile{1, 0, 1}, 0.40, 0.9, 0.50, 0.3, 0.30},
	{matrixgame.Profile{1, 1, 0}, 0.30, 0.8, 0.50, 0.4, 0.30},
	{matrixgame.Profile{1, 1, 1}, 0.35, 0.8, 0.00, 0.4, 0.20},
	{matrixgame.Profile{1, 2, 0}, 0.60, 0.3, 0.40, 0.75, 0.40},
	{matrixgame.Profile{1, 2, 1}, 0.50, 0.3, 0.40, 1.0, 0.30},
	{matrixgame.Profile{1, 3, 0}, 0.70, 0.9, 0.75, 0.3, 0.30},
	{matrixgame.Profile{1, 3, 1}, 0.55, 0.8, 0.25, 0.4, 0.25},
}

// ExampleRecords returns the documented example probability set. On a
// 0-10 scale it has a single pure Nash equilibrium: the Opposition
// de-escalates while the Regime and Israel both escalate, with payoffs
// (2.00, 7.00, 4.00).
func ExampleRecords() *Records {
	var records Records
	for _, row := range exampleRows {
		r := payoff.Record{
			Opposition: payoff.OppositionProbs{BI: 1, IS: 1, MD: 1, LoC: 1, MI: row.mi},
			Regime:     payoff.RegimeProbs{S: row.s, M: row.mr / 2, R: row.mr / 2, V: row.v},
			Israel:     payoff.IsraelProbs{G1: row.g, G2: row.g, G3: row.g, G4: row.g, G5: row.g},
		}

		if err := records.Set(row.profile, r); err != nil {
			panic(err)
		}
	}

	return &records
}

// RandomRecords returns a complete set of records with every probability
// drawn uniformly from [0, 1] and rounded to two decimals.
func RandomRecords(rng *rand.Rand) *Records {
	draw := func() float64 {
		return math.Round(100*rng.Float64()) / 100
	}

	var records Records
	for _, p := range GameShape.Profiles() {
		r := payoff.Record{
			Opposition: payoff.OppositionProbs{
				BI: draw(), IS: draw(), MD: draw(), LoC: draw(),
				PR: draw(), CL: draw(), MI: draw(),
			},
			Regime: payoff.RegimeProbs{
				S: draw(), M: draw(), R: draw(), C: draw(), V: draw(),
			},
			Israel: payoff.IsraelProbs{
				G1: draw(), G2: draw(), G3: draw(), G4: draw(), G5: draw(),
			},
		}

		records[p[0]][p[1]][p[2]] = &r
	}

	return &records
}
