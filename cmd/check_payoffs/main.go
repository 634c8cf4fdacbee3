// Compare the analytic payoffs of every strategy profile against a
// Monte Carlo simulation of the underlying boolean goal outcomes.
package main

import (
	"flag"
	"fmt"

	"github.com/golang/glog"

	"github.com/timpalpant/geonash"
	"github.com/timpalpant/geonash/internal/csvio"
	"github.com/timpalpant/geonash/payoff"
)

func main() {
	input := flag.String("input", "", "CSV file with probabilities for each strategy profile (.gz ok)")
	example := flag.Bool("example", false, "Use the documented example probabilities instead of -input")
	configFile := flag.String("config", "", "Optional YAML file overriding payoff weights")
	numDraws := flag.Int("n", 200000, "Number of Monte Carlo draws per strategy profile")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	cfg, err := payoff.LoadConfig(*configFile)
	if err != nil {
		glog.Fatal(err)
	}

	var records *geonash.Records
	if *example {
		records = geonash.ExampleRecords()
	} else if *input != "" {
		records, err = csvio.ReadFile(*input)
		if err != nil {
			glog.Fatal(err)
		}
	} else {
		glog.Fatal("Either -input or -example is required")
	}

	sim := payoff.NewSimulator(cfg, *seed)
	fmt.Printf("%-12s %-26s %-26s %-26s\n", "Profile", "Opposition (exact / MC)",
		"Regime (gated / mix / MC)", "Israel (exact / MC)")
	for _, p := range geonash.GameShape.Profiles() {
		r := records.Get(p)
		if r == nil {
			glog.Fatal(&geonash.MissingDataError{Profile: p})
		}

		if err := r.Validate(); err != nil {
			glog.Fatalf("strategy profile %v: %v", p, err)
		}

		estimate, err := sim.Expected(*r, *numDraws)
		if err != nil {
			glog.Fatal(err)
		}

		fmt.Printf("%-12s %-26s %-26s %-26s\n", p.String(),
			fmt.Sprintf("%6.2f / %6.2f", payoff.Opposition(cfg, r.Opposition), estimate[0]),
			fmt.Sprintf("%6.2f / %6.2f / %6.2f", payoff.Regime(cfg, r.Regime),
				payoff.InterpolatedRegime(cfg, r.Regime), estimate[1]),
			fmt.Sprintf("%6.2f / %6.2f", payoff.Israel(cfg, r.Israel), estimate[2]))
	}
}
