// Compute payoffs and pure Nash equilibria of the Opposition / Regime /
// Israel game from a CSV of goal probabilities.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/timpalpant/geonash"
	"github.com/timpalpant/geonash/internal/csvio"
	"github.com/timpalpant/geonash/internal/report"
	"github.com/timpalpant/geonash/payoff"
)

func main() {
	input := flag.String("input", "", "CSV file with probabilities for each strategy profile (.gz ok)")
	example := flag.Bool("example", false, "Use the documented example probabilities instead of -input")
	configFile := flag.String("config", "", "Optional YAML file overriding payoff weights")
	scale := flag.Float64("scale", geonash.DefaultScale, "Rescale payoffs to 0-scale (100 = unscaled)")
	verbose := flag.Bool("verbose", true, "Print payoff tables, summary and best responses")
	flag.Parse()

	cfg, err := payoff.LoadConfig(*configFile)
	if err != nil {
		glog.Fatal(err)
	}

	records := mustLoadRecords(*input, *example)
	analysis, err := geonash.Analyze(cfg, records, geonash.Options{Scale: *scale})
	if err != nil {
		glog.Fatal(err)
	}

	report.New(os.Stdout).Analysis(analysis, *verbose)
}

func mustLoadRecords(filename string, example bool) *geonash.Records {
	if example {
		glog.Info("Using example probabilities")
		return geonash.ExampleRecords()
	}

	if filename == "" {
		glog.Fatal("Either -input or -example is required")
	}

	records, err := csvio.ReadFile(filename)
	if err != nil {
		glog.Fatal(err)
	}

	return records
}
