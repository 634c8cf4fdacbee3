// Write a CSV of goal probabilities for every strategy profile, either
// random or the documented example, for use with solve_game.
package main

import (
	"flag"
	"math/rand"

	"github.com/golang/glog"

	"github.com/timpalpant/geonash"
	"github.com/timpalpant/geonash/internal/csvio"
	"github.com/timpalpant/geonash/payoff"
)

func main() {
	output := flag.String("output", "game_probabilities.csv", "File to write (.gz to compress)")
	example := flag.Bool("example", false, "Write the documented example instead of random probabilities")
	configFile := flag.String("config", "", "Optional YAML file overriding payoff weights")
	seed := flag.Int64("seed", 1234, "Random seed")
	flag.Parse()

	cfg, err := payoff.LoadConfig(*configFile)
	if err != nil {
		glog.Fatal(err)
	}

	var records *geonash.Records
	if *example {
		records = geonash.ExampleRecords()
	} else {
		records = geonash.RandomRecords(rand.New(rand.NewSource(*seed)))
	}

	if err := csvio.WriteFile(*output, cfg, records); err != nil {
		glog.Fatal(err)
	}

	glog.Infof("Wrote %d strategy profiles to %v", geonash.GameShape.Size(), *output)
}
