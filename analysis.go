package geonash

import (
	"github.com/golang/glog"

	"github.com/timpalpant/geonash/matrixgame"
	"github.com/timpalpant/geonash/payoff"
)

// DefaultScale is the payoff range used for reporting.
const DefaultScale = 10.0

type Options struct {
	// Payoffs are rescaled to [0, Scale]. 100 leaves them unscaled.
	Scale float64
}

// Analysis is the result of solving one game.
type Analysis struct {
	Config  payoff.Config
	Scale   float64
	Tensor  *Tensor
	Summary [matrixgame.NumPlayers]Stats
	// Equilibria are ordered by Opposition, then Regime, then Israel strategy.
	Equilibria    []matrixgame.Equilibrium
	BestResponses [matrixgame.NumPlayers][]matrixgame.BestResponse
}

// Analyze builds the payoff tensor from records and finds its pure Nash
// equilibria and best-response structure.
func Analyze(cfg payoff.Config, records *Records, opts Options) (*Analysis, error) {
	if opts.Scale <= 0 {
		opts.Scale = DefaultScale
	}

	glog.Infof("Computing payoffs for %d strategy profiles", GameShape.Size())
	tensor, err := BuildTensor(cfg, records)
	if err != nil {
		return nil, err
	}

	if opts.Scale != 100 {
		glog.V(1).Infof("Scaling payoffs to 0-%v", opts.Scale)
		tensor = tensor.Scale(opts.Scale)
	}

	result := &Analysis{
		Config:     cfg,
		Scale:      opts.Scale,
		Tensor:     tensor,
		Summary:    tensor.Summary(),
		Equilibria: matrixgame.PureNashEquilibria(tensor),
	}

	for _, player := range []matrixgame.Player{Opposition, Regime, Israel} {
		result.BestResponses[player] = matrixgame.BestResponseTable(tensor, player)
	}

	glog.Infof("Found %d pure strategy Nash equilibria", len(result.Equilibria))
	return result, nil
}
