package geonash

import (
	"sort"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/geonash/matrixgame"
	"github.com/timpalpant/geonash/payoff"
)

// Tensor holds the payoff triple of every strategy profile of the game.
// It is read-only once built.
type Tensor [NumOppositionStrategies][NumRegimeStrategies][NumIsraelStrategies]matrixgame.Triple

// Verify that we implement the interface.
var _ matrixgame.Tensor = &Tensor{}

// BuildTensor evaluates the payoff model for each of the 16 strategy
// profiles. Every profile must have a record (else *MissingDataError) and
// every probability must be in [0, 1] (else *payoff.InvalidRangeError,
// wrapped with the offending profile). No partial tensor is returned.
func BuildTensor(cfg payoff.Config, records *Records) (*Tensor, error) {
	var t Tensor
	for _, p := range GameShape.Profiles() {
		r := records.Get(p)
		if r == nil {
			return nil, &MissingDataError{Profile: p}
		}

		if err := r.Validate(); err != nil {
			return nil, errors.Wrapf(err, "strategy profile %v", p)
		}

		t[p[0]][p[1]][p[2]] = payoff.Payoffs(cfg, *r)
		glog.V(2).Infof("Payoffs for profile %v: %v", p, t[p[0]][p[1]][p[2]])
	}

	return &t, nil
}

// Shape implements matrixgame.Tensor.
func (t *Tensor) Shape() matrixgame.Shape {
	return GameShape
}

// Payoffs implements matrixgame.Tensor.
func (t *Tensor) Payoffs(p matrixgame.Profile) matrixgame.Triple {
	return t[p[0]][p[1]][p[2]]
}

// Scale returns a copy of the tensor with payoffs rescaled from the
// 0-100 range of the payoff model to 0-scale.
func (t *Tensor) Scale(scale float64) *Tensor {
	result := *t
	k := scale / 100.0
	for _, p := range GameShape.Profiles() {
		for i := range result[p[0]][p[1]][p[2]] {
			result[p[0]][p[1]][p[2]][i] *= k
		}
	}

	return &result
}

// Stats summarizes one player's payoffs over all profiles.
type Stats struct {
	Min, Max, Mean, Median float64
}

// Summary returns the payoff statistics of each player.
func (t *Tensor) Summary() [matrixgame.NumPlayers]Stats {
	var result [matrixgame.NumPlayers]Stats
	profiles := GameShape.Profiles()
	for player := range result {
		values := make([]float64, len(profiles))
		for i, p := range profiles {
			values[i] = t.Payoffs(p)[player]
		}

		result[player] = summarize(values)
	}

	return result
}

func summarize(values []float64) Stats {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	total := 0.0
	for _, v := range sorted {
		total += v
	}

	n := len(sorted)
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return Stats{
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   total / float64(n),
		Median: median,
	}
}
