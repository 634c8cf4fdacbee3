package payoff

import (
	"math/rand"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Simulator estimates expected payoffs by sampling boolean outcomes for
// every goal, assuming goals are independent. It is used as a sanity check
// of the analytic formulas.
type Simulator struct {
	cfg Config
	rng *rand.Rand
}

func NewSimulator(cfg Config, seed int64) *Simulator {
	return &Simulator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (s *Simulator) draw(p float64) float64 {
	if s.rng.Float64() < p {
		return 1.0
	}

	return 0.0
}

// OppositionOnce returns one realized Opposition payoff.
func (s *Simulator) OppositionOnce(p OppositionProbs) float64 {
	// Draw order matches the field order of OppositionProbs.
	realized := OppositionProbs{
		BI:  s.draw(p.BI),
		IS:  s.draw(p.IS),
		MD:  s.draw(p.MD),
		LoC: s.draw(p.LoC),
		PR:  s.draw(p.PR),
		CL:  s.draw(p.CL),
		MI:  s.draw(p.MI),
	}

	return Opposition(s.cfg, realized)
}

// RegimeOnce returns one realized Regime payoff. Survival is drawn as a
// Bernoulli(S) event, so the average over many draws converges to the
// S-weighted mix of both branches rather than to Regime.
func (s *Simulator) RegimeOnce(p RegimeProbs) float64 {
	realized := RegimeProbs{
		S: s.draw(p.S),
		M: s.draw(p.M),
		R: s.draw(p.R),
		C: s.draw(p.C),
		V: s.draw(p.V),
	}

	if realized.S == 1.0 {
		return RegimeBranchPayoff(s.cfg, realized, RegimeSurvives)
	}

	return RegimeBranchPayoff(s.cfg, realized, RegimeFalls)
}

// IsraelOnce returns one realized Israel payoff.
func (s *Simulator) IsraelOnce(p IsraelProbs) float64 {
	realized := IsraelProbs{
		G1: s.draw(p.G1),
		G2: s.draw(p.G2),
		G3: s.draw(p.G3),
		G4: s.draw(p.G4),
		G5: s.draw(p.G5),
	}

	return Israel(s.cfg, realized)
}

// Expected averages n realized payoffs for each player of the record.
func (s *Simulator) Expected(r Record, n int) ([3]float64, error) {
	var result [3]float64
	if n <= 0 {
		return result, errors.Errorf("number of draws must be positive, got %d", n)
	}

	for i := 1; i <= n; i++ {
		result[0] += s.OppositionOnce(r.Opposition)
		result[1] += s.RegimeOnce(r.Regime)
		result[2] += s.IsraelOnce(r.Israel)

		if n >= 10 && i%(n/10) == 0 {
			glog.V(2).Infof("After %d draws, running means: %v", i, scaled(result, 1/float64(i)))
		}
	}

	return scaled(result, 1/float64(n)), nil
}

// InterpolatedRegime is the S-weighted mix of both Regime branches,
// the value RegimeOnce converges to.
func InterpolatedRegime(cfg Config, p RegimeProbs) float64 {
	return p.S*RegimeBranchPayoff(cfg, p, RegimeSurvives) +
		(1-p.S)*RegimeBranchPayoff(cfg, p, RegimeFalls)
}

func scaled(v [3]float64, k float64) [3]float64 {
	for i := range v {
		v[i] *= k
	}

	return v
}
