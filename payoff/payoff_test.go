package payoff

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const epsilon = 1e-9

func recordFromSlice(v []float64) Record {
	return Record{
		Opposition: OppositionProbs{BI: v[0], IS: v[1], MD: v[2], LoC: v[3], PR: v[4], CL: v[5], MI: v[6]},
		Regime:     RegimeProbs{S: v[7], M: v[8], R: v[9], C: v[10], V: v[11]},
		Israel:     IsraelProbs{G1: v[12], G2: v[13], G3: v[14], G4: v[15], G5: v[16]},
	}
}

func genRecord() gopter.Gen {
	return gen.SliceOfN(17, gen.Float64Range(0, 1)).Map(recordFromSlice)
}

func TestPayoffsInRange(t *testing.T) {
	cfg := DefaultConfig()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("every payoff is in [0, 100]", prop.ForAll(
		func(r Record) bool {
			for _, v := range Payoffs(cfg, r) {
				if v < -epsilon || v > 100+epsilon {
					return false
				}
			}
			return true
		},
		genRecord(),
	))

	properties.TestingRun(t)
}

func TestIsraelMonotone(t *testing.T) {
	cfg := DefaultConfig()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("Israel is non-decreasing in each goal", prop.ForAll(
		func(goals []float64, goal int, delta float64) bool {
			before := IsraelProbs{G1: goals[0], G2: goals[1], G3: goals[2], G4: goals[3], G5: goals[4]}
			raised := append([]float64(nil), goals...)
			raised[goal] = math.Min(1, raised[goal]+delta)
			after := IsraelProbs{G1: raised[0], G2: raised[1], G3: raised[2], G4: raised[3], G5: raised[4]}
			return Israel(cfg, after) >= Israel(cfg, before)
		},
		gen.SliceOfN(5, gen.Float64Range(0, 1)),
		gen.IntRange(0, 4),
		gen.Float64Range(0, 1),
	))

	properties.TestingRun(t)
}

func TestRegimeBranches(t *testing.T) {
	cfg := DefaultConfig()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("survival branch pays at least the base", prop.ForAll(
		func(s, m, r, c, v float64) bool {
			return Regime(cfg, RegimeProbs{S: s, M: m, R: r, C: c, V: v}) >= cfg.RegBase
		},
		gen.Float64Range(cfg.RegSurvivalThreshold, 1),
		gen.Float64Range(0, 1), gen.Float64Range(0, 1), gen.Float64Range(0, 1), gen.Float64Range(0, 1),
	))

	properties.Property("fall branch pays exactly 20*V", prop.ForAll(
		func(s, m, r, c, v float64) bool {
			if s >= cfg.RegSurvivalThreshold {
				return true
			}
			return Regime(cfg, RegimeProbs{S: s, M: m, R: r, C: c, V: v}) == 20*v
		},
		gen.Float64Range(0, cfg.RegSurvivalThreshold),
		gen.Float64Range(0, 1), gen.Float64Range(0, 1), gen.Float64Range(0, 1), gen.Float64Range(0, 1),
	))

	properties.TestingRun(t)
}

func TestRegimeThreshold(t *testing.T) {
	cfg := DefaultConfig()
	testCases := []struct {
		probs    RegimeProbs
		branch   RegimeBranch
		expected float64
	}{
		{RegimeProbs{S: 0.5, M: 1, R: 0.5, C: 0.2, V: 1}, RegimeSurvives, 50 + 20 + 10 + 2},
		{RegimeProbs{S: 1, V: 1}, RegimeSurvives, 50},
		{RegimeProbs{S: 0.49, M: 1, R: 1, C: 1, V: 0.5}, RegimeFalls, 10},
		{RegimeProbs{S: 0, V: 0}, RegimeFalls, 0},
	}

	for _, tc := range testCases {
		if b := tc.probs.Branch(cfg); b != tc.branch {
			t.Errorf("%+v: expected branch %v, got %v", tc.probs, tc.branch, b)
		}
		if v := Regime(cfg, tc.probs); math.Abs(v-tc.expected) > epsilon {
			t.Errorf("%+v: expected payoff %v, got %v", tc.probs, tc.expected, v)
		}
	}
}

func TestRegimeCustomThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RegSurvivalThreshold = 0.8
	p := RegimeProbs{S: 0.7, M: 1, V: 0.5}
	if v := Regime(cfg, p); v != 10 {
		t.Errorf("expected fall branch payoff 10, got %v", v)
	}
}

func TestOppositionFullStageII(t *testing.T) {
	cfg := DefaultConfig()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("no degradation when all Stage II goals are achieved", prop.ForAll(
		func(pr, cl, mi float64) bool {
			p := OppositionProbs{BI: 1, IS: 1, MD: 1, LoC: 1, PR: pr, CL: cl, MI: mi}
			return math.Abs(Opposition(cfg, p)-(30*pr+30*cl+40*mi)) <= epsilon
		},
		gen.Float64Range(0, 1), gen.Float64Range(0, 1), gen.Float64Range(0, 1),
	))

	properties.TestingRun(t)
}

func TestOppositionDegradation(t *testing.T) {
	cfg := DefaultConfig()
	testCases := []struct {
		probs    OppositionProbs
		expected float64
	}{
		// Full bank, every Stage II goal fails.
		{OppositionProbs{PR: 1, CL: 1, MI: 1}, 100 * 0.3 * 0.7 * 0.4 * 0.7},
		// Only Border Integrity fails.
		{OppositionProbs{IS: 1, MD: 1, LoC: 1, PR: 1, CL: 1, MI: 1}, 30},
		// Expected multiplier of a coin flip on Maintaining Deterrence.
		{OppositionProbs{BI: 1, IS: 1, MD: 0.5, LoC: 1, MI: 1}, 40 * 0.7},
		{OppositionProbs{BI: 1, IS: 1, MD: 1, LoC: 1}, 0},
	}

	for _, tc := range testCases {
		if v := Opposition(cfg, tc.probs); math.Abs(v-tc.expected) > epsilon {
			t.Errorf("%+v: expected %v, got %v", tc.probs, tc.expected, v)
		}
	}
}

// The expected-multiplier formula must agree with the exact expectation
// over all 2^7 boolean realizations.
func TestOppositionMatchesEnumeration(t *testing.T) {
	cfg := DefaultConfig()
	p := OppositionProbs{BI: 0.85, IS: 0.70, MD: 0.65, LoC: 0.60, PR: 0.30, CL: 0.40, MI: 0.50}
	probs := []float64{p.BI, p.IS, p.MD, p.LoC, p.PR, p.CL, p.MI}

	expected := 0.0
	for state := 0; state < 1<<7; state++ {
		outcome := make([]float64, 7)
		weight := 1.0
		for i, prob := range probs {
			if state&(1<<uint(i)) != 0 {
				outcome[i] = 1
				weight *= prob
			} else {
				weight *= 1 - prob
			}
		}

		realized := OppositionProbs{
			BI: outcome[0], IS: outcome[1], MD: outcome[2], LoC: outcome[3],
			PR: outcome[4], CL: outcome[5], MI: outcome[6],
		}
		expected += weight * Opposition(cfg, realized)
	}

	if v := Opposition(cfg, p); math.Abs(v-expected) > epsilon {
		t.Errorf("expected %v, got %v", expected, v)
	}
}

func TestIsraelBanks(t *testing.T) {
	cfg := DefaultConfig()
	p := IsraelProbs{G1: 0.30, G2: 0.25, G3: 0.20, G4: 0.40, G5: 0.35}
	bank1, bank2 := IsraelBanks(cfg, p)
	if math.Abs(bank1-24) > epsilon {
		t.Errorf("expected bank1 24, got %v", bank1)
	}
	if math.Abs(bank2-36.5) > epsilon {
		t.Errorf("expected bank2 36.5, got %v", bank2)
	}
	if v := Israel(cfg, p); math.Abs(v-29) > epsilon {
		t.Errorf("expected payoff 29, got %v", v)
	}

	full := IsraelProbs{G1: 1, G2: 1, G3: 1, G4: 1, G5: 1}
	if v := Israel(cfg, full); math.Abs(v-100) > epsilon {
		t.Errorf("expected full payoff 100, got %v", v)
	}
}

func TestConfigsSideBySide(t *testing.T) {
	base := DefaultConfig()
	heavyMI := base
	heavyMI.OppWeightPR = 0
	heavyMI.OppWeightCL = 0
	heavyMI.OppWeightMI = 100

	p := OppositionProbs{BI: 1, IS: 1, MD: 1, LoC: 1, PR: 1, MI: 0.5}
	if v := Opposition(base, p); math.Abs(v-50) > epsilon {
		t.Errorf("default config: expected 50, got %v", v)
	}
	if v := Opposition(heavyMI, p); math.Abs(v-50) > epsilon {
		t.Errorf("heavy MI config: expected 50, got %v", v)
	}
	if base.OppWeightMI != 40 {
		t.Errorf("default config was modified: %+v", base)
	}
}

func TestValidate(t *testing.T) {
	r := recordFromSlice(make([]float64, 17))
	if err := r.Validate(); err != nil {
		t.Errorf("unexpected error for zero record: %v", err)
	}

	testCases := []struct {
		index int
		value float64
		field string
	}{
		{0, -0.1, "opp_BI"},
		{7, 1.5, "reg_S"},
		{16, math.NaN(), "isr_G5"},
	}

	for _, tc := range testCases {
		v := make([]float64, 17)
		v[tc.index] = tc.value
		err := recordFromSlice(v).Validate()
		rangeErr, ok := err.(*InvalidRangeError)
		if !ok {
			t.Errorf("expected *InvalidRangeError, got %v", err)
			continue
		}
		if rangeErr.Field != tc.field {
			t.Errorf("expected field %v, got %v", tc.field, rangeErr.Field)
		}
	}
}
