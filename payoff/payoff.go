// Package payoff implements the per-player payoff model of the
// Opposition / Regime / Israel game.
//
// Each player's payoff is a pure function of the probabilities that
// its goals are achieved. Payoffs are on a 0-100 scale for inputs in [0, 1].
// The functions are total: out-of-range inputs are not rejected here and
// simply produce out-of-range payoffs (see Record.Validate).
package payoff

// Opposition computes the Opposition payoff.
//
// Stage I builds a bank additively from PR, CL and MI. Stage II degrades
// the bank multiplicatively for each of BI, IS, MD and LoC that fails.
// Since the inputs are probabilities, each Stage II goal contributes its
// expected multiplier g + (1-g)*m, where m is the multiplier applied when
// the goal fails. For independent goals this is the exact expectation of
// the boolean model.
func Opposition(cfg Config, p OppositionProbs) float64 {
	bank := OppositionBank(cfg, p)
	for _, m := range OppositionMultipliers(cfg, p) {
		bank *= m
	}

	return bank
}

// OppositionBank returns the Stage I bank, before any degradation.
func OppositionBank(cfg Config, p OppositionProbs) float64 {
	return cfg.OppWeightPR*p.PR + cfg.OppWeightCL*p.CL + cfg.OppWeightMI*p.MI
}

// OppositionMultipliers returns the expected Stage II multipliers for
// BI, IS, MD and LoC, in that order.
func OppositionMultipliers(cfg Config, p OppositionProbs) [4]float64 {
	return [4]float64{
		expectedMultiplier(p.BI, cfg.OppMultBINo),
		expectedMultiplier(p.IS, cfg.OppMultISNo),
		expectedMultiplier(p.MD, cfg.OppMultMDNo),
		expectedMultiplier(p.LoC, cfg.OppMultLoCNo),
	}
}

func expectedMultiplier(achieved, multIfFailed float64) float64 {
	return achieved*1.0 + (1-achieved)*multIfFailed
}

// RegimeBranch identifies which of the two Regime formulas applies.
type RegimeBranch uint8

const (
	RegimeFalls RegimeBranch = iota
	RegimeSurvives
)

var regimeBranchStr = [...]string{
	"Falls",
	"Survives",
}

func (b RegimeBranch) String() string {
	return regimeBranchStr[b]
}

// Survives reports whether S selects the survival branch.
// S at or above cfg.RegSurvivalThreshold counts as survival; there is
// no interpolation between the two branches.
func (p RegimeProbs) Survives(cfg Config) bool {
	return p.S >= cfg.RegSurvivalThreshold
}

// Branch returns the Regime formula selected by S.
func (p RegimeProbs) Branch(cfg Config) RegimeBranch {
	if p.Survives(cfg) {
		return RegimeSurvives
	}

	return RegimeFalls
}

// Regime computes the Regime payoff.
func Regime(cfg Config, p RegimeProbs) float64 {
	return RegimeBranchPayoff(cfg, p, p.Branch(cfg))
}

// RegimeBranchPayoff evaluates the formula of the given branch,
// regardless of S.
func RegimeBranchPayoff(cfg Config, p RegimeProbs, b RegimeBranch) float64 {
	switch b {
	case RegimeSurvives:
		return cfg.RegBase + cfg.RegWeightM*p.M + cfg.RegWeightR*p.R + cfg.RegWeightC*p.C
	default:
		// M, R and C are ignored when the regime falls.
		return cfg.RegWeightV * p.V
	}
}

// IsraelBanks returns the two intermediate bank scores.
func IsraelBanks(cfg Config, p IsraelProbs) (bank1, bank2 float64) {
	bank1 = cfg.IsrBankMax * (cfg.IsrBank1W1*p.G1 + cfg.IsrBank1W2*p.G2 + cfg.IsrBank1W3*p.G3)
	bank2 = cfg.IsrBankMax * (cfg.IsrBank2W1*p.G4 + cfg.IsrBank2W2*p.G5)
	return bank1, bank2
}

// Israel computes the Israel payoff as a weighted blend of its two banks.
func Israel(cfg Config, p IsraelProbs) float64 {
	bank1, bank2 := IsraelBanks(cfg, p)
	return cfg.IsrBlendB1*bank1 + cfg.IsrBlendB2*bank2
}

// Payoffs evaluates all three players for a record, in player order
// (Opposition, Regime, Israel).
func Payoffs(cfg Config, r Record) [3]float64 {
	return [3]float64{
		Opposition(cfg, r.Opposition),
		Regime(cfg, r.Regime),
		Israel(cfg, r.Israel),
	}
}
