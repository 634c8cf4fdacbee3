package payoff

import (
	"fmt"
	"math"
)

// OppositionProbs are the probabilities (0..1) that each Opposition goal
// is achieved.
type OppositionProbs struct {
	// Stage II (degradation gates).
	BI  float64 // Border Integrity
	IS  float64 // Infrastructure Survival
	MD  float64 // Maintaining Deterrence
	LoC float64 // Lack of Casualty

	// Stage I (bank builders).
	PR float64 // Political Reform
	CL float64 // Civil Liberties
	MI float64 // Material Improvement
}

// RegimeProbs are the probabilities (0..1) for each Regime goal.
// S is used as a gate, see RegimeProbs.Survives.
type RegimeProbs struct {
	S float64 // Survival
	M float64 // Maintaining previous policies
	R float64 // Regional dominance
	C float64 // Credible internal power
	V float64 // Not getting subjected to violence
}

// IsraelProbs are the probabilities (0..1) that each Israel goal is achieved.
type IsraelProbs struct {
	G1, G2, G3, G4, G5 float64
}

// Record is the full set of goal probabilities for one strategy profile.
type Record struct {
	Opposition OppositionProbs
	Regime     RegimeProbs
	Israel     IsraelProbs
}

// Field is a single named probability within a Record.
type Field struct {
	Name  string
	Value float64
}

// Fields returns the 17 probabilities of the record, in column order.
// Names match the CSV column names.
func (r Record) Fields() []Field {
	o, g, i := r.Opposition, r.Regime, r.Israel
	return []Field{
		{"opp_BI", o.BI}, {"opp_IS", o.IS}, {"opp_MD", o.MD}, {"opp_LoC", o.LoC},
		{"opp_PR", o.PR}, {"opp_CL", o.CL}, {"opp_MI", o.MI},
		{"reg_S", g.S}, {"reg_M", g.M}, {"reg_R", g.R}, {"reg_C", g.C}, {"reg_V", g.V},
		{"isr_G1", i.G1}, {"isr_G2", i.G2}, {"isr_G3", i.G3}, {"isr_G4", i.G4}, {"isr_G5", i.G5},
	}
}

// InvalidRangeError is returned when a probability lies outside [0, 1].
type InvalidRangeError struct {
	Field string
	Value float64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%s must be in [0,1], got %v", e.Field, e.Value)
}

// Validate checks that every probability of the record is in [0, 1].
// NaN is rejected.
func (r Record) Validate() error {
	for _, f := range r.Fields() {
		if math.IsNaN(f.Value) || f.Value < 0 || f.Value > 1 {
			return &InvalidRangeError{Field: f.Name, Value: f.Value}
		}
	}

	return nil
}
