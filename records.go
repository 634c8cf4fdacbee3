// Package geonash solves the three-player Opposition / Regime / Israel game.
//
// Probability records for each of the 16 strategy profiles are turned into
// a payoff tensor using package payoff, and the pure Nash equilibria of
// the tensor are found with package matrixgame.
package geonash

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/timpalpant/geonash/matrixgame"
	"github.com/timpalpant/geonash/payoff"
)

// Records holds the probability record of every strategy profile,
// indexed by (Opposition, Regime, Israel) strategy. A nil entry is a
// missing record.
type Records [NumOppositionStrategies][NumRegimeStrategies][NumIsraelStrategies]*payoff.Record

// Get returns the record of profile p, or nil if it is missing or p is
// not a valid profile.
func (rs *Records) Get(p matrixgame.Profile) *payoff.Record {
	if !GameShape.Contains(p) {
		return nil
	}

	return rs[p[0]][p[1]][p[2]]
}

// Set stores a copy of r as the record of profile p.
func (rs *Records) Set(p matrixgame.Profile, r payoff.Record) error {
	if !GameShape.Contains(p) {
		return errors.Errorf("strategy profile %v out of bounds for %v game", p, GameShape)
	}

	rs[p[0]][p[1]][p[2]] = &r
	return nil
}

// Missing returns the profiles without a record, in profile order.
func (rs *Records) Missing() []matrixgame.Profile {
	var result []matrixgame.Profile
	for _, p := range GameShape.Profiles() {
		if rs.Get(p) == nil {
			result = append(result, p)
		}
	}

	return result
}

// MissingDataError is returned when a strategy profile has no
// probability record.
type MissingDataError struct {
	Profile matrixgame.Profile
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("missing probability record for strategy profile %v", e.Profile)
}
