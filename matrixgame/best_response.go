package matrixgame

import (
	"math"

	"github.com/golang/glog"
)

// BestResponses returns the strategies of player that maximize its own
// payoff when the other players play as in p. The player's own coordinate
// of p is ignored. Ties are all included, in ascending order.
func BestResponses(t Tensor, player Player, p Profile) []int {
	utilities := make([]float64, t.Shape()[player])
	for s := range utilities {
		utilities[s] = t.Payoffs(p.With(player, s))[player]
	}

	_, br := argMax(utilities)
	return br
}

// IsBestResponse reports whether player's strategy in p is one of its
// best responses to the other players' strategies in p.
func IsBestResponse(t Tensor, player Player, p Profile) bool {
	current := t.Payoffs(p)[player]
	for s := 0; s < t.Shape()[player]; s++ {
		if t.Payoffs(p.With(player, s))[player] > current {
			return false
		}
	}

	return true
}

// IsNashEquilibrium reports whether no player can strictly improve its
// payoff by unilaterally deviating from p.
func IsNashEquilibrium(t Tensor, p Profile) bool {
	for _, player := range allPlayers {
		if !IsBestResponse(t, player, p) {
			return false
		}
	}

	return true
}

// PureNashEquilibria returns every pure Nash equilibrium of the game,
// with player 0's strategy varying slowest and player 2's fastest.
// The result may be empty.
func PureNashEquilibria(t Tensor) []Equilibrium {
	var result []Equilibrium
	for _, p := range t.Shape().Profiles() {
		if IsNashEquilibrium(t, p) {
			glog.V(1).Infof("Profile %v is a pure Nash equilibrium", p)
			result = append(result, Equilibrium{
				Profile: p,
				Payoffs: t.Payoffs(p),
			})
		}
	}

	glog.V(1).Infof("Found %d pure Nash equilibria in %d profiles",
		len(result), t.Shape().Size())
	return result
}

// BestResponse is the set of best responses of Player to a fixed choice
// of strategies by the other players. The Player's own coordinate of
// Against is always zero.
type BestResponse struct {
	Player     Player
	Against    Profile
	Strategies []int
}

// BestResponseTable enumerates player's best responses to every
// combination of the other players' strategies.
func BestResponseTable(t Tensor, player Player) []BestResponse {
	opponents := t.Shape()
	opponents[player] = 1

	var result []BestResponse
	for _, p := range opponents.Profiles() {
		result = append(result, BestResponse{
			Player:     player,
			Against:    p,
			Strategies: BestResponses(t, player, p),
		})
	}

	return result
}

// argMax returns the largest value and every index at which it occurs.
func argMax(vs []float64) (float64, []int) {
	if len(vs) == 0 {
		return math.Inf(-1), nil
	}

	best := vs[0]
	bestIdx := []int{0}
	for i := 1; i < len(vs); i++ {
		if v := vs[i]; v > best {
			best = v
			bestIdx = append(bestIdx[:0], i)
		} else if v == best {
			bestIdx = append(bestIdx, i)
		}
	}

	return best, bestIdx
}
