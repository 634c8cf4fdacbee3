// Package matrixgame finds pure-strategy Nash equilibria of three-player
// normal-form games.
package matrixgame

import (
	"fmt"
)

// Player identifies one of the three players of the game.
type Player uint8

const (
	Player0 Player = iota
	Player1
	Player2
)

// NumPlayers is the number of players in every game of this package.
const NumPlayers = 3

var allPlayers = [NumPlayers]Player{Player0, Player1, Player2}

var playerStr = [...]string{
	"Player0",
	"Player1",
	"Player2",
}

func (p Player) String() string {
	return playerStr[p]
}

// Shape is the number of strategies available to each player.
type Shape [NumPlayers]int

// Size returns the number of strategy profiles of the game.
func (s Shape) Size() int {
	return s[0] * s[1] * s[2]
}

// Contains reports whether every coordinate of p is a valid strategy.
func (s Shape) Contains(p Profile) bool {
	for i, n := range s {
		if p[i] < 0 || p[i] >= n {
			return false
		}
	}

	return true
}

// Profiles returns every strategy profile, with player 0 varying slowest
// and player 2 fastest.
func (s Shape) Profiles() []Profile {
	result := make([]Profile, 0, s.Size())
	for p0 := 0; p0 < s[0]; p0++ {
		for p1 := 0; p1 < s[1]; p1++ {
			for p2 := 0; p2 < s[2]; p2++ {
				result = append(result, Profile{p0, p1, p2})
			}
		}
	}

	return result
}

// Profile is a choice of pure strategy for each player.
type Profile [NumPlayers]int

// With returns a copy of the profile where player has switched to strategy.
func (p Profile) With(player Player, strategy int) Profile {
	p[player] = strategy
	return p
}

func (p Profile) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p[0], p[1], p[2])
}

// Triple holds the payoff of each player for a single profile.
type Triple [NumPlayers]float64

// Tensor is a payoff table covering every profile of its Shape.
type Tensor interface {
	Shape() Shape
	Payoffs(p Profile) Triple
}

// Equilibrium is a pure Nash equilibrium together with its payoffs.
type Equilibrium struct {
	Profile Profile
	Payoffs Triple
}

func (e Equilibrium) String() string {
	return fmt.Sprintf("%v -> (%.2f, %.2f, %.2f)",
		e.Profile, e.Payoffs[0], e.Payoffs[1], e.Payoffs[2])
}
