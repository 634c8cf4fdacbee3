package geonash

import (
	"github.com/timpalpant/geonash/matrixgame"
)

const (
	Opposition = matrixgame.Player0
	Regime     = matrixgame.Player1
	Israel     = matrixgame.Player2
)

const (
	NumOppositionStrategies = 2
	NumRegimeStrategies     = 4
	NumIsraelStrategies     = 2
)

// GameShape is the 2 x 4 x 2 strategy space of the game.
var GameShape = matrixgame.Shape{
	NumOppositionStrategies,
	NumRegimeStrategies,
	NumIsraelStrategies,
}

var playerNames = [...]string{
	"Opposition",
	"Regime",
	"Israel",
}

// PlayerName returns the display name of a player.
func PlayerName(p matrixgame.Player) string {
	return playerNames[p]
}

var oppositionLabels = [NumOppositionStrategies]string{"Escalate", "Deescalate"}

var regimeLabels = [NumRegimeStrategies]string{
	"Escalate vs Israel & Escalate vs Opposition",
	"Escalate vs Israel & Deescalate vs Opposition",
	"Deescalate vs Israel & Escalate vs Opposition",
	"Deescalate vs Israel & Deescalate vs Opposition",
}

var regimeShortLabels = [NumRegimeStrategies]string{
	"E-Isr & E-Opp",
	"E-Isr & D-Opp",
	"D-Isr & E-Opp",
	"D-Isr & D-Opp",
}

var israelLabels = [NumIsraelStrategies]string{"Escalate", "Deescalate"}

// StrategyLabel returns the full name of a player's strategy.
func StrategyLabel(p matrixgame.Player, strategy int) string {
	switch p {
	case Opposition:
		return oppositionLabels[strategy]
	case Regime:
		return regimeLabels[strategy]
	default:
		return israelLabels[strategy]
	}
}

// ShortStrategyLabel returns a name of a player's strategy suitable
// for table columns.
func ShortStrategyLabel(p matrixgame.Player, strategy int) string {
	if p == Regime {
		return regimeShortLabels[strategy]
	}

	return StrategyLabel(p, strategy)
}
