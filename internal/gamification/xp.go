package gamification

import (
	"math"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
)

// difficultyMultipliers scale the base XP by interview difficulty. An
// unrecognized difficulty falls back to the Easy multiplier.
var difficultyMultipliers = map[string]float64{
	models.DifficultyEasy:   1.0,
	models.DifficultyMedium: 1.5,
	models.DifficultyHard:   2.0,
	models.DifficultyExpert: 2.5,
}

// CalculateXP converts a session outcome into an XP award. XP is cumulative
// currency, so unlike the score fields it has no upper cap.
func CalculateXP(score int, difficulty string, duration int) int {
	xp := float64(score)

	multiplier, ok := difficultyMultipliers[difficulty]
	if !ok {
		multiplier = 1.0
	}
	xp *= multiplier

	// Duration bonus: longer interviews earn more.
	if duration > 30 {
		xp += 20
	} else if duration > 20 {
		xp += 10
	}

	// Perfect and near-perfect score bonuses.
	if score == 100 {
		xp += 50
	} else if score >= 90 {
		xp += 25
	}

	return int(math.Round(xp))
}
