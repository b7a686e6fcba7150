package gamification

import "math"

// LevelThreshold is one row of the fixed level table.
type LevelThreshold struct {
	Level      int `json:"level"`
	XPRequired int `json:"xpRequired"`
}

// levelTable maps cumulative XP to levels. Ascending by XPRequired; the
// table is small enough that a reverse linear scan beats anything cleverer.
var levelTable = []LevelThreshold{
	{Level: 1, XPRequired: 0},
	{Level: 2, XPRequired: 100},
	{Level: 3, XPRequired: 250},
	{Level: 4, XPRequired: 500},
	{Level: 5, XPRequired: 1000},
	{Level: 6, XPRequired: 2000},
	{Level: 7, XPRequired: 3500},
	{Level: 8, XPRequired: 5500},
	{Level: 9, XPRequired: 8000},
	{Level: 10, XPRequired: 12000},
}

// LevelInfo is the resolved level for a cumulative XP total. XPToNextLevel
// is 0 only at the table's max level.
type LevelInfo struct {
	Level              int `json:"level"`
	XPToNextLevel      int `json:"xpToNextLevel"`
	ProgressPercentage int `json:"progressPercentage"`
}

// CalculateLevel finds the highest level whose threshold is at or below the
// XP total. Thresholds are boundary-inclusive: XP exactly at a threshold is
// already that level.
func CalculateLevel(totalXP int) LevelInfo {
	for i := len(levelTable) - 1; i >= 0; i-- {
		if totalXP < levelTable[i].XPRequired {
			continue
		}

		if i == len(levelTable)-1 {
			// Max level reached.
			return LevelInfo{
				Level:              levelTable[i].Level,
				XPToNextLevel:      0,
				ProgressPercentage: 100,
			}
		}

		currentLevelXP := levelTable[i].XPRequired
		nextLevelXP := levelTable[i+1].XPRequired
		progress := float64(totalXP-currentLevelXP) / float64(nextLevelXP-currentLevelXP) * 100

		return LevelInfo{
			Level:              levelTable[i].Level,
			XPToNextLevel:      nextLevelXP - totalXP,
			ProgressPercentage: int(math.Round(progress)),
		}
	}

	// Below the first threshold; XP is never negative in practice, but keep
	// the floor defined.
	return LevelInfo{
		Level:              levelTable[0].Level,
		XPToNextLevel:      levelTable[1].XPRequired,
		ProgressPercentage: 0,
	}
}
