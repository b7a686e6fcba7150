package gamification

import (
	"math"
	"time"
)

// Challenge is a rotating daily practice goal.
type Challenge struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	XPReward    int    `json:"xpReward"`
}

var dailyChallenges = []Challenge{
	{
		Title:       "Perfect Score Hunter",
		Description: "Achieve a score of 100 in any interview",
		XPReward:    100,
	},
	{
		Title:       "Technical Master",
		Description: "Complete a Hard difficulty technical interview",
		XPReward:    150,
	},
	{
		Title:       "Communication Pro",
		Description: "Score 90+ on communication metrics",
		XPReward:    80,
	},
	{
		Title:       "Speed Demon",
		Description: "Complete a speed interview challenge",
		XPReward:    75,
	},
	{
		Title:       "Consistent Performer",
		Description: "Complete 3 interviews in one day",
		XPReward:    120,
	},
}

// DailyChallenge selects the challenge for a date. Selection is
// deterministic: day of year modulo the table length, so every user sees
// the same challenge on the same day.
func DailyChallenge(date time.Time) Challenge {
	return dailyChallenges[date.YearDay()%len(dailyChallenges)]
}

// Simulated leaderboard distribution; replaced by real user data once a
// leaderboard store exists.
const (
	leaderboardAverageXP = 2000
	leaderboardStdDev    = 1000
	leaderboardUsers     = 10000
)

// LeaderboardPosition estimates a user's leaderboard standing from total XP
// via a z-score against an assumed XP distribution.
func LeaderboardPosition(totalXP int) (position, percentile int) {
	zScore := float64(totalXP-leaderboardAverageXP) / leaderboardStdDev

	percentile = int(math.Round(math.Max(0, math.Min(100, 50+zScore*20))))
	position = int(math.Round(float64(leaderboardUsers) * float64(100-percentile) / 100))

	if position < 1 {
		position = 1
	}
	return position, percentile
}
