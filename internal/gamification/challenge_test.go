package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDailyChallenge(t *testing.T) {
	t.Run("same date always yields the same challenge", func(t *testing.T) {
		date := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
		later := time.Date(2026, 8, 28, 23, 30, 0, 0, time.UTC)
		assert.Equal(t, DailyChallenge(date), DailyChallenge(later))
	})

	t.Run("selection rotates by day of year", func(t *testing.T) {
		jan1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) // day 1
		jan6 := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC) // day 6, same index mod 5
		assert.Equal(t, DailyChallenge(jan1), DailyChallenge(jan6))

		jan2 := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
		assert.NotEqual(t, DailyChallenge(jan1), DailyChallenge(jan2))
	})

	t.Run("challenge has usable fields", func(t *testing.T) {
		c := DailyChallenge(time.Now())
		assert.NotEmpty(t, c.Title)
		assert.NotEmpty(t, c.Description)
		assert.Positive(t, c.XPReward)
	})
}

func TestLeaderboardPosition(t *testing.T) {
	tests := []struct {
		name               string
		totalXP            int
		expectedPosition   int
		expectedPercentile int
	}{
		{
			name:               "average XP sits in the middle",
			totalXP:            2000,
			expectedPosition:   5000,
			expectedPercentile: 50,
		},
		{
			name:               "no XP sits near the bottom",
			totalXP:            0,
			expectedPosition:   9000,
			expectedPercentile: 10,
		},
		{
			name:               "very high XP is clamped to first place",
			totalXP:            10000,
			expectedPosition:   1,
			expectedPercentile: 100,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			position, percentile := LeaderboardPosition(tc.totalXP)
			assert.Equal(t, tc.expectedPosition, position)
			assert.Equal(t, tc.expectedPercentile, percentile)
		})
	}
}

func TestLeaderboardPositionNeverBelowFirst(t *testing.T) {
	for _, xp := range []int{4500, 20000, 1000000} {
		position, _ := LeaderboardPosition(xp)
		assert.GreaterOrEqual(t, position, 1, "xp %d", xp)
	}
}
