package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
)

func unlockedKeys(achievements []models.Achievement) []string {
	keys := []string{}
	for _, a := range achievements {
		if a.Unlocked {
			keys = append(keys, a.Key)
		}
	}
	return keys
}

func TestCheckAchievements(t *testing.T) {
	t.Run("first interview unlocks first steps", func(t *testing.T) {
		state := models.GamificationState{Achievements: DefaultAchievements()}
		check := CheckAchievements(state, SessionOutcome{Score: 70, IsFirstInterview: true})

		assert.Equal(t, []string{AchievementFirstInterview}, unlockedKeys(check.Updated))
		require.Len(t, check.NewlyUnlocked, 1)
		assert.Equal(t, AchievementFirstInterview, check.NewlyUnlocked[0].Key)
		require.NotNil(t, check.NewlyUnlocked[0].UnlockedAt)
	})

	t.Run("perfect score unlocks perfectionist", func(t *testing.T) {
		state := models.GamificationState{Achievements: DefaultAchievements()}
		check := CheckAchievements(state, SessionOutcome{Score: 100})

		assert.Contains(t, unlockedKeys(check.Updated), AchievementPerfectScore)
	})

	t.Run("streak of seven unlocks consistent learner", func(t *testing.T) {
		state := models.GamificationState{Streak: 7, Achievements: DefaultAchievements()}
		check := CheckAchievements(state, SessionOutcome{Score: 70})

		assert.Contains(t, unlockedKeys(check.Updated), AchievementWeekStreak)
	})

	t.Run("ten interviews unlocks veteran and challenge master", func(t *testing.T) {
		state := models.GamificationState{TotalInterviews: 10, Achievements: DefaultAchievements()}
		check := CheckAchievements(state, SessionOutcome{Score: 70})

		keys := unlockedKeys(check.Updated)
		assert.Contains(t, keys, AchievementTenInterviews)
		assert.Contains(t, keys, AchievementAllDifficulties)
	})

	t.Run("already unlocked achievements are not reported again", func(t *testing.T) {
		achievements := DefaultAchievements()
		past := time.Now().Add(-time.Hour).UnixMilli()
		achievements[0].Unlocked = true
		achievements[0].UnlockedAt = &past

		state := models.GamificationState{Achievements: achievements}
		check := CheckAchievements(state, SessionOutcome{Score: 70, IsFirstInterview: true})

		assert.Empty(t, check.NewlyUnlocked)
		// The original unlock timestamp is preserved.
		require.NotNil(t, check.Updated[0].UnlockedAt)
		assert.Equal(t, past, *check.Updated[0].UnlockedAt)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		state := models.GamificationState{Achievements: DefaultAchievements()}
		CheckAchievements(state, SessionOutcome{Score: 100, IsFirstInterview: true})

		assert.Empty(t, unlockedKeys(state.Achievements))
	})

	t.Run("unlock pass is idempotent", func(t *testing.T) {
		state := models.GamificationState{Achievements: DefaultAchievements()}
		first := CheckAchievements(state, SessionOutcome{Score: 100, IsFirstInterview: true})

		state.Achievements = first.Updated
		second := CheckAchievements(state, SessionOutcome{Score: 100})

		assert.Empty(t, second.NewlyUnlocked)
		assert.Equal(t, unlockedKeys(first.Updated), unlockedKeys(second.Updated))
	})
}

func TestUpdateStreak(t *testing.T) {
	now := time.Now().UnixMilli()
	const dayInMs = 24 * 60 * 60 * 1000

	tests := []struct {
		name          string
		lastInterview int64
		currentStreak int
		expected      int
	}{
		{
			name:          "same day keeps the streak",
			lastInterview: now - 1*60*60*1000,
			currentStreak: 5,
			expected:      5,
		},
		{
			name:          "next day extends the streak",
			lastInterview: now - dayInMs - 60*1000,
			currentStreak: 5,
			expected:      6,
		},
		{
			name:          "two day gap resets to one",
			lastInterview: now - 2*dayInMs - 60*1000,
			currentStreak: 9,
			expected:      1,
		},
		{
			name:          "no previous interview starts at one",
			lastInterview: 0,
			currentStreak: 0,
			expected:      1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, UpdateStreak(tc.lastInterview, tc.currentStreak))
		})
	}
}
