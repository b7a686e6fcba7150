package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
)

func TestInitializeGamificationState(t *testing.T) {
	state := InitializeGamificationState()

	assert.Equal(t, 1, state.Level)
	assert.Equal(t, 0, state.XP)
	assert.Equal(t, 100, state.XPToNextLevel)
	assert.Equal(t, 0, state.Streak)
	assert.Equal(t, 0, state.TotalInterviews)
	assert.Len(t, state.Achievements, 5)
	assert.Empty(t, unlockedKeys(state.Achievements))
	assert.NotNil(t, state.Badges)
	assert.Empty(t, state.Badges)
}

func TestUpdateGamificationStateFirstSession(t *testing.T) {
	current := InitializeGamificationState()

	before := time.Now().UnixMilli()
	result := UpdateGamificationState(current, SessionData{
		Score:      100,
		Difficulty: models.DifficultyHard,
		Duration:   35,
	})

	// 100*2.0 + 20 duration + 50 perfect = 270 XP, which lands in level 3.
	assert.Equal(t, 270, result.EarnedXP)
	assert.Equal(t, 270, result.State.XP)
	assert.Equal(t, 3, result.State.Level)
	assert.Equal(t, 230, result.State.XPToNextLevel)
	assert.True(t, result.LeveledUp)
	assert.Equal(t, []string{"Level 3"}, []string(result.State.Badges))

	assert.Equal(t, 1, result.State.TotalInterviews)
	assert.Equal(t, 1, result.State.Streak)
	assert.GreaterOrEqual(t, result.State.LastInterviewAt, before)

	keys := []string{}
	for _, a := range result.NewAchievements {
		keys = append(keys, a.Key)
	}
	assert.Equal(t, []string{AchievementFirstInterview, AchievementPerfectScore}, keys)
}

func TestUpdateGamificationStateNoLevelUp(t *testing.T) {
	current := InitializeGamificationState()
	current.XP = 100
	current.Level = 2
	current.TotalInterviews = 3
	current.LastInterviewAt = time.Now().UnixMilli()
	current.Streak = 2

	result := UpdateGamificationState(current, SessionData{
		Score:             40,
		Difficulty:        models.DifficultyEasy,
		Duration:          10,
		LastInterviewDate: current.LastInterviewAt,
	})

	assert.Equal(t, 40, result.EarnedXP)
	assert.Equal(t, 140, result.State.XP)
	assert.Equal(t, 2, result.State.Level)
	assert.False(t, result.LeveledUp)
	assert.Empty(t, result.State.Badges)
	assert.Equal(t, 4, result.State.TotalInterviews)
	// Same-day session keeps the streak.
	assert.Equal(t, 2, result.State.Streak)
	assert.Empty(t, result.NewAchievements)
}

func TestUpdateGamificationStateDoesNotMutateInput(t *testing.T) {
	current := InitializeGamificationState()
	current.Badges = append(current.Badges, "Level 2")

	UpdateGamificationState(current, SessionData{
		Score:      100,
		Difficulty: models.DifficultyExpert,
		Duration:   40,
	})

	assert.Equal(t, 0, current.XP)
	assert.Equal(t, []string{"Level 2"}, []string(current.Badges))
	assert.Empty(t, unlockedKeys(current.Achievements))
}

func TestUpdateGamificationStateAchievementsSeePreUpdateState(t *testing.T) {
	// Nine completed interviews before this session; the veteran achievement
	// needs ten and must not unlock from the in-flight session.
	current := InitializeGamificationState()
	current.TotalInterviews = 9
	current.LastInterviewAt = time.Now().UnixMilli()

	result := UpdateGamificationState(current, SessionData{
		Score:             70,
		Difficulty:        models.DifficultyEasy,
		Duration:          15,
		LastInterviewDate: current.LastInterviewAt,
	})

	require.Equal(t, 10, result.State.TotalInterviews)
	keys := []string{}
	for _, a := range result.NewAchievements {
		keys = append(keys, a.Key)
	}
	assert.NotContains(t, keys, AchievementTenInterviews)
}
