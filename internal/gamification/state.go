package gamification

import (
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
)

// SessionData is the completed-session input to a state update.
type SessionData struct {
	Score             int
	Difficulty        string
	Duration          int   // minutes
	LastInterviewDate int64 // epoch milliseconds of the previous session
}

// UpdateResult is the atomic outcome of applying one session to a state.
// The caller persists State in place of the old value.
type UpdateResult struct {
	State           models.GamificationState `json:"state"`
	EarnedXP        int                      `json:"earnedXP"`
	LeveledUp       bool                     `json:"leveledUp"`
	NewAchievements []models.Achievement     `json:"newAchievements"`
}

// InitializeGamificationState builds the starting state for a new user.
func InitializeGamificationState() models.GamificationState {
	return models.GamificationState{
		Level:         1,
		XP:            0,
		XPToNextLevel: levelTable[1].XPRequired,
		Streak:        0,
		Achievements:  DefaultAchievements(),
		Badges:        pq.StringArray{},
	}
}

// UpdateGamificationState applies a completed session to the current state
// and returns the replacement state together with what the session earned.
// The input state is not modified; achievement predicates see the state as
// it was before this session, with only the first-interview flag derived
// from the new interview count.
func UpdateGamificationState(current models.GamificationState, session SessionData) UpdateResult {
	earnedXP := CalculateXP(session.Score, session.Difficulty, session.Duration)
	newTotalXP := current.XP + earnedXP

	levelInfo := CalculateLevel(newTotalXP)
	leveledUp := levelInfo.Level > current.Level

	newStreak := UpdateStreak(session.LastInterviewDate, current.Streak)
	newTotalInterviews := current.TotalInterviews + 1

	check := CheckAchievements(current, SessionOutcome{
		Score:            session.Score,
		Difficulty:       session.Difficulty,
		IsFirstInterview: newTotalInterviews == 1,
	})

	updated := models.GamificationState{
		ID:              current.ID,
		UserID:          current.UserID,
		Level:           levelInfo.Level,
		XP:              newTotalXP,
		XPToNextLevel:   levelInfo.XPToNextLevel,
		Streak:          newStreak,
		TotalInterviews: newTotalInterviews,
		LastInterviewAt: time.Now().UnixMilli(),
		Achievements:    check.Updated,
		Badges:          current.Badges,
	}

	if leveledUp {
		badges := make(pq.StringArray, len(current.Badges), len(current.Badges)+1)
		copy(badges, current.Badges)
		updated.Badges = append(badges, fmt.Sprintf("Level %d", levelInfo.Level))
	}

	return UpdateResult{
		State:           updated,
		EarnedXP:        earnedXP,
		LeveledUp:       leveledUp,
		NewAchievements: check.NewlyUnlocked,
	}
}
