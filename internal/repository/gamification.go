package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/database"
	"github.com/BTL5010TEJA/smart-mock-interview/internal/gamification"
	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
)

// GetOrCreateGamificationState loads a user's gamification state, creating
// the initial state (with the full locked achievement set) on first use.
func GetOrCreateGamificationState(ctx context.Context, userID uint) (*models.GamificationState, error) {
	var state models.GamificationState
	err := database.DB.WithContext(ctx).
		Preload("Achievements").
		First(&state, "user_id = ?", userID).Error

	if err == nil {
		return &state, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	state = gamification.InitializeGamificationState()
	state.UserID = userID
	if err := database.DB.WithContext(ctx).Create(&state).Error; err != nil {
		return nil, err
	}
	return &state, nil
}

// ReplaceGamificationState persists a freshly computed state in place of
// the old one. The state row and its achievement rows are written in one
// transaction so readers never observe a partial update.
func ReplaceGamificationState(ctx context.Context, state *models.GamificationState) error {
	return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.GamificationState{}).
			Where("id = ?", state.ID).
			Updates(map[string]interface{}{
				"level":             state.Level,
				"xp":                state.XP,
				"xp_to_next_level":  state.XPToNextLevel,
				"streak":            state.Streak,
				"total_interviews":  state.TotalInterviews,
				"last_interview_at": state.LastInterviewAt,
				"badges":            state.Badges,
			}).Error; err != nil {
			return err
		}

		for i := range state.Achievements {
			achievement := &state.Achievements[i]
			if achievement.ID == 0 {
				achievement.StateID = state.ID
				if err := tx.Create(achievement).Error; err != nil {
					return err
				}
				continue
			}
			if err := tx.Model(&models.Achievement{}).
				Where("id = ?", achievement.ID).
				Updates(map[string]interface{}{
					"unlocked":    achievement.Unlocked,
					"unlocked_at": achievement.UnlockedAt,
				}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
