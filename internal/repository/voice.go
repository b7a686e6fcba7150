package repository

import (
	"context"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/database"
	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
)

func SaveVoiceResult(ctx context.Context, result *models.VoiceResult) error {
	return database.DB.WithContext(ctx).Create(result).Error
}

// GetVoiceResults returns a user's voice analyses, newest first.
func GetVoiceResults(ctx context.Context, userID uint, limit int) ([]models.VoiceResult, error) {
	var results []models.VoiceResult
	query := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&results).Error
	return results, err
}
