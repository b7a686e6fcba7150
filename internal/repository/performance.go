package repository

import (
	"context"
	"time"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/database"
	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
)

// SavePerformanceMetrics appends one session snapshot to the user's history.
func SavePerformanceMetrics(ctx context.Context, metrics *models.PerformanceMetrics) error {
	return database.DB.WithContext(ctx).Create(metrics).Error
}

// GetPerformanceHistory returns a user's full history in chronological
// order, the order every analytics function expects.
func GetPerformanceHistory(ctx context.Context, userID uint) ([]models.PerformanceMetrics, error) {
	var history []models.PerformanceMetrics
	err := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&history).Error
	return history, err
}

// GetLatestPerformanceMetrics returns the most recent snapshot, or gorm's
// not-found error when the user has no sessions yet.
func GetLatestPerformanceMetrics(ctx context.Context, userID uint) (*models.PerformanceMetrics, error) {
	var metrics models.PerformanceMetrics
	err := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		First(&metrics).Error
	return &metrics, err
}

// HasCompletedSessionToday checks if a user finished an interview on the
// current day.
func HasCompletedSessionToday(userID uint) (bool, error) {
	var count int64
	today := time.Now().Truncate(24 * time.Hour)
	tomorrow := today.Add(24 * time.Hour)

	err := database.DB.Model(&models.PerformanceMetrics{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, today, tomorrow).
		Count(&count).Error

	return count > 0, err
}
