package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
)

func snapshot(technical, communication, behavioral int) models.PerformanceMetrics {
	return models.PerformanceMetrics{
		TechnicalScore:     technical,
		CommunicationScore: communication,
		BehavioralScore:    behavioral,
	}
}

func TestIdentifyWeaknesses(t *testing.T) {
	t.Run("empty history has no weaknesses", func(t *testing.T) {
		assert.Empty(t, IdentifyWeaknesses(nil))
	})

	t.Run("strong scores across the board", func(t *testing.T) {
		history := []models.PerformanceMetrics{
			snapshot(80, 85, 90),
			snapshot(82, 88, 86),
		}
		assert.Empty(t, IdentifyWeaknesses(history))
	})

	t.Run("low category averages are flagged in fixed order", func(t *testing.T) {
		history := []models.PerformanceMetrics{
			snapshot(50, 55, 60),
		}
		assert.Equal(t, []string{
			"Technical Skills - Consider practicing coding problems and system design",
			"Communication Skills - Work on articulating thoughts clearly and concisely",
			"Behavioral Responses - Practice STAR method for behavioral questions",
		}, IdentifyWeaknesses(history))
	})

	t.Run("average exactly at threshold is not flagged", func(t *testing.T) {
		history := []models.PerformanceMetrics{
			snapshot(65, 70, 70),
		}
		assert.Empty(t, IdentifyWeaknesses(history))
	})

	t.Run("recent decline over last three sessions is flagged", func(t *testing.T) {
		history := []models.PerformanceMetrics{
			snapshot(85, 80, 80),
			snapshot(78, 80, 80),
			snapshot(74, 80, 80),
		}
		assert.Equal(t, []string{
			"Technical scores showing decline - review fundamentals",
		}, IdentifyWeaknesses(history))
	})

	t.Run("decline of exactly ten points is tolerated", func(t *testing.T) {
		history := []models.PerformanceMetrics{
			snapshot(85, 80, 80),
			snapshot(80, 80, 80),
			snapshot(75, 80, 80),
		}
		assert.Empty(t, IdentifyWeaknesses(history))
	})

	t.Run("decline check looks only at the last three sessions", func(t *testing.T) {
		history := []models.PerformanceMetrics{
			snapshot(95, 80, 80), // outside the window
			snapshot(80, 80, 80),
			snapshot(80, 80, 80),
			snapshot(78, 80, 80),
		}
		assert.Empty(t, IdentifyWeaknesses(history))
	})
}
