package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
)

func historyWithScores(scores ...int) []models.PerformanceMetrics {
	history := make([]models.PerformanceMetrics, len(scores))
	for i, s := range scores {
		history[i] = models.PerformanceMetrics{OverallScore: s}
	}
	return history
}

func TestAnalyzeTrends(t *testing.T) {
	tests := []struct {
		name     string
		scores   []int
		expected TrendAnalysis
	}{
		{
			name:     "empty history is stable with zero average",
			scores:   nil,
			expected: TrendAnalysis{Trend: TrendStable},
		},
		{
			name:     "single session is stable with its own average",
			scores:   []int{88},
			expected: TrendAnalysis{Trend: TrendStable, AverageScore: 88},
		},
		{
			name:     "clear improvement",
			scores:   []int{50, 50, 80, 80},
			expected: TrendAnalysis{Trend: TrendImproving, ChangePercentage: 60, AverageScore: 65},
		},
		{
			name:     "clear decline",
			scores:   []int{80, 80, 50, 50},
			expected: TrendAnalysis{Trend: TrendDeclining, ChangePercentage: -38, AverageScore: 65},
		},
		{
			name:     "exactly five percent change stays stable",
			scores:   []int{100, 105},
			expected: TrendAnalysis{Trend: TrendStable, ChangePercentage: 5, AverageScore: 103},
		},
		{
			name:     "small change stays stable",
			scores:   []int{70, 72},
			expected: TrendAnalysis{Trend: TrendStable, ChangePercentage: 3, AverageScore: 71},
		},
		{
			name:     "odd length gives the first half the smaller share",
			scores:   []int{50, 80, 80},
			expected: TrendAnalysis{Trend: TrendImproving, ChangePercentage: 60, AverageScore: 70},
		},
		{
			name:     "zero first-half mean falls back to stable",
			scores:   []int{0, 0, 50, 50},
			expected: TrendAnalysis{Trend: TrendStable, AverageScore: 25},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, AnalyzeTrends(historyWithScores(tc.scores...)))
		})
	}
}
