package analytics

import (
	"math"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
)

// Trend contribution to the prediction score.
const (
	trendScoreImproving = 80
	trendScoreDeclining = 50
	trendScoreStable    = 65
)

// CalculateSuccessPrediction blends recent performance (40%), trend (30%),
// consistency (20%) and skill-assessment coverage (10%) into one 0-100
// prediction. An empty history predicts a neutral 50.
func CalculateSuccessPrediction(history []models.PerformanceMetrics, skillAssessments []models.SkillAssessment) int {
	if len(history) == 0 {
		return 50
	}

	recentScores := overallScores(history)
	if len(recentScores) > 3 {
		recentScores = recentScores[len(recentScores)-3:]
	}
	recentAvg := mean(recentScores)

	var trendScore float64
	switch AnalyzeTrends(history).Trend {
	case TrendImproving:
		trendScore = trendScoreImproving
	case TrendDeclining:
		trendScore = trendScoreDeclining
	default:
		trendScore = trendScoreStable
	}

	consistencyScore := math.Max(0, 100-stddev(recentScores))
	coverageScore := math.Min(100, float64(len(skillAssessments))*20)

	prediction := recentAvg*0.4 + trendScore*0.3 + consistencyScore*0.2 + coverageScore*0.1

	return roundClampScore(prediction)
}
