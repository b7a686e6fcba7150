package analytics

import (
	"math"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
)

// Trend classifications.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// TrendAnalysis summarizes score movement over a performance history.
type TrendAnalysis struct {
	Trend            string `json:"trend"`
	ChangePercentage int    `json:"changePercentage"`
	AverageScore     int    `json:"averageScore"`
}

// AnalyzeTrends compares the mean overall score of the first half of the
// history against the second half. On odd lengths the first half gets the
// smaller share. A change above +5% is improving, below -5% declining.
func AnalyzeTrends(history []models.PerformanceMetrics) TrendAnalysis {
	if len(history) == 0 {
		return TrendAnalysis{Trend: TrendStable}
	}

	scores := overallScores(history)
	average := mean(scores)

	if len(history) < 2 {
		return TrendAnalysis{Trend: TrendStable, AverageScore: int(math.Round(average))}
	}

	midPoint := len(history) / 2
	firstAvg := mean(scores[:midPoint])
	secondAvg := mean(scores[midPoint:])

	// A zero first-half mean would make the percentage undefined; report a
	// stable trend instead of propagating Inf/NaN.
	if firstAvg == 0 {
		return TrendAnalysis{Trend: TrendStable, AverageScore: int(math.Round(average))}
	}

	changePercentage := (secondAvg - firstAvg) / firstAvg * 100

	trend := TrendStable
	if changePercentage > 5 {
		trend = TrendImproving
	} else if changePercentage < -5 {
		trend = TrendDeclining
	}

	return TrendAnalysis{
		Trend:            trend,
		ChangePercentage: int(math.Round(changePercentage)),
		AverageScore:     int(math.Round(average)),
	}
}

func overallScores(history []models.PerformanceMetrics) []float64 {
	scores := make([]float64, len(history))
	for i, h := range history {
		scores[i] = float64(h.OverallScore)
	}
	return scores
}
