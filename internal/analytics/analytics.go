package analytics

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
)

// CalculatePerformanceMetrics builds the immutable per-session snapshot from
// the overall score and the evaluation criteria breakdown.
func CalculatePerformanceMetrics(score int, criteria []models.EvaluationCriterion, duration int) models.PerformanceMetrics {
	categories := Categorize(criteria)

	return models.PerformanceMetrics{
		SessionID:          "session_" + uuid.NewString(),
		Date:               time.Now().UnixMilli(),
		OverallScore:       roundClampScore(float64(score)),
		TechnicalScore:     categories.Technical,
		CommunicationScore: categories.Communication,
		BehavioralScore:    categories.Behavioral,
		Duration:           duration,
	}
}

// SkillRadar derives the five radar dimensions from the latest snapshot.
// Problem Solving is the technical/behavioral mean; Confidence tracks the
// communication score.
func SkillRadar(m models.PerformanceMetrics) []models.SkillScore {
	return []models.SkillScore{
		{Skill: "Technical", Score: m.TechnicalScore},
		{Skill: "Communication", Score: m.CommunicationScore},
		{Skill: "Behavioral", Score: m.BehavioralScore},
		{Skill: "Problem Solving", Score: int(math.Round(float64(m.TechnicalScore+m.BehavioralScore) / 2))},
		{Skill: "Confidence", Score: m.CommunicationScore},
	}
}

// GenerateAnalyticsData assembles the full analytics report from a history,
// the latest snapshot and the user's target role. Pure composition; all the
// logic lives in the component functions.
func GenerateAnalyticsData(history []models.PerformanceMetrics, current models.PerformanceMetrics, role string) models.AnalyticsData {
	trendData := make([]models.TrendPoint, 0, len(history))
	for _, h := range history {
		trendData = append(trendData, models.TrendPoint{
			Date:  time.UnixMilli(h.Date).Format("Jan 2, 2006"),
			Score: h.OverallScore,
		})
	}

	return models.AnalyticsData{
		PerformanceHistory: history,
		SkillRadar:         SkillRadar(current),
		WeaknessAreas:      IdentifyWeaknesses(history),
		IndustryBenchmark:  CompareWithBenchmark(current.OverallScore, role).Benchmark,
		// Skill assessments are not tracked per user yet, so the coverage
		// factor contributes zero here.
		PredictionScore: CalculateSuccessPrediction(history, nil),
		TrendData:       trendData,
	}
}
