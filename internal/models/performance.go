package models

import "time"

// PerformanceMetrics is the per-session performance snapshot. Rows are
// append-only; the ordered set of a user's rows is the performance history
// every analytics function consumes.
type PerformanceMetrics struct {
	ID                 uint      `gorm:"primaryKey" json:"-"`
	UserID             uint      `json:"-"`
	SessionID          string    `json:"sessionId"`
	Date               int64     `json:"date"` // epoch milliseconds
	OverallScore       int       `json:"overallScore"`
	TechnicalScore     int       `json:"technicalScore"`
	CommunicationScore int       `json:"communicationScore"`
	BehavioralScore    int       `json:"behavioralScore"`
	Duration           int       `json:"duration"` // minutes
	CreatedAt          time.Time `json:"-"`
}

// SkillScore is one spoke of the skill radar.
type SkillScore struct {
	Skill string `json:"skill"`
	Score int    `json:"score"`
}

// TrendPoint is one point of the score-over-time series.
type TrendPoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// AnalyticsData is the display-ready analytics report. It is always a pure
// projection of a history plus the latest snapshot, never stored.
type AnalyticsData struct {
	PerformanceHistory []PerformanceMetrics `json:"performanceHistory"`
	SkillRadar         []SkillScore         `json:"skillRadar"`
	WeaknessAreas      []string             `json:"weaknessAreas"`
	IndustryBenchmark  int                  `json:"industryBenchmark"`
	PredictionScore    int                  `json:"predictionScore"`
	TrendData          []TrendPoint         `json:"trendData"`
}
