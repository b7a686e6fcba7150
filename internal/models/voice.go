package models

import "time"

// FillerWordCount is one detected filler word with its occurrence count.
type FillerWordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// VoiceMetrics is the per-recording speech analysis result. It is computed
// fresh for every recording, never incrementally updated.
type VoiceMetrics struct {
	SpeechRate      int               `json:"speechRate"` // words per minute
	Clarity         int               `json:"clarity"`    // 0-100
	Volume          int               `json:"volume"`     // 0-100
	Tone            string            `json:"tone"`
	FillerWordCount int               `json:"fillerWordCount"`
	FillerWords     []FillerWordCount `json:"fillerWords"`
	PauseDuration   float64           `json:"pauseDuration"` // average pause, seconds
	OverallScore    int               `json:"overallScore"`
}

// VoiceResult is the stored form of a VoiceMetrics computation.
type VoiceResult struct {
	ID              uint              `gorm:"primaryKey" json:"-"`
	UserID          uint              `gorm:"index" json:"-"`
	SpeechRate      int               `json:"speechRate"`
	Clarity         int               `json:"clarity"`
	Volume          int               `json:"volume"`
	Tone            string            `json:"tone"`
	FillerWordCount int               `json:"fillerWordCount"`
	FillerWords     []FillerWordCount `gorm:"serializer:json" json:"fillerWords"`
	PauseDuration   float64           `json:"pauseDuration"`
	OverallScore    int               `json:"overallScore"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// Metrics returns the computation-layer view of a stored result.
func (r *VoiceResult) Metrics() VoiceMetrics {
	return VoiceMetrics{
		SpeechRate:      r.SpeechRate,
		Clarity:         r.Clarity,
		Volume:          r.Volume,
		Tone:            r.Tone,
		FillerWordCount: r.FillerWordCount,
		FillerWords:     r.FillerWords,
		PauseDuration:   r.PauseDuration,
		OverallScore:    r.OverallScore,
	}
}
