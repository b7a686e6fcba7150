package voice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
)

func TestDetectFillerWords(t *testing.T) {
	t.Run("counts and sorts by frequency", func(t *testing.T) {
		report := DetectFillerWords("um I think um this is like great")

		assert.Equal(t, 3, report.Total)
		require.Len(t, report.Details, 2)
		assert.Equal(t, models.FillerWordCount{Word: "um", Count: 2}, report.Details[0])
		assert.Equal(t, models.FillerWordCount{Word: "like", Count: 1}, report.Details[1])
	})

	t.Run("ties keep the detection list order", func(t *testing.T) {
		report := DetectFillerWords("uh like uh like")

		require.Len(t, report.Details, 2)
		assert.Equal(t, "uh", report.Details[0].Word)
		assert.Equal(t, "like", report.Details[1].Word)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		report := DetectFillerWords("Um, UM... uM")
		assert.Equal(t, 3, report.Total)
	})

	t.Run("whole words only", func(t *testing.T) {
		// "umbrella" and "solar" must not count as "um" and "so".
		report := DetectFillerWords("my umbrella needs solar charging")
		assert.Equal(t, 0, report.Total)
	})

	t.Run("multi-word fillers are detected", func(t *testing.T) {
		report := DetectFillerWords("I mean it was sort of hard you know")

		assert.Equal(t, 3, report.Total)
		words := []string{}
		for _, d := range report.Details {
			words = append(words, d.Word)
		}
		assert.ElementsMatch(t, []string{"you know", "sort of", "i mean"}, words)
	})

	t.Run("clean transcript", func(t *testing.T) {
		report := DetectFillerWords("my greatest strength is persistence")
		assert.Equal(t, 0, report.Total)
		assert.Empty(t, report.Details)
	})
}

func TestClarityScore(t *testing.T) {
	t.Run("empty transcript scores zero", func(t *testing.T) {
		assert.Equal(t, 0, clarityScore("", 0))
	})

	t.Run("short answer without punctuation", func(t *testing.T) {
		// 100 - 0 fillers + 0 punctuation - 10 short = 90
		assert.Equal(t, 90, clarityScore("hello world", 0))
	})

	t.Run("punctuation bonus clamps at one hundred", func(t *testing.T) {
		transcript := "I led the migration project. We split the work across three teams and shipped the rollout two weeks early without regressions."
		assert.Equal(t, 100, clarityScore(transcript, 0))
	})

	t.Run("filler penalty is capped at thirty", func(t *testing.T) {
		// 10 fillers over 10 words drives the ratio penalty past the cap.
		transcript := "um um um um um um um um um um"
		score := clarityScore(transcript, 10)
		assert.Equal(t, 60, score) // 100 - 30 - 10 short
	})
}

func TestDetermineTone(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		expected   string
	}{
		{
			name:       "enthusiastic keywords win first",
			transcript: "I would love this amazing opportunity",
			expected:   "Enthusiastic",
		},
		{
			name:       "professional keywords",
			transcript: "My experience covers five years of backend skills",
			expected:   "Professional",
		},
		{
			name:       "uncertain keywords",
			transcript: "maybe I could possibly handle that",
			expected:   "Uncertain",
		},
		{
			name:       "enthusiasm outranks uncertainty",
			transcript: "maybe this is an amazing role",
			expected:   "Enthusiastic",
		},
		{
			name:       "no keywords is neutral",
			transcript: "I worked on the billing system last year",
			expected:   "Neutral",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, determineTone(tc.transcript))
		})
	}
}

func TestVoiceScore(t *testing.T) {
	t.Run("ideal delivery scores one hundred", func(t *testing.T) {
		assert.Equal(t, 100, voiceScore(150, 100, 70, 0))
	})

	t.Run("rate outside the wide band takes the large penalty", func(t *testing.T) {
		assert.Equal(t, 90, voiceScore(100, 100, 70, 0)) // (100-15)*0.7 + 30
	})

	t.Run("rate at the wide band edge takes only the small penalty", func(t *testing.T) {
		assert.Equal(t, 97, voiceScore(110, 100, 70, 0)) // (100-5)*0.7 + 30 = 96.5
	})

	t.Run("filler penalty is capped at twenty", func(t *testing.T) {
		assert.Equal(t, voiceScore(150, 100, 70, 10), voiceScore(150, 100, 70, 50))
	})

	t.Run("score never goes negative", func(t *testing.T) {
		assert.GreaterOrEqual(t, voiceScore(300, 0, 20, 50), 0)
	})
}

func TestAnalyzerDeterminism(t *testing.T) {
	transcript := "I have experience building backend systems. My skills cover Go and Postgres."

	a := NewAnalyzerWithSource(rand.NewSource(42))
	b := NewAnalyzerWithSource(rand.NewSource(42))

	assert.Equal(t, a.Analyze(60*1024, transcript), b.Analyze(60*1024, transcript))
}

func TestAnalyze(t *testing.T) {
	analyzer := NewAnalyzerWithSource(rand.NewSource(1))

	t.Run("zero audio size falls back to the default speech rate", func(t *testing.T) {
		metrics := analyzer.Analyze(0, "a short answer")
		assert.Equal(t, defaultSpeechRate, metrics.SpeechRate)
	})

	t.Run("speech rate derives from word count and estimated minutes", func(t *testing.T) {
		// 1024*60 bytes is one estimated minute.
		transcript := ""
		for i := 0; i < 150; i++ {
			transcript += "word "
		}
		metrics := analyzer.Analyze(1024*60, transcript)
		assert.Equal(t, 150, metrics.SpeechRate)
	})

	t.Run("metrics stay in their documented ranges", func(t *testing.T) {
		metrics := analyzer.Analyze(80*1024, "um I think this um role is like a great fit for my skills and experience.")

		assert.GreaterOrEqual(t, metrics.Clarity, 0)
		assert.LessOrEqual(t, metrics.Clarity, 100)
		assert.GreaterOrEqual(t, metrics.Volume, 60)
		assert.LessOrEqual(t, metrics.Volume, 90)
		assert.GreaterOrEqual(t, metrics.PauseDuration, 0.5)
		assert.LessOrEqual(t, metrics.PauseDuration, 2.0)
		assert.GreaterOrEqual(t, metrics.OverallScore, 0)
		assert.LessOrEqual(t, metrics.OverallScore, 100)
		assert.Equal(t, 3, metrics.FillerWordCount)
		assert.Equal(t, "Professional", metrics.Tone)
	})
}
