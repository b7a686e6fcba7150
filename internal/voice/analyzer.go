package voice

import (
	"math"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
)

// fillerWords is the fixed detection list. Order matters: it is the
// tie-break for equal counts in the report.
var fillerWords = []string{
	"um", "uh", "like", "you know", "actually", "basically",
	"literally", "sort of", "kind of", "i mean", "right", "so",
}

var fillerPatterns = compileFillerPatterns()

func compileFillerPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(fillerWords))
	for i, word := range fillerWords {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	}
	return patterns
}

// Tone keyword sets, checked in order.
var (
	enthusiasmWords   = []string{"excited", "love", "amazing", "wonderful", "fantastic"}
	professionalWords = []string{"experience", "skills", "expertise", "professional", "accomplished"}
	uncertainWords    = []string{"maybe", "perhaps", "might", "possibly", "not sure"}
)

// defaultSpeechRate is assumed when no usable duration estimate exists.
const defaultSpeechRate = 130

// FillerWordReport is the outcome of a filler-word scan.
type FillerWordReport struct {
	Total   int                      `json:"total"`
	Details []models.FillerWordCount `json:"details"`
}

// Analyzer derives voice metrics from a transcript and a rough duration
// estimate. Volume and pause duration have no signal source in this layer
// and are sampled from the injected random source, so tests can make them
// deterministic.
type Analyzer struct {
	rng *rand.Rand
}

// NewAnalyzer returns an analyzer with a time-seeded random source.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewAnalyzerWithSource returns an analyzer using the given source for the
// simulated volume and pause values.
func NewAnalyzerWithSource(src rand.Source) *Analyzer {
	return &Analyzer{rng: rand.New(src)}
}

// Analyze computes the full voice metric set for one recording. audioSize
// is the recording's byte size; duration is estimated from it at a nominal
// bitrate, which is only a rough proxy until real timing data is available.
func (a *Analyzer) Analyze(audioSize int64, transcript string) models.VoiceMetrics {
	wordCount := len(strings.Fields(transcript))

	speechRate := defaultSpeechRate
	estimatedMinutes := float64(audioSize) / (1024 * 60)
	if estimatedMinutes > 0 {
		speechRate = int(math.Round(float64(wordCount) / estimatedMinutes))
	}

	fillers := DetectFillerWords(transcript)
	clarity := clarityScore(transcript, fillers.Total)

	// No audio decoding in this layer; volume is sampled in the 60-90 band.
	volume := 60 + a.rng.Float64()*30
	tone := determineTone(transcript)
	pauseDuration := 0.5 + a.rng.Float64()*1.5

	overall := voiceScore(speechRate, clarity, volume, fillers.Total)

	return models.VoiceMetrics{
		SpeechRate:      speechRate,
		Clarity:         clarity,
		Volume:          int(math.Round(volume)),
		Tone:            tone,
		FillerWordCount: fillers.Total,
		FillerWords:     fillers.Details,
		PauseDuration:   math.Round(pauseDuration*100) / 100,
		OverallScore:    overall,
	}
}

// DetectFillerWords counts whole-word, case-insensitive occurrences of each
// filler-list entry. Only words that occur are reported, sorted by count
// descending with list order breaking ties.
func DetectFillerWords(transcript string) FillerWordReport {
	details := []models.FillerWordCount{}
	total := 0

	for i, pattern := range fillerPatterns {
		count := len(pattern.FindAllStringIndex(transcript, -1))
		if count > 0 {
			details = append(details, models.FillerWordCount{Word: fillerWords[i], Count: count})
			total += count
		}
	}

	sort.SliceStable(details, func(i, j int) bool {
		return details[i].Count > details[j].Count
	})

	return FillerWordReport{Total: total, Details: details}
}

// clarityScore penalizes filler density and very short answers, with a
// small bonus for sentence punctuation.
func clarityScore(transcript string, fillerWordCount int) int {
	wordCount := len(strings.Fields(transcript))
	if wordCount == 0 {
		return 0
	}

	score := 100.0

	fillerRatio := float64(fillerWordCount) / float64(wordCount)
	score -= math.Min(30, fillerRatio*200)

	if strings.ContainsAny(transcript, ".!?") {
		score += 5
	}

	if wordCount < 20 {
		score -= 10
	}

	return int(math.Round(math.Max(0, math.Min(100, score))))
}

// determineTone classifies the transcript by keyword presence. First
// matching rule wins: enthusiastic, professional, uncertain, neutral.
func determineTone(transcript string) string {
	lower := strings.ToLower(transcript)

	if containsAny(lower, enthusiasmWords) {
		return "Enthusiastic"
	}
	if containsAny(lower, professionalWords) {
		return "Professional"
	}
	if containsAny(lower, uncertainWords) {
		return "Uncertain"
	}
	return "Neutral"
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

// voiceScore blends speech rate, clarity, volume and filler penalties into
// the overall 0-100 score. The optimal rate band is 130-170 wpm; rates
// outside 110-190 take the larger penalty, and exactly 110 or 190 only the
// smaller one.
func voiceScore(speechRate, clarity int, volume float64, fillerWordCount int) int {
	score := 100.0

	if speechRate < 110 || speechRate > 190 {
		score -= 15
	} else if speechRate < 130 || speechRate > 170 {
		score -= 5
	}

	score = score*0.7 + float64(clarity)*0.3

	if volume < 40 {
		score -= 10
	}
	if volume > 90 {
		score -= 5
	}

	score -= math.Min(20, float64(fillerWordCount)*2)

	return int(math.Round(math.Max(0, math.Min(100, score))))
}
