package analytics

import (
	"math"
	"strings"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
)

// Keyword sets used to assign a criterion to a skill category. Sets are
// checked in this order; anything unmatched counts as behavioral.
var (
	technicalKeywords     = []string{"technical", "algorithm", "code", "system", "design"}
	communicationKeywords = []string{"communication", "clarity", "articulation", "expression"}
	behavioralKeywords    = []string{"behavioral", "leadership", "teamwork", "problem-solving"}
)

// CategoryScores holds the per-category averages, each 0-100.
type CategoryScores struct {
	Technical     int `json:"technicalScore"`
	Communication int `json:"communicationScore"`
	Behavioral    int `json:"behavioralScore"`
}

// Categorize buckets evaluation criteria into technical / communication /
// behavioral and averages each bucket's normalized scores. This is a single
// pass over the input; the result does not depend on criterion order.
func Categorize(criteria []models.EvaluationCriterion) CategoryScores {
	var sums [3]float64
	var counts [3]int

	for _, criterion := range criteria {
		name := strings.ToLower(criterion.Name)

		var normalized float64
		if criterion.MaxScore > 0 {
			normalized = clampScore(criterion.Score / criterion.MaxScore * 100)
		}

		bucket := 2 // behavioral by default
		switch {
		case containsAny(name, technicalKeywords):
			bucket = 0
		case containsAny(name, communicationKeywords):
			bucket = 1
		case containsAny(name, behavioralKeywords):
			bucket = 2
		}

		sums[bucket] += normalized
		counts[bucket]++
	}

	return CategoryScores{
		Technical:     bucketAverage(sums[0], counts[0]),
		Communication: bucketAverage(sums[1], counts[1]),
		Behavioral:    bucketAverage(sums[2], counts[2]),
	}
}

func containsAny(name string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}

func bucketAverage(sum float64, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(sum / float64(count)))
}
