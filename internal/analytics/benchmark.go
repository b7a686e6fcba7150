package analytics

import "strings"

// Industry benchmark score bands by role seniority.
const (
	benchmarkEntry   = 65
	benchmarkMid     = 75
	benchmarkSenior  = 85
	benchmarkDefault = 70
)

// BenchmarkComparison places a score against the industry benchmark for a
// role.
type BenchmarkComparison struct {
	Benchmark  int    `json:"benchmark"`
	Percentile int    `json:"percentile"`
	Comparison string `json:"comparison"` // "above", "at" or "below"
}

// CompareWithBenchmark maps a free-text role to a benchmark band and
// classifies the score against it. Keyword rules are checked in order and
// the first match wins; "senior developer" is senior, not mid.
func CompareWithBenchmark(score int, role string) BenchmarkComparison {
	benchmark := benchmarkDefault
	roleLower := strings.ToLower(role)

	switch {
	case strings.Contains(roleLower, "senior") || strings.Contains(roleLower, "lead"):
		benchmark = benchmarkSenior
	case strings.Contains(roleLower, "junior") || strings.Contains(roleLower, "intern") || strings.Contains(roleLower, "entry"):
		benchmark = benchmarkEntry
	case strings.Contains(roleLower, "mid") || strings.Contains(roleLower, "engineer") || strings.Contains(roleLower, "developer"):
		benchmark = benchmarkMid
	}

	percentile := score
	if percentile > 99 {
		percentile = 99
	}
	if percentile < 0 {
		percentile = 0
	}

	comparison := "at"
	if score > benchmark+5 {
		comparison = "above"
	} else if score < benchmark-5 {
		comparison = "below"
	}

	return BenchmarkComparison{
		Benchmark:  benchmark,
		Percentile: percentile,
		Comparison: comparison,
	}
}
