package analytics

import "math"

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev is the population standard deviation (divide by n, not n-1).
func stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	avg := mean(values)
	var sumSquaredDiff float64
	for _, v := range values {
		diff := v - avg
		sumSquaredDiff += diff * diff
	}
	variance := sumSquaredDiff / float64(len(values))
	return math.Sqrt(variance)
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// roundClampScore rounds and clamps to the documented 0-100 range.
func roundClampScore(v float64) int {
	return int(math.Round(clampScore(v)))
}
