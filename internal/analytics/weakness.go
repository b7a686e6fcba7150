package analytics

import (
	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
)

// weaknessThreshold is the category average below which a skill area is
// flagged for improvement.
const weaknessThreshold = 65

// IdentifyWeaknesses flags skill categories whose historical average falls
// below the threshold, then checks the last three sessions for per-category
// declines of more than 10 points. Categories are always evaluated in the
// order technical, communication, behavioral.
func IdentifyWeaknesses(history []models.PerformanceMetrics) []string {
	if len(history) == 0 {
		return []string{}
	}

	weaknesses := []string{}

	var technicalSum, communicationSum, behavioralSum float64
	for _, h := range history {
		technicalSum += float64(h.TechnicalScore)
		communicationSum += float64(h.CommunicationScore)
		behavioralSum += float64(h.BehavioralScore)
	}
	n := float64(len(history))

	if technicalSum/n < weaknessThreshold {
		weaknesses = append(weaknesses, "Technical Skills - Consider practicing coding problems and system design")
	}
	if communicationSum/n < weaknessThreshold {
		weaknesses = append(weaknesses, "Communication Skills - Work on articulating thoughts clearly and concisely")
	}
	if behavioralSum/n < weaknessThreshold {
		weaknesses = append(weaknesses, "Behavioral Responses - Practice STAR method for behavioral questions")
	}

	if len(history) >= 3 {
		recent := history[len(history)-3:]

		if recent[2].TechnicalScore-recent[0].TechnicalScore < -10 {
			weaknesses = append(weaknesses, "Technical scores showing decline - review fundamentals")
		}
		if recent[2].CommunicationScore-recent[0].CommunicationScore < -10 {
			weaknesses = append(weaknesses, "Communication effectiveness decreasing - focus on clarity")
		}
		if recent[2].BehavioralScore-recent[0].BehavioralScore < -10 {
			weaknesses = append(weaknesses, "Behavioral responses need attention - prepare more examples")
		}
	}

	return weaknesses
}
