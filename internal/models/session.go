package models

// Difficulty levels recognized by the XP calculator. Anything else falls
// back to the Easy multiplier.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
	DifficultyExpert = "Expert"
)

// EvaluationCriterion is one scored dimension of a completed interview,
// as delivered by the evaluation front end. Name is free text and is
// matched case-insensitively against category keyword sets.
type EvaluationCriterion struct {
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
	MaxScore  float64 `json:"maxScore"`
	Reasoning string  `json:"reasoning"`
}

// SkillAssessment is a self- or system-reported skill level snapshot.
// Only the count of assessments feeds the success prediction today.
type SkillAssessment struct {
	SkillName      string `json:"skillName"`
	Level          int    `json:"level"` // 0-100
	Category       string `json:"category"`
	AssessmentDate int64  `json:"assessmentDate"`
	Improvement    int    `json:"improvement"`
}
