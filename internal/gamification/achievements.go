package gamification

import (
	"time"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
)

// Achievement keys.
const (
	AchievementFirstInterview  = "first_interview"
	AchievementPerfectScore    = "perfect_score"
	AchievementWeekStreak      = "week_streak"
	AchievementTenInterviews   = "ten_interviews"
	AchievementAllDifficulties = "all_difficulties"
)

// DefaultAchievements returns a fresh copy of the fixed achievement set,
// all locked. The set of keys never changes at runtime.
func DefaultAchievements() []models.Achievement {
	return []models.Achievement{
		{
			Key:         AchievementFirstInterview,
			Name:        "First Steps",
			Description: "Complete your first mock interview",
			Icon:        "🎯",
			Rarity:      models.RarityCommon,
		},
		{
			Key:         AchievementPerfectScore,
			Name:        "Perfectionist",
			Description: "Score 100/100 in an interview",
			Icon:        "⭐",
			Rarity:      models.RarityLegendary,
		},
		{
			Key:         AchievementWeekStreak,
			Name:        "Consistent Learner",
			Description: "Practice for 7 days in a row",
			Icon:        "🔥",
			Rarity:      models.RarityRare,
		},
		{
			Key:         AchievementTenInterviews,
			Name:        "Interview Veteran",
			Description: "Complete 10 mock interviews",
			Icon:        "🏆",
			Rarity:      models.RarityEpic,
		},
		{
			Key:         AchievementAllDifficulties,
			Name:        "Challenge Master",
			Description: "Complete interviews at all difficulty levels",
			Icon:        "💎",
			Rarity:      models.RarityEpic,
		},
	}
}

// SessionOutcome is the slice of a completed session that achievement
// predicates look at.
type SessionOutcome struct {
	Score            int
	Difficulty       string
	IsFirstInterview bool
}

// AchievementCheck is the result of an unlock pass: the full achievement
// list with unlock state applied, plus the subset unlocked by this session.
type AchievementCheck struct {
	Updated       []models.Achievement
	NewlyUnlocked []models.Achievement
}

// CheckAchievements evaluates unlock conditions against the given state and
// session outcome. Already-unlocked achievements are skipped, so unlocking
// is monotonic and idempotent. The input slice is never mutated; unlocked
// entries are fresh values in the returned copy.
func CheckAchievements(state models.GamificationState, session SessionOutcome) AchievementCheck {
	updated := make([]models.Achievement, len(state.Achievements))
	copy(updated, state.Achievements)

	newlyUnlocked := []models.Achievement{}

	for i, achievement := range updated {
		if achievement.Unlocked {
			continue
		}

		shouldUnlock := false
		switch achievement.Key {
		case AchievementFirstInterview:
			shouldUnlock = session.IsFirstInterview
		case AchievementPerfectScore:
			shouldUnlock = session.Score == 100
		case AchievementWeekStreak:
			shouldUnlock = state.Streak >= 7
		case AchievementTenInterviews:
			shouldUnlock = state.TotalInterviews >= 10
		case AchievementAllDifficulties:
			// TODO: track which difficulties were actually completed; the
			// interview count is a stand-in until then.
			shouldUnlock = state.TotalInterviews >= 4
		}

		if shouldUnlock {
			now := time.Now().UnixMilli()
			updated[i].Unlocked = true
			updated[i].UnlockedAt = &now
			newlyUnlocked = append(newlyUnlocked, updated[i])
		}
	}

	return AchievementCheck{Updated: updated, NewlyUnlocked: newlyUnlocked}
}

// UpdateStreak recomputes the practice streak from the time of the last
// interview. Days are counted as elapsed 24h blocks, not calendar days; a
// same-day repeat leaves the streak alone, the next day extends it, and any
// longer gap resets it to 1.
func UpdateStreak(lastInterviewDate int64, currentStreak int) int {
	const dayInMs = 24 * 60 * 60 * 1000

	daysSince := (time.Now().UnixMilli() - lastInterviewDate) / dayInMs

	switch daysSince {
	case 0:
		return currentStreak
	case 1:
		return currentStreak + 1
	default:
		return 1
	}
}
