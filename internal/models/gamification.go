package models

import (
	"time"

	"github.com/lib/pq"
)

// Achievement rarities.
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// Achievement is one entry of the fixed achievement set. The set of keys is
// defined at startup; only Unlocked/UnlockedAt ever change, and Unlocked is
// one-way (false -> true).
type Achievement struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	StateID     uint   `gorm:"index" json:"-"`
	Key         string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
	UnlockedAt  *int64 `json:"unlockedAt,omitempty"` // epoch milliseconds
	Rarity      string `json:"rarity"`
}

// GamificationState is the single long-lived gamification object per user.
// Updates replace the whole value; callers never see partial mutation.
type GamificationState struct {
	ID              uint           `gorm:"primaryKey" json:"-"`
	UserID          uint           `gorm:"uniqueIndex" json:"-"`
	Level           int            `json:"level"`
	XP              int            `json:"xp"`
	XPToNextLevel   int            `json:"xpToNextLevel"`
	Streak          int            `json:"streak"`
	TotalInterviews int            `json:"totalInterviews"`
	LastInterviewAt int64          `json:"lastInterviewAt"` // epoch milliseconds, 0 before the first session
	Achievements    []Achievement  `gorm:"foreignKey:StateID" json:"achievements"`
	Badges          pq.StringArray `gorm:"type:text[]" json:"badges"`
	CreatedAt       time.Time      `json:"-"`
	UpdatedAt       time.Time      `json:"-"`
}
