package models

import "time"

// Streak is the per-user saving streak record. One row per username, upserted
// by the gamification engine only.
//
// Invariants: LongestStreak >= CurrentStreak, TotalXP never decreases, and
// LastActivityDate (when set) is never in the future.
type Streak struct {
	ID               uint       `gorm:"primaryKey" json:"-"`
	Username         string     `gorm:"size:64;uniqueIndex;not null" json:"username"`
	CurrentStreak    int        `gorm:"default:0" json:"current_streak"`
	LongestStreak    int        `gorm:"default:0" json:"longest_streak"`
	LastActivityDate *time.Time `gorm:"type:date" json:"last_activity_date"`
	TotalXP          int        `gorm:"default:0" json:"total_xp"`
	CreatedAt        time.Time  `json:"-"`
	UpdatedAt        time.Time  `json:"-"`
}
