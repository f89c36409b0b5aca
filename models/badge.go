package models

import "time"

// Badge is a permanently earned achievement. The (username, name) pair is
// unique so a concurrent double-award degrades to a no-op insert.
type Badge struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	Username   string    `gorm:"size:64;uniqueIndex:idx_user_badge;not null" json:"username"`
	Name       string    `gorm:"size:64;uniqueIndex:idx_user_badge;not null" json:"name"`
	EarnedDate time.Time `json:"earned_date"`
}
