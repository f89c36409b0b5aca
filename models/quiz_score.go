package models

import "time"

// QuizScore is an append-only record of a completed financial quiz.
type QuizScore struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Username  string    `gorm:"size:64;index;not null" json:"username"`
	Topic     string    `gorm:"size:64;not null" json:"topic"`
	Score     int       `gorm:"not null" json:"score"`
	Total     int       `gorm:"not null" json:"total"`
	CreatedAt time.Time `json:"date"`
}
