package models

import "time"

// Risk levels accepted by the goal tracker, mapped to expected annual returns.
const (
	RiskLow    = "low"    // 6%, FD/RD
	RiskMedium = "medium" // 10%, index fund
	RiskHigh   = "high"   // 15%, equity SIP
)

// Goal is a savings target the user works toward. Reaching one awards the
// manual "Goal Achiever" badge.
type Goal struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Username      string    `gorm:"size:64;index;not null" json:"username"`
	Name          string    `gorm:"size:128" json:"name"`
	TargetAmount  float64   `gorm:"not null" json:"target_amount"`
	MonthlySaving float64   `gorm:"not null" json:"monthly_saving"`
	Months        int       `gorm:"not null" json:"months"`
	RiskLevel     string    `gorm:"size:16;default:medium" json:"risk_level"`
	Achieved      bool      `gorm:"default:false" json:"achieved"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
