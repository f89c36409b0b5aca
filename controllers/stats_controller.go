package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/finmentor/finmentor/models"
	"github.com/finmentor/finmentor/utils"
)

// StatsController provides instance-wide statistics for the landing page.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

// GetStats returns aggregate statistics across all users.
func (s *StatsController) GetStats(ctx *gin.Context) {
	var userCount int64
	var transactionCount int64
	var badgeCount int64
	var activeToday int64

	if err := s.db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		// Fall back to 0 instead of failing the whole endpoint
		userCount = 0
	}
	if err := s.db.Model(&models.Transaction{}).Count(&transactionCount).Error; err != nil {
		transactionCount = 0
	}
	if err := s.db.Model(&models.Badge{}).Count(&badgeCount).Error; err != nil {
		badgeCount = 0
	}

	// Savers active today: streak records whose last activity date is today.
	// Use string date equality to avoid timezone/type mismatches with the DATE column.
	today := time.Now().In(time.Local).Format("2006-01-02")
	if err := s.db.Model(&models.Streak{}).
		Where("last_activity_date = ?", today).
		Count(&activeToday).Error; err != nil {
		activeToday = 0
	}

	utils.Success(ctx, gin.H{
		"user_count":        userCount,
		"transaction_count": transactionCount,
		"badges_awarded":    badgeCount,
		"active_today":      activeToday,
	})
}
