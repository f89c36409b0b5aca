package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/finmentor/finmentor/config"
	"github.com/finmentor/finmentor/gamification"
	"github.com/finmentor/finmentor/models"
	"github.com/finmentor/finmentor/utils"
)

// QuizController records financial-quiz results. Quiz content lives in the
// frontend; the backend only stores tallies, grants bonus XP, and re-evaluates
// badges.
type QuizController struct {
	db   *gorm.DB
	game *gamification.Service
}

// NewQuizController creates a new controller instance.
func NewQuizController(db *gorm.DB, game *gamification.Service) *QuizController {
	return &QuizController{db: db, game: game}
}

// SubmitQuiz persists a quiz tally, awards XP per correct answer, and returns
// any newly unlocked badges.
func (q *QuizController) SubmitQuiz(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		Topic string `json:"topic" binding:"required"`
		Score int    `json:"score"`
		Total int    `json:"total" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40030, "invalid request payload")
		return
	}
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" || req.Total <= 0 || req.Score < 0 || req.Score > req.Total {
		utils.Error(ctx, http.StatusBadRequest, 40031, "score must be between 0 and total")
		return
	}

	record := models.QuizScore{
		Username: username,
		Topic:    req.Topic,
		Score:    req.Score,
		Total:    req.Total,
	}
	if err := q.db.Create(&record).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to save quiz score")
		return
	}

	xpBonus := req.Score * config.Get().QuizXPPerCorrect
	streak, err := q.game.AddXP(username, xpBonus)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50031, "failed to award xp")
		return
	}

	newBadges, err := q.game.EvaluateBadges(username)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50032, "failed to evaluate badges")
		return
	}

	utils.Success(ctx, gin.H{
		"quiz":       record,
		"xp_earned":  xpBonus,
		"total_xp":   streak.TotalXP,
		"new_badges": newBadges,
	})
}

// ListQuizScores returns the user's quiz history, newest first.
func (q *QuizController) ListQuizScores(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var scores []models.QuizScore
	if err := q.db.Where("username = ?", username).Order("created_at DESC").Find(&scores).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50033, "failed to load quiz scores")
		return
	}
	utils.Success(ctx, gin.H{"items": scores})
}
