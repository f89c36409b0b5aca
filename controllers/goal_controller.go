package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/finmentor/finmentor/finance"
	"github.com/finmentor/finmentor/gamification"
	"github.com/finmentor/finmentor/models"
	"github.com/finmentor/finmentor/utils"
)

// GoalController manages savings goals: projection math on reads, and the
// manual Goal Achiever badge when a target is met.
type GoalController struct {
	db   *gorm.DB
	game *gamification.Service
}

// NewGoalController creates a new controller instance.
func NewGoalController(db *gorm.DB, game *gamification.Service) *GoalController {
	return &GoalController{db: db, game: game}
}

// goalView decorates a goal with its compound-growth projection.
func goalView(g models.Goal, totalSavings float64) gin.H {
	rate := finance.RateForRisk(g.RiskLevel)
	future := finance.CompoundGrowth(g.MonthlySaving, rate, g.Months)
	progress := 0.0
	if g.TargetAmount > 0 {
		progress = totalSavings / g.TargetAmount
		if progress > 1 {
			progress = 1
		}
	}
	return gin.H{
		"goal":            g,
		"expected_amount": future,
		"achievable":      future >= g.TargetAmount,
		"progress":        progress,
	}
}

// CreateGoal registers a new savings goal.
func (gc *GoalController) CreateGoal(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		Name          string  `json:"name"`
		TargetAmount  float64 `json:"target_amount" binding:"required"`
		MonthlySaving float64 `json:"monthly_saving" binding:"required"`
		Months        int     `json:"months" binding:"required"`
		RiskLevel     string  `json:"risk_level"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40060, "invalid request payload")
		return
	}
	if req.TargetAmount <= 0 || req.MonthlySaving < 0 || req.Months < 1 || req.Months > 600 {
		utils.Error(ctx, http.StatusBadRequest, 40061, "invalid goal parameters")
		return
	}
	risk := strings.ToLower(strings.TrimSpace(req.RiskLevel))
	switch risk {
	case "":
		risk = models.RiskMedium
	case models.RiskLow, models.RiskMedium, models.RiskHigh:
	default:
		utils.Error(ctx, http.StatusBadRequest, 40062, "risk_level must be low, medium, or high")
		return
	}

	goal := models.Goal{
		Username:      username,
		Name:          strings.TrimSpace(req.Name),
		TargetAmount:  req.TargetAmount,
		MonthlySaving: req.MonthlySaving,
		Months:        req.Months,
		RiskLevel:     risk,
	}
	if err := gc.db.Create(&goal).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to save goal")
		return
	}

	utils.Success(ctx, goalView(goal, 0))
}

// ListGoals returns the user's goals with projections against current savings.
func (gc *GoalController) ListGoals(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var goals []models.Goal
	if err := gc.db.Where("username = ?", username).Order("created_at DESC").Find(&goals).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50061, "failed to load goals")
		return
	}

	total, err := gc.totalSavings(username)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50062, "failed to load savings")
		return
	}

	views := make([]gin.H, 0, len(goals))
	for _, g := range goals {
		views = append(views, goalView(g, total))
	}
	utils.Success(ctx, gin.H{"items": views, "total_savings": total})
}

// CheckGoal re-evaluates one goal against current savings. Crossing the target
// marks the goal achieved and awards the Goal Achiever badge, the only path
// that grants it.
func (gc *GoalController) CheckGoal(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var goal models.Goal
	if err := gc.db.Where("id = ? AND username = ?", ctx.Param("id"), username).First(&goal).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40460, "goal not found")
		return
	}

	total, err := gc.totalSavings(username)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50062, "failed to load savings")
		return
	}

	newlyAchieved := false
	if !goal.Achieved && total >= goal.TargetAmount {
		goal.Achieved = true
		if err := gc.db.Model(&goal).Update("achieved", true).Error; err != nil {
			utils.Error(ctx, http.StatusInternalServerError, 50063, "failed to update goal")
			return
		}
		if _, err := gc.game.AwardManual(username, gamification.GoalAchieverBadge); err != nil {
			utils.Sugar.Errorf("goal achiever award failed user=%s: %v", username, err)
		}
		newlyAchieved = true
	}

	resp := goalView(goal, total)
	resp["newly_achieved"] = newlyAchieved
	utils.Success(ctx, resp)
}

func (gc *GoalController) totalSavings(username string) (float64, error) {
	var total float64
	err := gc.db.Model(&models.Transaction{}).
		Where("username = ?", username).
		Select("COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE -amount END), 0)", models.TypeIncome).
		Scan(&total).Error
	return total, err
}
