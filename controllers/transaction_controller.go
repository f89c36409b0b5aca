package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/finmentor/finmentor/finance"
	"github.com/finmentor/finmentor/gamification"
	"github.com/finmentor/finmentor/models"
	"github.com/finmentor/finmentor/utils"
)

// TransactionController handles the daily tracker: transaction entry and history.
// Adding a qualifying entry drives the streak tracker and badge evaluator inline.
type TransactionController struct {
	db   *gorm.DB
	game *gamification.Service
}

// NewTransactionController creates a new controller instance.
func NewTransactionController(db *gorm.DB, game *gamification.Service) *TransactionController {
	return &TransactionController{db: db, game: game}
}

func validCategory(category string) bool {
	for _, c := range models.TransactionCategories {
		if c == category {
			return true
		}
	}
	return false
}

// AddTransaction records an income or expense entry. When the entry counts as
// saving activity the streak is advanced and new badges are evaluated before
// the response is written.
func (t *TransactionController) AddTransaction(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		Amount   float64 `json:"amount" binding:"required"`
		Type     string  `json:"type" binding:"required"`
		Category string  `json:"category" binding:"required"`
		Date     string  `json:"date"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}
	if req.Amount <= 0 {
		utils.Error(ctx, http.StatusBadRequest, 40021, "amount must be positive")
		return
	}
	if req.Type != models.TypeIncome && req.Type != models.TypeExpense {
		utils.Error(ctx, http.StatusBadRequest, 40022, "type must be Income or Expense")
		return
	}
	if !validCategory(req.Category) {
		utils.Error(ctx, http.StatusBadRequest, 40023, "unknown category")
		return
	}

	date := time.Now()
	if strings.TrimSpace(req.Date) != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40024, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	tx := models.Transaction{
		Username: username,
		Amount:   req.Amount,
		Type:     req.Type,
		Category: req.Category,
		Date:     date,
	}
	if err := t.db.Create(&tx).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50020, "failed to save transaction")
		return
	}

	resp := gin.H{"transaction": tx}

	if tx.IsSavingActivity() {
		streak, xpEarned, err := t.game.RecordActivity(username, date)
		if err != nil {
			// The entry is saved; report the streak failure rather than rolling back.
			utils.Sugar.Errorf("streak update failed user=%s: %v", username, err)
			utils.Error(ctx, http.StatusInternalServerError, 50021, "failed to update streak")
			return
		}
		resp["streak"] = streak
		resp["xp_earned"] = xpEarned
	}

	newBadges, err := t.game.EvaluateBadges(username)
	if err != nil {
		utils.Sugar.Errorf("badge evaluation failed user=%s: %v", username, err)
		utils.Error(ctx, http.StatusInternalServerError, 50022, "failed to evaluate badges")
		return
	}
	resp["new_badges"] = newBadges

	utils.Success(ctx, resp)
}

// ListTransactions returns the user's full history, newest first, with the
// income/expense/savings summary the dashboard shows.
func (t *TransactionController) ListTransactions(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var txs []models.Transaction
	if err := t.db.Where("username = ?", username).Order("date DESC").Find(&txs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50023, "failed to load transactions")
		return
	}

	var income, expense float64
	for _, tx := range txs {
		switch tx.Type {
		case models.TypeIncome:
			income += tx.Amount
		case models.TypeExpense:
			expense += tx.Amount
		}
	}
	savings := income - expense
	rate := finance.SavingsRate(income, savings)
	score, label := finance.HealthScore(rate)

	utils.Success(ctx, gin.H{
		"items": txs,
		"summary": gin.H{
			"income":       income,
			"expense":      expense,
			"savings":      savings,
			"saving_rate":  rate,
			"health_score": score,
			"health_label": label,
		},
	})
}
