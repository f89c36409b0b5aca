package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finmentor/finmentor/gamification"
	"github.com/finmentor/finmentor/utils"
)

// GamificationController exposes the read side of the engine: summary, level
// lookup, and nudges.
type GamificationController struct {
	game *gamification.Service
}

// NewGamificationController creates a new controller instance.
func NewGamificationController(game *gamification.Service) *GamificationController {
	return &GamificationController{game: game}
}

// GetSummary returns streak, level, and badges in one read-model.
func (g *GamificationController) GetSummary(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	summary, err := g.game.Summary(username)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to load summary")
		return
	}
	utils.Success(ctx, summary)
}

// GetNudges computes the user's current behavioral nudges. Nothing is stored;
// every call reflects the latest state.
func (g *GamificationController) GetNudges(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	nudges, err := g.game.GenerateNudges(username)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to generate nudges")
		return
	}
	if nudges == nil {
		nudges = []gamification.Nudge{}
	}
	utils.Success(ctx, gin.H{"items": nudges})
}

// GetLevel resolves an arbitrary XP total against the level table. Used by the
// frontend to render level previews; pure and unauthenticated.
func (g *GamificationController) GetLevel(ctx *gin.Context) {
	xp, err := strconv.Atoi(ctx.DefaultQuery("xp", "0"))
	if err != nil || xp < 0 {
		utils.Error(ctx, http.StatusBadRequest, 40041, "xp must be a non-negative integer")
		return
	}
	utils.Success(ctx, gamification.ResolveLevel(xp))
}
