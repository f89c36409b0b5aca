package controllers

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finmentor/finmentor/config"
	"github.com/finmentor/finmentor/utils"
)

// AdviceController proxies coaching questions to the Gemini text-completion
// API. Responses are cached in Redis so repeated questions don't re-bill.
type AdviceController struct {
	client *http.Client
}

// NewAdviceController creates a new controller instance.
func NewAdviceController() *AdviceController {
	return &AdviceController{client: &http.Client{Timeout: 20 * time.Second}}
}

const advicePrompt = `You are a friendly financial mentor for college students.

Student Data:
Monthly Income: ₹%.0f
Monthly Expenses: ₹%.0f
Monthly Savings: ₹%.0f
Goal Amount: ₹%.0f
Duration: %d months

User Question:
%s

Provide:
1. Clear financial advice
2. Spending improvement suggestions
3. Simple explanation of risks if relevant
4. Motivation to build saving discipline

Keep response short, practical and student-friendly.`

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GetAdvice answers a coaching question with the user's financial context.
func (a *AdviceController) GetAdvice(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		Question string  `json:"question" binding:"required"`
		Income   float64 `json:"income"`
		Expenses float64 `json:"expenses"`
		Savings  float64 `json:"savings"`
		Goal     float64 `json:"goal"`
		Months   int     `json:"months"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40070, "invalid request payload")
		return
	}
	question := utils.SanitizePlain(strings.TrimSpace(req.Question))
	if question == "" {
		utils.Error(ctx, http.StatusBadRequest, 40071, "question must not be empty")
		return
	}

	cfg := config.Get()
	if cfg.GeminiAPIKey == "" {
		utils.Error(ctx, http.StatusServiceUnavailable, 50370, "advice service not configured")
		return
	}

	prompt := fmt.Sprintf(advicePrompt, req.Income, req.Expenses, req.Savings, req.Goal, req.Months, question)

	cacheKey := adviceCacheKey(username, prompt)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		utils.Success(ctx, gin.H{"advice": string(b), "cached": true})
		return
	}

	advice, err := a.generate(ctx.Request.Context(), cfg, prompt)
	if err != nil {
		utils.Sugar.Errorf("advice generation failed user=%s: %v", username, err)
		utils.Error(ctx, http.StatusBadGateway, 50270, "failed to generate advice")
		return
	}

	advice = utils.SanitizePlain(advice)
	utils.CacheSetBytes(cacheKey, []byte(advice), time.Duration(cfg.AdviceCacheTTLMin)*time.Minute)
	utils.Success(ctx, gin.H{"advice": advice, "cached": false})
}

// generate performs the Gemini generateContent call.
func (a *AdviceController) generate(ctx context.Context, cfg config.AppConfig, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		cfg.GeminiModel, cfg.GeminiAPIKey,
	)

	reqCtx, cancel := context.WithTimeout(ctx, 18*time.Second)
	defer cancel()
	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func adviceCacheKey(username, prompt string) string {
	sum := sha256.Sum256([]byte(username + "|" + prompt))
	return "cache:advice:" + hex.EncodeToString(sum[:16])
}
