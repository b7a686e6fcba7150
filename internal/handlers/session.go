package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/analytics"
	"github.com/BTL5010TEJA/smart-mock-interview/internal/gamification"
	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
	"github.com/BTL5010TEJA/smart-mock-interview/internal/repository"
)

type SessionHandler struct {
	log     *zap.Logger
	Catalog *models.Catalog
}

func NewSessionHandler(log *zap.Logger, catalog *models.Catalog) *SessionHandler {
	return &SessionHandler{log: log, Catalog: catalog}
}

// Catalog data is static per deployment; clients read it to populate the
// interview setup screens.
func (h *SessionHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog)
}

type completeSessionRequest struct {
	Role         string                       `json:"role"`
	Difficulty   string                       `json:"difficulty" binding:"required"`
	Duration     int                          `json:"duration"`
	OverallScore int                          `json:"overallScore"`
	Criteria     []models.EvaluationCriterion `json:"criteria"`
}

// Complete ingests one finished interview session: it derives the
// performance snapshot, appends it to the history and applies the session
// to the user's gamification state, all reported back in one response.
func (h *SessionHandler) Complete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req completeSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Duration < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration cannot be negative"})
		return
	}

	metrics := analytics.CalculatePerformanceMetrics(req.OverallScore, req.Criteria, req.Duration)
	metrics.UserID = user.ID

	if err := repository.SavePerformanceMetrics(c.Request.Context(), &metrics); err != nil {
		h.log.Error("Failed to save performance metrics", zap.Error(err), zap.Uint("user_id", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record session"})
		return
	}

	state, err := repository.GetOrCreateGamificationState(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to load gamification state", zap.Error(err), zap.Uint("user_id", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update progress"})
		return
	}

	result := gamification.UpdateGamificationState(*state, gamification.SessionData{
		Score:             metrics.OverallScore,
		Difficulty:        req.Difficulty,
		Duration:          req.Duration,
		LastInterviewDate: state.LastInterviewAt,
	})

	if err := repository.ReplaceGamificationState(c.Request.Context(), &result.State); err != nil {
		h.log.Error("Failed to persist gamification state", zap.Error(err), zap.Uint("user_id", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update progress"})
		return
	}

	h.log.Info("Session recorded",
		zap.Uint("user_id", user.ID),
		zap.String("session_id", metrics.SessionID),
		zap.Int("overall_score", metrics.OverallScore),
		zap.Int("earned_xp", result.EarnedXP),
	)

	c.JSON(http.StatusCreated, gin.H{
		"metrics":         metrics,
		"earnedXP":        result.EarnedXP,
		"leveledUp":       result.LeveledUp,
		"newAchievements": result.NewAchievements,
		"gamification":    result.State,
	})
}
