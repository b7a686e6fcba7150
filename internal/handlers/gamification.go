package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/gamification"
	"github.com/BTL5010TEJA/smart-mock-interview/internal/repository"
)

type GamificationHandler struct {
	log *zap.Logger
}

func NewGamificationHandler(log *zap.Logger) *GamificationHandler {
	return &GamificationHandler{log: log}
}

// GetState returns the user's gamification state, creating the initial
// state on first access.
func (h *GamificationHandler) GetState(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	state, err := repository.GetOrCreateGamificationState(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to load gamification state", zap.Error(err), zap.Uint("user_id", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load progress"})
		return
	}

	c.JSON(http.StatusOK, state)
}

// GetDailyChallenge returns today's rotating challenge. Every user sees the
// same challenge on the same day.
func (h *GamificationHandler) GetDailyChallenge(c *gin.Context) {
	c.JSON(http.StatusOK, gamification.DailyChallenge(time.Now()))
}

// GetLeaderboard estimates the user's leaderboard standing from total XP.
func (h *GamificationHandler) GetLeaderboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	state, err := repository.GetOrCreateGamificationState(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to load gamification state", zap.Error(err), zap.Uint("user_id", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load leaderboard"})
		return
	}

	position, percentile := gamification.LeaderboardPosition(state.XP)
	c.JSON(http.StatusOK, gin.H{
		"position":   position,
		"percentile": percentile,
		"totalXP":    state.XP,
	})
}
