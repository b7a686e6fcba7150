package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
	"github.com/BTL5010TEJA/smart-mock-interview/internal/repository"
	"github.com/BTL5010TEJA/smart-mock-interview/internal/voice"
)

type VoiceHandler struct {
	log      *zap.Logger
	analyzer *voice.Analyzer
}

func NewVoiceHandler(log *zap.Logger, analyzer *voice.Analyzer) *VoiceHandler {
	return &VoiceHandler{log: log, analyzer: analyzer}
}

// Analyze accepts a multipart form with a "transcript" field and an
// optional "audio" file. Only the audio byte size feeds the analysis; the
// recording itself is never stored.
func (h *VoiceHandler) Analyze(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	transcript := c.PostForm("transcript")
	if transcript == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transcript is required"})
		return
	}

	var audioSize int64
	if file, err := c.FormFile("audio"); err == nil {
		audioSize = file.Size
	}

	metrics := h.analyzer.Analyze(audioSize, transcript)

	result := models.VoiceResult{
		UserID:          user.ID,
		SpeechRate:      metrics.SpeechRate,
		Clarity:         metrics.Clarity,
		Volume:          metrics.Volume,
		Tone:            metrics.Tone,
		FillerWordCount: metrics.FillerWordCount,
		FillerWords:     metrics.FillerWords,
		PauseDuration:   metrics.PauseDuration,
		OverallScore:    metrics.OverallScore,
	}
	if err := repository.SaveVoiceResult(c.Request.Context(), &result); err != nil {
		h.log.Error("Failed to save voice result", zap.Error(err), zap.Uint("user_id", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save analysis"})
		return
	}

	c.JSON(http.StatusCreated, metrics)
}

// History returns the user's past voice analyses, newest first.
func (h *VoiceHandler) History(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = parsed
	}

	results, err := repository.GetVoiceResults(c.Request.Context(), user.ID, limit)
	if err != nil {
		h.log.Error("Failed to load voice results", zap.Error(err), zap.Uint("user_id", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	c.JSON(http.StatusOK, results)
}
