package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/analytics"
	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
	"github.com/BTL5010TEJA/smart-mock-interview/internal/repository"
)

type AnalyticsHandler struct {
	log *zap.Logger
}

func NewAnalyticsHandler(log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{log: log}
}

// GetAnalytics builds the full analytics report for the logged-in user.
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	history, err := repository.GetPerformanceHistory(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to load performance history", zap.Error(err), zap.Uint("user_id", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analytics"})
		return
	}

	latest, err := repository.GetLatestPerformanceMetrics(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no completed sessions yet"})
			return
		}
		h.log.Error("Failed to load latest metrics", zap.Error(err), zap.Uint("user_id", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analytics"})
		return
	}

	data := analytics.GenerateAnalyticsData(history, *latest, user.TargetRole)
	c.JSON(http.StatusOK, data)
}

// GetBenchmark compares the user's latest overall score against the band
// for an arbitrary role, defaulting to the user's target role.
func (h *AnalyticsHandler) GetBenchmark(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	role := c.Query("role")
	if role == "" {
		role = user.TargetRole
	}

	latest, err := repository.GetLatestPerformanceMetrics(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no completed sessions yet"})
			return
		}
		h.log.Error("Failed to load latest metrics", zap.Error(err), zap.Uint("user_id", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load benchmark"})
		return
	}

	c.JSON(http.StatusOK, analytics.CompareWithBenchmark(latest.OverallScore, role))
}

// GetTrends reports the improving/declining/stable classification over the
// user's history.
func (h *AnalyticsHandler) GetTrends(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	history, err := repository.GetPerformanceHistory(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to load performance history", zap.Error(err), zap.Uint("user_id", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load trends"})
		return
	}

	c.JSON(http.StatusOK, analytics.AnalyzeTrends(history))
}

// GetScoreChart returns echarts line-chart options for one metric of the
// user's history, ready for the front end to feed to echarts.setOption.
func (h *AnalyticsHandler) GetScoreChart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	metric := c.DefaultQuery("metric", "overall")
	points, err := repository.GetScoreTimeline(c.Request.Context(), user.ID, metric)
	if err != nil {
		h.log.Error("Failed to get score timeline", zap.Error(err), zap.String("metric", metric))
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to load chart data"})
		return
	}

	chart := generateScoreChart(points, metric)
	optionsJSON, err := json.Marshal(chart.JSON())
	if err != nil {
		h.log.Error("Failed to marshal chart options", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build chart"})
		return
	}

	c.Data(http.StatusOK, "application/json", optionsJSON)
}

// GetRadarChart returns echarts radar-chart options for the user's latest
// skill breakdown.
func (h *AnalyticsHandler) GetRadarChart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	latest, err := repository.GetLatestPerformanceMetrics(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no completed sessions yet"})
			return
		}
		h.log.Error("Failed to load latest metrics", zap.Error(err), zap.Uint("user_id", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build chart"})
		return
	}

	chart := generateSkillRadarChart(analytics.SkillRadar(*latest))
	optionsJSON, err := json.Marshal(chart.JSON())
	if err != nil {
		h.log.Error("Failed to marshal chart options", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build chart"})
		return
	}

	c.Data(http.StatusOK, "application/json", optionsJSON)
}

func generateScoreChart(points []repository.TimelinePoint, metric string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Performance Over Time",
			Subtitle: metric,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "time",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	items := make([]opts.LineData, 0)
	for _, point := range points {
		items = append(items, opts.LineData{Value: []interface{}{point.Timestamp, point.Value}})
	}

	line.AddSeries(metric, items).SetSeriesOptions(charts.WithLineStyleOpts(opts.LineStyle{Width: 2}))
	return line
}

func generateSkillRadarChart(skills []models.SkillScore) *charts.Radar {
	indicators := make([]*opts.Indicator, 0, len(skills))
	values := make([]int, 0, len(skills))
	for _, s := range skills {
		indicators = append(indicators, &opts.Indicator{Name: s.Skill, Max: 100})
		values = append(values, s.Score)
	}

	radar := charts.NewRadar()
	radar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Skill Breakdown"}),
		charts.WithRadarComponentOpts(opts.RadarComponent{
			Indicator: indicators,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	radar.AddSeries("Skills", []opts.RadarData{{Value: values}})
	return radar
}
