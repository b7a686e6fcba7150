package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/database"
)

// TimelinePoint is one sample on a score-over-time chart.
type TimelinePoint struct {
	Timestamp time.Time
	Value     float64
}

// Whitelist of chartable columns. The metric name arrives from a query
// parameter, so it must never be interpolated into SQL unchecked.
var chartableMetrics = map[string]string{
	"overall":       "overall_score",
	"technical":     "technical_score",
	"communication": "communication_score",
	"behavioral":    "behavioral_score",
	"duration":      "duration",
}

// GetScoreTimeline fetches raw (timestamp, value) pairs for one metric of
// one user, oldest first.
func GetScoreTimeline(ctx context.Context, userID uint, metric string) ([]TimelinePoint, error) {
	column, ok := chartableMetrics[metric]
	if !ok {
		return nil, fmt.Errorf("unknown chart metric: %s", metric)
	}

	query := fmt.Sprintf(`
        SELECT
            to_timestamp(date / 1000.0) AS timestamp,
            %s AS value
        FROM performance_metrics
        WHERE user_id = ?
        ORDER BY date ASC;`, column)

	rows, err := database.DB.WithContext(ctx).Raw(query, userID).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query score timeline: %w", err)
	}
	defer rows.Close()

	var points []TimelinePoint
	for rows.Next() {
		var p TimelinePoint
		if err := rows.Scan(&p.Timestamp, &p.Value); err != nil {
			return nil, fmt.Errorf("failed to scan timeline row: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
