package repository

import (
	"fmt"

	"playday/internal/database"
	"playday/internal/models"
)

// AnalyticsRepository handles database operations for the play counter
type AnalyticsRepository struct {
	db *database.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *database.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// RecordEvent stores one counter event
func (r *AnalyticsRepository) RecordEvent(e *models.AnalyticsEvent) error {
	query := `
		INSERT INTO analytics_events (id, game, date, kind)
		VALUES (?, ?, ?, ?)
	`
	if _, err := r.db.Exec(query, e.ID, e.Game, e.Date, e.Kind); err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}

// GetCounts aggregates events per (game, date, kind) for a date range,
// inclusive on both ends.
func (r *AnalyticsRepository) GetCounts(from, to string) ([]models.AnalyticsCount, error) {
	query := `
		SELECT game, date, kind, COUNT(*)
		FROM analytics_events
		WHERE date >= ? AND date <= ?
		GROUP BY game, date, kind
		ORDER BY date ASC, game ASC, kind ASC
	`
	rows, err := r.db.Query(query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query counts: %w", err)
	}
	defer rows.Close()

	var counts []models.AnalyticsCount
	for rows.Next() {
		var c models.AnalyticsCount
		if err := rows.Scan(&c.Game, &c.Date, &c.Kind, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
