package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"playday/internal/game"
	"playday/internal/models"
	"playday/internal/repository"
)

var ErrInvalidEvent = errors.New("invalid analytics event")

// AnalyticsService records and summarizes the per-game play counter
type AnalyticsService struct {
	repo *repository.AnalyticsRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(repo *repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// Record validates and stores one counter event. The date is the
// client's local calendar date so counts line up with the daily puzzle
// the player actually saw.
func (s *AnalyticsService) Record(gameName, date, kind string) (*models.AnalyticsEvent, error) {
	if !ValidGame(gameName) {
		return nil, ErrInvalidEvent
	}
	if kind != models.EventPageView && kind != models.EventPlay {
		return nil, ErrInvalidEvent
	}
	if _, _, _, err := game.ParseDate(date); err != nil {
		return nil, ErrInvalidEvent
	}

	event := &models.AnalyticsEvent{
		ID:        uuid.New().String(),
		Game:      gameName,
		Date:      date,
		Kind:      kind,
		CreatedAt: time.Now(),
	}
	if err := s.repo.RecordEvent(event); err != nil {
		return nil, err
	}
	return event, nil
}

// Summary aggregates counts per (game, date, kind) over the trailing
// window of days ending today.
func (s *AnalyticsService) Summary(days int) ([]models.AnalyticsCount, error) {
	if days < 1 {
		days = 1
	}
	to := time.Now()
	from := to.AddDate(0, 0, -(days - 1))
	return s.repo.GetCounts(from.Format(game.DateLayout), to.Format(game.DateLayout))
}
