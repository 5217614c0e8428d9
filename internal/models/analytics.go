package models

import "time"

// Analytics event kinds. The counter is deliberately coarse: one row
// per event, aggregated by (game, date, kind).
const (
	EventPageView = "page_view"
	EventPlay     = "play"
)

// AnalyticsEvent is one recorded counter event.
type AnalyticsEvent struct {
	ID        string    `json:"id"` // uuid
	Game      string    `json:"game"`
	Date      string    `json:"date"` // YYYY-MM-DD, client-local
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}

// AnalyticsCount is an aggregated per-day counter row.
type AnalyticsCount struct {
	Game  string `json:"game"`
	Date  string `json:"date"`
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}
