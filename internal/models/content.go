package models

import (
	"time"

	"playday/internal/game"
)

// Player is one Squaddle content row: a footballer with accepted-answer
// aliases and six ordered clues. Rows are created and edited through the
// admin panel and are read-only to the resolver during a day's play.
type Player struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	AcceptedAnswers []string        `json:"acceptedAnswers"`
	Clues           []string        `json:"clues"`
	Difficulty      game.Difficulty `json:"difficulty"`
	// ScheduledDate pins the row to one exact date for its difficulty
	// slot; empty means the row belongs to the random fallback pool.
	ScheduledDate string    `json:"scheduledDate,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (p *Player) SlotDifficulty() game.Difficulty { return p.Difficulty }
func (p *Player) ScheduledFor() string            { return p.ScheduledDate }
func (p *Player) CardID() int64                   { return p.ID }
func (p *Player) CardName() string                { return p.Name }
func (p *Player) Answers() []string               { return p.AcceptedAnswers }
func (p *Player) ClueTexts() []string             { return p.Clues }

// WordSet is one Odd One Out content row: a themed category with
// in-theme items and candidate outliers.
type WordSet struct {
	ID            int64           `json:"id"`
	Theme         string          `json:"theme"`
	BelongItems   []string        `json:"belongs"`
	OutlierItems  []string        `json:"outliers"`
	Difficulty    game.Difficulty `json:"difficulty"`
	ScheduledDate string          `json:"scheduledDate,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (w *WordSet) SlotDifficulty() game.Difficulty { return w.Difficulty }
func (w *WordSet) ScheduledFor() string            { return w.ScheduledDate }
func (w *WordSet) GroupTheme() string              { return w.Theme }
func (w *WordSet) Belongs() []string               { return w.BelongItems }
func (w *WordSet) Outliers() []string              { return w.OutlierItems }
