package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"playday/internal/game"
	"playday/internal/models"
	"playday/internal/repository"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrScheduleConflict = errors.New("another item is already scheduled for that difficulty and date")
	ErrOutlierOverlap   = errors.New("outliers must not appear among the belongs items")
	ErrPreviewTooLong   = errors.New("preview window exceeds 30 days")
	ErrBulkTooLarge     = errors.New("bulk upload exceeds 90 rows")
	ErrUnknownGame      = errors.New("unknown game")
)

// MaxPreviewDays caps the admin schedule preview window.
const MaxPreviewDays = 30

// MaxBulkRows caps one bulk content upload.
const MaxBulkRows = 90

// PlayerInput is the admin payload for creating or updating a player card
type PlayerInput struct {
	Name            string   `json:"name" validate:"required,max=120"`
	AcceptedAnswers []string `json:"acceptedAnswers" validate:"required,min=1,dive,required"`
	Clues           []string `json:"clues" validate:"required,len=6,dive,required"`
	Difficulty      int      `json:"difficulty" validate:"required,min=1,max=3"`
	ScheduledDate   string   `json:"scheduledDate" validate:"omitempty,datetime=2006-01-02"`
}

// WordSetInput is the admin payload for creating or updating a word set
type WordSetInput struct {
	Theme         string   `json:"theme" validate:"required,max=120"`
	Belongs       []string `json:"belongs" validate:"required,min=4,dive,required"`
	Outliers      []string `json:"outliers" validate:"required,min=1,dive,required"`
	Difficulty    int      `json:"difficulty" validate:"required,min=1,max=3"`
	ScheduledDate string   `json:"scheduledDate" validate:"omitempty,datetime=2006-01-02"`
}

// BulkInput is one bulk content upload
type BulkInput struct {
	Players  []PlayerInput  `json:"players" validate:"omitempty,dive"`
	WordSets []WordSetInput `json:"wordSets" validate:"omitempty,dive"`
}

// BulkResult reports what a bulk upload created
type BulkResult struct {
	PlayersCreated  int `json:"playersCreated"`
	WordSetsCreated int `json:"wordSetsCreated"`
}

// PreviewSlot is one difficulty slot in the schedule preview
type PreviewSlot struct {
	Difficulty string `json:"difficulty"`
	Filled     bool   `json:"filled"`
	Scheduled  bool   `json:"scheduled"`
	ItemID     int64  `json:"itemId,omitempty"`
	Label      string `json:"label,omitempty"`
}

// PreviewDay is one date in the schedule preview
type PreviewDay struct {
	Date    string                      `json:"date"`
	IsToday bool                        `json:"isToday"`
	Slots   [game.SlotCount]PreviewSlot `json:"slots"`
}

// AdminService handles content CRUD, scheduling, and previews
type AdminService struct {
	players  *repository.PlayerRepository
	wordSets *repository.WordSetRepository
	puzzles  *PuzzleService
	validate *validator.Validate
}

// NewAdminService creates a new admin service
func NewAdminService(players *repository.PlayerRepository, wordSets *repository.WordSetRepository, puzzles *PuzzleService) *AdminService {
	return &AdminService{
		players:  players,
		wordSets: wordSets,
		puzzles:  puzzles,
		validate: validator.New(),
	}
}

// ListPlayers returns every player card
func (s *AdminService) ListPlayers() ([]*models.Player, error) {
	return s.players.GetAllPlayers()
}

// GetPlayer returns one player card
func (s *AdminService) GetPlayer(id int64) (*models.Player, error) {
	p, err := s.players.GetPlayerByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// CreatePlayer validates input and inserts a new player card
func (s *AdminService) CreatePlayer(input PlayerInput) (*models.Player, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}
	if err := s.checkPlayerSchedule(input, 0); err != nil {
		return nil, err
	}

	created, err := s.players.CreatePlayer(&models.Player{
		Name:            input.Name,
		AcceptedAnswers: input.AcceptedAnswers,
		Clues:           input.Clues,
		Difficulty:      game.Difficulty(input.Difficulty),
		ScheduledDate:   input.ScheduledDate,
	})
	if err != nil {
		return nil, err
	}
	s.puzzles.InvalidateCache()
	return created, nil
}

// UpdatePlayer validates input and updates an existing player card
func (s *AdminService) UpdatePlayer(id int64, input PlayerInput) (*models.Player, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}
	if err := s.checkPlayerSchedule(input, id); err != nil {
		return nil, err
	}

	p := &models.Player{
		ID:              id,
		Name:            input.Name,
		AcceptedAnswers: input.AcceptedAnswers,
		Clues:           input.Clues,
		Difficulty:      game.Difficulty(input.Difficulty),
		ScheduledDate:   input.ScheduledDate,
	}
	if err := s.players.UpdatePlayer(p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.puzzles.InvalidateCache()
	return p, nil
}

// DeletePlayer removes a player card
func (s *AdminService) DeletePlayer(id int64) error {
	if err := s.players.DeletePlayer(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.puzzles.InvalidateCache()
	return nil
}

func (s *AdminService) checkPlayerSchedule(input PlayerInput, excludeID int64) error {
	conflict, err := s.players.GetScheduledConflict(game.Difficulty(input.Difficulty), input.ScheduledDate, excludeID)
	if err != nil {
		return err
	}
	if conflict {
		return ErrScheduleConflict
	}
	return nil
}

// ListWordSets returns every word set
func (s *AdminService) ListWordSets() ([]*models.WordSet, error) {
	return s.wordSets.GetAllWordSets()
}

// GetWordSet returns one word set
func (s *AdminService) GetWordSet(id int64) (*models.WordSet, error) {
	w, err := s.wordSets.GetWordSetByID(id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrNotFound
	}
	return w, nil
}

// CreateWordSet validates input and inserts a new word set
func (s *AdminService) CreateWordSet(input WordSetInput) (*models.WordSet, error) {
	if err := s.validateWordSet(input); err != nil {
		return nil, err
	}
	if err := s.checkWordSetSchedule(input, 0); err != nil {
		return nil, err
	}

	created, err := s.wordSets.CreateWordSet(&models.WordSet{
		Theme:         input.Theme,
		BelongItems:   input.Belongs,
		OutlierItems:  input.Outliers,
		Difficulty:    game.Difficulty(input.Difficulty),
		ScheduledDate: input.ScheduledDate,
	})
	if err != nil {
		return nil, err
	}
	s.puzzles.InvalidateCache()
	return created, nil
}

// UpdateWordSet validates input and updates an existing word set
func (s *AdminService) UpdateWordSet(id int64, input WordSetInput) (*models.WordSet, error) {
	if err := s.validateWordSet(input); err != nil {
		return nil, err
	}
	if err := s.checkWordSetSchedule(input, id); err != nil {
		return nil, err
	}

	w := &models.WordSet{
		ID:            id,
		Theme:         input.Theme,
		BelongItems:   input.Belongs,
		OutlierItems:  input.Outliers,
		Difficulty:    game.Difficulty(input.Difficulty),
		ScheduledDate: input.ScheduledDate,
	}
	if err := s.wordSets.UpdateWordSet(w); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.puzzles.InvalidateCache()
	return w, nil
}

// DeleteWordSet removes a word set
func (s *AdminService) DeleteWordSet(id int64) error {
	if err := s.wordSets.DeleteWordSet(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.puzzles.InvalidateCache()
	return nil
}

// wordSetWordsDisjoint enforces that no outlier string also belongs;
// an overlapping word would mark a belongs position as the outlier
// when the puzzle is built.
func wordSetWordsDisjoint(input WordSetInput) error {
	belongs := make(map[string]bool, len(input.Belongs))
	for _, item := range input.Belongs {
		belongs[item] = true
	}
	for _, item := range input.Outliers {
		if belongs[item] {
			return ErrOutlierOverlap
		}
	}
	return nil
}

func (s *AdminService) validateWordSet(input WordSetInput) error {
	if err := s.validate.Struct(input); err != nil {
		return err
	}
	return wordSetWordsDisjoint(input)
}

func (s *AdminService) checkWordSetSchedule(input WordSetInput, excludeID int64) error {
	conflict, err := s.wordSets.GetScheduledConflict(game.Difficulty(input.Difficulty), input.ScheduledDate, excludeID)
	if err != nil {
		return err
	}
	if conflict {
		return ErrScheduleConflict
	}
	return nil
}

// BulkImport creates many content rows in one call. The whole batch is
// validated before anything is written so a bad row rejects the upload.
func (s *AdminService) BulkImport(input BulkInput) (*BulkResult, error) {
	if len(input.Players)+len(input.WordSets) > MaxBulkRows {
		return nil, ErrBulkTooLarge
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	// Pins must be unique against the store and within the batch itself
	pinned := make(map[string]bool)
	for _, p := range input.Players {
		if err := s.checkPlayerSchedule(p, 0); err != nil {
			return nil, err
		}
		if p.ScheduledDate != "" {
			key := fmt.Sprintf("%d|%s", p.Difficulty, p.ScheduledDate)
			if pinned[key] {
				return nil, ErrScheduleConflict
			}
			pinned[key] = true
		}
	}
	pinned = make(map[string]bool)
	for _, w := range input.WordSets {
		if err := wordSetWordsDisjoint(w); err != nil {
			return nil, err
		}
		if err := s.checkWordSetSchedule(w, 0); err != nil {
			return nil, err
		}
		if w.ScheduledDate != "" {
			key := fmt.Sprintf("%d|%s", w.Difficulty, w.ScheduledDate)
			if pinned[key] {
				return nil, ErrScheduleConflict
			}
			pinned[key] = true
		}
	}

	result := &BulkResult{}
	for _, p := range input.Players {
		if _, err := s.players.CreatePlayer(&models.Player{
			Name:            p.Name,
			AcceptedAnswers: p.AcceptedAnswers,
			Clues:           p.Clues,
			Difficulty:      game.Difficulty(p.Difficulty),
			ScheduledDate:   p.ScheduledDate,
		}); err != nil {
			return nil, fmt.Errorf("bulk player %q: %w", p.Name, err)
		}
		result.PlayersCreated++
	}
	for _, w := range input.WordSets {
		if _, err := s.wordSets.CreateWordSet(&models.WordSet{
			Theme:         w.Theme,
			BelongItems:   w.Belongs,
			OutlierItems:  w.Outliers,
			Difficulty:    game.Difficulty(w.Difficulty),
			ScheduledDate: w.ScheduledDate,
		}); err != nil {
			return nil, fmt.Errorf("bulk word set %q: %w", w.Theme, err)
		}
		result.WordSetsCreated++
	}

	s.puzzles.InvalidateCache()
	return result, nil
}

// Preview resolves upcoming days for a content game so admins can see
// which slots are pinned and which fall back to the random draw.
func (s *AdminService) Preview(gameName, start string, days int) ([]PreviewDay, error) {
	if days < 1 {
		days = 1
	}
	if days > MaxPreviewDays {
		return nil, ErrPreviewTooLong
	}
	startDate, err := time.Parse(game.DateLayout, start)
	if err != nil {
		return nil, game.ErrInvalidDate
	}

	var playerPool []*models.Player
	var wordSetPool []*models.WordSet
	switch gameName {
	case GameSquaddle:
		if playerPool, err = s.players.GetAllPlayers(); err != nil {
			return nil, err
		}
	case GameOddOneOut:
		if wordSetPool, err = s.wordSets.GetAllWordSets(); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownGame
	}

	today := game.Today()
	preview := make([]PreviewDay, 0, days)
	for i := 0; i < days; i++ {
		date := startDate.AddDate(0, 0, i).Format(game.DateLayout)
		day := PreviewDay{Date: date, IsToday: date == today}

		if gameName == GameSquaddle {
			slots, err := game.ResolveDaily(playerPool, date, game.SeedShared)
			if err != nil {
				return nil, err
			}
			for j, slot := range slots {
				day.Slots[j] = PreviewSlot{Difficulty: game.Difficulty(j + 1).String(), Filled: slot.OK, Scheduled: slot.Scheduled}
				if slot.OK {
					day.Slots[j].ItemID = slot.Item.ID
					day.Slots[j].Label = slot.Item.Name
				}
			}
		} else {
			slots, err := game.ResolveDaily(wordSetPool, date, game.SeedPerSlot)
			if err != nil {
				return nil, err
			}
			for j, slot := range slots {
				day.Slots[j] = PreviewSlot{Difficulty: game.Difficulty(j + 1).String(), Filled: slot.OK, Scheduled: slot.Scheduled}
				if slot.OK {
					day.Slots[j].ItemID = slot.Item.ID
					day.Slots[j].Label = slot.Item.Theme
				}
			}
		}

		preview = append(preview, day)
	}
	return preview, nil
}
