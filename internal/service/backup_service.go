package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"playday/internal/game"
	"playday/internal/models"
	"playday/internal/repository"
)

// BackupData is the portable JSON form of the content pools. The same
// format serves database seeding and ad hoc exports.
type BackupData struct {
	Version    string          `json:"version"`
	ExportedAt time.Time       `json:"exported_at"`
	Players    []PlayerBackup  `json:"players"`
	WordSets   []WordSetBackup `json:"word_sets"`
}

// PlayerBackup represents a player card for backup
type PlayerBackup struct {
	Name            string   `json:"name"`
	AcceptedAnswers []string `json:"accepted_answers"`
	Clues           []string `json:"clues"`
	Difficulty      int      `json:"difficulty"`
	ScheduledDate   string   `json:"scheduled_date,omitempty"`
}

// WordSetBackup represents a word set for backup
type WordSetBackup struct {
	Theme         string   `json:"theme"`
	Belongs       []string `json:"belongs"`
	Outliers      []string `json:"outliers"`
	Difficulty    int      `json:"difficulty"`
	ScheduledDate string   `json:"scheduled_date,omitempty"`
}

// BackupService exports and imports the content pools as JSON
type BackupService struct {
	players  *repository.PlayerRepository
	wordSets *repository.WordSetRepository
}

// NewBackupService creates a new backup service
func NewBackupService(players *repository.PlayerRepository, wordSets *repository.WordSetRepository) *BackupService {
	return &BackupService{players: players, wordSets: wordSets}
}

// Export writes the full content pools to a JSON file
func (s *BackupService) Export(outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(file); err != nil {
		return err
	}

	log.Printf("Content exported to %s", outputPath)
	return nil
}

// ExportToWriter writes the content pools as JSON to w
func (s *BackupService) ExportToWriter(w io.Writer) error {
	backup := BackupData{
		Version:    "1",
		ExportedAt: time.Now(),
	}

	players, err := s.players.GetAllPlayers()
	if err != nil {
		return fmt.Errorf("failed to export players: %w", err)
	}
	for _, p := range players {
		backup.Players = append(backup.Players, PlayerBackup{
			Name:            p.Name,
			AcceptedAnswers: p.AcceptedAnswers,
			Clues:           p.Clues,
			Difficulty:      int(p.Difficulty),
			ScheduledDate:   p.ScheduledDate,
		})
	}

	sets, err := s.wordSets.GetAllWordSets()
	if err != nil {
		return fmt.Errorf("failed to export word sets: %w", err)
	}
	for _, ws := range sets {
		backup.WordSets = append(backup.WordSets, WordSetBackup{
			Theme:         ws.Theme,
			Belongs:       ws.BelongItems,
			Outliers:      ws.OutlierItems,
			Difficulty:    int(ws.Difficulty),
			ScheduledDate: ws.ScheduledDate,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(backup)
}

// Import reads a JSON content file and inserts its rows
func (s *BackupService) Import(inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader inserts content rows decoded from r. Scheduled
// pins are checked against the store and within the file before
// anything is written, keeping pins unique per difficulty and date.
func (s *BackupService) ImportFromReader(r io.Reader) error {
	var backup BackupData
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	pinned := make(map[string]bool)
	for _, p := range backup.Players {
		if p.ScheduledDate == "" {
			continue
		}
		conflict, err := s.players.GetScheduledConflict(game.Difficulty(p.Difficulty), p.ScheduledDate, 0)
		if err != nil {
			return err
		}
		key := fmt.Sprintf("%d|%s", p.Difficulty, p.ScheduledDate)
		if conflict || pinned[key] {
			return fmt.Errorf("player %q: %w", p.Name, ErrScheduleConflict)
		}
		pinned[key] = true
	}
	pinned = make(map[string]bool)
	for _, ws := range backup.WordSets {
		if ws.ScheduledDate == "" {
			continue
		}
		conflict, err := s.wordSets.GetScheduledConflict(game.Difficulty(ws.Difficulty), ws.ScheduledDate, 0)
		if err != nil {
			return err
		}
		key := fmt.Sprintf("%d|%s", ws.Difficulty, ws.ScheduledDate)
		if conflict || pinned[key] {
			return fmt.Errorf("word set %q: %w", ws.Theme, ErrScheduleConflict)
		}
		pinned[key] = true
	}

	for _, p := range backup.Players {
		if _, err := s.players.CreatePlayer(&models.Player{
			Name:            p.Name,
			AcceptedAnswers: p.AcceptedAnswers,
			Clues:           p.Clues,
			Difficulty:      game.Difficulty(p.Difficulty),
			ScheduledDate:   p.ScheduledDate,
		}); err != nil {
			return fmt.Errorf("failed to import player %q: %w", p.Name, err)
		}
	}

	for _, ws := range backup.WordSets {
		if _, err := s.wordSets.CreateWordSet(&models.WordSet{
			Theme:         ws.Theme,
			BelongItems:   ws.Belongs,
			OutlierItems:  ws.Outliers,
			Difficulty:    game.Difficulty(ws.Difficulty),
			ScheduledDate: ws.ScheduledDate,
		}); err != nil {
			return fmt.Errorf("failed to import word set %q: %w", ws.Theme, err)
		}
	}

	log.Printf("Imported %d players and %d word sets", len(backup.Players), len(backup.WordSets))
	return nil
}
