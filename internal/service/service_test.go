package service

import (
	"fmt"
	"path/filepath"
	"testing"

	"playday/internal/database"
	"playday/internal/game"
	"playday/internal/models"
	"playday/internal/repository"
)

type testEnv struct {
	db        *database.DB
	players   *repository.PlayerRepository
	wordSets  *repository.WordSetRepository
	admins    *repository.AdminRepository
	analytics *repository.AnalyticsRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "playday_test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return &testEnv{
		db:        db,
		players:   repository.NewPlayerRepository(db),
		wordSets:  repository.NewWordSetRepository(db),
		admins:    repository.NewAdminRepository(db),
		analytics: repository.NewAnalyticsRepository(db),
	}
}

func disabledAlerts(t *testing.T) *AlertService {
	t.Helper()
	alerts, err := NewAlertService("us-east-1", "", "", false)
	if err != nil {
		t.Fatalf("Failed to create alert service: %v", err)
	}
	return alerts
}

func newTestPuzzleService(t *testing.T, env *testEnv) *PuzzleService {
	t.Helper()
	puzzles, err := NewPuzzleService(env.players, env.wordSets, disabledAlerts(t))
	if err != nil {
		t.Fatalf("Failed to create puzzle service: %v", err)
	}
	return puzzles
}

// seedPlayers inserts n players per difficulty
func seedPlayers(t *testing.T, env *testEnv, perDifficulty int) {
	t.Helper()
	for _, d := range []game.Difficulty{game.Easy, game.Medium, game.Hard} {
		for i := 0; i < perDifficulty; i++ {
			name := fmt.Sprintf("%s player %d", d, i)
			_, err := env.players.CreatePlayer(&models.Player{
				Name:            name,
				AcceptedAnswers: []string{name},
				Clues:           []string{"c1", "c2", "c3", "c4", "c5", "c6"},
				Difficulty:      d,
			})
			if err != nil {
				t.Fatalf("Failed to seed player: %v", err)
			}
		}
	}
}

// seedWordSets inserts n word sets per difficulty
func seedWordSets(t *testing.T, env *testEnv, perDifficulty int) {
	t.Helper()
	for _, d := range []game.Difficulty{game.Easy, game.Medium, game.Hard} {
		for i := 0; i < perDifficulty; i++ {
			theme := fmt.Sprintf("%s theme %d", d, i)
			_, err := env.wordSets.CreateWordSet(&models.WordSet{
				Theme:        theme,
				BelongItems:  []string{"aa", "bb", "cc", "dd", "ee"},
				OutlierItems: []string{"zz", "yy"},
				Difficulty:   d,
			})
			if err != nil {
				t.Fatalf("Failed to seed word set: %v", err)
			}
		}
	}
}
