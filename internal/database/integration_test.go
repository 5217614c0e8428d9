package database

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "playday_test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

// TestDatabaseIntegration tests the complete database lifecycle
func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	// Test that tables were created by migrations
	tables := []string{"players", "word_sets", "admin_users", "analytics_events"}

	for _, table := range tables {
		query := "SELECT name FROM sqlite_master WHERE type='table' AND name=?"
		var name string
		err := db.QueryRowContext(ctx, query, table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}
}

// TestDatabaseTransactions tests transaction support
func TestDatabaseTransactions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)

	// Test successful transaction
	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}

	_, err = tx.Exec("INSERT INTO players (name, accepted_answers, clues, difficulty) VALUES (?, ?, ?, ?)",
		"Messi", `["messi","lionel messi"]`, `["a","b","c","d","e","f"]`, 1)
	if err != nil {
		tx.Rollback()
		t.Fatalf("Failed to insert in transaction: %v", err)
	}

	if err := tx.Commit(); err != nil {
		t.Fatalf("Failed to commit transaction: %v", err)
	}

	// Verify data was inserted
	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM players WHERE name = ?", "Messi").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to query after commit: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 player, got %d", count)
	}

	// Test rollback
	tx2, err := db.Begin()
	if err != nil {
		t.Fatalf("Failed to begin second transaction: %v", err)
	}

	_, err = tx2.Exec("INSERT INTO players (name, accepted_answers, clues, difficulty) VALUES (?, ?, ?, ?)",
		"Ronaldo", `["ronaldo"]`, `["a","b","c","d","e","f"]`, 1)
	if err != nil {
		tx2.Rollback()
		t.Fatalf("Failed to insert in second transaction: %v", err)
	}

	if err := tx2.Rollback(); err != nil {
		t.Fatalf("Failed to rollback transaction: %v", err)
	}

	// Verify data was not inserted
	err = db.QueryRow("SELECT COUNT(*) FROM players WHERE name = ?", "Ronaldo").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to query after rollback: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 players after rollback, got %d", count)
	}
}

// TestExecReturningID verifies insert IDs come back through the wrapper
func TestExecReturningID(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)

	first, err := db.ExecReturningID(
		"INSERT INTO word_sets (theme, belongs, outliers, difficulty) VALUES (?, ?, ?, ?)",
		"big cats", `["lion","tiger","leopard","cheetah"]`, `["wolf"]`, 2)
	if err != nil {
		t.Fatalf("Failed to insert word set: %v", err)
	}
	if first <= 0 {
		t.Errorf("Expected positive id, got %d", first)
	}

	second, err := db.ExecReturningID(
		"INSERT INTO word_sets (theme, belongs, outliers, difficulty) VALUES (?, ?, ?, ?)",
		"citrus", `["lemon","lime","orange","grapefruit"]`, `["apple"]`, 1)
	if err != nil {
		t.Fatalf("Failed to insert second word set: %v", err)
	}
	if second != first+1 {
		t.Errorf("Expected sequential ids, got %d then %d", first, second)
	}
}

// TestConcurrentAccess tests concurrent database access
func TestConcurrentAccess(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)

	_, err := db.Exec("INSERT INTO players (name, accepted_answers, clues, difficulty) VALUES (?, ?, ?, ?)",
		"Zidane", `["zidane"]`, `["a","b","c","d","e","f"]`, 3)
	if err != nil {
		t.Fatalf("Failed to create test player: %v", err)
	}

	// Run concurrent reads
	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			var name string
			err := db.QueryRow("SELECT name FROM players WHERE difficulty = ?", 3).Scan(&name)
			if err != nil {
				t.Errorf("Concurrent read failed: %v", err)
			}
			if name != "Zidane" {
				t.Errorf("Expected name 'Zidane', got '%s'", name)
			}
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
