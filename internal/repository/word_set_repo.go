package repository

import (
	"database/sql"
	"fmt"
	"time"

	"playday/internal/database"
	"playday/internal/game"
	"playday/internal/models"
)

// WordSetRepository handles database operations for Odd One Out content rows
type WordSetRepository struct {
	db *database.DB
}

// NewWordSetRepository creates a new word set repository
func NewWordSetRepository(db *database.DB) *WordSetRepository {
	return &WordSetRepository{db: db}
}

const wordSetColumns = "id, theme, belongs, outliers, difficulty, scheduled_date, created_at, updated_at"

func scanWordSet(row interface{ Scan(...interface{}) error }) (*models.WordSet, error) {
	var (
		w          models.WordSet
		belongs    string
		outliers   string
		difficulty int
	)
	err := row.Scan(
		&w.ID,
		&w.Theme,
		&belongs,
		&outliers,
		&difficulty,
		&w.ScheduledDate,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	w.Difficulty = game.Difficulty(difficulty)
	if w.BelongItems, err = decodeStrings(belongs); err != nil {
		return nil, err
	}
	if w.OutlierItems, err = decodeStrings(outliers); err != nil {
		return nil, err
	}
	return &w, nil
}

// CreateWordSet inserts a new word set row
func (r *WordSetRepository) CreateWordSet(w *models.WordSet) (*models.WordSet, error) {
	belongs, err := encodeStrings(w.BelongItems)
	if err != nil {
		return nil, err
	}
	outliers, err := encodeStrings(w.OutlierItems)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO word_sets (theme, belongs, outliers, difficulty, scheduled_date)
		VALUES (?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, w.Theme, belongs, outliers, int(w.Difficulty), w.ScheduledDate)
	if err != nil {
		return nil, fmt.Errorf("failed to create word set: %w", err)
	}

	created := *w
	created.ID = id
	created.CreatedAt = time.Now()
	created.UpdatedAt = time.Now()
	return &created, nil
}

// GetWordSetByID retrieves a word set by ID
func (r *WordSetRepository) GetWordSetByID(id int64) (*models.WordSet, error) {
	query := "SELECT " + wordSetColumns + " FROM word_sets WHERE id = ?"
	w, err := scanWordSet(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word set: %w", err)
	}
	return w, nil
}

// GetAllWordSets retrieves every word set row
func (r *WordSetRepository) GetAllWordSets() ([]*models.WordSet, error) {
	query := "SELECT " + wordSetColumns + " FROM word_sets ORDER BY id ASC"
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query word sets: %w", err)
	}
	defer rows.Close()

	var sets []*models.WordSet
	for rows.Next() {
		w, err := scanWordSet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan word set: %w", err)
		}
		sets = append(sets, w)
	}
	return sets, rows.Err()
}

// GetScheduledConflict reports whether another row already pins the
// given difficulty to the given date.
func (r *WordSetRepository) GetScheduledConflict(difficulty game.Difficulty, date string, excludeID int64) (bool, error) {
	if date == "" {
		return false, nil
	}
	var count int
	query := "SELECT COUNT(*) FROM word_sets WHERE difficulty = ? AND scheduled_date = ? AND id != ?"
	if err := r.db.QueryRow(query, int(difficulty), date, excludeID).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check schedule conflict: %w", err)
	}
	return count > 0, nil
}

// UpdateWordSet updates a word set's content fields
func (r *WordSetRepository) UpdateWordSet(w *models.WordSet) error {
	belongs, err := encodeStrings(w.BelongItems)
	if err != nil {
		return err
	}
	outliers, err := encodeStrings(w.OutlierItems)
	if err != nil {
		return err
	}

	query := `
		UPDATE word_sets
		SET theme = ?, belongs = ?, outliers = ?, difficulty = ?, scheduled_date = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	result, err := r.db.Exec(query, w.Theme, belongs, outliers, int(w.Difficulty), w.ScheduledDate, w.ID)
	if err != nil {
		return fmt.Errorf("failed to update word set: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteWordSet removes a word set row
func (r *WordSetRepository) DeleteWordSet(id int64) error {
	query := "DELETE FROM word_sets WHERE id = ?"
	result, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete word set: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountByDifficulty returns the number of rows available per difficulty
func (r *WordSetRepository) CountByDifficulty() (map[game.Difficulty]int, error) {
	query := "SELECT difficulty, COUNT(*) FROM word_sets GROUP BY difficulty"
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to count word sets: %w", err)
	}
	defer rows.Close()

	counts := make(map[game.Difficulty]int)
	for rows.Next() {
		var difficulty, count int
		if err := rows.Scan(&difficulty, &count); err != nil {
			return nil, fmt.Errorf("failed to scan word set count: %w", err)
		}
		counts[game.Difficulty(difficulty)] = count
	}
	return counts, rows.Err()
}
