package repository

import (
	"database/sql"
	"fmt"
	"time"

	"playday/internal/database"
	"playday/internal/game"
	"playday/internal/models"
)

// PlayerRepository handles database operations for Squaddle content rows
type PlayerRepository struct {
	db *database.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *database.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

const playerColumns = "id, name, accepted_answers, clues, difficulty, scheduled_date, created_at, updated_at"

func scanPlayer(row interface{ Scan(...interface{}) error }) (*models.Player, error) {
	var (
		p         models.Player
		answers   string
		clues     string
		difficulty int
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&answers,
		&clues,
		&difficulty,
		&p.ScheduledDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Difficulty = game.Difficulty(difficulty)
	if p.AcceptedAnswers, err = decodeStrings(answers); err != nil {
		return nil, err
	}
	if p.Clues, err = decodeStrings(clues); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePlayer inserts a new player row
func (r *PlayerRepository) CreatePlayer(p *models.Player) (*models.Player, error) {
	answers, err := encodeStrings(p.AcceptedAnswers)
	if err != nil {
		return nil, err
	}
	clues, err := encodeStrings(p.Clues)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO players (name, accepted_answers, clues, difficulty, scheduled_date)
		VALUES (?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, p.Name, answers, clues, int(p.Difficulty), p.ScheduledDate)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	created := *p
	created.ID = id
	created.CreatedAt = time.Now()
	created.UpdatedAt = time.Now()
	return &created, nil
}

// GetPlayerByID retrieves a player by ID
func (r *PlayerRepository) GetPlayerByID(id int64) (*models.Player, error) {
	query := "SELECT " + playerColumns + " FROM players WHERE id = ?"
	p, err := scanPlayer(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return p, nil
}

// GetAllPlayers retrieves every player row
func (r *PlayerRepository) GetAllPlayers() ([]*models.Player, error) {
	query := "SELECT " + playerColumns + " FROM players ORDER BY id ASC"
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []*models.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// GetScheduledConflict reports whether another row already pins the
// given difficulty to the given date.
func (r *PlayerRepository) GetScheduledConflict(difficulty game.Difficulty, date string, excludeID int64) (bool, error) {
	if date == "" {
		return false, nil
	}
	var count int
	query := "SELECT COUNT(*) FROM players WHERE difficulty = ? AND scheduled_date = ? AND id != ?"
	if err := r.db.QueryRow(query, int(difficulty), date, excludeID).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check schedule conflict: %w", err)
	}
	return count > 0, nil
}

// UpdatePlayer updates a player's content fields
func (r *PlayerRepository) UpdatePlayer(p *models.Player) error {
	answers, err := encodeStrings(p.AcceptedAnswers)
	if err != nil {
		return err
	}
	clues, err := encodeStrings(p.Clues)
	if err != nil {
		return err
	}

	query := `
		UPDATE players
		SET name = ?, accepted_answers = ?, clues = ?, difficulty = ?, scheduled_date = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	result, err := r.db.Exec(query, p.Name, answers, clues, int(p.Difficulty), p.ScheduledDate, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
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

// DeletePlayer removes a player row
func (r *PlayerRepository) DeletePlayer(id int64) error {
	query := "DELETE FROM players WHERE id = ?"
	result, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
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

// CountByDifficulty returns the number of rows available per difficulty,
// used by the low-content alert.
func (r *PlayerRepository) CountByDifficulty() (map[game.Difficulty]int, error) {
	query := "SELECT difficulty, COUNT(*) FROM players GROUP BY difficulty"
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to count players: %w", err)
	}
	defer rows.Close()

	counts := make(map[game.Difficulty]int)
	for rows.Next() {
		var difficulty, count int
		if err := rows.Scan(&difficulty, &count); err != nil {
			return nil, fmt.Errorf("failed to scan player count: %w", err)
		}
		counts[game.Difficulty(difficulty)] = count
	}
	return counts, rows.Err()
}
