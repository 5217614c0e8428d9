package repository

import (
	"database/sql"
	"fmt"
	"time"

	"playday/internal/database"
	"playday/internal/models"
)

// AdminRepository handles database operations for admin accounts
type AdminRepository struct {
	db *database.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *database.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// CreateAdmin inserts a new admin account
func (r *AdminRepository) CreateAdmin(email, passwordHash, name string) (*models.AdminUser, error) {
	query := `
		INSERT INTO admin_users (email, password_hash, name)
		VALUES (?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, email, passwordHash, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	return &models.AdminUser{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}

// GetAdminByEmail retrieves an admin account by email address
func (r *AdminRepository) GetAdminByEmail(email string) (*models.AdminUser, error) {
	query := `
		SELECT id, email, password_hash, name, created_at, updated_at
		FROM admin_users
		WHERE email = ?
	`
	admin := &models.AdminUser{}
	err := r.db.QueryRow(query, email).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Name,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return admin, nil
}

// GetAdminByID retrieves an admin account by ID
func (r *AdminRepository) GetAdminByID(id int64) (*models.AdminUser, error) {
	query := `
		SELECT id, email, password_hash, name, created_at, updated_at
		FROM admin_users
		WHERE id = ?
	`
	admin := &models.AdminUser{}
	err := r.db.QueryRow(query, id).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Name,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return admin, nil
}

// CountAdmins returns the number of admin accounts
func (r *AdminRepository) CountAdmins() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM admin_users").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}
