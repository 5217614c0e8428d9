package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"playday/internal/models"
	"playday/internal/repository"
	"playday/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already taken")
)

// AuthService handles admin authentication
type AuthService struct {
	adminRepo *repository.AdminRepository
	tokens    *security.TokenIssuer
}

// NewAuthService creates a new auth service
func NewAuthService(adminRepo *repository.AdminRepository, tokens *security.TokenIssuer) *AuthService {
	return &AuthService{adminRepo: adminRepo, tokens: tokens}
}

// Login verifies credentials and returns a signed API token
func (s *AuthService) Login(email, password string) (string, *models.AdminUser, error) {
	admin, err := s.adminRepo.GetAdminByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", nil, fmt.Errorf("failed to get admin: %w", err)
	}
	if admin == nil {
		return "", nil, ErrInvalidCredentials
	}

	if !security.CheckPassword(password, admin.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(admin.ID, admin.Email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, admin, nil
}

// ValidateToken checks a bearer token and returns the admin account
func (s *AuthService) ValidateToken(token string) (*models.AdminUser, error) {
	adminID, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}
	admin, err := s.adminRepo.GetAdminByID(adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	if admin == nil {
		return nil, security.ErrInvalidToken
	}
	return admin, nil
}

// CreateAdmin registers a new admin account
func (s *AuthService) CreateAdmin(email, password, name string) (*models.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.adminRepo.GetAdminByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing admin: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return s.adminRepo.CreateAdmin(email, hash, name)
}

// EnsureBootstrapAdmin creates an initial admin account when none exist.
// Called at startup with credentials from the environment.
func (s *AuthService) EnsureBootstrapAdmin(email, password, name string) error {
	if email == "" || password == "" {
		return nil
	}
	count, err := s.adminRepo.CountAdmins()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if _, err := s.CreateAdmin(email, password, name); err != nil {
		return err
	}
	log.Printf("Bootstrap admin account created: %s", email)
	return nil
}
