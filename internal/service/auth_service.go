// Package service contains the service layer for the Guide4360 API
package service

import (
	"errors"
	"strconv"

	"github.com/guide4360/guide4360api/internal/auth"
	"github.com/guide4360/guide4360api/internal/config"
	"github.com/guide4360/guide4360api/internal/models"
	"github.com/guide4360/guide4360api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords, so the response cannot be used for username enumeration.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUsernameTaken is returned when registering an existing username
	ErrUsernameTaken = errors.New("username already exists")
)

const bcryptCost = 10

// AuthService handles registration, login and session verification
type AuthService struct {
	repo      *repository.UserRepository
	jwtSecret []byte
}

// NewAuthService creates a new service for the auth API
func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		repo:      repository.NewUserRepository(db),
		jwtSecret: []byte(cfg.JWTSecret),
	}
}

// Login verifies the given credentials and issues a session token
func (s *AuthService) Login(username, password string) (*models.UserModel, string, error) {
	user, err := s.repo.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Register creates a new user and issues a session token
func (s *AuthService) Register(username, password string) (*models.UserModel, string, error) {
	_, err := s.repo.GetUserByUsername(username)
	if err == nil {
		return nil, "", ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.UserModel{
		Username:       username,
		HashedPassword: string(hashedPassword),
	}
	if err := s.repo.CreateUser(user); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// VerifySession checks a session token and returns the embedded identity.
// Expired, tampered and malformed tokens all yield auth.ErrInvalidToken.
func (s *AuthService) VerifySession(token string) (*auth.Claims, error) {
	return auth.VerifyToken(token, s.jwtSecret)
}

func (s *AuthService) issueToken(user *models.UserModel) (string, error) {
	userID := strconv.FormatUint(uint64(user.ID), 10)
	return auth.IssueToken(userID, user.Username, s.jwtSecret)
}
