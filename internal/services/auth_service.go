package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/srashed001/pug-backend-sub000/internal/apperrors"
	"github.com/srashed001/pug-backend-sub000/internal/constants"
	"github.com/srashed001/pug-backend-sub000/internal/models"
	"github.com/srashed001/pug-backend-sub000/internal/repository"
	"github.com/srashed001/pug-backend-sub000/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration and credential checks.
type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret []byte) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// RegisterInput represents the required information to create a new account.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	City      string
	State     string
}

// Register creates a new user and returns a signed bearer token.
func (s *AuthService) Register(input RegisterInput) (*models.User, string, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, "", apperrors.BadRequest("username is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, "", apperrors.BadRequest("password must be at least %d characters", constants.MinPasswordLength)
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, "", apperrors.BadRequest("email is required")
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, "", apperrors.BadRequest("username taken: %s", username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		City:         input.City,
		State:        input.State,
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.MakeToken(user.Username, user.IsAdmin, s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return user, token, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the user with a fresh bearer token.
func (s *AuthService) Login(input LoginInput) (*models.User, string, error) {
	user, err := s.userRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.Unauthorized("invalid username/password")
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", apperrors.Unauthorized("invalid username/password")
	}

	if !user.IsActive {
		return nil, "", apperrors.Inactive("user is inactive: %s", user.Username)
	}

	token, err := utils.MakeToken(user.Username, user.IsAdmin, s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return user, token, nil
}
