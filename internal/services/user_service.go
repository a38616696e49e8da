package services

import (
	"errors"
	"fmt"

	"github.com/srashed001/pug-backend-sub000/internal/apperrors"
	"github.com/srashed001/pug-backend-sub000/internal/models"
	"github.com/srashed001/pug-backend-sub000/internal/repository"
	"gorm.io/gorm"
)

// userUpdateColumns is the allow-list mapping logical update fields to
// storage columns. Keys outside this table are rejected, never dropped.
var userUpdateColumns = map[string]string{
	"firstName":  "first_name",
	"lastName":   "last_name",
	"birthDate":  "birth_date",
	"city":       "city",
	"state":      "state",
	"phone":      "phone",
	"email":      "email",
	"profileImg": "profile_img",
	"isPrivate":  "is_private",
}

// UserService provides profile and account-state operations.
type UserService struct {
	userRepo repository.UserRepository
	gameRepo repository.GameRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, gameRepo repository.GameRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		gameRepo: gameRepo,
	}
}

// Get retrieves a user by username, active or not.
func (s *UserService) Get(username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("no user: %s", username)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// List returns users ordered by username. Inactive accounts appear only when
// includeInactive is set.
func (s *UserService) List(includeInactive bool) ([]models.User, error) {
	users, err := s.userRepo.List(includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Update applies a partial profile update through the allow-list. Unknown
// keys fail the whole update.
func (s *UserService) Update(username string, fields map[string]any) (*models.User, error) {
	if _, err := s.Get(username); err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		return nil, apperrors.BadRequest("no fields to update")
	}

	updates := make(map[string]any, len(fields))
	for key, value := range fields {
		column, ok := userUpdateColumns[key]
		if !ok {
			return nil, apperrors.BadRequest("invalid field: %s", key)
		}
		updates[column] = value
	}

	if err := s.userRepo.UpdateColumns(username, updates); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.Get(username)
}

// Deactivate disables an account. Users are never hard-deleted.
func (s *UserService) Deactivate(username string) (*models.User, error) {
	return s.setActive(username, false)
}

// Reactivate re-enables an account.
func (s *UserService) Reactivate(username string) (*models.User, error) {
	return s.setActive(username, true)
}

func (s *UserService) setActive(username string, active bool) (*models.User, error) {
	user, err := s.Get(username)
	if err != nil {
		return nil, err
	}
	if user.IsActive == active {
		return user, nil
	}

	if err := s.userRepo.SetActive(username, active); err != nil {
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}
	user.IsActive = active
	return user, nil
}

// Games lists the user's hosted and joined games.
func (s *UserService) Games(username string) (hosted, joined []models.Game, err error) {
	if _, err := s.Get(username); err != nil {
		return nil, nil, err
	}

	hosted, err = s.gameRepo.ListHosted(username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list hosted games: %w", err)
	}

	joined, err = s.gameRepo.ListJoined(username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list joined games: %w", err)
	}

	return hosted, joined, nil
}
