package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/srashed001/pug-backend-sub000/internal/apperrors"
	"github.com/srashed001/pug-backend-sub000/internal/models"
	"github.com/srashed001/pug-backend-sub000/internal/repository"
	"gorm.io/gorm"
)

// GameService manages games, rosters and comments.
type GameService struct {
	gameRepo repository.GameRepository
	userRepo repository.UserRepository
}

// NewGameService creates a new GameService.
func NewGameService(gameRepo repository.GameRepository, userRepo repository.UserRepository) *GameService {
	return &GameService{
		gameRepo: gameRepo,
		userRepo: userRepo,
	}
}

// CreateGameInput represents input for creating a game.
type CreateGameInput struct {
	Title       string
	Description string
	Date        time.Time
	Time        string
	Address     string
	City        string
	State       string
	CreatedBy   string
}

// Create validates the host and inserts the game.
func (s *GameService) Create(input CreateGameInput) (*models.Game, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.BadRequest("title is required")
	}
	if strings.TrimSpace(input.City) == "" || strings.TrimSpace(input.State) == "" {
		return nil, apperrors.BadRequest("city and state are required")
	}

	host, err := s.findUser(input.CreatedBy)
	if err != nil {
		return nil, err
	}
	if !host.IsActive {
		return nil, apperrors.Inactive("user is inactive: %s", host.Username)
	}

	game := &models.Game{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Time:        input.Time,
		Address:     input.Address,
		City:        input.City,
		State:       input.State,
		CreatedBy:   input.CreatedBy,
		IsActive:    true,
	}
	if err := s.gameRepo.Create(game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return game, nil
}

// Get returns the game together with its active roster and active comments.
func (s *GameService) Get(id uint64) (*models.Game, []models.User, []models.GameComment, error) {
	game, err := s.findGame(id)
	if err != nil {
		return nil, nil, nil, err
	}

	players, err := s.gameRepo.ListPlayers(id)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list players: %w", err)
	}

	comments, err := s.gameRepo.ListComments(id)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return game, players, comments, nil
}

// List returns games matching the filter, soonest first.
func (s *GameService) List(filter repository.GameFilter) ([]models.Game, error) {
	games, err := s.gameRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

// UpdateGameInput represents a partial game update.
type UpdateGameInput struct {
	Title       *string
	Description *string
	Date        *time.Time
	Time        *string
	Address     *string
	City        *string
	State       *string
}

// Update applies a partial update to the game.
func (s *GameService) Update(id uint64, input UpdateGameInput) (*models.Game, error) {
	game, err := s.findGame(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, apperrors.BadRequest("title cannot be empty")
		}
		game.Title = *input.Title
	}
	if input.Description != nil {
		game.Description = *input.Description
	}
	if input.Date != nil {
		game.Date = *input.Date
	}
	if input.Time != nil {
		game.Time = *input.Time
	}
	if input.Address != nil {
		game.Address = *input.Address
	}
	if input.City != nil {
		game.City = *input.City
	}
	if input.State != nil {
		game.State = *input.State
	}

	if err := s.gameRepo.Update(game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}
	return game, nil
}

// Deactivate disables the game; it stays queryable through "all" listings.
func (s *GameService) Deactivate(id uint64, actor string) (*models.Game, error) {
	return s.setActive(id, false, actor)
}

// Reactivate re-enables the game.
func (s *GameService) Reactivate(id uint64, actor string) (*models.Game, error) {
	return s.setActive(id, true, actor)
}

func (s *GameService) setActive(id uint64, active bool, actor string) (*models.Game, error) {
	game, err := s.findGame(id)
	if err != nil {
		return nil, err
	}
	if game.IsActive == active {
		return game, nil
	}

	if err := s.gameRepo.SetActive(id, active, actor); err != nil {
		return nil, fmt.Errorf("failed to update game status: %w", err)
	}
	game.IsActive = active
	return game, nil
}

// Join enrolls the user on the game roster.
func (s *GameService) Join(gameID uint64, username string) error {
	game, err := s.findGame(gameID)
	if err != nil {
		return err
	}
	if !game.IsActive {
		return apperrors.Inactive("game is inactive: %d", gameID)
	}

	user, err := s.findUser(username)
	if err != nil {
		return err
	}
	if !user.IsActive {
		return apperrors.Inactive("user is inactive: %s", username)
	}

	if _, err := s.gameRepo.FindPlayer(gameID, username); err == nil {
		return apperrors.BadRequest("user %s already joined game %d", username, gameID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check roster: %w", err)
	}

	if err := s.gameRepo.AddPlayer(gameID, username); err != nil {
		return fmt.Errorf("failed to join game: %w", err)
	}
	return nil
}

// Leave removes the user from the game roster.
func (s *GameService) Leave(gameID uint64, username string) error {
	if _, err := s.findGame(gameID); err != nil {
		return err
	}
	if _, err := s.findUser(username); err != nil {
		return err
	}

	if _, err := s.gameRepo.FindPlayer(gameID, username); err != nil {
		if isNotFound(err) {
			return apperrors.NotFound("user %s is not in game %d", username, gameID)
		}
		return fmt.Errorf("failed to check roster: %w", err)
	}

	if err := s.gameRepo.RemovePlayer(gameID, username); err != nil {
		return fmt.Errorf("failed to leave game: %w", err)
	}
	return nil
}

// AddComment posts a comment on the game.
func (s *GameService) AddComment(gameID uint64, username, body string) (*models.GameComment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, apperrors.BadRequest("comment is required")
	}
	if _, err := s.findGame(gameID); err != nil {
		return nil, err
	}
	if _, err := s.findUser(username); err != nil {
		return nil, err
	}

	comment := &models.GameComment{
		GameID:   gameID,
		Username: username,
		Comment:  body,
		IsActive: true,
	}
	if err := s.gameRepo.CreateComment(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// EditComment changes a comment's body; only its author may edit.
func (s *GameService) EditComment(commentID uint64, actor, body string) (*models.GameComment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, apperrors.BadRequest("comment is required")
	}

	comment, err := s.findComment(commentID)
	if err != nil {
		return nil, err
	}
	if comment.Username != actor {
		return nil, apperrors.Unauthorized("only the author may edit comment %d", commentID)
	}

	comment.Comment = body
	if err := s.gameRepo.SaveComment(comment, models.OpEditComment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

// DeleteComment soft-deletes a comment; the author or an admin may do it.
func (s *GameService) DeleteComment(commentID uint64, actor string, isAdmin bool) (*models.GameComment, error) {
	comment, err := s.findComment(commentID)
	if err != nil {
		return nil, err
	}
	if comment.Username != actor && !isAdmin {
		return nil, apperrors.Unauthorized("only the author may delete comment %d", commentID)
	}

	comment.IsActive = false
	if err := s.gameRepo.SaveComment(comment, models.OpDeleteComment); err != nil {
		return nil, fmt.Errorf("failed to delete comment: %w", err)
	}
	return comment, nil
}

func (s *GameService) findGame(id uint64) (*models.Game, error) {
	game, err := s.gameRepo.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFound("no game: %d", id)
		}
		return nil, fmt.Errorf("failed to find game: %w", err)
	}
	return game, nil
}

func (s *GameService) findUser(username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFound("no user: %s", username)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (s *GameService) findComment(id uint64) (*models.GameComment, error) {
	comment, err := s.gameRepo.FindCommentByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFound("no comment: %d", id)
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	return comment, nil
}
