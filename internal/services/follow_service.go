package services

import (
	"fmt"

	"github.com/srashed001/pug-backend-sub000/internal/apperrors"
	"github.com/srashed001/pug-backend-sub000/internal/models"
	"github.com/srashed001/pug-backend-sub000/internal/repository"
)

// FollowService manages the directed follow graph.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService creates a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Toggle flips the follow edge follower -> followed. Returns true when the
// edge exists after the call.
func (s *FollowService) Toggle(followedUsername, followerUsername string) (bool, error) {
	if followedUsername == followerUsername {
		return false, apperrors.BadRequest("cannot follow yourself: %s", followerUsername)
	}

	followed, err := s.findUser(followedUsername)
	if err != nil {
		return false, err
	}
	if _, err := s.findUser(followerUsername); err != nil {
		return false, err
	}
	if !followed.IsActive {
		return false, apperrors.Inactive("user is inactive: %s", followedUsername)
	}

	following, err := s.followRepo.Toggle(followedUsername, followerUsername)
	if err != nil {
		return false, fmt.Errorf("failed to toggle follow: %w", err)
	}
	return following, nil
}

// Followers lists the active accounts following the user.
func (s *FollowService) Followers(username string) ([]models.User, error) {
	if _, err := s.findUser(username); err != nil {
		return nil, err
	}

	users, err := s.followRepo.ListFollowers(username)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}
	return users, nil
}

// Following lists the active accounts the user follows.
func (s *FollowService) Following(username string) ([]models.User, error) {
	if _, err := s.findUser(username); err != nil {
		return nil, err
	}

	users, err := s.followRepo.ListFollowing(username)
	if err != nil {
		return nil, fmt.Errorf("failed to list following: %w", err)
	}
	return users, nil
}

func (s *FollowService) findUser(username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFound("no user: %s", username)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
