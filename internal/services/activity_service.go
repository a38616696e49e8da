package services

import (
	"fmt"

	"github.com/srashed001/pug-backend-sub000/internal/apperrors"
	"github.com/srashed001/pug-backend-sub000/internal/repository"
)

// ActivityService reads the audit tables back as a feed. It never writes;
// rows appear as side effects of mutations elsewhere.
type ActivityService struct {
	activityRepo repository.ActivityRepository
	userRepo     repository.UserRepository
}

// NewActivityService creates a new ActivityService.
func NewActivityService(activityRepo repository.ActivityRepository, userRepo repository.UserRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		userRepo:     userRepo,
	}
}

// UserActivity is the two-part feed for one viewer.
type UserActivity struct {
	Activity   []repository.ActivityEvent `json:"activity"`
	MyActivity []repository.ActivityEvent `json:"my_activity"`
}

// GetUserActivity returns the viewer's own events and the events of the
// active accounts they follow, each newest first.
func (s *ActivityService) GetUserActivity(username string) (*UserActivity, error) {
	if _, err := s.userRepo.FindByUsername(username); err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFound("no user: %s", username)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	activity, err := s.activityRepo.ListFollowedBy(username)
	if err != nil {
		return nil, fmt.Errorf("failed to list followed activity: %w", err)
	}

	myActivity, err := s.activityRepo.ListByPrimary(username)
	if err != nil {
		return nil, fmt.Errorf("failed to list user activity: %w", err)
	}

	return &UserActivity{Activity: activity, MyActivity: myActivity}, nil
}
