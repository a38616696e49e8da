package repository

import (
	"encoding/json"
	"sort"

	"github.com/srashed001/pug-backend-sub000/internal/models"
	"gorm.io/gorm"
)

// GormActivityRepository is a GORM implementation of ActivityRepository
type GormActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &GormActivityRepository{db: db}
}

// ListByPrimary lists every event with the user as primary actor, newest first
func (r *GormActivityRepository) ListByPrimary(username string) ([]ActivityEvent, error) {
	return r.collect(func(q *gorm.DB) *gorm.DB {
		return q.Where("primary_username = ?", username)
	})
}

// ListFollowedBy lists events whose primary actor is an active account the
// viewer follows, newest first
func (r *GormActivityRepository) ListFollowedBy(viewerUsername string) ([]ActivityEvent, error) {
	return r.collect(func(q *gorm.DB) *gorm.DB {
		followed := r.db.Model(&models.Follow{}).
			Select("follows.followed_username").
			Joins("JOIN users ON users.username = follows.followed_username AND users.is_active = ?", true).
			Where("follows.follower_username = ?", viewerUsername)
		return q.Where("primary_username IN (?)", followed)
	})
}

// collect runs the scope against each audit table and merges the rows into
// one feed ordered by timestamp descending, id descending within a table.
func (r *GormActivityRepository) collect(scope func(*gorm.DB) *gorm.DB) ([]ActivityEvent, error) {
	events := []ActivityEvent{}

	var games []models.GameActivity
	if err := scope(r.db.Model(&models.GameActivity{})).Find(&games).Error; err != nil {
		return nil, err
	}
	for _, a := range games {
		events = append(events, ActivityEvent{Source: "games", ActivityRecord: a.ActivityRecord})
	}

	var players []models.GamePlayerActivity
	if err := scope(r.db.Model(&models.GamePlayerActivity{})).Find(&players).Error; err != nil {
		return nil, err
	}
	for _, a := range players {
		events = append(events, ActivityEvent{Source: "game_players", ActivityRecord: a.ActivityRecord})
	}

	var comments []models.CommentActivity
	if err := scope(r.db.Model(&models.CommentActivity{})).Find(&comments).Error; err != nil {
		return nil, err
	}
	for _, a := range comments {
		events = append(events, ActivityEvent{Source: "comments", ActivityRecord: a.ActivityRecord})
	}

	var follows []models.FollowActivity
	if err := scope(r.db.Model(&models.FollowActivity{})).Find(&follows).Error; err != nil {
		return nil, err
	}
	for _, a := range follows {
		events = append(events, ActivityEvent{Source: "follows", ActivityRecord: a.ActivityRecord})
	}

	var invites []models.InviteActivity
	if err := scope(r.db.Model(&models.InviteActivity{})).Find(&invites).Error; err != nil {
		return nil, err
	}
	for _, a := range invites {
		events = append(events, ActivityEvent{Source: "invites", ActivityRecord: a.ActivityRecord})
	}

	sort.Slice(events, func(i, j int) bool {
		if !events[i].CreatedOn.Equal(events[j].CreatedOn) {
			return events[i].CreatedOn.After(events[j].CreatedOn)
		}
		return events[i].ID > events[j].ID
	})

	return events, nil
}

// activityData serializes an audit payload.
func activityData(payload map[string]any) string {
	b, _ := json.Marshal(payload)
	return string(b)
}
