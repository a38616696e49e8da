package repository

import (
	"errors"

	"github.com/srashed001/pug-backend-sub000/internal/models"
	"gorm.io/gorm"
)

// GormFollowRepository is a GORM implementation of FollowRepository
type GormFollowRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new FollowRepository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &GormFollowRepository{db: db}
}

// Find finds the directed edge follower -> followed
func (r *GormFollowRepository) Find(followedUsername, followerUsername string) (*models.Follow, error) {
	var edge models.Follow
	if err := r.db.Where("followed_username = ? AND follower_username = ?", followedUsername, followerUsername).
		First(&edge).Error; err != nil {
		return nil, err
	}
	return &edge, nil
}

// Toggle creates the edge if absent, removes it if present. The audit row is
// written in the same transaction.
func (r *GormFollowRepository) Toggle(followedUsername, followerUsername string) (bool, error) {
	var following bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var edge models.Follow
		err := tx.Where("followed_username = ? AND follower_username = ?", followedUsername, followerUsername).
			First(&edge).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(&models.Follow{
				FollowedUsername: followedUsername,
				FollowerUsername: followerUsername,
			}).Error; err != nil {
				return err
			}
			following = true
			return insertFollowActivity(tx, followerUsername, followedUsername, models.OpFollow)
		}
		if err != nil {
			return err
		}

		if err := tx.Where("followed_username = ? AND follower_username = ?", followedUsername, followerUsername).
			Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		following = false
		return insertFollowActivity(tx, followerUsername, followedUsername, models.OpUnfollow)
	})
	return following, err
}

// ListFollowers lists active accounts following the user
func (r *GormFollowRepository) ListFollowers(username string) ([]models.User, error) {
	var users []models.User
	if err := r.db.Model(&models.User{}).
		Joins("JOIN follows ON follows.follower_username = users.username").
		Where("follows.followed_username = ? AND users.is_active = ?", username, true).
		Order("users.username ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListFollowing lists active accounts the user follows
func (r *GormFollowRepository) ListFollowing(username string) ([]models.User, error) {
	var users []models.User
	if err := r.db.Model(&models.User{}).
		Joins("JOIN follows ON follows.followed_username = users.username").
		Where("follows.follower_username = ? AND users.is_active = ?", username, true).
		Order("users.username ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func insertFollowActivity(tx *gorm.DB, actor, target, operation string) error {
	return tx.Create(&models.FollowActivity{ActivityRecord: models.ActivityRecord{
		PrimaryUsername:   actor,
		SecondaryUsername: target,
		Operation:         operation,
	}}).Error
}
