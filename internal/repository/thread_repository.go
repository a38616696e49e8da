package repository

import (
	"github.com/srashed001/pug-backend-sub000/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormThreadRepository is a GORM implementation of ThreadRepository
type GormThreadRepository struct {
	db *gorm.DB
}

// NewThreadRepository creates a new ThreadRepository
func NewThreadRepository(db *gorm.DB) ThreadRepository {
	return &GormThreadRepository{db: db}
}

// FindByExactMembers returns the thread whose member set equals usernames.
// A matching thread must contain every supplied username and have exactly
// len(usernames) members in total; member sets are unique per thread, so at
// most one row can match.
func (r *GormThreadRepository) FindByExactMembers(usernames []string) (string, error) {
	n := len(usernames)

	sized := r.db.Model(&models.ThreadMember{}).
		Select("thread_id").
		Group("thread_id").
		Having("COUNT(*) = ?", n)

	var ids []string
	err := r.db.Model(&models.ThreadMember{}).
		Where("username IN ?", usernames).
		Where("thread_id IN (?)", sized).
		Group("thread_id").
		Having("COUNT(*) = ?", n).
		Pluck("thread_id", &ids).Error
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", nil
	}
	return ids[0], nil
}

// CreateWithMembers creates a thread and one membership row per username
func (r *GormThreadRepository) CreateWithMembers(threadID string, usernames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Thread{ID: threadID}).Error; err != nil {
			return err
		}

		members := make([]models.ThreadMember, len(usernames))
		for i, username := range usernames {
			members[i] = models.ThreadMember{ThreadID: threadID, Username: username}
		}
		return tx.Create(&members).Error
	})
}

// FindByID finds a thread by id
func (r *GormThreadRepository) FindByID(threadID string) (*models.Thread, error) {
	var thread models.Thread
	if err := r.db.Where("id = ?", threadID).First(&thread).Error; err != nil {
		return nil, err
	}
	return &thread, nil
}

// ListMembers lists a thread's member rows with user data
func (r *GormThreadRepository) ListMembers(threadID string) ([]models.ThreadMember, error) {
	var members []models.ThreadMember
	if err := r.db.Preload("User").
		Where("thread_id = ?", threadID).
		Order("username ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// IsMember reports whether the user belongs to the thread
func (r *GormThreadRepository) IsMember(threadID, username string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.ThreadMember{}).
		Where("thread_id = ? AND username = ?", threadID, username).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateMessage appends a message to its thread
func (r *GormThreadRepository) CreateMessage(message *models.Message) error {
	return r.db.Create(message).Error
}

// FindMessageByID finds a message by id
func (r *GormThreadRepository) FindMessageByID(id uint64) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// ListVisibleMessages lists a thread's messages the viewer has not hidden
func (r *GormThreadRepository) ListVisibleMessages(threadID, viewerUsername string) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.
		Where("thread_id = ?", threadID).
		Where("id NOT IN (?)", r.tombstoned(viewerUsername)).
		Order("created_on ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// LastVisibleMessage returns the most recent message the viewer has not hidden
func (r *GormThreadRepository) LastVisibleMessage(threadID, viewerUsername string) (*models.Message, error) {
	var message models.Message
	if err := r.db.
		Where("thread_id = ?", threadID).
		Where("id NOT IN (?)", r.tombstoned(viewerUsername)).
		Order("created_on DESC, id DESC").
		Take(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// ListThreadIDs lists ids of threads the user belongs to
func (r *GormThreadRepository) ListThreadIDs(username string) ([]string, error) {
	var ids []string
	if err := r.db.Model(&models.ThreadMember{}).
		Where("username = ?", username).
		Pluck("thread_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// HideMessage tombstones one message for the viewer. Hiding an already hidden
// message is a no-op; the composite key makes the duplicate insert conflict.
func (r *GormThreadRepository) HideMessage(messageID uint64, viewerUsername string) (bool, error) {
	result := r.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.MessageTombstone{MessageID: messageID, Username: viewerUsername})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// HideThread tombstones, for the viewer, every message in the thread not
// already hidden by them
func (r *GormThreadRepository) HideThread(threadID, viewerUsername string) ([]uint64, error) {
	hidden := []uint64{}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&models.MessageTombstone{}).
			Select("message_id").
			Where("username = ?", viewerUsername)

		if err := tx.Model(&models.Message{}).
			Where("thread_id = ?", threadID).
			Where("id NOT IN (?)", sub).
			Order("id ASC").
			Pluck("id", &hidden).Error; err != nil {
			return err
		}
		if len(hidden) == 0 {
			return nil
		}

		tombstones := make([]models.MessageTombstone, len(hidden))
		for i, id := range hidden {
			tombstones[i] = models.MessageTombstone{MessageID: id, Username: viewerUsername}
		}
		return tx.Create(&tombstones).Error
	})
	return hidden, err
}

func (r *GormThreadRepository) tombstoned(viewerUsername string) *gorm.DB {
	return r.db.Model(&models.MessageTombstone{}).
		Select("message_id").
		Where("username = ?", viewerUsername)
}
