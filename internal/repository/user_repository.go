package repository

import (
	"github.com/srashed001/pug-backend-sub000/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves users ordered by username
func (r *GormUserRepository) List(includeInactive bool) ([]models.User, error) {
	query := r.db.Model(&models.User{})
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var users []models.User
	if err := query.Order("username ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListByUsernames retrieves the users among the given usernames that exist
func (r *GormUserRepository) ListByUsernames(usernames []string) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("username IN ?", usernames).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateColumns applies a column/value map to a user row
func (r *GormUserRepository) UpdateColumns(username string, updates map[string]any) error {
	return r.db.Model(&models.User{}).
		Where("username = ?", username).
		Updates(updates).Error
}

// SetActive flips the active flag
func (r *GormUserRepository) SetActive(username string, active bool) error {
	return r.db.Model(&models.User{}).
		Where("username = ?", username).
		Update("is_active", active).Error
}
