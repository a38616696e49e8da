package repository

import (
	"github.com/srashed001/pug-backend-sub000/internal/models"
	"gorm.io/gorm"
)

// GormGameRepository is a GORM implementation of GameRepository
type GormGameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new GameRepository
func NewGameRepository(db *gorm.DB) GameRepository {
	return &GormGameRepository{db: db}
}

// Create creates a game and its audit row
func (r *GormGameRepository) Create(game *models.Game) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(game).Error; err != nil {
			return err
		}
		return tx.Create(&models.GameActivity{ActivityRecord: models.ActivityRecord{
			PrimaryUsername: game.CreatedBy,
			GameID:          &game.ID,
			Operation:       models.OpCreateGame,
			Data:            activityData(map[string]any{"title": game.Title}),
		}}).Error
	})
}

// FindByID finds a game by ID with optional preloading
func (r *GormGameRepository) FindByID(id uint64, preload ...string) (*models.Game, error) {
	var game models.Game
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&game, id).Error; err != nil {
		return nil, err
	}

	return &game, nil
}

// List retrieves games ordered by date ascending
func (r *GormGameRepository) List(filter GameFilter) ([]models.Game, error) {
	query := r.db.Model(&models.Game{})

	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var games []models.Game
	if err := query.Order("date ASC, id ASC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// Update updates a game and records the edit
func (r *GormGameRepository) Update(game *models.Game) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(game).Error; err != nil {
			return err
		}
		return tx.Create(&models.GameActivity{ActivityRecord: models.ActivityRecord{
			PrimaryUsername: game.CreatedBy,
			GameID:          &game.ID,
			Operation:       models.OpUpdateGame,
			Data:            activityData(map[string]any{"title": game.Title}),
		}}).Error
	})
}

// SetActive flips the active flag and records who did it
func (r *GormGameRepository) SetActive(id uint64, active bool, actor string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Game{}).
			Where("id = ?", id).
			Update("is_active", active).Error; err != nil {
			return err
		}
		return tx.Create(&models.GameActivity{ActivityRecord: models.ActivityRecord{
			PrimaryUsername: actor,
			GameID:          &id,
			Operation:       models.OpGameStatus,
			Data:            activityData(map[string]any{"is_active": active}),
		}}).Error
	})
}

// AddPlayer enrolls a user on the roster
func (r *GormGameRepository) AddPlayer(gameID uint64, username string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		player := models.GamePlayer{GameID: gameID, Username: username}
		if err := tx.Create(&player).Error; err != nil {
			return err
		}
		return tx.Create(&models.GamePlayerActivity{ActivityRecord: models.ActivityRecord{
			PrimaryUsername: username,
			GameID:          &gameID,
			Operation:       models.OpJoinGame,
		}}).Error
	})
}

// RemovePlayer drops a user from the roster
func (r *GormGameRepository) RemovePlayer(gameID uint64, username string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ? AND username = ?", gameID, username).
			Delete(&models.GamePlayer{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.GamePlayerActivity{ActivityRecord: models.ActivityRecord{
			PrimaryUsername: username,
			GameID:          &gameID,
			Operation:       models.OpLeaveGame,
		}}).Error
	})
}

// FindPlayer finds a roster entry
func (r *GormGameRepository) FindPlayer(gameID uint64, username string) (*models.GamePlayer, error) {
	var player models.GamePlayer
	if err := r.db.Where("game_id = ? AND username = ?", gameID, username).
		First(&player).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

// ListPlayers lists the active users on the roster
func (r *GormGameRepository) ListPlayers(gameID uint64) ([]models.User, error) {
	var users []models.User
	if err := r.db.Model(&models.User{}).
		Joins("JOIN game_players ON game_players.username = users.username").
		Where("game_players.game_id = ? AND users.is_active = ?", gameID, true).
		Order("users.username ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListHosted lists games created by the user
func (r *GormGameRepository) ListHosted(username string) ([]models.Game, error) {
	var games []models.Game
	if err := r.db.Where("created_by = ? AND is_active = ?", username, true).
		Order("date ASC, id ASC").
		Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// ListJoined lists games the user is on the roster of
func (r *GormGameRepository) ListJoined(username string) ([]models.Game, error) {
	var games []models.Game
	if err := r.db.Model(&models.Game{}).
		Joins("JOIN game_players ON game_players.game_id = games.id").
		Where("game_players.username = ? AND games.is_active = ?", username, true).
		Order("games.date ASC, games.id ASC").
		Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// CreateComment adds a comment and its audit row
func (r *GormGameRepository) CreateComment(comment *models.GameComment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Create(&models.CommentActivity{ActivityRecord: models.ActivityRecord{
			PrimaryUsername: comment.Username,
			GameID:          &comment.GameID,
			Operation:       models.OpAddComment,
			Data:            activityData(map[string]any{"comment": comment.Comment}),
		}}).Error
	})
}

// FindCommentByID finds a comment by ID
func (r *GormGameRepository) FindCommentByID(id uint64) (*models.GameComment, error) {
	var comment models.GameComment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// SaveComment persists comment changes and records the given audit operation
func (r *GormGameRepository) SaveComment(comment *models.GameComment, operation string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(comment).Error; err != nil {
			return err
		}
		return tx.Create(&models.CommentActivity{ActivityRecord: models.ActivityRecord{
			PrimaryUsername: comment.Username,
			GameID:          &comment.GameID,
			Operation:       operation,
			Data:            activityData(map[string]any{"comment": comment.Comment}),
		}}).Error
	})
}

// ListComments lists a game's active comments, oldest first
func (r *GormGameRepository) ListComments(gameID uint64) ([]models.GameComment, error) {
	var comments []models.GameComment
	if err := r.db.Preload("User").
		Where("game_id = ? AND is_active = ?", gameID, true).
		Order("created_on ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
