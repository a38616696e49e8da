package repository

import (
	"github.com/srashed001/pug-backend-sub000/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInviteRepository is a GORM implementation of InviteRepository
type GormInviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository creates a new InviteRepository
func NewInviteRepository(db *gorm.DB) InviteRepository {
	return &GormInviteRepository{db: db}
}

// Create inserts a pending invite and its audit row
func (r *GormInviteRepository) Create(invite *models.Invite) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return createInvite(tx, invite)
	})
}

// CreateGroup inserts all invites in one transaction; any failure rolls the
// whole batch back.
func (r *GormInviteRepository) CreateGroup(invites []*models.Invite) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, invite := range invites {
			if err := createInvite(tx, invite); err != nil {
				return err
			}
		}
		return nil
	})
}

func createInvite(tx *gorm.DB, invite *models.Invite) error {
	if err := tx.Create(invite).Error; err != nil {
		return err
	}
	return tx.Create(&models.InviteActivity{ActivityRecord: models.ActivityRecord{
		PrimaryUsername:   invite.FromUsername,
		SecondaryUsername: invite.ToUsername,
		GameID:            &invite.GameID,
		Operation:         models.OpCreateInvite,
		Data:              activityData(map[string]any{"status": invite.Status}),
	}}).Error
}

// FindByID finds an invite with game and party data
func (r *GormInviteRepository) FindByID(id uint64) (*models.Invite, error) {
	var invite models.Invite
	if err := r.db.Preload("Game").Preload("FromUser").Preload("ToUser").
		First(&invite, id).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

// HasActivePending reports whether the recipient already holds a pending
// invite for the game from a currently active sender. Pendings from inactive
// senders do not count.
func (r *GormInviteRepository) HasActivePending(gameID uint64, toUsername string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Invite{}).
		Joins("JOIN users ON users.username = invites.from_username AND users.is_active = ?", true).
		Where("invites.game_id = ? AND invites.to_username = ? AND invites.status = ?",
			gameID, toUsername, models.InviteStatusPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateStatus persists a status transition; on acceptance the recipient is
// enrolled on the game roster in the same transaction.
func (r *GormInviteRepository) UpdateStatus(invite *models.Invite, actor string, enrollPlayer bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Invite{}).
			Where("id = ?", invite.ID).
			Update("status", invite.Status).Error; err != nil {
			return err
		}

		if enrollPlayer {
			player := models.GamePlayer{GameID: invite.GameID, Username: invite.ToUsername}
			if err := tx.
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(&player).Error; err != nil {
				return err
			}
			if err := tx.Create(&models.GamePlayerActivity{ActivityRecord: models.ActivityRecord{
				PrimaryUsername: invite.ToUsername,
				GameID:          &invite.GameID,
				Operation:       models.OpJoinGame,
			}}).Error; err != nil {
				return err
			}
		}

		secondary := invite.ToUsername
		if actor == invite.ToUsername {
			secondary = invite.FromUsername
		}
		return tx.Create(&models.InviteActivity{ActivityRecord: models.ActivityRecord{
			PrimaryUsername:   actor,
			SecondaryUsername: secondary,
			GameID:            &invite.GameID,
			Operation:         models.OpUpdateInvite,
			Data:              activityData(map[string]any{"status": invite.Status}),
		}}).Error
	})
}

// ListByGame lists a game's invites, newest first
func (r *GormInviteRepository) ListByGame(gameID uint64, all bool) ([]models.Invite, error) {
	query := r.listQuery(all).Where("invites.game_id = ?", gameID)
	return r.find(query)
}

// ListSent lists invites the user sent, newest first
func (r *GormInviteRepository) ListSent(username string, all bool) ([]models.Invite, error) {
	query := r.listQuery(all).Where("invites.from_username = ?", username)
	return r.find(query)
}

// ListReceived lists invites the user received, newest first
func (r *GormInviteRepository) ListReceived(username string, all bool) ([]models.Invite, error) {
	query := r.listQuery(all).Where("invites.to_username = ?", username)
	return r.find(query)
}

// listQuery builds the base invite query. The non-all variants project away
// any row touching an inactive user or inactive game.
func (r *GormInviteRepository) listQuery(all bool) *gorm.DB {
	query := r.db.Model(&models.Invite{}).
		Preload("Game").Preload("FromUser").Preload("ToUser")
	if all {
		return query
	}
	return query.
		Where("EXISTS (SELECT 1 FROM users WHERE users.username = invites.from_username AND users.is_active = ?)", true).
		Where("EXISTS (SELECT 1 FROM users WHERE users.username = invites.to_username AND users.is_active = ?)", true).
		Where("EXISTS (SELECT 1 FROM games WHERE games.id = invites.game_id AND games.is_active = ?)", true)
}

func (r *GormInviteRepository) find(query *gorm.DB) ([]models.Invite, error) {
	var invites []models.Invite
	if err := query.Order("invites.created_on DESC, invites.id DESC").Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}
