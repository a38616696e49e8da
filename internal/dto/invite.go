package dto

import (
	"time"

	"github.com/srashed001/pug-backend-sub000/internal/models"
)

// InviteDTO represents an invite in API responses
type InviteDTO struct {
	ID        uint64              `json:"id"`
	GameID    uint64              `json:"game_id"`
	FromUser  string              `json:"from_user"`
	ToUser    string              `json:"to_user"`
	Status    models.InviteStatus `json:"status"`
	CreatedOn time.Time           `json:"created_on"`
	Game      *GameDTO            `json:"game,omitempty"`
}

// ToInviteDTO converts an invite; the game is attached when it was preloaded
func ToInviteDTO(invite models.Invite, now time.Time) InviteDTO {
	d := InviteDTO{
		ID:        invite.ID,
		GameID:    invite.GameID,
		FromUser:  invite.FromUsername,
		ToUser:    invite.ToUsername,
		Status:    invite.Status,
		CreatedOn: invite.CreatedOn,
	}
	if invite.Game.ID != 0 {
		game := ToGameDTO(invite.Game, now)
		d.Game = &game
	}
	return d
}

// ToInviteDTOs converts a slice of invites
func ToInviteDTOs(invites []models.Invite, now time.Time) []InviteDTO {
	dtos := make([]InviteDTO, len(invites))
	for i, invite := range invites {
		dtos[i] = ToInviteDTO(invite, now)
	}
	return dtos
}
