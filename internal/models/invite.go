package models

import "time"

type InviteStatus string

const (
	InviteStatusPending   InviteStatus = "pending"
	InviteStatusAccepted  InviteStatus = "accepted"
	InviteStatusDenied    InviteStatus = "denied"
	InviteStatusCancelled InviteStatus = "cancelled"
)

// ValidInviteStatus reports whether s is one of the four invite states.
func ValidInviteStatus(s InviteStatus) bool {
	switch s {
	case InviteStatusPending, InviteStatusAccepted, InviteStatusDenied, InviteStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
func (s InviteStatus) Terminal() bool {
	return s != InviteStatusPending
}

type Invite struct {
	ID           uint64       `gorm:"primarykey" json:"id"`
	GameID       uint64       `gorm:"not null;index" json:"game_id"`
	FromUsername string       `gorm:"type:varchar(50);not null;index" json:"from_user"`
	ToUsername   string       `gorm:"type:varchar(50);not null;index" json:"to_user"`
	Status       InviteStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedOn    time.Time    `gorm:"autoCreateTime" json:"created_on"`

	// Relations
	Game     Game `gorm:"foreignKey:GameID" json:"game,omitempty"`
	FromUser User `gorm:"foreignKey:FromUsername;references:Username" json:"from,omitempty"`
	ToUser   User `gorm:"foreignKey:ToUsername;references:Username" json:"to,omitempty"`
}
