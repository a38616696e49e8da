package models

import "time"

type GameComment struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	GameID    uint64    `gorm:"not null;index" json:"game_id"`
	Username  string    `gorm:"type:varchar(50);not null" json:"username"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedOn time.Time `gorm:"autoCreateTime" json:"created_on"`

	// Relations
	Game Game `gorm:"foreignKey:GameID" json:"game,omitempty"`
	User User `gorm:"foreignKey:Username;references:Username" json:"user,omitempty"`
}
