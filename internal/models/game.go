package models

import "time"

// GameStatus is derived from the game date, never stored: a game dated today
// or later is pending, anything earlier is resolved.
type GameStatus string

const (
	GameStatusPending  GameStatus = "pending"
	GameStatusResolved GameStatus = "resolved"
)

type Game struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"type:varchar(100);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	Time        string    `gorm:"type:varchar(10)" json:"time"`
	Address     string    `gorm:"type:varchar(255)" json:"address"`
	City        string    `gorm:"type:varchar(100);not null" json:"city"`
	State       string    `gorm:"type:varchar(50);not null" json:"state"`
	CreatedBy   string    `gorm:"type:varchar(50);not null;index" json:"created_by"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedOn   time.Time `gorm:"autoCreateTime" json:"created_on"`

	// Relations
	Creator  User          `gorm:"foreignKey:CreatedBy;references:Username" json:"creator,omitempty"`
	Players  []GamePlayer  `gorm:"foreignKey:GameID" json:"players,omitempty"`
	Comments []GameComment `gorm:"foreignKey:GameID" json:"comments,omitempty"`
}

// Status classifies the game relative to the given day.
func (g Game) Status(now time.Time) GameStatus {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if g.Date.Before(today) {
		return GameStatusResolved
	}
	return GameStatusPending
}

type GamePlayer struct {
	GameID   uint64    `gorm:"primarykey" json:"game_id"`
	Username string    `gorm:"primarykey;type:varchar(50)" json:"username"`
	JoinedOn time.Time `gorm:"autoCreateTime" json:"joined_on"`

	// Relations
	Game Game `gorm:"foreignKey:GameID" json:"game,omitempty"`
	User User `gorm:"foreignKey:Username;references:Username" json:"user,omitempty"`
}
