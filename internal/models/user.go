package models

import "time"

type User struct {
	Username     string     `gorm:"primarykey;type:varchar(50)" json:"username"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    string     `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName     string     `gorm:"type:varchar(50);not null" json:"last_name"`
	BirthDate    *time.Time `json:"birth_date"`
	City         string     `gorm:"type:varchar(100)" json:"city"`
	State        string     `gorm:"type:varchar(50)" json:"state"`
	Phone        string     `gorm:"type:varchar(20)" json:"phone"`
	Email        string     `gorm:"type:varchar(255);not null" json:"email"`
	ProfileImg   string     `gorm:"type:text" json:"profile_img"`
	IsAdmin      bool       `gorm:"not null;default:false" json:"is_admin"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	IsPrivate    bool       `gorm:"not null;default:false" json:"is_private"`
	CreatedOn    time.Time  `gorm:"autoCreateTime" json:"created_on"`

	// Relations
	HostedGames []Game         `gorm:"foreignKey:CreatedBy;references:Username" json:"-"`
	Memberships []ThreadMember `gorm:"foreignKey:Username;references:Username" json:"-"`
}
