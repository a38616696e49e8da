package models

import "time"

// Follow is a directed edge: FollowerUsername follows FollowedUsername.
// The pair is the primary key, so an edge either exists or it does not;
// toggling flips between the two states.
type Follow struct {
	FollowedUsername string    `gorm:"primarykey;type:varchar(50)" json:"followed_username"`
	FollowerUsername string    `gorm:"primarykey;type:varchar(50)" json:"follower_username"`
	CreatedOn        time.Time `gorm:"autoCreateTime" json:"created_on"`

	// Relations
	Followed User `gorm:"foreignKey:FollowedUsername;references:Username" json:"followed,omitempty"`
	Follower User `gorm:"foreignKey:FollowerUsername;references:Username" json:"follower,omitempty"`
}

func (Follow) TableName() string { return "follows" }
