package models

import "time"

// ActivityRecord is the common shape of the per-feature audit tables. Rows
// are append-only side effects of mutations elsewhere; nothing reads them
// back except the activity feed.
type ActivityRecord struct {
	ID                uint64    `gorm:"primarykey" json:"id"`
	PrimaryUsername   string    `gorm:"type:varchar(50);not null;index" json:"primary_username"`
	SecondaryUsername string    `gorm:"type:varchar(50)" json:"secondary_username,omitempty"`
	GameID            *uint64   `json:"game_id,omitempty"`
	Data              string    `gorm:"type:text" json:"data,omitempty"`
	Operation         string    `gorm:"type:varchar(50);not null" json:"operation"`
	CreatedOn         time.Time `gorm:"autoCreateTime" json:"created_on"`
}

type GameActivity struct {
	ActivityRecord `gorm:"embedded"`
}

func (GameActivity) TableName() string { return "games_activity" }

type GamePlayerActivity struct {
	ActivityRecord `gorm:"embedded"`
}

func (GamePlayerActivity) TableName() string { return "game_players_activity" }

type CommentActivity struct {
	ActivityRecord `gorm:"embedded"`
}

func (CommentActivity) TableName() string { return "comments_activity" }

type FollowActivity struct {
	ActivityRecord `gorm:"embedded"`
}

func (FollowActivity) TableName() string { return "follows_activity" }

type InviteActivity struct {
	ActivityRecord `gorm:"embedded"`
}

func (InviteActivity) TableName() string { return "invites_activity" }

// Audit operation names.
const (
	OpCreateGame    = "create_game"
	OpUpdateGame    = "update_game"
	OpGameStatus    = "update_game_status"
	OpJoinGame      = "join_game"
	OpLeaveGame     = "leave_game"
	OpAddComment    = "add_comment"
	OpEditComment   = "edit_comment"
	OpDeleteComment = "delete_comment"
	OpFollow        = "follow"
	OpUnfollow      = "unfollow"
	OpCreateInvite  = "create_invite"
	OpUpdateInvite  = "update_invite"
)
