package models

import "time"

type Message struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	ThreadID       string    `gorm:"type:varchar(36);not null;index" json:"thread_id"`
	SenderUsername string    `gorm:"type:varchar(50);not null" json:"sender_username"`
	Body           string    `gorm:"type:text;not null" json:"body"`
	CreatedOn      time.Time `gorm:"autoCreateTime" json:"created_on"`

	// Relations
	Thread Thread `gorm:"foreignKey:ThreadID" json:"thread,omitempty"`
	Sender User   `gorm:"foreignKey:SenderUsername;references:Username" json:"sender,omitempty"`
}

// MessageTombstone hides a single message from a single viewer. It is a
// visibility overlay: other thread members still see the message.
type MessageTombstone struct {
	MessageID uint64    `gorm:"primarykey" json:"message_id"`
	Username  string    `gorm:"primarykey;type:varchar(50)" json:"username"`
	CreatedOn time.Time `gorm:"autoCreateTime" json:"created_on"`

	// Relations
	Message Message `gorm:"foreignKey:MessageID" json:"message,omitempty"`
	User    User    `gorm:"foreignKey:Username;references:Username" json:"user,omitempty"`
}

func (MessageTombstone) TableName() string { return "inactive_messages" }
