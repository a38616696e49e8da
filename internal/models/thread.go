package models

import "time"

// Thread is a conversation identified by an opaque random id. Its member set
// is fixed at creation; no add or remove member operation exists, and no two
// threads share the same member set.
type Thread struct {
	ID        string    `gorm:"primarykey;type:varchar(36)" json:"id"`
	CreatedOn time.Time `gorm:"autoCreateTime" json:"created_on"`

	// Relations
	Members  []ThreadMember `gorm:"foreignKey:ThreadID" json:"members,omitempty"`
	Messages []Message      `gorm:"foreignKey:ThreadID" json:"messages,omitempty"`
}

type ThreadMember struct {
	ThreadID string `gorm:"primarykey;type:varchar(36)" json:"thread_id"`
	Username string `gorm:"primarykey;type:varchar(50)" json:"username"`

	// Relations
	Thread Thread `gorm:"foreignKey:ThreadID" json:"thread,omitempty"`
	User   User   `gorm:"foreignKey:Username;references:Username" json:"user,omitempty"`
}
