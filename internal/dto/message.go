package dto

import (
	"time"

	"github.com/srashed001/pug-backend-sub000/internal/models"
	"github.com/srashed001/pug-backend-sub000/internal/services"
)

// MessageDTO represents a message in API responses
type MessageDTO struct {
	ID             uint64    `json:"id"`
	ThreadID       string    `json:"thread_id"`
	SenderUsername string    `json:"sender_username"`
	Body           string    `json:"body"`
	CreatedOn      time.Time `json:"created_on"`
}

// ThreadViewDTO is a thread rendered for one viewer
type ThreadViewDTO struct {
	ThreadID string       `json:"thread_id"`
	Members  []UserDTO    `json:"members"`
	Messages []MessageDTO `json:"messages"`
}

// ThreadSummaryDTO is one entry of a user's thread list
type ThreadSummaryDTO struct {
	ThreadID    string     `json:"thread_id"`
	Members     []UserDTO  `json:"members"`
	LastMessage MessageDTO `json:"last_message"`
}

// ToMessageDTO converts a message
func ToMessageDTO(message models.Message) MessageDTO {
	return MessageDTO{
		ID:             message.ID,
		ThreadID:       message.ThreadID,
		SenderUsername: message.SenderUsername,
		Body:           message.Body,
		CreatedOn:      message.CreatedOn,
	}
}

// ToThreadViewDTO converts a viewer-filtered thread
func ToThreadViewDTO(view services.ThreadView) ThreadViewDTO {
	messages := make([]MessageDTO, len(view.Messages))
	for i, message := range view.Messages {
		messages[i] = ToMessageDTO(message)
	}
	return ThreadViewDTO{
		ThreadID: view.ThreadID,
		Members:  memberUserDTOs(view.Members),
		Messages: messages,
	}
}

// ToThreadSummaryDTOs converts a thread list
func ToThreadSummaryDTOs(summaries []services.ThreadSummary) []ThreadSummaryDTO {
	dtos := make([]ThreadSummaryDTO, len(summaries))
	for i, summary := range summaries {
		dtos[i] = ThreadSummaryDTO{
			ThreadID:    summary.ThreadID,
			Members:     memberUserDTOs(summary.Members),
			LastMessage: ToMessageDTO(summary.LastMessage),
		}
	}
	return dtos
}

func memberUserDTOs(members []models.ThreadMember) []UserDTO {
	users := make([]UserDTO, len(members))
	for i, member := range members {
		users[i] = ToUserDTO(member.User)
		// the join row may carry no preloaded user in sparse queries
		if users[i].Username == "" {
			users[i].Username = member.Username
		}
	}
	return users
}
