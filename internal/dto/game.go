package dto

import (
	"time"

	"github.com/srashed001/pug-backend-sub000/internal/models"
)

// GameDTO represents a game in API responses. Status is derived from the
// game date at render time.
type GameDTO struct {
	ID          uint64            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Date        time.Time         `json:"date"`
	Time        string            `json:"time,omitempty"`
	Address     string            `json:"address,omitempty"`
	City        string            `json:"city"`
	State       string            `json:"state"`
	CreatedBy   string            `json:"created_by"`
	IsActive    bool              `json:"is_active"`
	Status      models.GameStatus `json:"status"`
	CreatedOn   time.Time         `json:"created_on"`
}

// GameDetailDTO adds the roster and comments
type GameDetailDTO struct {
	GameDTO
	Players  []UserDTO        `json:"players"`
	Comments []GameCommentDTO `json:"comments"`
}

// GameCommentDTO represents a comment in API responses
type GameCommentDTO struct {
	ID        uint64    `json:"id"`
	GameID    uint64    `json:"game_id"`
	Username  string    `json:"username"`
	Comment   string    `json:"comment"`
	CreatedOn time.Time `json:"created_on"`
}

// ToGameDTO converts a game, classifying it against the given day
func ToGameDTO(game models.Game, now time.Time) GameDTO {
	return GameDTO{
		ID:          game.ID,
		Title:       game.Title,
		Description: game.Description,
		Date:        game.Date,
		Time:        game.Time,
		Address:     game.Address,
		City:        game.City,
		State:       game.State,
		CreatedBy:   game.CreatedBy,
		IsActive:    game.IsActive,
		Status:      game.Status(now),
		CreatedOn:   game.CreatedOn,
	}
}

// ToGameDTOs converts a slice of games
func ToGameDTOs(games []models.Game, now time.Time) []GameDTO {
	dtos := make([]GameDTO, len(games))
	for i, game := range games {
		dtos[i] = ToGameDTO(game, now)
	}
	return dtos
}

// ToGameDetailDTO converts a game with roster and comments
func ToGameDetailDTO(game models.Game, players []models.User, comments []models.GameComment, now time.Time) GameDetailDTO {
	return GameDetailDTO{
		GameDTO:  ToGameDTO(game, now),
		Players:  ToUserDTOs(players),
		Comments: ToGameCommentDTOs(comments),
	}
}

// ToGameCommentDTO converts a comment
func ToGameCommentDTO(comment models.GameComment) GameCommentDTO {
	return GameCommentDTO{
		ID:        comment.ID,
		GameID:    comment.GameID,
		Username:  comment.Username,
		Comment:   comment.Comment,
		CreatedOn: comment.CreatedOn,
	}
}

// ToGameCommentDTOs converts a slice of comments
func ToGameCommentDTOs(comments []models.GameComment) []GameCommentDTO {
	dtos := make([]GameCommentDTO, len(comments))
	for i, comment := range comments {
		dtos[i] = ToGameCommentDTO(comment)
	}
	return dtos
}
