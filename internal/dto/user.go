package dto

import (
	"time"

	"github.com/srashed001/pug-backend-sub000/internal/models"
)

// UserDTO represents a user's public profile in API responses
type UserDTO struct {
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	City       string `json:"city"`
	State      string `json:"state"`
	ProfileImg string `json:"profile_img,omitempty"`
	IsActive   bool   `json:"is_active"`
}

// UserDetailDTO is the fuller shape returned for the account itself
type UserDetailDTO struct {
	UserDTO
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	IsPrivate bool       `json:"is_private"`
	IsAdmin   bool       `json:"is_admin"`
	CreatedOn time.Time  `json:"created_on"`
}

// ToUserDTO converts a user to its public profile
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		Username:   user.Username,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		City:       user.City,
		State:      user.State,
		ProfileImg: user.ProfileImg,
		IsActive:   user.IsActive,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}

// ToUserDetailDTO converts a user including account fields
func ToUserDetailDTO(user models.User) UserDetailDTO {
	return UserDetailDTO{
		UserDTO:   ToUserDTO(user),
		Email:     user.Email,
		Phone:     user.Phone,
		BirthDate: user.BirthDate,
		IsPrivate: user.IsPrivate,
		IsAdmin:   user.IsAdmin,
		CreatedOn: user.CreatedOn,
	}
}
