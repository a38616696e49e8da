package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/srashed001/pug-backend-sub000/internal/apperrors"
	"github.com/srashed001/pug-backend-sub000/internal/dto"
	"github.com/srashed001/pug-backend-sub000/internal/services"
)

// AuthHandler handles registration and login requests
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required"`
	City      string `json:"city"`
	State     string `json:"state"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token string            `json:"token"`
	User  dto.UserDetailDTO `json:"user"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.BadRequest("invalid request body"))
		return
	}

	user, token, err := h.authService.Register(services.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		City:      req.City,
		State:     req.State,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse{
		Token: token,
		User:  dto.ToUserDetailDTO(*user),
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.BadRequest("invalid request body"))
		return
	}

	user, token, err := h.authService.Login(services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{
		Token: token,
		User:  dto.ToUserDetailDTO(*user),
	})
}
