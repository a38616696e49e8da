package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/srashed001/pug-backend-sub000/internal/apperrors"
	"github.com/srashed001/pug-backend-sub000/internal/dto"
	"github.com/srashed001/pug-backend-sub000/internal/middleware"
	"github.com/srashed001/pug-backend-sub000/internal/models"
	"github.com/srashed001/pug-backend-sub000/internal/services"
)

// InviteHandler handles invite requests
type InviteHandler struct {
	inviteService *services.InviteService
}

// NewInviteHandler creates a new InviteHandler
func NewInviteHandler(inviteService *services.InviteService) *InviteHandler {
	return &InviteHandler{inviteService: inviteService}
}

type createInviteRequest struct {
	GameID uint64 `json:"game_id" binding:"required"`
	ToUser string `json:"to_user" binding:"required"`
}

type createGroupInviteRequest struct {
	GameID  uint64   `json:"game_id" binding:"required"`
	ToUsers []string `json:"to_users" binding:"required"`
}

type updateInviteRequest struct {
	Status string `json:"status" binding:"required"`
}

// Create handles POST /api/invites
func (h *InviteHandler) Create(c *gin.Context) {
	var req createInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.BadRequest("invalid request body"))
		return
	}

	username, _ := middleware.GetUsername(c)
	invite, err := h.inviteService.Create(services.CreateInput{
		GameID:       req.GameID,
		FromUsername: username,
		ToUsername:   req.ToUser,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"invite": dto.ToInviteDTO(*invite, time.Now())})
}

// CreateGroup handles POST /api/invites/group
func (h *InviteHandler) CreateGroup(c *gin.Context) {
	var req createGroupInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.BadRequest("invalid request body"))
		return
	}

	username, _ := middleware.GetUsername(c)
	invites, err := h.inviteService.CreateGroup(req.GameID, username, req.ToUsers)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"invites": dto.ToInviteDTOs(invites, time.Now())})
}

// Update handles PATCH /api/invites/:id
func (h *InviteHandler) Update(c *gin.Context) {
	inviteID, ok := parseIDParam(c, "id", "invite")
	if !ok {
		return
	}

	var req updateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.BadRequest("invalid request body"))
		return
	}

	username, _ := middleware.GetUsername(c)
	invite, err := h.inviteService.Update(inviteID, username, models.InviteStatus(req.Status))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invite": dto.ToInviteDTO(*invite, time.Now())})
}

// GameInvites handles GET /api/games/:id/invites
func (h *InviteHandler) GameInvites(c *gin.Context) {
	gameID, ok := parseGameID(c)
	if !ok {
		return
	}

	invites, err := h.inviteService.GameInvites(gameID, c.Query("all") == "true")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invites": dto.ToInviteDTOs(invites, time.Now())})
}

// Sent handles GET /api/users/:username/invites/sent
func (h *InviteHandler) Sent(c *gin.Context) {
	invites, err := h.inviteService.Sent(c.Param("username"), c.Query("all") == "true")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invites": dto.ToInviteDTOs(invites, time.Now())})
}

// Received handles GET /api/users/:username/invites/received
func (h *InviteHandler) Received(c *gin.Context) {
	invites, err := h.inviteService.Received(c.Param("username"), c.Query("all") == "true")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invites": dto.ToInviteDTOs(invites, time.Now())})
}
