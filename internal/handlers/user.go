package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/srashed001/pug-backend-sub000/internal/apperrors"
	"github.com/srashed001/pug-backend-sub000/internal/dto"
	"github.com/srashed001/pug-backend-sub000/internal/middleware"
	"github.com/srashed001/pug-backend-sub000/internal/services"
)

// UserHandler handles user profile, follow and activity requests
type UserHandler struct {
	userService     *services.UserService
	followService   *services.FollowService
	activityService *services.ActivityService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService, followService *services.FollowService, activityService *services.ActivityService) *UserHandler {
	return &UserHandler{
		userService:     userService,
		followService:   followService,
		activityService: activityService,
	}
}

// List handles GET /api/users. Admins may pass ?all=true to include
// inactive accounts.
func (h *UserHandler) List(c *gin.Context) {
	includeInactive := c.Query("all") == "true" && middleware.IsAdmin(c)

	users, err := h.userService.List(includeInactive)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": dto.ToUserDTOs(users)})
}

// Get handles GET /api/users/:username
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.Get(c.Param("username"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	actor, _ := middleware.GetUsername(c)
	if actor == user.Username || middleware.IsAdmin(c) {
		c.JSON(http.StatusOK, gin.H{"user": dto.ToUserDetailDTO(*user)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": dto.ToUserDTO(*user)})
}

// Update handles PATCH /api/users/:username
func (h *UserHandler) Update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		apperrors.Respond(c, apperrors.BadRequest("invalid request body"))
		return
	}

	user, err := h.userService.Update(c.Param("username"), fields)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.ToUserDetailDTO(*user)})
}

// Deactivate handles DELETE /api/users/:username
func (h *UserHandler) Deactivate(c *gin.Context) {
	user, err := h.userService.Deactivate(c.Param("username"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.ToUserDetailDTO(*user)})
}

// Reactivate handles POST /api/users/:username/reactivate
func (h *UserHandler) Reactivate(c *gin.Context) {
	user, err := h.userService.Reactivate(c.Param("username"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.ToUserDetailDTO(*user)})
}

// Games handles GET /api/users/:username/games
func (h *UserHandler) Games(c *gin.Context) {
	hosted, joined, err := h.userService.Games(c.Param("username"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"hosted": dto.ToGameDTOs(hosted, now),
		"joined": dto.ToGameDTOs(joined, now),
	})
}

// ToggleFollow handles POST /api/users/:username/follow/:followed
func (h *UserHandler) ToggleFollow(c *gin.Context) {
	following, err := h.followService.Toggle(c.Param("followed"), c.Param("username"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": following})
}

// Followers handles GET /api/users/:username/followers
func (h *UserHandler) Followers(c *gin.Context) {
	users, err := h.followService.Followers(c.Param("username"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"followers": dto.ToUserDTOs(users)})
}

// Following handles GET /api/users/:username/following
func (h *UserHandler) Following(c *gin.Context) {
	users, err := h.followService.Following(c.Param("username"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": dto.ToUserDTOs(users)})
}

// Activity handles GET /api/users/:username/activity
func (h *UserHandler) Activity(c *gin.Context) {
	activity, err := h.activityService.GetUserActivity(c.Param("username"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}
