package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/srashed001/pug-backend-sub000/internal/apperrors"
	"github.com/srashed001/pug-backend-sub000/internal/dto"
	"github.com/srashed001/pug-backend-sub000/internal/middleware"
	"github.com/srashed001/pug-backend-sub000/internal/repository"
	"github.com/srashed001/pug-backend-sub000/internal/services"
)

// GameHandler handles game, roster and comment requests
type GameHandler struct {
	gameService *services.GameService
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

type createGameRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
	Time        string    `json:"time"`
	Address     string    `json:"address"`
	City        string    `json:"city" binding:"required"`
	State       string    `json:"state" binding:"required"`
}

type updateGameRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Time        *string    `json:"time"`
	Address     *string    `json:"address"`
	City        *string    `json:"city"`
	State       *string    `json:"state"`
}

type commentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// Create handles POST /api/games
func (h *GameHandler) Create(c *gin.Context) {
	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.BadRequest("invalid request body"))
		return
	}

	username, _ := middleware.GetUsername(c)
	game, err := h.gameService.Create(services.CreateGameInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		CreatedBy:   username,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"game": dto.ToGameDTO(*game, time.Now())})
}

// List handles GET /api/games. Supports ?search= over title and
// description; admins may pass ?all=true to include inactive games.
func (h *GameHandler) List(c *gin.Context) {
	filter := repository.GameFilter{
		Search:          c.Query("search"),
		IncludeInactive: c.Query("all") == "true" && middleware.IsAdmin(c),
	}

	games, err := h.gameService.List(filter)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"games": dto.ToGameDTOs(games, time.Now())})
}

// Get handles GET /api/games/:id
func (h *GameHandler) Get(c *gin.Context) {
	gameID, ok := parseGameID(c)
	if !ok {
		return
	}

	game, players, comments, err := h.gameService.Get(gameID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": dto.ToGameDetailDTO(*game, players, comments, time.Now())})
}

// Update handles PATCH /api/games/:id
func (h *GameHandler) Update(c *gin.Context) {
	gameID, ok := parseGameID(c)
	if !ok {
		return
	}

	var req updateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.BadRequest("invalid request body"))
		return
	}

	game, err := h.gameService.Update(gameID, services.UpdateGameInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": dto.ToGameDTO(*game, time.Now())})
}

// Deactivate handles DELETE /api/games/:id
func (h *GameHandler) Deactivate(c *gin.Context) {
	gameID, ok := parseGameID(c)
	if !ok {
		return
	}

	username, _ := middleware.GetUsername(c)
	game, err := h.gameService.Deactivate(gameID, username)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": dto.ToGameDTO(*game, time.Now())})
}

// Reactivate handles POST /api/games/:id/reactivate
func (h *GameHandler) Reactivate(c *gin.Context) {
	gameID, ok := parseGameID(c)
	if !ok {
		return
	}

	username, _ := middleware.GetUsername(c)
	game, err := h.gameService.Reactivate(gameID, username)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": dto.ToGameDTO(*game, time.Now())})
}

// Join handles POST /api/games/:id/join
func (h *GameHandler) Join(c *gin.Context) {
	gameID, ok := parseGameID(c)
	if !ok {
		return
	}

	username, _ := middleware.GetUsername(c)
	if err := h.gameService.Join(gameID, username); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"game_id": gameID, "username": username})
}

// Leave handles DELETE /api/games/:id/join
func (h *GameHandler) Leave(c *gin.Context) {
	gameID, ok := parseGameID(c)
	if !ok {
		return
	}

	username, _ := middleware.GetUsername(c)
	if err := h.gameService.Leave(gameID, username); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"game_id": gameID, "username": username})
}

// AddComment handles POST /api/games/:id/comments
func (h *GameHandler) AddComment(c *gin.Context) {
	gameID, ok := parseGameID(c)
	if !ok {
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.BadRequest("invalid request body"))
		return
	}

	username, _ := middleware.GetUsername(c)
	comment, err := h.gameService.AddComment(gameID, username, req.Comment)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": dto.ToGameCommentDTO(*comment)})
}

// EditComment handles PATCH /api/comments/:id
func (h *GameHandler) EditComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "id", "comment")
	if !ok {
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.BadRequest("invalid request body"))
		return
	}

	username, _ := middleware.GetUsername(c)
	comment, err := h.gameService.EditComment(commentID, username, req.Comment)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": dto.ToGameCommentDTO(*comment)})
}

// DeleteComment handles DELETE /api/comments/:id
func (h *GameHandler) DeleteComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "id", "comment")
	if !ok {
		return
	}

	username, _ := middleware.GetUsername(c)
	comment, err := h.gameService.DeleteComment(commentID, username, middleware.IsAdmin(c))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": dto.ToGameCommentDTO(*comment)})
}

func parseGameID(c *gin.Context) (uint64, bool) {
	return parseIDParam(c, "id", "game")
}

func parseIDParam(c *gin.Context, param, label string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		apperrors.Respond(c, apperrors.BadRequest("invalid %s id: %s", label, c.Param(param)))
		return 0, false
	}
	return id, true
}
