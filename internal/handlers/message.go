package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/srashed001/pug-backend-sub000/internal/apperrors"
	"github.com/srashed001/pug-backend-sub000/internal/dto"
	"github.com/srashed001/pug-backend-sub000/internal/middleware"
	"github.com/srashed001/pug-backend-sub000/internal/services"
)

// MessageHandler handles thread and message requests
type MessageHandler struct {
	messageService *services.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

type resolveThreadRequest struct {
	Users []string `json:"users" binding:"required"`
}

type postMessageRequest struct {
	Users []string `json:"users" binding:"required"`
	Body  string   `json:"body" binding:"required"`
}

type replyRequest struct {
	Body string `json:"body" binding:"required"`
}

// Resolve handles POST /api/threads/resolve. Returns the id of the thread
// whose member set matches the given users exactly, or null.
func (h *MessageHandler) Resolve(c *gin.Context) {
	var req resolveThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.BadRequest("invalid request body"))
		return
	}

	threadID, err := h.messageService.Resolve(req.Users)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	if threadID == "" {
		c.JSON(http.StatusOK, gin.H{"thread_id": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"thread_id": threadID})
}

// Post handles POST /api/threads. The caller is the sender and must be
// among the given users; the thread is created when it does not exist.
func (h *MessageHandler) Post(c *gin.Context) {
	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.BadRequest("invalid request body"))
		return
	}

	username, _ := middleware.GetUsername(c)
	message, err := h.messageService.Post(req.Users, username, req.Body)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": dto.ToMessageDTO(*message)})
}

// Reply handles POST /api/threads/:threadId/messages
func (h *MessageHandler) Reply(c *gin.Context) {
	var req replyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.BadRequest("invalid request body"))
		return
	}

	username, _ := middleware.GetUsername(c)
	message, err := h.messageService.Reply(c.Param("threadId"), username, req.Body)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": dto.ToMessageDTO(*message)})
}

// Get handles GET /api/threads/:threadId, rendered for the caller
func (h *MessageHandler) Get(c *gin.Context) {
	username, _ := middleware.GetUsername(c)
	view, err := h.messageService.ListForViewer(c.Param("threadId"), username)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"thread": dto.ToThreadViewDTO(*view)})
}

// HideThread handles DELETE /api/threads/:threadId. Hides every message in
// the thread from the caller's view only.
func (h *MessageHandler) HideThread(c *gin.Context) {
	username, _ := middleware.GetUsername(c)
	hidden, err := h.messageService.HideThread(c.Param("threadId"), username)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"hidden_message_ids": hidden})
}

// HideMessage handles DELETE /api/messages/:id. Hides the message from the
// caller's view only.
func (h *MessageHandler) HideMessage(c *gin.Context) {
	messageID, ok := parseIDParam(c, "id", "message")
	if !ok {
		return
	}

	username, _ := middleware.GetUsername(c)
	hidden, err := h.messageService.HideMessage(messageID, username)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"hidden_message_id": hidden})
}

// Threads handles GET /api/users/:username/threads
func (h *MessageHandler) Threads(c *gin.Context) {
	summaries, err := h.messageService.ListThreadsForUser(c.Param("username"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"threads": dto.ToThreadSummaryDTOs(summaries)})
}
