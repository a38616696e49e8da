package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/srashed001/pug-backend-sub000/internal/middleware"
	"github.com/srashed001/pug-backend-sub000/internal/services"
	"github.com/stretchr/testify/require"
)

func setupMessageRouter(env testEnv) (*gin.Engine, *MessageHandler) {
	messageService := services.NewMessageService(env.threadRepo, env.userRepo)
	handler := NewMessageHandler(messageService)

	r := gin.New()
	r.Use(middleware.Authenticate(testJWTSecret))

	threads := r.Group("/api/threads")
	threads.Use(middleware.RequireLogin())
	{
		threads.POST("", handler.Post)
		threads.GET("/:threadId", handler.Get)
		threads.DELETE("/:threadId", handler.HideThread)
	}
	return r, handler
}

func TestMessageHandler_Post(t *testing.T) {
	env := setupTestEnv(t)
	r, _ := setupMessageRouter(env)

	aliceToken := env.registerUser(t, "alice")
	env.registerUser(t, "bob")

	payload := map[string]any{
		"users": []string{"alice", "bob"},
		"body":  "game on saturday?",
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/threads", payload, aliceToken))

	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Message struct {
			ID       uint64 `json:"id"`
			ThreadID string `json:"thread_id"`
			Sender   string `json:"sender_username"`
			Body     string `json:"body"`
		} `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Message.ThreadID)
	require.Equal(t, "alice", response.Message.Sender)

	// the thread renders for the sender
	w = httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodGet, "/api/threads/"+response.Message.ThreadID, nil, aliceToken))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestMessageHandler_RequiresLogin(t *testing.T) {
	env := setupTestEnv(t)
	r, _ := setupMessageRouter(env)

	env.registerUser(t, "alice")
	env.registerUser(t, "bob")

	payload := map[string]any{
		"users": []string{"alice", "bob"},
		"body":  "anyone there?",
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/threads", payload, ""))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// a garbage token is ignored, not accepted
	w = httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/threads", payload, "not-a-token"))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMessageHandler_HideThread(t *testing.T) {
	env := setupTestEnv(t)
	r, _ := setupMessageRouter(env)

	aliceToken := env.registerUser(t, "alice")
	bobToken := env.registerUser(t, "bob")

	payload := map[string]any{
		"users": []string{"alice", "bob"},
		"body":  "hiding this later",
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/threads", payload, aliceToken))
	require.Equal(t, http.StatusCreated, w.Code)

	var posted struct {
		Message struct {
			ThreadID string `json:"thread_id"`
		} `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posted))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodDelete, "/api/threads/"+posted.Message.ThreadID, nil, bobToken))
	require.Equal(t, http.StatusOK, w.Code)

	var hidden struct {
		HiddenMessageIDs []uint64 `json:"hidden_message_ids"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hidden))
	require.Len(t, hidden.HiddenMessageIDs, 1)

	// the sender still sees the thread
	w = httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodGet, "/api/threads/"+posted.Message.ThreadID, nil, aliceToken))
	require.Equal(t, http.StatusOK, w.Code)
}
