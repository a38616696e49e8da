package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/srashed001/pug-backend-sub000/internal/database"
	"github.com/srashed001/pug-backend-sub000/internal/models"
	"github.com/srashed001/pug-backend-sub000/internal/repository"
	"github.com/srashed001/pug-backend-sub000/internal/services"
	"github.com/srashed001/pug-backend-sub000/internal/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testJWTSecret = []byte("test-secret")

type testEnv struct {
	db *gorm.DB

	userRepo     repository.UserRepository
	gameRepo     repository.GameRepository
	followRepo   repository.FollowRepository
	threadRepo   repository.ThreadRepository
	inviteRepo   repository.InviteRepository
	activityRepo repository.ActivityRepository
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Game{},
		&models.GamePlayer{},
		&models.GameComment{},
		&models.Invite{},
		&models.Thread{},
		&models.ThreadMember{},
		&models.Message{},
		&models.MessageTombstone{},
		&models.GameActivity{},
		&models.GamePlayerActivity{},
		&models.CommentActivity{},
		&models.FollowActivity{},
		&models.InviteActivity{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return testEnv{
		db:           db,
		userRepo:     repository.NewUserRepository(db),
		gameRepo:     repository.NewGameRepository(db),
		followRepo:   repository.NewFollowRepository(db),
		threadRepo:   repository.NewThreadRepository(db),
		inviteRepo:   repository.NewInviteRepository(db),
		activityRepo: repository.NewActivityRepository(db),
	}
}

func (e testEnv) registerUser(t *testing.T, username string) string {
	t.Helper()

	authService := services.NewAuthService(e.userRepo, testJWTSecret)
	_, token, err := authService.Register(services.RegisterInput{
		Username: username,
		Password: "supersecret",
		Email:    username + "@example.com",
	})
	require.NoError(t, err)
	return token
}

func jsonRequest(t *testing.T, method, target string, payload any, token string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewAuthHandler(services.NewAuthService(env.userRepo, testJWTSecret))

	r := gin.New()
	r.POST("/api/auth/register", handler.Register)

	payload := map[string]string{
		"username": "newuser",
		"password": "supersecret",
		"email":    "newuser@example.com",
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/auth/register", payload, ""))

	require.Equal(t, http.StatusCreated, w.Code)

	var response authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "newuser", response.User.Username)
	require.NotEmpty(t, response.Token)

	claims, err := utils.ParseToken(response.Token, testJWTSecret)
	require.NoError(t, err)
	require.Equal(t, "newuser", claims.Username)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewAuthHandler(services.NewAuthService(env.userRepo, testJWTSecret))

	r := gin.New()
	r.POST("/api/auth/register", handler.Register)

	payload := map[string]string{
		"username": "newuser",
		"password": "short",
		"email":    "newuser@example.com",
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/auth/register", payload, ""))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Error struct {
			Message string `json:"message"`
			Status  int    `json:"status"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, http.StatusBadRequest, response.Error.Status)
	require.NotEmpty(t, response.Error.Message)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewAuthHandler(services.NewAuthService(env.userRepo, testJWTSecret))
	env.registerUser(t, "existing")

	r := gin.New()
	r.POST("/api/auth/login", handler.Login)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "existing",
		"password": "supersecret",
	}, ""))

	require.Equal(t, http.StatusOK, w.Code)

	var response authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "existing", response.User.Username)
	require.NotEmpty(t, response.Token)

	// wrong credentials never say which part was wrong
	w = httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "existing",
		"password": "wrongpassword",
	}, ""))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
