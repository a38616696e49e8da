package services

import (
	"testing"
	"time"

	"github.com/srashed001/pug-backend-sub000/internal/models"
	"github.com/srashed001/pug-backend-sub000/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

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

func (e testEnv) createUser(t *testing.T, username string) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		PasswordHash: "not-a-real-hash",
		FirstName:    "Test",
		LastName:     "User",
		Email:        username + "@example.com",
		City:         "Oakland",
		State:        "CA",
		IsActive:     true,
	}
	require.NoError(t, e.db.Create(&user).Error)
	return user
}

func (e testEnv) deactivateUser(t *testing.T, username string) {
	t.Helper()
	err := e.db.Model(&models.User{}).Where("username = ?", username).
		Update("is_active", false).Error
	require.NoError(t, err)
}

func (e testEnv) createGame(t *testing.T, host string) models.Game {
	t.Helper()

	game := models.Game{
		Title:     "pickup at the park",
		Date:      time.Now().AddDate(0, 0, 7),
		Time:      "18:00",
		City:      "Oakland",
		State:     "CA",
		CreatedBy: host,
		IsActive:  true,
	}
	require.NoError(t, e.gameRepo.Create(&game))
	return game
}
