package repository

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/srashed001/pug-backend-sub000/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		mockDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 mockDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestInviteRepository_HasActivePending(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInviteRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "invites"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	pending, err := repo.HasActivePending(7, "guest")
	require.NoError(t, err)
	require.True(t, pending)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "invites"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	pending, err = repo.HasActivePending(7, "guest")
	require.NoError(t, err)
	require.False(t, pending)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInviteRepository_Create_RollsBackOnFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInviteRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "invites"`).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := repo.Create(&models.Invite{
		GameID:       7,
		FromUsername: "host",
		ToUsername:   "guest",
		Status:       models.InviteStatusPending,
	})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInviteRepository_Create_WritesAuditRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInviteRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "invites"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectQuery(`INSERT INTO "invites_activity"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	invite := models.Invite{
		GameID:       7,
		FromUsername: "host",
		ToUsername:   "guest",
		Status:       models.InviteStatusPending,
	}
	require.NoError(t, repo.Create(&invite))
	require.Equal(t, uint64(42), invite.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
