package database

import (
	"fmt"
	"log"

	"github.com/srashed001/pug-backend-sub000/internal/config"
	"github.com/srashed001/pug-backend-sub000/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established")
	return nil
}

func Migrate() error {
	log.Println("Running database migrations...")
	err := DB.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.GamePlayer{},
		&models.GameComment{},
		&models.Follow{},
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
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("Database migrations completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
