package database

import (
	"trivia-game-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	// TranslateError lets callers detect duplicate-key conflicts with
	// errors.Is(err, gorm.ErrDuplicatedKey).
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Game{},
	)
}
