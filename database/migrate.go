package database

import (
	"talentcast_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates the schema. The uuid-ossp extension backs the uuid primary
// key defaults.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.Blog{},
	)
}
