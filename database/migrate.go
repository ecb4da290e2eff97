package database

import (
	"foodshare_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate runs GORM AutoMigrate for every model. Order matters: users first,
// then the tables holding foreign keys into them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.FoodListing{},
		&models.Claim{},
		&models.PickupTask{},
	)
}
