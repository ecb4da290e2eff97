package helpers

import (
	"fmt"
	"testing"
	"time"

	"foodshare_backend/internal/auth"
	"foodshare_backend/internal/models"

	"gorm.io/gorm"
)

// CreateUser inserts a user directly, hashing the raw password first.
func CreateUser(t *testing.T, db *gorm.DB, name, email, password string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", email, err)
	}
	return user
}

// CreateDonor inserts a donor with a unique email.
func CreateDonor(t *testing.T, db *gorm.DB) *models.User {
	email := fmt.Sprintf("donor_%d@test.com", time.Now().UnixNano())
	return CreateUser(t, db, "Test Donor", email, "password123", models.UserRoleDonor)
}

// CreateRecipient inserts a recipient with a unique email.
func CreateRecipient(t *testing.T, db *gorm.DB) *models.User {
	email := fmt.Sprintf("recipient_%d@test.com", time.Now().UnixNano())
	return CreateUser(t, db, "Test Recipient", email, "password123", models.UserRoleRecipient)
}

// CreateVolunteer inserts a volunteer with a unique email.
func CreateVolunteer(t *testing.T, db *gorm.DB) *models.User {
	email := fmt.Sprintf("volunteer_%d@test.com", time.Now().UnixNano())
	return CreateUser(t, db, "Test Volunteer", email, "password123", models.UserRoleVolunteer)
}

// CreateListing inserts an available listing for the donor.
func CreateListing(t *testing.T, db *gorm.DB, donor *models.User, title string, quantity float64) *models.FoodListing {
	t.Helper()

	listing := &models.FoodListing{
		DonorID:        donor.ID,
		Title:          title,
		Quantity:       quantity,
		Unit:           "kg",
		Location:       "Community Center",
		PickupDeadline: time.Now().Add(24 * time.Hour),
		Status:         models.ListingStatusAvailable,
	}
	if err := db.Create(listing).Error; err != nil {
		t.Fatalf("Failed to create listing %q: %v", title, err)
	}
	return listing
}
