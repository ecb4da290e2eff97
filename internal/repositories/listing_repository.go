package repositories

import (
	"errors"

	"foodshare_backend/internal/models"

	"gorm.io/gorm"
)

var ErrListingNotFound = errors.New("listing not found")

type ListingRepository interface {
	FindByID(db *gorm.DB, id string) (*models.FoodListing, error)
	Create(db *gorm.DB, listing *models.FoodListing) error
	// FindAll re-queries the store on every call, ordered by pickup deadline
	// ascending. An empty status returns all listings.
	FindAll(db *gorm.DB, status models.ListingStatus) ([]models.FoodListing, error)
	UpdateStatus(db *gorm.DB, listingID string, status models.ListingStatus) error
}

type ListingRepositoryImpl struct{}

func NewListingRepository() ListingRepository {
	return &ListingRepositoryImpl{}
}

func (r *ListingRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.FoodListing, error) {
	var listing models.FoodListing
	err := db.First(&listing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepositoryImpl) Create(db *gorm.DB, listing *models.FoodListing) error {
	return db.Create(listing).Error
}

func (r *ListingRepositoryImpl) FindAll(db *gorm.DB, status models.ListingStatus) ([]models.FoodListing, error) {
	var listings []models.FoodListing
	query := db.Order("pickup_deadline ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *ListingRepositoryImpl) UpdateStatus(db *gorm.DB, listingID string, status models.ListingStatus) error {
	result := db.Model(&models.FoodListing{}).Where("id = ?", listingID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}
