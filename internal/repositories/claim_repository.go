package repositories

import (
	"errors"

	"foodshare_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrClaimNotFound      = errors.New("claim not found")
	ErrClaimAlreadyExists = errors.New("claim already exists for listing")
)

type ClaimRepository interface {
	// Create inserts the claim. The uniqueness check is not a separate
	// read-then-write: the unique index on listing_id rejects the second of
	// two racing inserts, and the duplicate-key error comes back as
	// ErrClaimAlreadyExists.
	Create(db *gorm.DB, claim *models.Claim) error
	FindByListingID(db *gorm.DB, listingID string) (*models.Claim, error)
	CountDistinctRecipients(db *gorm.DB) (int64, error)
}

type ClaimRepositoryImpl struct{}

func NewClaimRepository() ClaimRepository {
	return &ClaimRepositoryImpl{}
}

func (r *ClaimRepositoryImpl) Create(db *gorm.DB, claim *models.Claim) error {
	if err := db.Create(claim).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrClaimAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ClaimRepositoryImpl) FindByListingID(db *gorm.DB, listingID string) (*models.Claim, error) {
	var claim models.Claim
	err := db.First(&claim, "listing_id = ?", listingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, err
	}
	return &claim, nil
}

func (r *ClaimRepositoryImpl) CountDistinctRecipients(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Claim{}).Distinct("recipient_id").Count(&count).Error
	return count, err
}
