package repositories

import (
	"foodshare_backend/internal/models"

	"gorm.io/gorm"
)

type AnalyticsRepository interface {
	CountListings(db *gorm.DB) (int64, error)
	CountListingsByStatus(db *gorm.DB, status models.ListingStatus) (int64, error)
	SumQuantityByStatuses(db *gorm.DB, statuses []models.ListingStatus) (float64, error)
	CountDistinctDonors(db *gorm.DB) (int64, error)
}

type AnalyticsRepositoryImpl struct{}

func NewAnalyticsRepository() AnalyticsRepository {
	return &AnalyticsRepositoryImpl{}
}

func (r *AnalyticsRepositoryImpl) CountListings(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.FoodListing{}).Count(&count).Error
	return count, err
}

func (r *AnalyticsRepositoryImpl) CountListingsByStatus(db *gorm.DB, status models.ListingStatus) (int64, error) {
	var count int64
	err := db.Model(&models.FoodListing{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *AnalyticsRepositoryImpl) SumQuantityByStatuses(db *gorm.DB, statuses []models.ListingStatus) (float64, error) {
	var total float64
	err := db.Model(&models.FoodListing{}).
		Where("status IN ?", statuses).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}

func (r *AnalyticsRepositoryImpl) CountDistinctDonors(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.FoodListing{}).Distinct("donor_id").Count(&count).Error
	return count, err
}
