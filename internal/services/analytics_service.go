package services

import (
	"foodshare_backend/internal/dto"
	"foodshare_backend/internal/models"
	"foodshare_backend/internal/repositories"
	"foodshare_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AnalyticsService is pure read-side aggregation over the current store
// state. No side effects, no caching: every call reflects the registry at
// query time.
type AnalyticsService interface {
	ImpactSummary(db *gorm.DB) (*dto.ImpactResponse, error)
}

type analyticsService struct {
	analyticsRepo repositories.AnalyticsRepository
	claimRepo     repositories.ClaimRepository
}

func NewAnalyticsService(
	analyticsRepo repositories.AnalyticsRepository,
	claimRepo repositories.ClaimRepository,
) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		claimRepo:     claimRepo,
	}
}

func (s *analyticsService) ImpactSummary(db *gorm.DB) (*dto.ImpactResponse, error) {
	totalListings, err := s.analyticsRepo.CountListings(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	available, err := s.analyticsRepo.CountListingsByStatus(db, models.ListingStatusAvailable)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	claimed, err := s.analyticsRepo.CountListingsByStatus(db, models.ListingStatusClaimed)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	completed, err := s.analyticsRepo.CountListingsByStatus(db, models.ListingStatusCompleted)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	diverted, err := s.analyticsRepo.SumQuantityByStatuses(db, []models.ListingStatus{
		models.ListingStatusClaimed,
		models.ListingStatusCompleted,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	uniqueDonors, err := s.analyticsRepo.CountDistinctDonors(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	uniqueRecipients, err := s.claimRepo.CountDistinctRecipients(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ImpactResponse{
		Totals: dto.ImpactTotals{
			Listings:  totalListings,
			Available: available,
			Claimed:   claimed,
			Completed: completed,
		},
		Impact: dto.ImpactMetrics{
			QuantityDiverted: diverted,
			UniqueDonors:     uniqueDonors,
			UniqueRecipients: uniqueRecipients,
		},
	}, nil
}
