package services

import (
	"foodshare_backend/internal/auth"
	"foodshare_backend/internal/dto"
	"foodshare_backend/internal/models"
	"foodshare_backend/internal/repositories"
	"foodshare_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ListingService runs the listing lifecycle. A listing only ever moves
// forward: available -> claimed -> completed, with expired as a terminal
// side exit from available (set externally; no operation here triggers it).
type ListingService interface {
	CreateListing(db *gorm.DB, req *dto.CreateListingRequest) (*dto.ListingResponse, error)
	GetListing(db *gorm.DB, listingID string) (*dto.ListingResponse, error)
	ListListings(db *gorm.DB, statusFilter string) ([]dto.ListingResponse, error)
	ClaimListing(db *gorm.DB, listingID, recipientID string) (*dto.ClaimListingResponse, error)
}

type listingService struct {
	listingRepo repositories.ListingRepository
	claimRepo   repositories.ClaimRepository
	userRepo    repositories.UserRepository
}

func NewListingService(
	listingRepo repositories.ListingRepository,
	claimRepo repositories.ClaimRepository,
	userRepo repositories.UserRepository,
) ListingService {
	return &listingService{
		listingRepo: listingRepo,
		claimRepo:   claimRepo,
		userRepo:    userRepo,
	}
}

func (s *listingService) CreateListing(db *gorm.DB, req *dto.CreateListingRequest) (*dto.ListingResponse, error) {
	donor, err := s.userRepo.FindByID(db, req.DonorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CanCreateListing(donor.Role) {
		return nil, apperrors.ErrRoleNotAllowed("Listings can only be created by donors or admins")
	}

	listing := &models.FoodListing{
		DonorID:        donor.ID,
		Title:          req.Title,
		Description:    req.Description,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		Location:       req.Location,
		PickupDeadline: req.PickupDeadline,
		Status:         models.ListingStatusAvailable,
	}

	if err := s.listingRepo.Create(db, listing); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.serializeListing(db, listing), nil
}

func (s *listingService) GetListing(db *gorm.DB, listingID string) (*dto.ListingResponse, error) {
	listing, err := s.listingRepo.FindByID(db, listingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.serializeListing(db, listing), nil
}

func (s *listingService) ListListings(db *gorm.DB, statusFilter string) ([]dto.ListingResponse, error) {
	status := models.ListingStatus(statusFilter)
	if statusFilter != "" && !models.ValidListingStatus(status) {
		return nil, apperrors.ErrInvalidStatusFilter
	}

	listings, err := s.listingRepo.FindAll(db, status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.ListingResponse, 0, len(listings))
	for i := range listings {
		responses = append(responses, *s.serializeListing(db, &listings[i]))
	}
	return responses, nil
}

// ClaimListing reserves an available listing for a recipient and advances the
// listing to claimed, as one transaction. The unique index on claims.listing_id
// makes the claim insert the test-and-set: under two racing claims the loser's
// insert fails with a duplicate key, the transaction rolls back, and no status
// update leaks out.
func (s *listingService) ClaimListing(db *gorm.DB, listingID, recipientID string) (*dto.ClaimListingResponse, error) {
	listing, err := s.listingRepo.FindByID(db, listingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if listing.Status != models.ListingStatusAvailable {
		return nil, apperrors.ErrListingNotAvailable
	}

	recipient, err := s.userRepo.FindByID(db, recipientID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CanClaimListing(recipient.Role) {
		return nil, apperrors.ErrRoleNotAllowed("Only recipients can claim listings")
	}

	claim := &models.Claim{
		ListingID:   listing.ID,
		RecipientID: recipient.ID,
		Status:      models.ClaimStatusScheduled,
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := s.claimRepo.Create(tx, claim); err != nil {
			return err
		}
		return s.listingRepo.UpdateStatus(tx, listing.ID, models.ListingStatusClaimed)
	})
	if txErr != nil {
		if apperrors.Is(txErr, repositories.ErrClaimAlreadyExists) {
			return nil, apperrors.ErrListingAlreadyClaimed
		}
		return nil, apperrors.InternalError(txErr)
	}

	listing.Status = models.ListingStatusClaimed

	return &dto.ClaimListingResponse{
		Message: "Listing claimed successfully",
		Listing: *s.serializeListing(db, listing),
		ClaimID: claim.ID,
	}, nil
}

// serializeListing joins donor and claimant names at read time via explicit
// lookups, keeping the model free of bidirectional object graphs. Lookup
// failures leave the names null rather than failing the read.
func (s *listingService) serializeListing(db *gorm.DB, listing *models.FoodListing) *dto.ListingResponse {
	resp := &dto.ListingResponse{
		ID:             listing.ID,
		DonorID:        listing.DonorID,
		Title:          listing.Title,
		Description:    listing.Description,
		Quantity:       listing.Quantity,
		Unit:           listing.Unit,
		Location:       listing.Location,
		PickupDeadline: listing.PickupDeadline,
		Status:         listing.Status,
		CreatedAt:      listing.CreatedAt,
	}

	if donor, err := s.userRepo.FindByID(db, listing.DonorID); err == nil {
		resp.DonorName = &donor.Name
	}

	if claim, err := s.claimRepo.FindByListingID(db, listing.ID); err == nil {
		if recipient, err := s.userRepo.FindByID(db, claim.RecipientID); err == nil {
			resp.ClaimedBy = &recipient.Name
		}
	}

	return resp
}
