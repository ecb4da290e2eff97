package dto

import (
	"time"

	"foodshare_backend/internal/models"
)

type CreateListingRequest struct {
	DonorID        string    `json:"donor_id" validate:"required"`
	Title          string    `json:"title" validate:"required,max=255"`
	Description    *string   `json:"description"`
	Quantity       float64   `json:"quantity" validate:"required,gt=0"`
	Unit           string    `json:"unit" validate:"required,max=50"`
	Location       string    `json:"location" validate:"required,max=255"`
	PickupDeadline time.Time `json:"pickup_deadline" validate:"required"`
}

type ClaimRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
}

// ListingResponse is the serialized listing. DonorName and ClaimedBy are
// denormalized at read time; ClaimedBy stays null while no claim exists.
type ListingResponse struct {
	ID             string               `json:"id"`
	DonorID        string               `json:"donor_id"`
	Title          string               `json:"title"`
	Description    *string              `json:"description"`
	Quantity       float64              `json:"quantity"`
	Unit           string               `json:"unit"`
	Location       string               `json:"location"`
	PickupDeadline time.Time            `json:"pickup_deadline"`
	Status         models.ListingStatus `json:"status"`
	CreatedAt      time.Time            `json:"created_at"`
	DonorName      *string              `json:"donor_name"`
	ClaimedBy      *string              `json:"claimed_by"`
}

type ClaimListingResponse struct {
	Message string          `json:"message"`
	Listing ListingResponse `json:"listing"`
	ClaimID string          `json:"claim_id"`
}
