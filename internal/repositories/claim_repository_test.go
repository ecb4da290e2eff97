package repositories_test

import (
	"testing"

	"foodshare_backend/internal/models"
	"foodshare_backend/internal/repositories"
	"foodshare_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The unique index on claims.listing_id is the claim-uniqueness invariant.
// This exercises the index and the error translation directly, below the
// service-layer status check.
func TestClaimRepository_UniquePerListing(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewClaimRepository()

	donor := helpers.CreateDonor(t, db)
	first := helpers.CreateRecipient(t, db)
	second := helpers.CreateRecipient(t, db)
	listing := helpers.CreateListing(t, db, donor, "Contested listing", 5)

	err := repo.Create(db, &models.Claim{
		ListingID:   listing.ID,
		RecipientID: first.ID,
		Status:      models.ClaimStatusScheduled,
	})
	require.NoError(t, err)

	err = repo.Create(db, &models.Claim{
		ListingID:   listing.ID,
		RecipientID: second.ID,
		Status:      models.ClaimStatusScheduled,
	})
	assert.ErrorIs(t, err, repositories.ErrClaimAlreadyExists)

	var count int64
	db.Model(&models.Claim{}).Where("listing_id = ?", listing.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestClaimRepository_FindByListingID(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewClaimRepository()

	donor := helpers.CreateDonor(t, db)
	recipient := helpers.CreateRecipient(t, db)
	listing := helpers.CreateListing(t, db, donor, "Claimed listing", 5)

	_, err := repo.FindByListingID(db, listing.ID)
	assert.ErrorIs(t, err, repositories.ErrClaimNotFound)

	require.NoError(t, repo.Create(db, &models.Claim{
		ListingID:   listing.ID,
		RecipientID: recipient.ID,
		Status:      models.ClaimStatusScheduled,
	}))

	claim, err := repo.FindByListingID(db, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, recipient.ID, claim.RecipientID)
}

func TestListingRepository_FindAllRestartable(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewListingRepository()

	donor := helpers.CreateDonor(t, db)
	helpers.CreateListing(t, db, donor, "First", 1)

	listings, err := repo.FindAll(db, "")
	require.NoError(t, err)
	assert.Len(t, listings, 1)

	// A second call re-queries the store and sees new rows.
	helpers.CreateListing(t, db, donor, "Second", 2)

	listings, err = repo.FindAll(db, "")
	require.NoError(t, err)
	assert.Len(t, listings, 2)
}
