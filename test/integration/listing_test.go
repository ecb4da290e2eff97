package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"foodshare_backend/internal/models"
	"foodshare_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateListing(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	donor := helpers.CreateDonor(t, ts.DB)

	body := map[string]interface{}{
		"donor_id":        donor.ID,
		"title":           "Surplus bread",
		"description":     "20 loaves from this morning",
		"quantity":        10.0,
		"unit":            "kg",
		"location":        "Main St Bakery",
		"pickup_deadline": time.Now().Add(12 * time.Hour).Format(time.RFC3339),
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/listings", "", body)

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var listing struct {
		ID        string  `json:"id"`
		Status    string  `json:"status"`
		DonorName *string `json:"donor_name"`
		ClaimedBy *string `json:"claimed_by"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &listing))
	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, "available", listing.Status)
	require.NotNil(t, listing.DonorName)
	assert.Equal(t, donor.Name, *listing.DonorName)
	assert.Nil(t, listing.ClaimedBy)
}

func TestCreateListing_RecipientForbidden(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	recipient := helpers.CreateRecipient(t, ts.DB)

	body := map[string]interface{}{
		"donor_id":        recipient.ID,
		"title":           "Not allowed",
		"quantity":        5.0,
		"unit":            "kg",
		"location":        "Somewhere",
		"pickup_deadline": time.Now().Add(12 * time.Hour).Format(time.RFC3339),
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/listings", "", body)

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "FORBIDDEN")

	var count int64
	ts.DB.Model(&models.FoodListing{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateListing_UnknownDonor(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	body := map[string]interface{}{
		"donor_id":        "00000000-0000-0000-0000-000000000000",
		"title":           "Ghost listing",
		"quantity":        5.0,
		"unit":            "kg",
		"location":        "Nowhere",
		"pickup_deadline": time.Now().Add(12 * time.Hour).Format(time.RFC3339),
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/listings", "", body)

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "NOT_FOUND")
}

func TestListListings_OrderedByDeadline(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	donor := helpers.CreateDonor(t, ts.DB)

	late := helpers.CreateListing(t, ts.DB, donor, "Late pickup", 3)
	ts.DB.Model(late).Update("pickup_deadline", time.Now().Add(48*time.Hour))
	early := helpers.CreateListing(t, ts.DB, donor, "Early pickup", 2)
	ts.DB.Model(early).Update("pickup_deadline", time.Now().Add(2*time.Hour))

	res, bodyStr := ts.SendRequest(t, "GET", "/listings", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var listings []struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &listings))
	require.Len(t, listings, 2)
	assert.Equal(t, "Early pickup", listings[0].Title)
	assert.Equal(t, "Late pickup", listings[1].Title)
}

func TestListListings_StatusFilter(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	donor := helpers.CreateDonor(t, ts.DB)

	helpers.CreateListing(t, ts.DB, donor, "Open", 4)
	claimedListing := helpers.CreateListing(t, ts.DB, donor, "Taken", 6)
	ts.DB.Model(claimedListing).Update("status", models.ListingStatusClaimed)

	res, bodyStr := ts.SendRequest(t, "GET", "/listings?status=available", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var listings []struct {
		Title  string `json:"title"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &listings))
	require.Len(t, listings, 1)
	assert.Equal(t, "Open", listings[0].Title)

	// Unknown filter values are rejected, not silently ignored.
	badRes, badBodyStr := ts.SendRequest(t, "GET", "/listings?status=bogus", "", nil)
	assert.Equal(t, http.StatusBadRequest, badRes.StatusCode)
	assert.Contains(t, badBodyStr, "Invalid status filter")
}

func TestClaimListing(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	donor := helpers.CreateDonor(t, ts.DB)
	recipient := helpers.CreateRecipient(t, ts.DB)
	listing := helpers.CreateListing(t, ts.DB, donor, "Fresh produce", 10)

	body := map[string]interface{}{"recipient_id": recipient.ID}
	res, bodyStr := ts.SendRequest(t, "POST", "/listings/"+listing.ID+"/claim", "", body)

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var claimResponse struct {
		ClaimID string `json:"claim_id"`
		Listing struct {
			Status    string  `json:"status"`
			ClaimedBy *string `json:"claimed_by"`
		} `json:"listing"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &claimResponse))
	assert.NotEmpty(t, claimResponse.ClaimID)
	assert.Equal(t, "claimed", claimResponse.Listing.Status)
	require.NotNil(t, claimResponse.Listing.ClaimedBy)
	assert.Equal(t, recipient.Name, *claimResponse.Listing.ClaimedBy)

	var claim models.Claim
	require.NoError(t, ts.DB.First(&claim, "listing_id = ?", listing.ID).Error)
	assert.Equal(t, recipient.ID, claim.RecipientID)
	assert.Equal(t, models.ClaimStatusScheduled, claim.Status)
}

func TestClaimListing_SecondClaimRejected(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	donor := helpers.CreateDonor(t, ts.DB)
	first := helpers.CreateRecipient(t, ts.DB)
	second := helpers.CreateRecipient(t, ts.DB)
	listing := helpers.CreateListing(t, ts.DB, donor, "Single batch", 10)

	res, _ := ts.SendRequest(t, "POST", "/listings/"+listing.ID+"/claim", "", map[string]interface{}{"recipient_id": first.ID})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res2, bodyStr2 := ts.SendRequest(t, "POST", "/listings/"+listing.ID+"/claim", "", map[string]interface{}{"recipient_id": second.ID})
	assert.Equal(t, http.StatusConflict, res2.StatusCode)
	assert.Contains(t, bodyStr2, "INVALID_STATUS")

	// Still exactly one claim.
	var count int64
	ts.DB.Model(&models.Claim{}).Where("listing_id = ?", listing.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestClaimListing_DonorForbidden(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	donor := helpers.CreateDonor(t, ts.DB)
	otherDonor := helpers.CreateDonor(t, ts.DB)
	listing := helpers.CreateListing(t, ts.DB, donor, "Not for donors", 5)

	res, bodyStr := ts.SendRequest(t, "POST", "/listings/"+listing.ID+"/claim", "", map[string]interface{}{"recipient_id": otherDonor.ID})

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "FORBIDDEN")

	// The listing is untouched.
	var reloaded models.FoodListing
	require.NoError(t, ts.DB.First(&reloaded, "id = ?", listing.ID).Error)
	assert.Equal(t, models.ListingStatusAvailable, reloaded.Status)
}

func TestClaimListing_AdminAllowed(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	donor := helpers.CreateDonor(t, ts.DB)
	admin := helpers.CreateUser(t, ts.DB, "Admin", "admin_claim@test.com", "password123", models.UserRoleAdmin)
	listing := helpers.CreateListing(t, ts.DB, donor, "Admin claimable", 5)

	res, _ := ts.SendRequest(t, "POST", "/listings/"+listing.ID+"/claim", "", map[string]interface{}{"recipient_id": admin.ID})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestClaimListing_UnknownListing(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	recipient := helpers.CreateRecipient(t, ts.DB)

	res, bodyStr := ts.SendRequest(t, "POST", "/listings/00000000-0000-0000-0000-000000000000/claim", "", map[string]interface{}{"recipient_id": recipient.ID})

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "NOT_FOUND")
}
