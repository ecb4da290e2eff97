package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"foodshare_backend/internal/models"
	"foodshare_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type impactResponse struct {
	Totals struct {
		Listings  int64 `json:"listings"`
		Available int64 `json:"available"`
		Claimed   int64 `json:"claimed"`
		Completed int64 `json:"completed"`
	} `json:"totals"`
	Impact struct {
		QuantityDiverted float64 `json:"quantity_diverted"`
		UniqueDonors     int64   `json:"unique_donors"`
		UniqueRecipients int64   `json:"unique_recipients"`
	} `json:"impact"`
}

func TestImpactSummary_Empty(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, bodyStr := ts.SendRequest(t, "GET", "/analytics/impact", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var impact impactResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &impact))
	assert.Zero(t, impact.Totals.Listings)
	assert.Zero(t, impact.Impact.QuantityDiverted)
	assert.Zero(t, impact.Impact.UniqueDonors)
	assert.Zero(t, impact.Impact.UniqueRecipients)
}

func TestImpactSummary(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	donorA := helpers.CreateDonor(t, ts.DB)
	donorB := helpers.CreateDonor(t, ts.DB)
	recipient := helpers.CreateRecipient(t, ts.DB)

	// One available (qty 3), one claimed (qty 10), one completed (qty 7).
	helpers.CreateListing(t, ts.DB, donorA, "Open listing", 3)

	claimed := helpers.CreateListing(t, ts.DB, donorA, "Claimed listing", 10)
	require.NoError(t, ts.DB.Create(&models.Claim{
		ListingID:   claimed.ID,
		RecipientID: recipient.ID,
		Status:      models.ClaimStatusScheduled,
	}).Error)
	ts.DB.Model(claimed).Update("status", models.ListingStatusClaimed)

	completed := helpers.CreateListing(t, ts.DB, donorB, "Completed listing", 7)
	ts.DB.Model(completed).Update("status", models.ListingStatusCompleted)

	res, bodyStr := ts.SendRequest(t, "GET", "/analytics/impact", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var impact impactResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &impact))

	assert.Equal(t, int64(3), impact.Totals.Listings)
	assert.Equal(t, int64(1), impact.Totals.Available)
	assert.Equal(t, int64(1), impact.Totals.Claimed)
	assert.Equal(t, int64(1), impact.Totals.Completed)

	// Diverted quantity only counts claimed and completed listings.
	assert.Equal(t, float64(17), impact.Impact.QuantityDiverted)
	assert.Equal(t, int64(2), impact.Impact.UniqueDonors)
	assert.Equal(t, int64(1), impact.Impact.UniqueRecipients)

	// Invariant: the per-status counts never exceed the total.
	assert.LessOrEqual(t,
		impact.Totals.Available+impact.Totals.Claimed+impact.Totals.Completed,
		impact.Totals.Listings,
	)
}
