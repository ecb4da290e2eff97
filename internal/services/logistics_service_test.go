package services_test

import (
	"testing"
	"time"

	"foodshare_backend/internal/dto"
	"foodshare_backend/internal/models"
	"foodshare_backend/internal/repositories"
	"foodshare_backend/internal/services"
	"foodshare_backend/pkg/apperrors"
	"foodshare_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogisticsService() services.LogisticsService {
	return services.NewLogisticsService(
		repositories.NewTaskRepository(),
		repositories.NewListingRepository(),
		repositories.NewUserRepository(),
	)
}

func TestCompleteTask_AdvancesListing(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newLogisticsService()

	donor := helpers.CreateDonor(t, db)
	volunteer := helpers.CreateVolunteer(t, db)
	listing := helpers.CreateListing(t, db, donor, "For pickup", 9)

	task, err := svc.CreatePickupTask(db, &dto.CreateTaskRequest{
		ListingID:     listing.ID,
		VolunteerID:   volunteer.ID,
		ScheduledTime: time.Now().Add(2 * time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, svc.CompleteTask(db, task.ID))

	var reloadedTask models.PickupTask
	require.NoError(t, db.First(&reloadedTask, "id = ?", task.ID).Error)
	assert.True(t, reloadedTask.Completed)

	var reloadedListing models.FoodListing
	require.NoError(t, db.First(&reloadedListing, "id = ?", listing.ID).Error)
	assert.Equal(t, models.ListingStatusCompleted, reloadedListing.Status)

	// Completing again stays completed; the status never moves backward.
	require.NoError(t, svc.CompleteTask(db, task.ID))
	require.NoError(t, db.First(&reloadedListing, "id = ?", listing.ID).Error)
	assert.Equal(t, models.ListingStatusCompleted, reloadedListing.Status)
}

func TestCreatePickupTask_UnknownListing(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newLogisticsService()

	volunteer := helpers.CreateVolunteer(t, db)

	_, err := svc.CreatePickupTask(db, &dto.CreateTaskRequest{
		ListingID:     "00000000-0000-0000-0000-000000000000",
		VolunteerID:   volunteer.ID,
		ScheduledTime: time.Now().Add(time.Hour),
	})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestCompleteTask_NotFound(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newLogisticsService()

	err := svc.CompleteTask(db, "00000000-0000-0000-0000-000000000000")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
