package auth

import (
	"testing"

	"foodshare_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanCreateListing(t *testing.T) {
	assert.True(t, CanCreateListing(models.UserRoleDonor))
	assert.True(t, CanCreateListing(models.UserRoleAdmin))
	assert.False(t, CanCreateListing(models.UserRoleRecipient))
	assert.False(t, CanCreateListing(models.UserRoleVolunteer))
}

func TestCanClaimListing(t *testing.T) {
	assert.True(t, CanClaimListing(models.UserRoleRecipient))
	assert.True(t, CanClaimListing(models.UserRoleAdmin))
	assert.False(t, CanClaimListing(models.UserRoleDonor))
	assert.False(t, CanClaimListing(models.UserRoleVolunteer))
}

func TestCanAcceptPickupTask(t *testing.T) {
	assert.True(t, CanAcceptPickupTask(models.UserRoleVolunteer))
	assert.True(t, CanAcceptPickupTask(models.UserRoleAdmin))
	assert.False(t, CanAcceptPickupTask(models.UserRoleDonor))
	assert.False(t, CanAcceptPickupTask(models.UserRoleRecipient))
}

func TestValidateRole(t *testing.T) {
	for _, role := range []models.UserRole{
		models.UserRoleDonor,
		models.UserRoleRecipient,
		models.UserRoleVolunteer,
		models.UserRoleAdmin,
	} {
		assert.True(t, ValidateRole(role), "role %s should be valid", role)
	}

	assert.False(t, ValidateRole("Superuser"))
	assert.False(t, ValidateRole("donor"), "roles are case sensitive")
	assert.False(t, ValidateRole(""))
}
