package auth

import "foodshare_backend/internal/models"

// Role capability checks for the donation flow. Pure functions: the caller
// decides how to surface a denial (handlers map them to FORBIDDEN).

// CanCreateListing - only donors publish listings; admins can act for them.
func CanCreateListing(role models.UserRole) bool {
	return role == models.UserRoleDonor || role == models.UserRoleAdmin
}

// CanClaimListing - only recipients reserve listings; admins can act for them.
func CanClaimListing(role models.UserRole) bool {
	return role == models.UserRoleRecipient || role == models.UserRoleAdmin
}

// CanAcceptPickupTask - only volunteers take pickup assignments; admins can act for them.
func CanAcceptPickupTask(role models.UserRole) bool {
	return role == models.UserRoleVolunteer || role == models.UserRoleAdmin
}

// ValidateRole reports whether role is one of the recognized roles.
func ValidateRole(role models.UserRole) bool {
	switch role {
	case models.UserRoleDonor, models.UserRoleRecipient, models.UserRoleVolunteer, models.UserRoleAdmin:
		return true
	}
	return false
}
