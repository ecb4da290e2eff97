package models

type UserRole string
type ListingStatus string
type ClaimStatus string

const (
	UserRoleDonor     UserRole = "Donor"
	UserRoleRecipient UserRole = "Recipient"
	UserRoleVolunteer UserRole = "Volunteer"
	UserRoleAdmin     UserRole = "Admin"

	ListingStatusAvailable ListingStatus = "available"
	ListingStatusClaimed   ListingStatus = "claimed"
	ListingStatusCompleted ListingStatus = "completed"
	ListingStatusExpired   ListingStatus = "expired"

	ClaimStatusPending   ClaimStatus = "pending"
	ClaimStatusScheduled ClaimStatus = "scheduled"
)

// ValidListingStatus reports whether s is one of the four recognized listing
// statuses. Used to reject unknown ?status= filters before querying.
func ValidListingStatus(s ListingStatus) bool {
	switch s {
	case ListingStatusAvailable, ListingStatusClaimed, ListingStatusCompleted, ListingStatusExpired:
		return true
	}
	return false
}
