package models

// Claim reserves a listing for a recipient. The unique index on ListingID is
// the invariant: a listing can never carry more than one claim, even under
// two concurrent claim attempts.
type Claim struct {
	BaseModel
	ListingID   string      `gorm:"type:uuid;uniqueIndex;not null" json:"listing_id"`
	RecipientID string      `gorm:"type:uuid;not null;index" json:"recipient_id"`
	Status      ClaimStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	// Relations
	Listing   *FoodListing `gorm:"foreignKey:ListingID" json:"-"`
	Recipient *User        `gorm:"foreignKey:RecipientID" json:"-"`
}
