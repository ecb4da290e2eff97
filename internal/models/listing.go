package models

import "time"

type FoodListing struct {
	BaseModel
	DonorID        string        `gorm:"type:uuid;not null;index" json:"donor_id"`
	Title          string        `gorm:"not null" json:"title"`
	Description    *string       `json:"description"`
	Quantity       float64       `gorm:"not null" json:"quantity"`
	Unit           string        `gorm:"not null" json:"unit"`
	Location       string        `gorm:"not null" json:"location"`
	PickupDeadline time.Time     `gorm:"not null" json:"pickup_deadline"`
	Status         ListingStatus `gorm:"type:varchar(20);not null;default:'available';index" json:"status"`

	// Relations
	Donor *User        `gorm:"foreignKey:DonorID" json:"-"`
	Claim *Claim       `gorm:"foreignKey:ListingID" json:"-"`
	Tasks []PickupTask `gorm:"foreignKey:ListingID" json:"-"`
}
