package models

import "time"

// PickupTask is a volunteer assignment to collect a listing. A listing keeps
// every task ever scheduled for it (reschedule history); overall progress
// lives on the listing status, not here.
type PickupTask struct {
	BaseModel
	ListingID     string    `gorm:"type:uuid;not null;index" json:"listing_id"`
	VolunteerID   string    `gorm:"type:uuid;not null;index" json:"volunteer_id"`
	ScheduledTime time.Time `gorm:"not null" json:"scheduled_time"`
	Completed     bool      `gorm:"not null;default:false" json:"completed"`

	// Relations
	Listing   *FoodListing `gorm:"foreignKey:ListingID" json:"-"`
	Volunteer *User        `gorm:"foreignKey:VolunteerID" json:"-"`
}
