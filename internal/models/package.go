package models

import (
	"time"

	"github.com/lib/pq"
)

// Package is a venue-scoped pricing bundle. Its capacity bounds are
// informational only: guest limits on a booking always come from the venue.
type Package struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	VenueID     string `gorm:"type:uuid;not null;index:idx_package_venue_active" json:"venue_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description,omitempty"`

	Images pq.StringArray `gorm:"type:text[]" json:"images"`

	PricePerPlate float64 `gorm:"not null" json:"price_per_plate"`

	MinGuests *int `json:"min_guests,omitempty"`
	MaxGuests *int `json:"max_guests,omitempty"`

	Inclusions pq.StringArray `gorm:"type:text[]" json:"inclusions"`
	IsActive   bool           `gorm:"not null;default:true;index:idx_package_venue_active" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Venue *Venue `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
}
