package models

import (
	"time"

	"github.com/lib/pq"
)

type PricingBaseType string

const (
	PricingPerPlate PricingBaseType = "PER_PLATE"
	PricingFlat     PricingBaseType = "FLAT"
	PricingPerHour  PricingBaseType = "PER_HOUR"
)

type Address struct {
	Area    string `json:"area,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
}

type Venue struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description,omitempty"`

	Address Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	Images pq.StringArray `gorm:"type:text[]" json:"images"`

	BaseType  PricingBaseType `gorm:"type:varchar(20);not null" json:"base_type"`
	BasePrice float64         `gorm:"not null" json:"base_price"`
	Currency  string          `gorm:"type:varchar(3);not null;default:'NPR'" json:"currency"`

	// MinGuests defaults to 1 when unset; MaxGuests of 0 means unbounded.
	MinGuests int `json:"min_guests"`
	MaxGuests int `json:"max_guests"`

	Amenities pq.StringArray `gorm:"type:text[]" json:"amenities"`
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
