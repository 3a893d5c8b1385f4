package models

import (
	"time"

	"github.com/lib/pq"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

type Booking struct {
	ID        string  `gorm:"type:uuid;primaryKey" json:"id"`
	VenueID   string  `gorm:"type:uuid;not null;index:idx_booking_calendar" json:"venue_id"`
	PackageID *string `gorm:"type:uuid" json:"package_id,omitempty"`
	BookedBy  string  `gorm:"type:uuid;not null;index" json:"booked_by"`

	// EventDate is stored day-truncated; StartTime/EndTime are same-day
	// wall-clock values in zero-padded 24h "HH:MM" form.
	EventDate time.Time `gorm:"not null;index:idx_booking_calendar" json:"event_date"`
	StartTime string    `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime   string    `gorm:"type:varchar(5);not null" json:"end_time"`

	Guests int `gorm:"not null" json:"guests"`

	// Price snapshot taken at admission time; never recomputed from
	// current venue/package pricing.
	PricePerPlate float64 `gorm:"not null" json:"price_per_plate"`
	TotalPrice    float64 `gorm:"not null" json:"total_price"`

	Status        BookingStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;default:'unpaid';index" json:"payment_status"`

	ContactName  string `gorm:"not null" json:"contact_name"`
	ContactPhone string `gorm:"not null" json:"contact_phone"`
	ContactEmail string `json:"contact_email,omitempty"`

	Note   string         `json:"note,omitempty"`
	Extras pq.StringArray `gorm:"type:text[]" json:"extras"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Venue   *Venue   `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
	Package *Package `gorm:"foreignKey:PackageID" json:"package,omitempty"`
	Booker  *User    `gorm:"foreignKey:BookedBy" json:"booker,omitempty"`
}
