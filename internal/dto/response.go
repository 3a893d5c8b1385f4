package dto

import (
	"time"

	"venue-booking/internal/models"
)

// VenueSummary, PackageSummary and UserSummary are the display projections
// joined into a booking at read time. The Booking row itself stores only
// references.
type VenueSummary struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Address   models.Address `json:"address"`
	BasePrice float64        `json:"base_price"`
	Currency  string         `json:"currency"`
	MinGuests int            `json:"min_guests"`
	MaxGuests int            `json:"max_guests"`
	IsActive  bool           `json:"is_active"`
	Images    []string       `json:"images"`
}

type PackageSummary struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	PricePerPlate float64  `json:"price_per_plate"`
	IsActive      bool     `json:"is_active"`
	Images        []string `json:"images"`
}

type UserSummary struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
}

type BookingResponse struct {
	ID        string  `json:"id"`
	VenueID   string  `json:"venue_id"`
	PackageID *string `json:"package_id,omitempty"`
	BookedBy  string  `json:"booked_by"`

	EventDate time.Time `json:"event_date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Guests    int       `json:"guests"`

	PricePerPlate float64 `json:"price_per_plate"`
	TotalPrice    float64 `json:"total_price"`

	Status        models.BookingStatus `json:"status"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`

	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email,omitempty"`

	Note   string   `json:"note,omitempty"`
	Extras []string `json:"extras"`

	CreatedAt time.Time `json:"created_at"`

	Venue   *VenueSummary   `json:"venue,omitempty"`
	Package *PackageSummary `json:"package,omitempty"`
	Booker  *UserSummary    `json:"booker,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

type ListBookingsResponse struct {
	Data       []BookingResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

type ListPackagesResponse struct {
	Data       []models.Package `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID,
		VenueID:       b.VenueID,
		PackageID:     b.PackageID,
		BookedBy:      b.BookedBy,
		EventDate:     b.EventDate,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Guests:        b.Guests,
		PricePerPlate: b.PricePerPlate,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		ContactName:   b.ContactName,
		ContactPhone:  b.ContactPhone,
		ContactEmail:  b.ContactEmail,
		Note:          b.Note,
		Extras:        b.Extras,
		CreatedAt:     b.CreatedAt,
	}

	if b.Venue != nil {
		resp.Venue = &VenueSummary{
			ID:        b.Venue.ID,
			Name:      b.Venue.Name,
			Address:   b.Venue.Address,
			BasePrice: b.Venue.BasePrice,
			Currency:  b.Venue.Currency,
			MinGuests: b.Venue.MinGuests,
			MaxGuests: b.Venue.MaxGuests,
			IsActive:  b.Venue.IsActive,
			Images:    b.Venue.Images,
		}
	}
	if b.Package != nil {
		resp.Package = &PackageSummary{
			ID:            b.Package.ID,
			Name:          b.Package.Name,
			PricePerPlate: b.Package.PricePerPlate,
			IsActive:      b.Package.IsActive,
			Images:        b.Package.Images,
		}
	}
	if b.Booker != nil {
		resp.Booker = &UserSummary{
			ID:           b.Booker.ID,
			FullName:     b.Booker.FullName,
			Email:        b.Booker.Email,
			PhoneNumber:  b.Booker.PhoneNumber,
			ProfileImage: b.Booker.ProfileImage,
		}
	}

	return resp
}

func ToBookingResponses(bookings []models.Booking) []BookingResponse {
	resp := make([]BookingResponse, len(bookings))
	for i := range bookings {
		resp[i] = ToBookingResponse(&bookings[i])
	}
	return resp
}
