package dto

type CreateBookingRequest struct {
	VenueID   string  `json:"venue_id" validate:"required"`
	PackageID *string `json:"package_id"`
	EventDate string  `json:"event_date" validate:"required"`
	StartTime string  `json:"start_time" validate:"required"`
	EndTime   string  `json:"end_time" validate:"required"`
	Guests    int     `json:"guests" validate:"required,gte=1"`

	ContactName  string `json:"contact_name" validate:"required"`
	ContactPhone string `json:"contact_phone" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`

	Note   string   `json:"note"`
	Extras []string `json:"extras"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required"`
}

type RegisterUserRequest struct {
	FullName     string `json:"full_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	PhoneNumber  string `json:"phone_number"`
	Role         string `json:"role" validate:"omitempty,oneof=user admin"`
	ProfileImage string `json:"profile_image"`
}

type AddressRequest struct {
	Area    string `json:"area"`
	City    string `json:"city"`
	Country string `json:"country"`
	ZipCode string `json:"zip_code"`
}

type CreateVenueRequest struct {
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description"`
	Address     AddressRequest `json:"address"`

	BaseType  string  `json:"base_type" validate:"required,oneof=PER_PLATE FLAT PER_HOUR"`
	BasePrice float64 `json:"base_price" validate:"gte=0"`
	Currency  string  `json:"currency" validate:"omitempty,oneof=NPR USD INR"`

	MinGuests int `json:"min_guests" validate:"gte=0"`
	MaxGuests int `json:"max_guests" validate:"required,gte=1"`

	Amenities []string `json:"amenities"`
	Images    []string `json:"images"`
}

type UpdateVenueRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	BasePrice   *float64 `json:"base_price" validate:"omitempty,gte=0"`
	MinGuests   *int     `json:"min_guests" validate:"omitempty,gte=1"`
	MaxGuests   *int     `json:"max_guests" validate:"omitempty,gte=1"`
	IsActive    *bool    `json:"is_active"`
}

type CreatePackageRequest struct {
	VenueID     string `json:"venue_id" validate:"required"`
	Name        string `json:"name" validate:"required,min=3"`
	Description string `json:"description"`

	PricePerPlate float64 `json:"price_per_plate" validate:"gte=0"`

	MinGuests *int `json:"min_guests" validate:"omitempty,gte=1"`
	MaxGuests *int `json:"max_guests" validate:"omitempty,gte=1"`

	Inclusions []string `json:"inclusions"`
	Images     []string `json:"images"`
}

type UpdatePackageRequest struct {
	Name          *string  `json:"name" validate:"omitempty,min=3"`
	Description   *string  `json:"description"`
	PricePerPlate *float64 `json:"price_per_plate" validate:"omitempty,gte=0"`
	IsActive      *bool    `json:"is_active"`
}
