package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"venue-booking/internal/models"
	"venue-booking/internal/repository"
)

// EventPublisher emits booking lifecycle events. A nil publisher disables
// publishing without changing any booking semantics.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

type CreateBookingInput struct {
	VenueID   string
	PackageID *string
	EventDate string
	StartTime string
	EndTime   string
	Guests    int

	ContactName  string
	ContactPhone string
	ContactEmail string

	Note   string
	Extras []string
}

type Pagination struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

type BookingService interface {
	CreateBooking(ctx context.Context, in CreateBookingInput, bookedBy string) (*models.Booking, error)
	ListBookings(ctx context.Context, page, size int, search string) ([]models.Booking, Pagination, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	GetMyBookings(ctx context.Context, userID string) ([]models.Booking, error)
	GetMyBooking(ctx context.Context, id, userID string) (*models.Booking, error)
	CancelMyBooking(ctx context.Context, id, userID string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)
	UpdatePaymentStatus(ctx context.Context, id string, status models.PaymentStatus) (*models.Booking, error)
}

type bookingService struct {
	bookings  repository.BookingRepository
	pricing   PricingResolver
	publisher EventPublisher
}

func NewBookingService(bookings repository.BookingRepository, pricing PricingResolver, publisher EventPublisher) BookingService {
	return &bookingService{
		bookings:  bookings,
		pricing:   pricing,
		publisher: publisher,
	}
}

// CreateBooking runs the admission gates in order; the first failing gate
// aborts with no write. The venue lookup, pricing resolution, conflict check
// and insert all happen inside one transaction that holds a row lock on the
// venue, so two concurrent requests for the same venue cannot both pass the
// conflict check.
func (s *bookingService) CreateBooking(ctx context.Context, in CreateBookingInput, bookedBy string) (*models.Booking, error) {
	if _, err := uuid.Parse(bookedBy); err != nil {
		return nil, ErrUnauthorized
	}
	if _, err := uuid.Parse(in.VenueID); err != nil {
		return nil, ErrInvalidVenueID
	}
	if in.PackageID != nil && *in.PackageID != "" {
		if _, err := uuid.Parse(*in.PackageID); err != nil {
			return nil, ErrInvalidPackageID
		}
	}

	start, err := parseClock(in.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: bad start time %q", ErrInvalidTimeRange, in.StartTime)
	}
	end, err := parseClock(in.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: bad end time %q", ErrInvalidTimeRange, in.EndTime)
	}
	if end <= start {
		return nil, ErrInvalidTimeRange
	}

	var created *models.Booking
	err = s.bookings.InTx(ctx, func(tx *gorm.DB) error {
		venue, err := s.pricing.Venue(ctx, tx, in.VenueID)
		if err != nil {
			return err
		}

		quote, err := s.pricing.Resolve(ctx, tx, venue, in.PackageID)
		if err != nil {
			return err
		}

		if in.Guests < quote.MinGuests {
			return fmt.Errorf("%w: guests must be at least %d", ErrGuestsBelowMinimum, quote.MinGuests)
		}
		if in.Guests > quote.MaxGuests {
			return fmt.Errorf("%w: guests must be at most %d", ErrGuestsAboveMaximum, quote.MaxGuests)
		}

		eventDate, err := parseEventDate(in.EventDate)
		if err != nil {
			return ErrInvalidEventDate
		}

		conflict, err := s.bookings.HasTimeConflict(ctx, tx, repository.ConflictQuery{
			VenueID:   in.VenueID,
			EventDate: eventDate,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
		})
		if err != nil {
			return err
		}
		if conflict {
			return ErrTimeConflict
		}

		var packageID *string
		if in.PackageID != nil && *in.PackageID != "" {
			packageID = in.PackageID
		}

		booking := &models.Booking{
			ID:        uuid.NewString(),
			VenueID:   in.VenueID,
			PackageID: packageID,
			BookedBy:  bookedBy,

			EventDate: eventDate,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			Guests:    in.Guests,

			PricePerPlate: quote.PricePerPlate,
			TotalPrice:    quote.PricePerPlate * float64(in.Guests),

			Status:        models.StatusPending,
			PaymentStatus: models.PaymentUnpaid,

			ContactName:  in.ContactName,
			ContactPhone: in.ContactPhone,
			ContactEmail: in.ContactEmail,

			Note:   in.Note,
			Extras: pq.StringArray(in.Extras),
		}
		if err := s.bookings.Create(ctx, tx, booking); err != nil {
			return err
		}

		created = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("booking.created", created)
	return created, nil
}

func (s *bookingService) ListBookings(ctx context.Context, page, size int, search string) ([]models.Booking, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	bookings, total, err := s.bookings.List(ctx, repository.ListQuery{
		Page:   page,
		Size:   size,
		Search: search,
	})
	if err != nil {
		return nil, Pagination{}, err
	}

	pagination := Pagination{
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: int((total + int64(size) - 1) / int64(size)),
	}
	return bookings, pagination, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidBookingID
	}
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) GetMyBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrInvalidUserID
	}
	return s.bookings.FindByUser(ctx, userID)
}

func (s *bookingService) GetMyBooking(ctx context.Context, id, userID string) (*models.Booking, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrInvalidUserID
	}
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.BookedBy != userID {
		return nil, ErrForbidden
	}
	return booking, nil
}

func (s *bookingService) CancelMyBooking(ctx context.Context, id, userID string) (*models.Booking, error) {
	if _, err := s.GetMyBooking(ctx, id, userID); err != nil {
		return nil, err
	}
	updated, err := s.updateOne(ctx, id, map[string]any{"status": models.StatusCancelled})
	if err != nil {
		return nil, err
	}
	s.publish("booking.status_updated", updated)
	return updated, nil
}

// UpdateStatus moves a booking to any of the four statuses. The transition
// table is deliberately unrestricted; it does not re-validate conflicts,
// price, or capacity, which are facts of the original admission.
func (s *bookingService) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if _, err := s.GetBooking(ctx, id); err != nil {
		return nil, err
	}
	updated, err := s.updateOne(ctx, id, map[string]any{"status": status})
	if err != nil {
		return nil, err
	}
	s.publish("booking.status_updated", updated)
	return updated, nil
}

func (s *bookingService) UpdatePaymentStatus(ctx context.Context, id string, status models.PaymentStatus) (*models.Booking, error) {
	if !status.Valid() {
		return nil, ErrInvalidPaymentStatus
	}
	if _, err := s.GetBooking(ctx, id); err != nil {
		return nil, err
	}
	updated, err := s.updateOne(ctx, id, map[string]any{"payment_status": status})
	if err != nil {
		return nil, err
	}
	s.publish("booking.payment_updated", updated)
	return updated, nil
}

func (s *bookingService) updateOne(ctx context.Context, id string, fields map[string]any) (*models.Booking, error) {
	updated, err := s.bookings.UpdateFields(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *bookingService) publish(routingKey string, booking *models.Booking) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(routingKey, booking); err != nil {
		log.Printf("[BookingService] failed to publish %s for booking %s: %v", routingKey, booking.ID, err)
	}
}

// parseClock turns a zero-padded 24h "HH:MM" string into minutes since
// midnight. Only the canonical five-character form is accepted: the stored
// strings must order lexicographically for the conflict query, and
// time.Parse alone would let "9:30" through.
func parseClock(value string) (int, error) {
	if len(value) != 5 || value[2] != ':' {
		return 0, fmt.Errorf("clock value %q is not in HH:MM form", value)
	}
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// parseEventDate accepts a calendar date ("2006-01-02") or an RFC 3339
// timestamp and truncates it to the local calendar day.
func parseEventDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		t, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, err
		}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()), nil
}
