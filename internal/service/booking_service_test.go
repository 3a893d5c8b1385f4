package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"venue-booking/internal/models"
	"venue-booking/internal/repository"
)

const (
	testVenueID   = "7b6cbbf5-6fb7-4a87-9c6d-2a4bfb9f3f01"
	testPackageID = "e0b9f7e3-8c84-4f1e-9a34-56c4f8b59a02"
	testUserID    = "f3a7d9c1-1b2e-4d5f-8a9b-0c1d2e3f4a03"
	testBookingID = "a1b2c3d4-e5f6-4a8b-9c0d-1e2f3a4b5c04"
)

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn   func(booking *models.Booking) error
	findByIDFn func(id string) (*models.Booking, error)
	findByUser func(userID string) ([]models.Booking, error)
	listFn     func(q repository.ListQuery) ([]models.Booking, int64, error)
	updateFn   func(id string, fields map[string]any) (*models.Booking, error)
	conflictFn func(q repository.ConflictQuery) (bool, error)
}

func (m *mockBookingRepo) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}
func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	if m.createFn != nil {
		return m.createFn(booking)
	}
	return nil
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookingRepo) FindByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	if m.findByUser != nil {
		return m.findByUser(userID)
	}
	return nil, nil
}
func (m *mockBookingRepo) List(ctx context.Context, q repository.ListQuery) ([]models.Booking, int64, error) {
	if m.listFn != nil {
		return m.listFn(q)
	}
	return nil, 0, nil
}
func (m *mockBookingRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) (*models.Booking, error) {
	if m.updateFn != nil {
		return m.updateFn(id, fields)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookingRepo) HasTimeConflict(ctx context.Context, tx *gorm.DB, q repository.ConflictQuery) (bool, error) {
	if m.conflictFn != nil {
		return m.conflictFn(q)
	}
	return false, nil
}

// --- Mock PricingResolver ---

type mockPricing struct {
	venueFn   func(venueID string) (*models.Venue, error)
	resolveFn func(venue *models.Venue, packageID *string) (Quote, error)
}

func (m *mockPricing) Venue(ctx context.Context, tx *gorm.DB, venueID string) (*models.Venue, error) {
	if m.venueFn != nil {
		return m.venueFn(venueID)
	}
	return activeVenue(), nil
}
func (m *mockPricing) Resolve(ctx context.Context, tx *gorm.DB, venue *models.Venue, packageID *string) (Quote, error) {
	if m.resolveFn != nil {
		return m.resolveFn(venue, packageID)
	}
	return Quote{PricePerPlate: 1000, MinGuests: 10, MaxGuests: 100}, nil
}

// --- Mock EventPublisher ---

type mockPublisher struct {
	keys []string
}

func (m *mockPublisher) Publish(routingKey string, payload any) error {
	m.keys = append(m.keys, routingKey)
	return nil
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		VenueID:      testVenueID,
		EventDate:    "2025-06-01",
		StartTime:    "10:00",
		EndTime:      "14:00",
		Guests:       20,
		ContactName:  "Sita Sharma",
		ContactPhone: "9800000000",
	}
}

// --- Admission ---

func TestCreateBooking_Success(t *testing.T) {
	var created *models.Booking
	repo := &mockBookingRepo{
		createFn: func(b *models.Booking) error {
			created = b
			return nil
		},
	}
	pub := &mockPublisher{}
	svc := NewBookingService(repo, &mockPricing{}, pub)

	booking, err := svc.CreateBooking(context.Background(), validInput(), testUserID)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, float64(1000), booking.PricePerPlate)
	assert.Equal(t, float64(20000), booking.TotalPrice)
	assert.Equal(t, models.StatusPending, booking.Status)
	assert.Equal(t, models.PaymentUnpaid, booking.PaymentStatus)
	assert.Equal(t, testUserID, booking.BookedBy)
	assert.Equal(t, []string{"booking.created"}, pub.keys)

	// event date is stored day-truncated
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), booking.EventDate)
}

func TestCreateBooking_MissingIdentity(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, &mockPricing{}, nil)

	_, err := svc.CreateBooking(context.Background(), validInput(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCreateBooking_MalformedVenueID(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, &mockPricing{}, nil)

	in := validInput()
	in.VenueID = "not-a-uuid"
	_, err := svc.CreateBooking(context.Background(), in, testUserID)
	assert.ErrorIs(t, err, ErrInvalidVenueID)
}

func TestCreateBooking_MalformedPackageID(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, &mockPricing{}, nil)

	in := validInput()
	bad := "not-a-uuid"
	in.PackageID = &bad
	_, err := svc.CreateBooking(context.Background(), in, testUserID)
	assert.ErrorIs(t, err, ErrInvalidPackageID)
}

func TestCreateBooking_EndBeforeStart(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, &mockPricing{}, nil)

	in := validInput()
	in.StartTime = "14:00"
	in.EndTime = "10:00"
	_, err := svc.CreateBooking(context.Background(), in, testUserID)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreateBooking_EqualStartAndEnd(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, &mockPricing{}, nil)

	in := validInput()
	in.StartTime = "10:00"
	in.EndTime = "10:00"
	_, err := svc.CreateBooking(context.Background(), in, testUserID)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreateBooking_MalformedTime(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, &mockPricing{}, nil)

	in := validInput()
	in.StartTime = "25:99"
	_, err := svc.CreateBooking(context.Background(), in, testUserID)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreateBooking_UnpaddedTimeRejected(t *testing.T) {
	createCalled := false
	repo := &mockBookingRepo{
		createFn: func(b *models.Booking) error {
			createCalled = true
			return nil
		},
	}
	svc := NewBookingService(repo, &mockPricing{}, nil)

	// "9:30" parses under time.Parse but would not order lexicographically
	// against stored "HH:MM" values, so it must be rejected before any write.
	in := validInput()
	in.StartTime = "9:30"
	in.EndTime = "11:30"
	_, err := svc.CreateBooking(context.Background(), in, testUserID)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
	assert.False(t, createCalled)

	in = validInput()
	in.EndTime = "9:30"
	in.StartTime = "08:00"
	_, err = svc.CreateBooking(context.Background(), in, testUserID)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
	assert.False(t, createCalled)
}

func TestCreateBooking_MalformedEventDate(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, &mockPricing{}, nil)

	in := validInput()
	in.EventDate = "not-a-date"
	_, err := svc.CreateBooking(context.Background(), in, testUserID)
	assert.ErrorIs(t, err, ErrInvalidEventDate)
}

func TestCreateBooking_GuestBounds(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, &mockPricing{}, nil)

	in := validInput()
	in.Guests = 9
	_, err := svc.CreateBooking(context.Background(), in, testUserID)
	assert.ErrorIs(t, err, ErrGuestsBelowMinimum)

	in.Guests = 101
	_, err = svc.CreateBooking(context.Background(), in, testUserID)
	assert.ErrorIs(t, err, ErrGuestsAboveMaximum)
}

func TestCreateBooking_GuestsExactlyAtBounds(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, &mockPricing{}, nil)

	in := validInput()
	in.Guests = 10
	booking, err := svc.CreateBooking(context.Background(), in, testUserID)
	require.NoError(t, err)
	assert.Equal(t, float64(10000), booking.TotalPrice)

	in.Guests = 100
	booking, err = svc.CreateBooking(context.Background(), in, testUserID)
	require.NoError(t, err)
	assert.Equal(t, float64(100000), booking.TotalPrice)
}

func TestCreateBooking_TimeConflict(t *testing.T) {
	createCalled := false
	repo := &mockBookingRepo{
		createFn: func(b *models.Booking) error {
			createCalled = true
			return nil
		},
		conflictFn: func(q repository.ConflictQuery) (bool, error) {
			assert.Equal(t, testVenueID, q.VenueID)
			assert.Equal(t, "12:00", q.StartTime)
			assert.Equal(t, "16:00", q.EndTime)
			return true, nil
		},
	}
	svc := NewBookingService(repo, &mockPricing{}, nil)

	in := validInput()
	in.StartTime = "12:00"
	in.EndTime = "16:00"
	in.Guests = 15
	_, err := svc.CreateBooking(context.Background(), in, testUserID)

	assert.ErrorIs(t, err, ErrTimeConflict)
	assert.False(t, createCalled, "no booking row may be written on a conflict")
}

func TestCreateBooking_VenueErrorsPropagate(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, &mockPricing{
		venueFn: func(venueID string) (*models.Venue, error) {
			return nil, ErrVenueInactive
		},
	}, nil)

	_, err := svc.CreateBooking(context.Background(), validInput(), testUserID)
	assert.ErrorIs(t, err, ErrVenueInactive)
}

func TestCreateBooking_PackageOfOtherVenueRejected(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, &mockPricing{
		resolveFn: func(venue *models.Venue, packageID *string) (Quote, error) {
			return Quote{}, ErrPackageNotFound
		},
	}, nil)

	in := validInput()
	pkgID := testPackageID
	in.PackageID = &pkgID
	_, err := svc.CreateBooking(context.Background(), in, testUserID)
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestCreateBooking_PackagePriceSnapshot(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, &mockPricing{
		resolveFn: func(venue *models.Venue, packageID *string) (Quote, error) {
			return Quote{PricePerPlate: 1500, MinGuests: 10, MaxGuests: 100}, nil
		},
	}, nil)

	in := validInput()
	pkgID := testPackageID
	in.PackageID = &pkgID
	booking, err := svc.CreateBooking(context.Background(), in, testUserID)

	require.NoError(t, err)
	assert.Equal(t, float64(1500), booking.PricePerPlate)
	assert.Equal(t, float64(30000), booking.TotalPrice)
	require.NotNil(t, booking.PackageID)
	assert.Equal(t, testPackageID, *booking.PackageID)
}

// --- Lifecycle ---

func existingBooking() *models.Booking {
	return &models.Booking{
		ID:            testBookingID,
		VenueID:       testVenueID,
		BookedBy:      testUserID,
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentUnpaid,
	}
}

func TestUpdateStatus_Success(t *testing.T) {
	var gotFields map[string]any
	repo := &mockBookingRepo{
		findByIDFn: func(id string) (*models.Booking, error) {
			return existingBooking(), nil
		},
		updateFn: func(id string, fields map[string]any) (*models.Booking, error) {
			gotFields = fields
			b := existingBooking()
			b.Status = models.StatusConfirmed
			return b, nil
		},
	}
	pub := &mockPublisher{}
	svc := NewBookingService(repo, &mockPricing{}, pub)

	booking, err := svc.UpdateStatus(context.Background(), testBookingID, models.StatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, booking.Status)
	assert.Equal(t, map[string]any{"status": models.StatusConfirmed}, gotFields)
	assert.Equal(t, []string{"booking.status_updated"}, pub.keys)
}

func TestUpdateStatus_BackwardTransitionAllowed(t *testing.T) {
	repo := &mockBookingRepo{
		findByIDFn: func(id string) (*models.Booking, error) {
			b := existingBooking()
			b.Status = models.StatusConfirmed
			return b, nil
		},
		updateFn: func(id string, fields map[string]any) (*models.Booking, error) {
			b := existingBooking()
			b.Status = models.StatusPending
			return b, nil
		},
	}
	svc := NewBookingService(repo, &mockPricing{}, nil)

	booking, err := svc.UpdateStatus(context.Background(), testBookingID, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, booking.Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, &mockPricing{}, nil)

	_, err := svc.UpdateStatus(context.Background(), testBookingID, models.BookingStatus("archived"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, &mockPricing{}, nil)

	_, err := svc.UpdateStatus(context.Background(), testBookingID, models.StatusCancelled)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdatePaymentStatus_Success(t *testing.T) {
	var gotFields map[string]any
	repo := &mockBookingRepo{
		findByIDFn: func(id string) (*models.Booking, error) {
			return existingBooking(), nil
		},
		updateFn: func(id string, fields map[string]any) (*models.Booking, error) {
			gotFields = fields
			b := existingBooking()
			b.PaymentStatus = models.PaymentPaid
			return b, nil
		},
	}
	svc := NewBookingService(repo, &mockPricing{}, nil)

	booking, err := svc.UpdatePaymentStatus(context.Background(), testBookingID, models.PaymentPaid)

	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, booking.PaymentStatus)
	assert.Equal(t, map[string]any{"payment_status": models.PaymentPaid}, gotFields)
}

func TestUpdatePaymentStatus_InvalidValue(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, &mockPricing{}, nil)

	_, err := svc.UpdatePaymentStatus(context.Background(), testBookingID, models.PaymentStatus("pending"))
	assert.ErrorIs(t, err, ErrInvalidPaymentStatus)
}

// --- Owner-scoped reads ---

func TestGetMyBooking_Forbidden(t *testing.T) {
	repo := &mockBookingRepo{
		findByIDFn: func(id string) (*models.Booking, error) {
			return existingBooking(), nil
		},
	}
	svc := NewBookingService(repo, &mockPricing{}, nil)

	otherUser := "0c9d8e7f-6a5b-4c3d-8e1f-2a3b4c5d6e05"
	_, err := svc.GetMyBooking(context.Background(), testBookingID, otherUser)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetMyBooking_Owner(t *testing.T) {
	repo := &mockBookingRepo{
		findByIDFn: func(id string) (*models.Booking, error) {
			return existingBooking(), nil
		},
	}
	svc := NewBookingService(repo, &mockPricing{}, nil)

	booking, err := svc.GetMyBooking(context.Background(), testBookingID, testUserID)
	require.NoError(t, err)
	assert.Equal(t, testBookingID, booking.ID)
}

func TestCancelMyBooking_SetsCancelled(t *testing.T) {
	var gotFields map[string]any
	repo := &mockBookingRepo{
		findByIDFn: func(id string) (*models.Booking, error) {
			return existingBooking(), nil
		},
		updateFn: func(id string, fields map[string]any) (*models.Booking, error) {
			gotFields = fields
			b := existingBooking()
			b.Status = models.StatusCancelled
			return b, nil
		},
	}
	svc := NewBookingService(repo, &mockPricing{}, nil)

	booking, err := svc.CancelMyBooking(context.Background(), testBookingID, testUserID)

	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, booking.Status)
	assert.Equal(t, map[string]any{"status": models.StatusCancelled}, gotFields)
}

// --- Listing ---

func TestListBookings_DefaultsAndTotalPages(t *testing.T) {
	var gotQuery repository.ListQuery
	repo := &mockBookingRepo{
		listFn: func(q repository.ListQuery) ([]models.Booking, int64, error) {
			gotQuery = q
			return []models.Booking{*existingBooking()}, 25, nil
		},
	}
	svc := NewBookingService(repo, &mockPricing{}, nil)

	_, pagination, err := svc.ListBookings(context.Background(), 0, 0, "")

	require.NoError(t, err)
	assert.Equal(t, 1, gotQuery.Page)
	assert.Equal(t, 10, gotQuery.Size)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 10, pagination.Size)
	assert.Equal(t, int64(25), pagination.TotalItems)
	assert.Equal(t, 3, pagination.TotalPages)
}

// --- Clock helpers ---

func TestParseClock(t *testing.T) {
	minutes, err := parseClock("18:30")
	require.NoError(t, err)
	assert.Equal(t, 18*60+30, minutes)

	_, err = parseClock("24:00")
	assert.Error(t, err)

	_, err = parseClock("9:30")
	assert.Error(t, err, "unpadded hours must not reach the store")

	_, err = parseClock("9am")
	assert.Error(t, err)
}

func TestParseEventDate(t *testing.T) {
	d, err := parseEventDate("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = parseEventDate("2025-06-01T15:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = parseEventDate("01/06/2025")
	assert.Error(t, err)
}
