package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"venue-booking/internal/models"
)

// ConflictQuery identifies the venue-day time slot a candidate booking wants.
// ExcludeBookingID is honored so a future reschedule can ignore its own slot.
type ConflictQuery struct {
	VenueID          string
	EventDate        time.Time
	StartTime        string
	EndTime          string
	ExcludeBookingID string
}

type ListQuery struct {
	Page   int
	Size   int
	Search string
}

type BookingRepository interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	FindByUser(ctx context.Context, userID string) ([]models.Booking, error)
	List(ctx context.Context, q ListQuery) ([]models.Booking, int64, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*models.Booking, error)
	HasTimeConflict(ctx context.Context, tx *gorm.DB, q ConflictQuery) (bool, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Preload("Package").
		Preload("Booker").
		First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("booked_by = ?", userID).
		Order("created_at DESC").
		Preload("Venue").
		Preload("Package").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// List pages through bookings newest-first. A search term fans out across the
// related venue name, package name, and user name/email/phone as well as the
// booking's own contact fields, all as case-insensitive substring matches.
func (r *bookingRepository) List(ctx context.Context, q ListQuery) ([]models.Booking, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Booking{})

	if search := strings.TrimSpace(q.Search); search != "" {
		pattern := "%" + search + "%"

		var venueIDs []string
		if err := r.db.WithContext(ctx).Model(&models.Venue{}).
			Where("name ILIKE ?", pattern).
			Pluck("id", &venueIDs).Error; err != nil {
			return nil, 0, err
		}

		var packageIDs []string
		if err := r.db.WithContext(ctx).Model(&models.Package{}).
			Where("name ILIKE ?", pattern).
			Pluck("id", &packageIDs).Error; err != nil {
			return nil, 0, err
		}

		var userIDs []string
		if err := r.db.WithContext(ctx).Model(&models.User{}).
			Where("full_name ILIKE ? OR email ILIKE ? OR phone_number ILIKE ?", pattern, pattern, pattern).
			Pluck("id", &userIDs).Error; err != nil {
			return nil, 0, err
		}

		cond := r.db.Where("contact_name ILIKE ? OR contact_phone ILIKE ? OR contact_email ILIKE ?",
			pattern, pattern, pattern)
		if len(venueIDs) > 0 {
			cond = cond.Or("venue_id IN ?", venueIDs)
		}
		if len(packageIDs) > 0 {
			cond = cond.Or("package_id IN ?", packageIDs)
		}
		if len(userIDs) > 0 {
			cond = cond.Or("booked_by IN ?", userIDs)
		}
		base = base.Where(cond)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	err := base.
		Order("created_at DESC").
		Offset((q.Page - 1) * q.Size).
		Limit(q.Size).
		Preload("Venue").
		Preload("Package").
		Preload("Booker").
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// UpdateFields applies a partial update and returns the refreshed record with
// its venue/package/booker relations populated.
func (r *bookingRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) (*models.Booking, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

// dayWindow returns the [midnight, next-midnight) bounds of eventDate's
// calendar day, in eventDate's own location.
func dayWindow(eventDate time.Time) (time.Time, time.Time) {
	y, m, d := eventDate.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, eventDate.Location())
	return start, start.AddDate(0, 0, 1)
}

// intervalsOverlap is the half-open overlap predicate the conflict query
// pushes into SQL: two same-day [start, end) slots collide when each begins
// before the other ends, so touching endpoints do not conflict. Zero-padded
// "HH:MM" strings order lexicographically, making string comparison and
// clock comparison agree.
func intervalsOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// HasTimeConflict reports whether an active (pending or confirmed) booking on
// the same venue and calendar day overlaps the candidate slot, per
// intervalsOverlap.
func (r *bookingRepository) HasTimeConflict(ctx context.Context, tx *gorm.DB, q ConflictQuery) (bool, error) {
	if tx == nil {
		tx = r.db
	}

	dayStart, dayEnd := dayWindow(q.EventDate)

	query := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("venue_id = ?", q.VenueID).
		Where("event_date >= ? AND event_date < ?", dayStart, dayEnd).
		Where("status IN ?", []models.BookingStatus{models.StatusPending, models.StatusConfirmed}).
		Where("start_time < ? AND end_time > ?", q.EndTime, q.StartTime)
	if q.ExcludeBookingID != "" {
		query = query.Where("id <> ?", q.ExcludeBookingID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
