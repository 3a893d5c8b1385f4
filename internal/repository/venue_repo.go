package repository

import (
	"context"

	"gorm.io/gorm"

	"venue-booking/internal/models"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	FindByID(ctx context.Context, id string) (*models.Venue, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id string) (*models.Venue, error)
	FindAllActive(ctx context.Context) ([]models.Venue, error)
	Update(ctx context.Context, id string, fields map[string]any) (*models.Venue, error)
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *venueRepository) FindByID(ctx context.Context, id string) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

// FindByIDForUpdate acquires a row-level lock on the venue within the given
// transaction, serializing concurrent admissions for the same venue.
func (r *venueRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id string) (*models.Venue, error) {
	var venue models.Venue
	err := tx.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		First(&venue, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) FindAllActive(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) Update(ctx context.Context, id string, fields map[string]any) (*models.Venue, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Venue{}).
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
