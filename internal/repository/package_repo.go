package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"venue-booking/internal/models"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg *models.Package) error
	FindByID(ctx context.Context, id string) (*models.Package, error)
	// FindActiveByIDAndVenue looks a package up by (id, venueId, active). An
	// inactive package or one owned by another venue is indistinguishable
	// from a missing one.
	FindActiveByIDAndVenue(ctx context.Context, tx *gorm.DB, packageID, venueID string) (*models.Package, error)
	FindByVenue(ctx context.Context, venueID string, activeOnly bool) ([]models.Package, error)
	List(ctx context.Context, q ListQuery) ([]models.Package, int64, error)
	Update(ctx context.Context, id string, fields map[string]any) (*models.Package, error)
	Delete(ctx context.Context, id string) error
}

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) Create(ctx context.Context, pkg *models.Package) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *packageRepository) FindByID(ctx context.Context, id string) (*models.Package, error) {
	var pkg models.Package
	if err := r.db.WithContext(ctx).First(&pkg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) FindActiveByIDAndVenue(ctx context.Context, tx *gorm.DB, packageID, venueID string) (*models.Package, error) {
	if tx == nil {
		tx = r.db
	}
	var pkg models.Package
	err := tx.WithContext(ctx).
		Where("id = ? AND venue_id = ? AND is_active = ?", packageID, venueID, true).
		First(&pkg).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) FindByVenue(ctx context.Context, venueID string, activeOnly bool) ([]models.Package, error) {
	q := r.db.WithContext(ctx).Where("venue_id = ?", venueID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var packages []models.Package
	if err := q.Order("created_at DESC").Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *packageRepository) List(ctx context.Context, q ListQuery) ([]models.Package, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Package{})
	if search := strings.TrimSpace(q.Search); search != "" {
		base = base.Where("name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var packages []models.Package
	err := base.
		Order("created_at DESC").
		Offset((q.Page - 1) * q.Size).
		Limit(q.Size).
		Preload("Venue").
		Find(&packages).Error
	if err != nil {
		return nil, 0, err
	}
	return packages, total, nil
}

func (r *packageRepository) Update(ctx context.Context, id string, fields map[string]any) (*models.Package, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Package{}).
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

func (r *packageRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Package{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
