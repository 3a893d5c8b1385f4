package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"venue-booking/internal/models"
	"venue-booking/internal/repository"
)

type PackageService interface {
	CreatePackage(ctx context.Context, pkg *models.Package) error
	GetAllPackages(ctx context.Context, page, size int, search string) ([]models.Package, Pagination, error)
	GetPackage(ctx context.Context, id string) (*models.Package, error)
	GetPackagesByVenue(ctx context.Context, venueID string) ([]models.Package, error)
	UpdatePackage(ctx context.Context, id string, fields map[string]any) (*models.Package, error)
	DeletePackage(ctx context.Context, id string) error
}

type packageService struct {
	packages repository.PackageRepository
}

func NewPackageService(packages repository.PackageRepository) PackageService {
	return &packageService{packages: packages}
}

func (s *packageService) CreatePackage(ctx context.Context, pkg *models.Package) error {
	if _, err := uuid.Parse(pkg.VenueID); err != nil {
		return ErrInvalidVenueID
	}
	pkg.ID = uuid.NewString()
	return s.packages.Create(ctx, pkg)
}

func (s *packageService) GetAllPackages(ctx context.Context, page, size int, search string) ([]models.Package, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	packages, total, err := s.packages.List(ctx, repository.ListQuery{
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
	return packages, pagination, nil
}

func (s *packageService) GetPackage(ctx context.Context, id string) (*models.Package, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidPackageID
	}
	pkg, err := s.packages.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

func (s *packageService) GetPackagesByVenue(ctx context.Context, venueID string) ([]models.Package, error) {
	if _, err := uuid.Parse(venueID); err != nil {
		return nil, ErrInvalidVenueID
	}
	return s.packages.FindByVenue(ctx, venueID, true)
}

func (s *packageService) UpdatePackage(ctx context.Context, id string, fields map[string]any) (*models.Package, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidPackageID
	}
	updated, err := s.packages.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *packageService) DeletePackage(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidPackageID
	}
	if err := s.packages.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPackageNotFound
		}
		return err
	}
	return nil
}
