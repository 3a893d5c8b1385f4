package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"venue-booking/internal/models"
	"venue-booking/internal/repository"
)

type VenueService interface {
	CreateVenue(ctx context.Context, venue *models.Venue) error
	GetAllVenues(ctx context.Context) ([]models.Venue, error)
	GetVenue(ctx context.Context, id string) (*models.Venue, error)
	UpdateVenue(ctx context.Context, id string, fields map[string]any) (*models.Venue, error)
}

type venueService struct {
	venues repository.VenueRepository
}

func NewVenueService(venues repository.VenueRepository) VenueService {
	return &venueService{venues: venues}
}

func (s *venueService) CreateVenue(ctx context.Context, venue *models.Venue) error {
	if venue.MinGuests < 1 {
		venue.MinGuests = 1
	}
	if venue.MaxGuests < venue.MinGuests {
		return ErrInvalidCapacity
	}
	venue.ID = uuid.NewString()
	return s.venues.Create(ctx, venue)
}

func (s *venueService) GetAllVenues(ctx context.Context) ([]models.Venue, error) {
	return s.venues.FindAllActive(ctx)
}

func (s *venueService) GetVenue(ctx context.Context, id string) (*models.Venue, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidVenueID
	}
	venue, err := s.venues.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return venue, nil
}

func (s *venueService) UpdateVenue(ctx context.Context, id string, fields map[string]any) (*models.Venue, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidVenueID
	}

	current, err := s.venues.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	// A partial update must not leave the capacity pair inverted.
	minGuests, maxGuests := current.MinGuests, current.MaxGuests
	if v, ok := fields["min_guests"].(int); ok {
		minGuests = v
	}
	if v, ok := fields["max_guests"].(int); ok {
		maxGuests = v
	}
	if maxGuests < minGuests {
		return nil, ErrInvalidCapacity
	}

	updated, err := s.venues.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return updated, nil
}
