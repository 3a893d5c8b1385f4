package service

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"

	"venue-booking/internal/models"
	"venue-booking/internal/repository"
)

// Quote is the authoritative pricing decision for a booking candidate: the
// per-plate price snapshot and the guest bounds it must satisfy.
type Quote struct {
	PricePerPlate float64
	MinGuests     int
	MaxGuests     int
}

// PricingResolver decides the per-plate price and capacity bounds for a venue
// and an optional package. A selected package overrides the venue's price but
// never its guest bounds; that asymmetry is a policy of this design, not an
// oversight.
type PricingResolver interface {
	Venue(ctx context.Context, tx *gorm.DB, venueID string) (*models.Venue, error)
	Resolve(ctx context.Context, tx *gorm.DB, venue *models.Venue, packageID *string) (Quote, error)
}

type pricingResolver struct {
	venues   repository.VenueRepository
	packages repository.PackageRepository
}

func NewPricingResolver(venues repository.VenueRepository, packages repository.PackageRepository) PricingResolver {
	return &pricingResolver{venues: venues, packages: packages}
}

// Venue loads the venue and gates on its active flag. Inside a transaction it
// takes a row lock so concurrent admissions for the same venue serialize.
func (p *pricingResolver) Venue(ctx context.Context, tx *gorm.DB, venueID string) (*models.Venue, error) {
	var (
		venue *models.Venue
		err   error
	)
	if tx != nil {
		venue, err = p.venues.FindByIDForUpdate(ctx, tx, venueID)
	} else {
		venue, err = p.venues.FindByID(ctx, venueID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	if !venue.IsActive {
		return nil, ErrVenueInactive
	}
	return venue, nil
}

func (p *pricingResolver) Resolve(ctx context.Context, tx *gorm.DB, venue *models.Venue, packageID *string) (Quote, error) {
	quote := Quote{
		PricePerPlate: venue.BasePrice,
		MinGuests:     venue.MinGuests,
		MaxGuests:     venue.MaxGuests,
	}
	if quote.MinGuests < 1 {
		quote.MinGuests = 1
	}
	if quote.MaxGuests <= 0 {
		quote.MaxGuests = math.MaxInt
	}

	if packageID != nil && *packageID != "" {
		pkg, err := p.packages.FindActiveByIDAndVenue(ctx, tx, *packageID, venue.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Quote{}, ErrPackageNotFound
			}
			return Quote{}, err
		}
		quote.PricePerPlate = pkg.PricePerPlate
	}

	return quote, nil
}
