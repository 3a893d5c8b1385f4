package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-booking/internal/models"
)

func TestCreateVenue_InvalidCapacity(t *testing.T) {
	svc := NewVenueService(&mockVenueRepo{})

	venue := activeVenue()
	venue.MinGuests = 50
	venue.MaxGuests = 20
	err := svc.CreateVenue(context.Background(), venue)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestUpdateVenue_RaisingMinAboveMaxRejected(t *testing.T) {
	updateCalled := false
	repo := &mockVenueRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Venue, error) {
			return activeVenue(), nil
		},
		updateFn: func(id string, fields map[string]any) (*models.Venue, error) {
			updateCalled = true
			return activeVenue(), nil
		},
	}
	svc := NewVenueService(repo)

	_, err := svc.UpdateVenue(context.Background(), activeVenue().ID, map[string]any{
		"min_guests": 150,
	})

	assert.ErrorIs(t, err, ErrInvalidCapacity)
	assert.False(t, updateCalled, "an inverted capacity pair must not be written")
}

func TestUpdateVenue_LoweringMaxBelowMinRejected(t *testing.T) {
	repo := &mockVenueRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Venue, error) {
			return activeVenue(), nil
		},
	}
	svc := NewVenueService(repo)

	_, err := svc.UpdateVenue(context.Background(), activeVenue().ID, map[string]any{
		"max_guests": 5,
	})
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestUpdateVenue_ConsistentPairAccepted(t *testing.T) {
	repo := &mockVenueRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Venue, error) {
			return activeVenue(), nil
		},
		updateFn: func(id string, fields map[string]any) (*models.Venue, error) {
			venue := activeVenue()
			venue.MinGuests = 20
			venue.MaxGuests = 30
			return venue, nil
		},
	}
	svc := NewVenueService(repo)

	venue, err := svc.UpdateVenue(context.Background(), activeVenue().ID, map[string]any{
		"min_guests": 20,
		"max_guests": 30,
	})

	require.NoError(t, err)
	assert.Equal(t, 20, venue.MinGuests)
	assert.Equal(t, 30, venue.MaxGuests)
}
