package service

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("you are not allowed to view this booking")

	ErrInvalidVenueID   = errors.New("invalid venue id")
	ErrInvalidPackageID = errors.New("invalid package id")
	ErrInvalidBookingID = errors.New("invalid booking id")
	ErrInvalidUserID    = errors.New("invalid user id")

	ErrInvalidEventDate = errors.New("invalid event date")
	ErrInvalidTimeRange = errors.New("end time must be after start time")

	ErrGuestsBelowMinimum = errors.New("guests below venue minimum")
	ErrGuestsAboveMaximum = errors.New("guests above venue maximum")
	ErrInvalidCapacity    = errors.New("max guests must be at least min guests")

	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	ErrVenueNotFound   = errors.New("venue not found")
	ErrVenueInactive   = errors.New("venue is not active")
	ErrPackageNotFound = errors.New("package not found for this venue")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")

	// Deliberately surfaced as a 400-class failure, not 409.
	ErrTimeConflict = errors.New("this venue is already booked for the selected time")
)
