package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"venue-booking/internal/service"
)

// toHTTPError maps service failures onto status codes. Time conflicts map to
// 400 rather than 409; that is the convention clients of this API rely on.
func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrVenueNotFound),
		errors.Is(err, service.ErrPackageNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidVenueID),
		errors.Is(err, service.ErrInvalidPackageID),
		errors.Is(err, service.ErrInvalidBookingID),
		errors.Is(err, service.ErrInvalidUserID),
		errors.Is(err, service.ErrInvalidEventDate),
		errors.Is(err, service.ErrInvalidTimeRange),
		errors.Is(err, service.ErrGuestsBelowMinimum),
		errors.Is(err, service.ErrGuestsAboveMaximum),
		errors.Is(err, service.ErrInvalidCapacity),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidPaymentStatus),
		errors.Is(err, service.ErrVenueInactive),
		errors.Is(err, service.ErrTimeConflict):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
