package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"venue-booking/internal/dto"
)

// ErrorHandler renders every error escaping a handler as the JSON
// {"message": ...} body this API's clients parse. Echo HTTP errors keep
// their code; anything unrecognized becomes a 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg})
}
