package handler

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"venue-booking/internal/dto"
	"venue-booking/internal/middleware"
	"venue-booking/internal/models"
	"venue-booking/internal/service"
)

type BookingHandler struct {
	svc      service.BookingService
	validate *validator.Validate
}

func NewBookingHandler(svc service.BookingService, validate *validator.Validate) *BookingHandler {
	return &BookingHandler{svc: svc, validate: validate}
}

func (h *BookingHandler) RegisterRoutes(v1, admin *echo.Group) {
	v1.POST("/bookings", h.CreateBooking, middleware.RequireUser)
	v1.GET("/bookings/me", h.GetMyBookings, middleware.RequireUser)
	v1.GET("/bookings/:id", h.GetMyBooking, middleware.RequireUser)
	v1.POST("/bookings/:id/cancel", h.CancelMyBooking, middleware.RequireUser)

	admin.GET("/bookings", h.ListBookings)
	admin.GET("/bookings/:id", h.GetBooking)
	admin.PATCH("/bookings/:id/status", h.UpdateStatus)
	admin.PATCH("/bookings/:id/payment-status", h.UpdatePaymentStatus)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), service.CreateBookingInput{
		VenueID:      req.VenueID,
		PackageID:    req.PackageID,
		EventDate:    req.EventDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Guests:       req.Guests,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Note:         req.Note,
		Extras:       req.Extras,
	}, middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	search := c.QueryParam("search")

	bookings, pagination, err := h.svc.ListBookings(c.Request().Context(), page, size, search)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ListBookingsResponse{
		Data: dto.ToBookingResponses(bookings),
		Pagination: dto.Pagination{
			Page:       pagination.Page,
			Size:       pagination.Size,
			TotalItems: pagination.TotalItems,
			TotalPages: pagination.TotalPages,
		},
	})
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	booking, err := h.svc.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetMyBookings(c echo.Context) error {
	bookings, err := h.svc.GetMyBookings(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *BookingHandler) GetMyBooking(c echo.Context) error {
	booking, err := h.svc.GetMyBooking(c.Request().Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) CancelMyBooking(c echo.Context) error {
	booking, err := h.svc.CancelMyBooking(c.Request().Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	var req dto.UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.svc.UpdateStatus(c.Request().Context(), c.Param("id"), models.BookingStatus(req.Status))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) UpdatePaymentStatus(c echo.Context) error {
	var req dto.UpdatePaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.svc.UpdatePaymentStatus(c.Request().Context(), c.Param("id"), models.PaymentStatus(req.PaymentStatus))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}
