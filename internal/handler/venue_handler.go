package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"venue-booking/internal/dto"
	"venue-booking/internal/models"
	"venue-booking/internal/service"
)

type VenueHandler struct {
	svc      service.VenueService
	packages service.PackageService
	validate *validator.Validate
}

func NewVenueHandler(svc service.VenueService, packages service.PackageService, validate *validator.Validate) *VenueHandler {
	return &VenueHandler{svc: svc, packages: packages, validate: validate}
}

func (h *VenueHandler) RegisterRoutes(v1, admin *echo.Group) {
	v1.GET("/venues", h.ListVenues)
	v1.GET("/venues/:id", h.GetVenue)
	v1.GET("/venues/:id/packages", h.ListVenuePackages)

	admin.POST("/venues", h.CreateVenue)
	admin.PATCH("/venues/:id", h.UpdateVenue)
}

func (h *VenueHandler) CreateVenue(c echo.Context) error {
	var req dto.CreateVenueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	venue := &models.Venue{
		Name:        req.Name,
		Description: req.Description,
		Address: models.Address{
			Area:    req.Address.Area,
			City:    req.Address.City,
			Country: req.Address.Country,
			ZipCode: req.Address.ZipCode,
		},
		BaseType:  models.PricingBaseType(req.BaseType),
		BasePrice: req.BasePrice,
		Currency:  req.Currency,
		MinGuests: req.MinGuests,
		MaxGuests: req.MaxGuests,
		Amenities: req.Amenities,
		Images:    req.Images,
		IsActive:  true,
	}
	if venue.Currency == "" {
		venue.Currency = "NPR"
	}

	if err := h.svc.CreateVenue(c.Request().Context(), venue); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, venue)
}

func (h *VenueHandler) ListVenues(c echo.Context) error {
	venues, err := h.svc.GetAllVenues(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, venues)
}

func (h *VenueHandler) GetVenue(c echo.Context) error {
	venue, err := h.svc.GetVenue(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) ListVenuePackages(c echo.Context) error {
	packages, err := h.packages.GetPackagesByVenue(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, packages)
}

func (h *VenueHandler) UpdateVenue(c echo.Context) error {
	var req dto.UpdateVenueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.BasePrice != nil {
		fields["base_price"] = *req.BasePrice
	}
	if req.MinGuests != nil {
		fields["min_guests"] = *req.MinGuests
	}
	if req.MaxGuests != nil {
		fields["max_guests"] = *req.MaxGuests
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	venue, err := h.svc.UpdateVenue(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, venue)
}
