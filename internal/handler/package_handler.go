package handler

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"venue-booking/internal/dto"
	"venue-booking/internal/models"
	"venue-booking/internal/service"
)

type PackageHandler struct {
	svc      service.PackageService
	validate *validator.Validate
}

func NewPackageHandler(svc service.PackageService, validate *validator.Validate) *PackageHandler {
	return &PackageHandler{svc: svc, validate: validate}
}

func (h *PackageHandler) RegisterRoutes(v1, admin *echo.Group) {
	v1.GET("/packages", h.ListPackages)
	v1.GET("/packages/:id", h.GetPackage)

	admin.POST("/packages", h.CreatePackage)
	admin.PATCH("/packages/:id", h.UpdatePackage)
	admin.DELETE("/packages/:id", h.DeletePackage)
}

func (h *PackageHandler) CreatePackage(c echo.Context) error {
	var req dto.CreatePackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pkg := &models.Package{
		VenueID:       req.VenueID,
		Name:          req.Name,
		Description:   req.Description,
		PricePerPlate: req.PricePerPlate,
		MinGuests:     req.MinGuests,
		MaxGuests:     req.MaxGuests,
		Inclusions:    req.Inclusions,
		Images:        req.Images,
		IsActive:      true,
	}

	if err := h.svc.CreatePackage(c.Request().Context(), pkg); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, pkg)
}

func (h *PackageHandler) ListPackages(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	search := c.QueryParam("search")

	packages, pagination, err := h.svc.GetAllPackages(c.Request().Context(), page, size, search)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ListPackagesResponse{
		Data: packages,
		Pagination: dto.Pagination{
			Page:       pagination.Page,
			Size:       pagination.Size,
			TotalItems: pagination.TotalItems,
			TotalPages: pagination.TotalPages,
		},
	})
}

func (h *PackageHandler) GetPackage(c echo.Context) error {
	pkg, err := h.svc.GetPackage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, pkg)
}

func (h *PackageHandler) UpdatePackage(c echo.Context) error {
	var req dto.UpdatePackageRequest
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
	if req.PricePerPlate != nil {
		fields["price_per_plate"] = *req.PricePerPlate
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	pkg, err := h.svc.UpdatePackage(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, pkg)
}

func (h *PackageHandler) DeletePackage(c echo.Context) error {
	if err := h.svc.DeletePackage(c.Request().Context(), c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
