package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"venue-booking/internal/dto"
	"venue-booking/internal/middleware"
	"venue-booking/internal/models"
	"venue-booking/internal/service"
)

type UserHandler struct {
	svc      service.UserService
	validate *validator.Validate
}

func NewUserHandler(svc service.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{svc: svc, validate: validate}
}

func (h *UserHandler) RegisterRoutes(v1, admin *echo.Group) {
	v1.GET("/users/me", h.GetMe, middleware.RequireUser)

	admin.POST("/users", h.RegisterUser)
	admin.GET("/users/:id", h.GetUser)
}

// RegisterUser stores a profile row for an identity minted upstream. The
// gateway owns credentials; this service only keeps the fields bookings
// display and search over.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req dto.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Role:         req.Role,
		ProfileImage: req.ProfileImage,
	}
	if err := h.svc.RegisterUser(c.Request().Context(), user); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) GetMe(c echo.Context) error {
	user, err := h.svc.GetUser(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.svc.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, user)
}
