package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Authentication itself lives in an upstream gateway; by the time a request
// reaches this service the verified identity and role arrive as headers.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	contextUserID   = "userID"
	contextUserRole = "userRole"

	RoleAdmin = "admin"
)

func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := c.Request().Header.Get(HeaderUserID)
		if userID == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}
		c.Set(contextUserID, userID)
		c.Set(contextUserRole, c.Request().Header.Get(HeaderUserRole))
		return next(c)
	}
}

func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Get(contextUserRole).(string)
		if role != RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin access required")
		}
		return next(c)
	}
}

// UserID returns the requester identity set by RequireUser.
func UserID(c echo.Context) string {
	id, _ := c.Get(contextUserID).(string)
	return id
}
