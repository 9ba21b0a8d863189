package handlers

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext extracts the authenticated user ID from context.
// Returns ErrUnauthorized if the user ID is missing or invalid.
func getUserIDFromContext(c echo.Context) (uint, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return 0, ErrUnauthorized
	}

	userID, ok := userIDValue.(uint)
	if !ok {
		return 0, ErrUnauthorized
	}

	return userID, nil
}

// getUintParam parses an unsigned integer path parameter
func getUintParam(c echo.Context, name string) (uint, error) {
	param := c.Param(name)
	value, err := strconv.ParseUint(param, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, param)
	}
	return uint(value), nil
}
