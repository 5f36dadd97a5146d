package http

import (
	"net/http"

	"task-scheduler/internal/auth"
	pkgErrors "task-scheduler/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case auth.ErrUserNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "User not found")
	case auth.ErrEmailTaken:
		return pkgErrors.NewHTTPError(http.StatusConflict, "Email is already registered")
	case auth.ErrInvalidCredentials:
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	case auth.ErrMissingField:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	case auth.ErrOAuthExchange:
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Google sign-in could not be verified")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
