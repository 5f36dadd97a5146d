package http

import (
	"net/http"

	"task-scheduler/internal/task"
	pkgErrors "task-scheduler/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Unknown errors collapse to a generic 500; the detail stays in the server log.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Task not found")
	case task.ErrMissingTitle, task.ErrMissingPlannedDate:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Title, plannedDate, and estimatedMinutes are required")
	case task.ErrInvalidEstimate:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "estimatedMinutes must be a positive integer")
	case task.ErrInvalidEnum:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid priority, importance, or status value")
	case task.ErrInvalidDateFilter:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid date filter")
	case task.ErrInvalidTransition:
		return pkgErrors.NewHTTPError(http.StatusConflict, "Task status does not allow this transition")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
