package http

import (
	"net/http"

	"task-scheduler/internal/routine"
	pkgErrors "task-scheduler/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Unknown errors collapse to a generic 500; the detail stays in the server log.
func (h *handler) mapError(err error) error {
	switch err {
	case routine.ErrRoutineNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Routine not found")
	case routine.ErrMissingTitle:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Title and repeatType are required")
	case routine.ErrInvalidRepeatType:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "repeatType must be DAILY, WEEKLY, or MONTHLY")
	case routine.ErrInvalidInterval:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "repeatInterval must be a positive integer")
	case routine.ErrInvalidEstimate:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "estimatedMinutes must be a positive integer")
	case routine.ErrRoutineInactive:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Routine is not active")
	case routine.ErrTaskAlreadyGenerated:
		return pkgErrors.NewHTTPError(http.StatusConflict, "Task already generated for this routine and date")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
