package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps application and domain errors onto HTTP status codes and
// renders the uniform error body.
func writeError(ctx echo.Context, err error) error {
	code := statusCodeFor(err)
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, commands.ErrActorNotAllowed):
		return http.StatusForbidden

	case isNotFound(err):
		return http.StatusNotFound

	case isConflict(err):
		return http.StatusConflict

	case isValidation(err):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func isNotFound(err error) bool {
	var notFoundErr *errs.ObjectNotFoundError
	return errors.As(err, &notFoundErr)
}

// isConflict covers state the request cannot change right now: lifecycle
// rules, handshake rules, driver availability and write races.
func isConflict(err error) bool {
	var conflictErr *errs.VersionConflictError
	if errors.As(err, &conflictErr) {
		return true
	}

	conflicts := []error{
		order.ErrInvalidStatusTransition,
		order.ErrOrderAlreadyClosed,
		order.ErrOrderNotAssignable,
		order.ErrNoDriverAssigned,
		order.ErrNotAssignedDriver,
		order.ErrAssignmentAlreadyResolved,
		order.ErrAssignmentNotAccepted,
		order.ErrStatusNotAllowedForDriver,
		driver.ErrDriverIsBusy,
		driver.ErrDriverIsOffline,
		driver.ErrDriverIsBlocked,
		commands.ErrNoAvailableDrivers,
		commands.ErrCartIsEmpty,
		commands.ErrRestaurantUnavailable,
	}
	for _, conflict := range conflicts {
		if errors.Is(err, conflict) {
			return true
		}
	}

	return false
}

func isValidation(err error) bool {
	var invalidErr *errs.ValueIsInvalidError
	var requiredErr *errs.ValueIsRequiredError
	var rangeErr *errs.ValueIsOutOfRangeError

	return errors.As(err, &invalidErr) ||
		errors.As(err, &requiredErr) ||
		errors.As(err, &rangeErr) ||
		errors.Is(err, commands.ErrDeliveryAddressIsRequired) ||
		errors.Is(err, commands.ErrSupportNoteIsRequired)
}
