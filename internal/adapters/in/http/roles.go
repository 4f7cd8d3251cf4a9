package http

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/generated/servers"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// RoleHeader carries the acting principal's role, resolved by the external
// auth layer in front of this service.
const RoleHeader = "X-User-Role"

// Roles known to the auth layer.
const (
	RoleAdmin    = "admin"
	RoleCourier  = "courier"
	RoleCustomer = "customer"
)

func roleAllowed(ctx echo.Context, allowed ...string) bool {
	return slices.Contains(allowed, ctx.Request().Header.Get(RoleHeader))
}

func forbidden(ctx echo.Context) error {
	return ctx.JSON(http.StatusForbidden, servers.Error{
		Code:    http.StatusForbidden,
		Message: "Operation is not allowed for this role",
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError translates use case failures into HTTP responses.
// Unknown identifiers map to 404, state conflicts to 409, command and value
// validation failures to 400, exceeded operation deadlines to 504.
// Everything else is a 500 and gets logged, the
// exhausted tracking number generator loudly so the collision rate is visible.
func (s *Server) domainError(ctx echo.Context, err error) error {
	var invalidTransition *parcel.InvalidTransitionError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.As(err, &invalidTransition),
		errors.Is(err, parcel.ErrCourierIsRequired),
		errors.Is(err, courier.ErrCourierNotAvailable),
		errors.Is(err, courier.ErrStatusNotSettable),
		errors.Is(err, courier.ErrCourierOnDelivery),
		errors.Is(err, errs.ErrObjectAlreadyExists):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		s.logger.WarnContext(ctx.Request().Context(),
			"operation timed out", "error", err)
		return ctx.JSON(http.StatusGatewayTimeout, servers.Error{
			Code:    http.StatusGatewayTimeout,
			Message: "Operation timed out",
		})
	case errors.Is(err, commands.ErrTrackingNumberExhausted):
		s.logger.ErrorContext(ctx.Request().Context(),
			"tracking number generation exhausted", "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to allocate a tracking number",
		})
	default:
		s.logger.ErrorContext(ctx.Request().Context(),
			"request failed", "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal error",
		})
	}
}
