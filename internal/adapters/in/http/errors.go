package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/pkg/errs"
)

// writeError maps application errors onto HTTP status codes with a uniform
// payload. Transition rejections include the allowed-next statuses so the
// client can re-render valid choices after losing a race.
func writeError(ctx echo.Context, err error) error {
	var transitionErr *order.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		allowed := make([]string, len(transitionErr.Allowed))
		for i, s := range transitionErr.Allowed {
			allowed[i] = s.String()
		}
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:        http.StatusUnprocessableEntity,
			Message:     err.Error(),
			AllowedNext: allowed,
		})
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, queries.ErrInvalidCredentials):
		code, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, services.ErrForbiddenRole),
		errors.Is(err, services.ErrNotAssigned):
		code, message = http.StatusForbidden, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		code, message = http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrConcurrencyConflict),
		errors.Is(err, order.ErrOrderIsClosed),
		errors.Is(err, commands.ErrEmailAlreadyRegistered):
		code, message = http.StatusConflict, err.Error()
	case errors.Is(err, commands.ErrInvalidAgent):
		code, message = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		code, message = http.StatusBadRequest, err.Error()
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}
