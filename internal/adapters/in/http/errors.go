package http

import (
	"context"
	"errors"
	"net/http"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrMalformedRequest marks bodies and parameters that cannot be decoded.
var ErrMalformedRequest = errors.New("malformed request")

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	var requestErr *RequestInvalidError
	switch {
	case errors.Is(err, ErrMalformedRequest):
		return http.StatusBadRequest
	case errors.As(err, &requestErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, order.ErrItemNotFound),
		errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrOrderExists),
		errors.Is(err, product.ErrDuplicateProduct),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrItemNotPicked),
		errors.Is(err, order.ErrIncompleteItems):
		return http.StatusConflict
	case errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrDuplicateItem),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		message = "Internal server error"
	}
	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}
