package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "around/internal/delivery/context"
	"around/internal/delivery/http/response"
	domainerrors "around/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the terminal error translation stage. Every failure
// signalled by a handler, middleware or service passes through HandleHTTPError
// exactly once; nothing else writes error bodies.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message := m.translate(err, c)

	if writeErr := c.JSON(status, response.New(message)); writeErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}

func (m *ErrorMiddleware) translate(err error, c echo.Context) (int, string) {
	// Typed application errors carry their own status and message.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(err, c)
		}

		return appErr.HTTPCode(), appErr.Message()
	}

	// Echo's own errors: routing misses and malformed requests.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			return domainerrors.ErrRouteNotFound.HTTPCode(), domainerrors.ErrRouteNotFound.Message()
		case http.StatusBadRequest, http.StatusUnsupportedMediaType:
			return http.StatusBadRequest, "Invalid request body"
		case http.StatusRequestEntityTooLarge:
			return http.StatusRequestEntityTooLarge, "Request body too large"
		}
	}

	// Anything unanticipated collapses to a generic 500; internal detail is
	// logged but never leaves the boundary.
	m.logError(err, c)

	return domainerrors.ErrInternal.HTTPCode(), domainerrors.ErrInternal.Message()
}

func (m *ErrorMiddleware) logError(err error, c echo.Context) {
	m.logger.Error("Unhandled error",
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
		slog.Any("error", err),
	)
}
