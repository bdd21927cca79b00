package rest

import (
	stderrors "errors"
	"net/http"

	"skillbridge/domain"
	"skillbridge/utils/errors"
	"skillbridge/utils/logger"
	"skillbridge/validation"

	"github.com/labstack/echo/v4"
)

// handleError maps errors to HTTP responses. Domain sentinels get explicit
// statuses; everything else is folded into an AppError so the cause never
// leaks to the client.
func handleError(c echo.Context, err error, operation string) error {
	var appErr *errors.AppError

	switch {
	case stderrors.As(err, &appErr):
		// already categorized
	case stderrors.Is(err, domain.ErrInvalidCategory), stderrors.Is(err, domain.ErrInvalidCursor):
		appErr = errors.ValidationError(err.Error(), map[string]interface{}{
			"operation": operation,
		})
	case stderrors.Is(err, domain.ErrUnauthorized), stderrors.Is(err, domain.ErrInvalidUserContext):
		appErr = errors.ForbiddenError("caller identity rejected", map[string]interface{}{
			"operation": operation,
		})
	case stderrors.Is(err, domain.ErrProfileNotFound), stderrors.Is(err, domain.ErrAgencyNotFound):
		appErr = errors.NotFoundError(err.Error(), err, map[string]interface{}{
			"operation": operation,
		})
	default:
		appErr = errors.UnknownError("internal server error", err, map[string]interface{}{
			"operation": operation,
		})
	}

	errors.LogError(logger.Logger, appErr, operation)
	return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
}

// handleValidationError reports a failed request validation.
func handleValidationError(c echo.Context, result validation.ValidationResult) error {
	logger.Logger.WarnContext(c.Request().Context(), "request validation failed", "errors", result.Errors)
	return c.JSON(http.StatusBadRequest, map[string]interface{}{
		"error":   "validation failed",
		"details": result.Errors,
	})
}
