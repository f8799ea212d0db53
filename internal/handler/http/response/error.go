package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var aggErr *report.AggregationError
	if errors.As(err, &aggErr) {
		slog.Error("aggregation failed", "message", aggErr.Message, "error", aggErr.Err)
		cause := aggErr.Message
		if aggErr.Err != nil {
			cause = aggErr.Err.Error()
		}
		AggregationFailure(w, aggErr.Message, cause)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")

	// User domain errors
	case errors.Is(err, user.ErrIdentityMissing):
		Unauthorized(w, "Unauthenticated")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Unauthorized access")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
