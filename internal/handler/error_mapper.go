package handler

import (
	"errors"
	"log/slog"

	"github.com/forgo/clubhive/api/internal/model"
	"github.com/forgo/clubhive/api/internal/service"
	"github.com/forgo/clubhive/api/internal/store"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	// Validation failures already carry their problem details
	var problem *model.ProblemDetails
	if errors.As(err, &problem) {
		return problem
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrNotAuthenticated):
		return model.NewUnauthorizedError(err.Error())

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrNotAdmin):
		return model.NewForbiddenError(err.Error())
	case errors.Is(err, service.ErrNotClubOwner):
		pd := model.NewForbiddenError(err.Error())
		pd.Code = model.ErrCodeNotOwner
		return pd
	case errors.Is(err, service.ErrRoleSwitchDisabled):
		pd := model.NewForbiddenError(err.Error())
		pd.Code = model.ErrCodeDemoDisabled
		return pd

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrClubNotFound):
		return model.NewNotFoundError("club")
	case errors.Is(err, service.ErrEventNotFound):
		return model.NewNotFoundError("event")
	case errors.Is(err, service.ErrIdentityNotFound):
		return model.NewNotFoundError("identity")
	case errors.Is(err, service.ErrRegistrationNotFound):
		return model.NewNotFoundError("registration")

	// ===== Store Errors → 503 =====
	case errors.Is(err, store.ErrUnavailable):
		slog.Error("store unavailable", slog.String("error", err.Error()))
		return model.NewServiceUnavailableError("storage is temporarily unavailable")

	// ===== Default → 500 =====
	default:
		slog.Error("unmapped service error", slog.String("error", err.Error()))
		return model.NewInternalError("")
	}
}

// MapServiceErrorWithContext maps a service error and names the failed
// operation in unexpected errors
func MapServiceErrorWithContext(err error, operation string) *model.ProblemDetails {
	pd := MapServiceError(err)
	if pd != nil && pd.Status == 500 {
		pd.Detail = operation + ": an unexpected error occurred"
	}
	return pd
}
