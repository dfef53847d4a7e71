package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "frota/internal/errors"
	"frota/internal/events"
)

// lookupError maps a gorm lookup error to the given not-found sentinel.
func lookupError(err error, notFound *apperrors.AppError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

// internalError wraps err as an internal error unless it already is an AppError.
func internalError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

func publisherOrNop(p events.Publisher) events.Publisher {
	if p == nil {
		return events.NopBus{}
	}
	return p
}

// tenantScope restricts a query to one tenant.
func tenantScope(tenantID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantID)
	}
}

func requireText(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, field+" is required")
	}
	return nil
}

func strPtr(s string) *string { return &s }
