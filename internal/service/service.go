package service

import (
	"context"

	"toolrental-backend/internal/domain"
)

// RentalService is the tool rental transaction boundary.
//
// Checkout validates the request, prices the rental window against the
// tool's pricing policy and the holiday calendar, and returns an
// immutable agreement. Failures are *domain.RentalError values carrying
// a FailureReason; no partial agreement is ever returned.
//
// Checkin is part of the surface but not implemented; it fails with
// domain.ErrNotSupported.
type RentalService interface {
	Checkout(ctx context.Context, req domain.CheckoutRequest) (*domain.RentalAgreement, error)
	Checkin(ctx context.Context, req domain.CheckinRequest) error
}
