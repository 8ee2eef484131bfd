package service

import (
	"context"
	"fmt"

	"toolrental-backend/internal/domain"
)

// Checkin exists to fix the service surface for the return workflow.
// It is not implemented yet and always fails with ErrNotSupported,
// never with one of the checkout failure reasons.
func (s *rentalService) Checkin(_ context.Context, _ domain.CheckinRequest) error {
	return fmt.Errorf("checkin: %w", domain.ErrNotSupported)
}
