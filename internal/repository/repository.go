package repository

import (
	"context"
	"errors"

	"toolrental-backend/internal/domain"
)

// ErrNotFound is returned when a catalog lookup has no matching record.
var ErrNotFound = errors.New("not found")

// ToolCatalog is the read-only reference dataset the rental service
// prices against. Implementations must distinguish a missing record
// (ErrNotFound) from a lookup failure.
type ToolCatalog interface {
	ToolByCode(ctx context.Context, code string) (*domain.Tool, error)
	PricingPolicyByType(ctx context.Context, toolType domain.ToolType) (*domain.PricingPolicy, error)
}
