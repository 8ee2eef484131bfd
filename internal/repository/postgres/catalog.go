package postgres

import (
	"context"
	"database/sql"
	"errors"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/repository"
)

type catalogRepository struct {
	db *sql.DB
}

// NewCatalog returns a ToolCatalog backed by the tools and
// pricing_policies tables. The tables mirror the reference dataset and
// are read-only from the service's point of view.
func NewCatalog(db *sql.DB) repository.ToolCatalog {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ToolByCode(ctx context.Context, code string) (*domain.Tool, error) {
	tool := &domain.Tool{}
	var toolType string
	query := `SELECT code, tool_type, brand FROM tools WHERE code = $1`
	err := r.db.QueryRowContext(ctx, query, code).Scan(&tool.Code, &toolType, &tool.Brand)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	tool.Type = domain.ParseToolType(toolType)
	return tool, nil
}

func (r *catalogRepository) PricingPolicyByType(ctx context.Context, toolType domain.ToolType) (*domain.PricingPolicy, error) {
	policy := &domain.PricingPolicy{}
	var policyType string
	query := `SELECT tool_type, daily_charge_cents, weekday_charge, weekend_charge, holiday_charge FROM pricing_policies WHERE tool_type = $1`
	err := r.db.QueryRowContext(ctx, query, string(toolType)).
		Scan(&policyType, &policy.DailyChargeCents, &policy.WeekdayChargeable, &policy.WeekendChargeable, &policy.HolidayChargeable)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	policy.ToolType = domain.ToolType(policyType)
	return policy, nil
}
