// Package memory provides the pre-seeded in-memory tool catalog.
package memory

import (
	"context"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/repository"
)

// Catalog holds the reference tool and pricing-policy dataset. Seeded
// once at construction and never mutated afterwards, so lookups are
// safe for concurrent use.
type Catalog struct {
	toolsByCode    map[string]domain.Tool
	policiesByType map[domain.ToolType]domain.PricingPolicy
}

// NewCatalog builds a catalog seeded with the reference dataset.
func NewCatalog() *Catalog {
	c := &Catalog{
		toolsByCode:    make(map[string]domain.Tool),
		policiesByType: make(map[domain.ToolType]domain.PricingPolicy),
	}
	c.seed()
	return c
}

func (c *Catalog) seed() {
	tools := []domain.Tool{
		{Code: "CHNS", Type: domain.ParseToolType("Chainsaw"), Brand: "Stihl"},
		{Code: "LADW", Type: domain.ParseToolType("Ladder"), Brand: "Werner"},
		{Code: "JAKD", Type: domain.ParseToolType("Jackhammer"), Brand: "DeWalt"},
		{Code: "JAKR", Type: domain.ParseToolType("Jackhammer"), Brand: "Ridgid"},
	}
	for _, tool := range tools {
		c.toolsByCode[tool.Code] = tool
	}

	policies := []domain.PricingPolicy{
		{ToolType: domain.ToolTypeLadder, DailyChargeCents: 199, WeekdayChargeable: true, WeekendChargeable: true, HolidayChargeable: false},
		{ToolType: domain.ToolTypeChainsaw, DailyChargeCents: 149, WeekdayChargeable: true, WeekendChargeable: false, HolidayChargeable: true},
		{ToolType: domain.ToolTypeJackhammer, DailyChargeCents: 299, WeekdayChargeable: true, WeekendChargeable: false, HolidayChargeable: false},
	}
	for _, policy := range policies {
		c.policiesByType[policy.ToolType] = policy
	}
}

// ToolByCode looks up a tool record by its unique code.
func (c *Catalog) ToolByCode(_ context.Context, code string) (*domain.Tool, error) {
	tool, ok := c.toolsByCode[code]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &tool, nil
}

// PricingPolicyByType looks up the pricing policy for a tool type.
func (c *Catalog) PricingPolicyByType(_ context.Context, toolType domain.ToolType) (*domain.PricingPolicy, error) {
	policy, ok := c.policiesByType[toolType]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &policy, nil
}
