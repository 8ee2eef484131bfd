package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"toolrental-backend/internal/calendar"
	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/logger"
	"toolrental-backend/internal/repository"
)

type rentalService struct {
	catalog  repository.ToolCatalog
	calendar *calendar.Calendar
}

// NewRentalService wires the rental service to its read-only
// collaborators.
func NewRentalService(catalog repository.ToolCatalog, cal *calendar.Calendar) RentalService {
	return &rentalService{
		catalog:  catalog,
		calendar: cal,
	}
}

func (s *rentalService) Checkout(ctx context.Context, req domain.CheckoutRequest) (*domain.RentalAgreement, error) {
	if err := validateCheckoutRequest(req); err != nil {
		return nil, err
	}

	tool, err := s.catalog.ToolByCode(ctx, req.ToolCode)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domain.NewRentalError(domain.FailureToolNotFound,
			fmt.Sprintf("the toolCode %s could not be found", req.ToolCode))
	}
	if err != nil {
		logger.ErrorContext(ctx, "catalog tool lookup failed", "tool_code", req.ToolCode, "error", err)
		return nil, domain.NewRentalError(domain.FailureInternal, "an unexpected error occurred")
	}

	policy, err := s.catalog.PricingPolicyByType(ctx, tool.Type)
	if err != nil {
		// Every tool type present in the catalog must have a matching
		// pricing policy; a miss here is bad reference data, not a
		// caller mistake. Log the detail, surface a generic message.
		logger.ErrorContext(ctx, "no pricing policy for tool type", "tool_type", tool.Type, "tool_code", tool.Code, "error", err)
		return nil, domain.NewRentalError(domain.FailureInternal, "an unexpected error occurred")
	}

	dueDate := req.CheckOutDate.AddDate(0, 0, req.RentalDays)
	chargeDays := s.countChargeableDays(req.CheckOutDate, dueDate, policy)

	preDiscountCents := preDiscountCharge(policy.DailyChargeCents, chargeDays)
	discountCents := discountAmount(preDiscountCents, req.DiscountPercent)
	finalCents := preDiscountCents - discountCents

	return &domain.RentalAgreement{
		Tool:                   *tool,
		RentalDays:             req.RentalDays,
		CheckOutDate:           req.CheckOutDate,
		DueDate:                dueDate,
		DailyRentalChargeCents: policy.DailyChargeCents,
		ChargeDays:             chargeDays,
		PreDiscountChargeCents: preDiscountCents,
		DiscountPercent:        req.DiscountPercent,
		DiscountAmountCents:    discountCents,
		FinalChargeCents:       finalCents,
	}, nil
}

// validateCheckoutRequest rejects the first violation it finds, in a
// fixed order; violations are never aggregated. An empty tool code
// passes here and surfaces as TOOL_NOT_FOUND from the catalog lookup
// instead.
func validateCheckoutRequest(req domain.CheckoutRequest) error {
	switch {
	case req.RentalDays < 1:
		return domain.NewRentalError(domain.FailureInvalidInput,
			"rentalDays is required, and must be greater than 0")
	case req.DiscountPercent < 0 || req.DiscountPercent >= 100:
		return domain.NewRentalError(domain.FailureInvalidInput,
			"discountPercent must be between 0 and 100")
	case req.CheckOutDate.IsZero():
		return domain.NewRentalError(domain.FailureInvalidInput,
			"checkOutDate is required")
	}
	return nil
}

// countChargeableDays walks the rental window from the day after
// checkout through the due date inclusive, skipping any day matched by
// an active exclusion.
func (s *rentalService) countChargeableDays(checkOutDate, dueDate time.Time, policy *domain.PricingPolicy) int {
	exclusions := s.nonChargeableDayConditions(policy)

	chargeableDays := 0
nextDay:
	for date := checkOutDate.AddDate(0, 0, 1); !date.After(dueDate); date = date.AddDate(0, 0, 1) {
		for _, excluded := range exclusions {
			if excluded(date) {
				continue nextDay
			}
		}
		chargeableDays++
	}
	return chargeableDays
}

// nonChargeableDayConditions returns the exclusion predicates active
// for the policy: only the day categories the policy marks as not
// chargeable contribute a predicate.
func (s *rentalService) nonChargeableDayConditions(policy *domain.PricingPolicy) []func(time.Time) bool {
	var conditions []func(time.Time) bool
	if !policy.WeekendChargeable {
		conditions = append(conditions, isWeekend)
	}
	if !policy.HolidayChargeable {
		conditions = append(conditions, s.calendar.IsHoliday)
	}
	return conditions
}

func isWeekend(date time.Time) bool {
	return date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
}

func preDiscountCharge(dailyChargeCents int64, chargeDays int) int64 {
	total := decimal.NewFromInt(dailyChargeCents).Mul(decimal.NewFromInt(int64(chargeDays)))
	return total.Round(0).IntPart()
}

// discountAmount computes discountPercent of the pre-discount charge,
// rounded half-up to the nearest cent. decimal.Round rounds ties away
// from zero, which on these non-negative amounts is exactly half-up.
func discountAmount(preDiscountCents int64, discountPercent int) int64 {
	discount := decimal.NewFromInt(preDiscountCents).
		Mul(decimal.NewFromInt(int64(discountPercent))).
		Div(decimal.NewFromInt(100))
	return discount.Round(0).IntPart()
}
