package domain

// PricingPolicy is the per-tool-type charge configuration. The catalog
// holds exactly one policy for every tool type it serves.
type PricingPolicy struct {
	ToolType         ToolType `json:"tool_type"`
	DailyChargeCents int64    `json:"daily_charge_cents"`
	// WeekdayChargeable is carried in the reference data but never
	// consulted: weekdays are implicitly chargeable unless a weekend or
	// holiday exclusion applies.
	WeekdayChargeable bool `json:"weekday_chargeable"`
	WeekendChargeable bool `json:"weekend_chargeable"`
	HolidayChargeable bool `json:"holiday_chargeable"`
}
