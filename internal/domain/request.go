package domain

import "time"

// CheckoutRequest carries the caller-supplied parameters for a checkout.
// Construction is unchecked; the service call is the validation
// boundary, so invalid values are representable here and rejected there.
type CheckoutRequest struct {
	ToolCode        string    `json:"tool_code"`
	CheckOutDate    time.Time `json:"check_out_date"`
	RentalDays      int       `json:"rental_days"`
	DiscountPercent int       `json:"discount_percent"`
}

// CheckinRequest carries the parameters for a tool return. The check-in
// workflow is not implemented yet; the type exists to fix the service
// surface.
type CheckinRequest struct {
	ToolCode string `json:"tool_code"`
}
