package domain

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RentalAgreement is the immutable result of a successful checkout.
// FinalChargeCents is always PreDiscountChargeCents minus
// DiscountAmountCents; both are derived by the service and never set
// independently.
type RentalAgreement struct {
	Tool                   Tool      `json:"tool"`
	RentalDays             int       `json:"rental_days"`
	CheckOutDate           time.Time `json:"check_out_date"`
	DueDate                time.Time `json:"due_date"`
	DailyRentalChargeCents int64     `json:"daily_rental_charge_cents"`
	ChargeDays             int       `json:"charge_days"`
	PreDiscountChargeCents int64     `json:"pre_discount_charge_cents"`
	DiscountPercent        int       `json:"discount_percent"`
	DiscountAmountCents    int64     `json:"discount_amount_cents"`
	FinalChargeCents       int64     `json:"final_charge_cents"`
}

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// PrettyPrint renders the agreement one field per line, in the fixed
// order and with the fixed labels of the rental agreement document.
// The output is a stable contract covered by golden tests.
func (a *RentalAgreement) PrettyPrint() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tool code: %s\n", a.Tool.Code)
	fmt.Fprintf(&b, "Tool type: %s\n", a.Tool.Type.Label())
	fmt.Fprintf(&b, "Tool brand: %s\n", a.Tool.Brand)
	fmt.Fprintf(&b, "Rental days: %d\n", a.RentalDays)
	fmt.Fprintf(&b, "Check-out date: %s\n", formatDate(a.CheckOutDate))
	fmt.Fprintf(&b, "Due date: %s\n", formatDate(a.DueDate))
	fmt.Fprintf(&b, "Daily rental charge: %s\n", formatDollars(a.DailyRentalChargeCents))
	fmt.Fprintf(&b, "Charge days: %d\n", a.ChargeDays)
	fmt.Fprintf(&b, "Pre-discount charge: %s\n", formatDollars(a.PreDiscountChargeCents))
	fmt.Fprintf(&b, "Discount percent: %d%%\n", a.DiscountPercent)
	fmt.Fprintf(&b, "Discount amount: %s\n", formatDollars(a.DiscountAmountCents))
	fmt.Fprintf(&b, "Final charge: %s\n", formatDollars(a.FinalChargeCents))
	return b.String()
}

func (a *RentalAgreement) String() string {
	return fmt.Sprintf(
		"RentalAgreement[tool=%s, rentalDays=%d, checkOutDate=%s, dueDate=%s, dailyRentalChargeCents=%d, chargeDays=%d, preDiscountChargeCents=%d, discountPercent=%d, discountAmountCents=%d, finalChargeCents=%d]",
		a.Tool.Code, a.RentalDays, formatDate(a.CheckOutDate), formatDate(a.DueDate),
		a.DailyRentalChargeCents, a.ChargeDays, a.PreDiscountChargeCents,
		a.DiscountPercent, a.DiscountAmountCents, a.FinalChargeCents,
	)
}

// formatDollars renders a non-negative cent amount as US-locale
// currency: two decimal places, thousands separators for amounts of
// $1,000.00 and up.
func formatDollars(cents int64) string {
	return usPrinter.Sprintf("$%d.%02d", cents/100, cents%100)
}

func formatDate(date time.Time) string {
	return date.Format("01/02/06")
}
