// Package pricing holds the line-item and invoice total derivation used by both
// the invoice creation flow and every rendering view, so totals stay consistent
// no matter where they are computed.
package pricing

import (
	"strings"

	"aravalli/internal/domain"
)

// ItemTotal computes a line item's total. When perKg is positive, pricing is by
// weight and the per-kg multiplier applies; otherwise the flat unit rate is used.
// No rounding happens here; currency formatting is a presentation concern.
func ItemTotal(qty, rate, perKg float64) float64 {
	if perKg > 0 {
		return qty * rate * perKg
	}
	return qty * rate
}

// GrandTotal sums the totals of all items. An empty item list totals zero.
func GrandTotal(items []domain.InvoiceItem) float64 {
	var sum float64
	for _, item := range items {
		sum += ItemTotal(item.Qty, item.Rate, item.PerKg)
	}
	return sum
}

// ValidateItem checks an item before it is accepted into an invoice. Items with
// non-positive qty or rate are rejected, never silently coerced to zero.
func ValidateItem(item domain.InvoiceItem) error {
	if strings.TrimSpace(item.Product) == "" {
		return domain.ValidationErrorf("item product name is required")
	}
	if item.Qty <= 0 {
		return domain.ValidationErrorf("item %q: qty must be greater than zero", item.Product)
	}
	if item.Rate <= 0 {
		return domain.ValidationErrorf("item %q: rate must be greater than zero", item.Product)
	}
	if item.PerKg < 0 {
		return domain.ValidationErrorf("item %q: per-kg weight must not be negative", item.Product)
	}
	return nil
}

// Derive fills in each item's Total and returns the grand total. Items must
// already be validated.
func Derive(items []domain.InvoiceItem) ([]domain.InvoiceItem, float64) {
	derived := make([]domain.InvoiceItem, len(items))
	for i, item := range items {
		item.Total = ItemTotal(item.Qty, item.Rate, item.PerKg)
		derived[i] = item
	}
	return derived, GrandTotal(items)
}
