// Package render builds the view model shared by the dashboard, print, and
// share screens. The original product accumulated several near-identical
// invoice renderings; they collapse here into one function parameterized by
// theme, all recomputing totals through the same pricing engine.
package render

import (
	"fmt"
	"time"

	"aravalli/internal/domain"
	"aravalli/internal/pricing"
)

// Options parameterizes an invoice rendering.
type Options struct {
	Theme domain.InvoiceTheme
	// AmountPaid is entered at render time (print flow); it is never persisted.
	AmountPaid float64
}

// LineView is a single formatted invoice line.
type LineView struct {
	Product string  `json:"product"`
	Qty     float64 `json:"qty"`
	Rate    string  `json:"rate"`
	PerKg   string  `json:"per_kg"`
	Total   string  `json:"total"`
}

// InvoiceView is the fully derived, currency-formatted invoice rendering.
type InvoiceView struct {
	Theme        domain.InvoiceTheme `json:"theme"`
	InvoiceID    string              `json:"invoice_id"`
	PartyName    string              `json:"party_name"`
	PartyMobile  string              `json:"party_mobile"`
	PartyAddress string              `json:"party_address,omitempty"`
	Date         string              `json:"date"`
	Lines        []LineView          `json:"lines"`
	GrandTotal   string              `json:"grand_total"`
	AmountPaid   string              `json:"amount_paid,omitempty"`
	BalanceDue   string              `json:"balance_due,omitempty"`
}

// money formats an amount with fixed 2-decimal currency precision. Rounding
// happens here and nowhere earlier.
func money(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// BuildInvoiceView derives a rendering of an invoice for a party. Totals are
// recomputed through the pricing engine so every view shows the same figures
// the creation flow produced.
func BuildInvoiceView(inv *domain.Invoice, party *domain.Party, opts Options) *InvoiceView {
	theme := opts.Theme
	if !domain.ValidThemes[theme] {
		theme = domain.ThemeClassic
	}

	lines := make([]LineView, 0, len(inv.Items))
	for _, item := range inv.Items {
		perKg := "-"
		if item.PerKg > 0 {
			perKg = money(item.PerKg)
		}
		lines = append(lines, LineView{
			Product: item.Product,
			Qty:     item.Qty,
			Rate:    money(item.Rate),
			PerKg:   perKg,
			Total:   money(pricing.ItemTotal(item.Qty, item.Rate, item.PerKg)),
		})
	}

	grand := pricing.GrandTotal(inv.Items)

	view := &InvoiceView{
		Theme:        theme,
		InvoiceID:    inv.ID.String(),
		PartyName:    party.Name,
		PartyMobile:  party.Mobile,
		PartyAddress: party.Address,
		Date:         inv.CreatedAt.Format(time.DateOnly),
		Lines:        lines,
		GrandTotal:   money(grand),
	}

	if opts.AmountPaid > 0 {
		view.AmountPaid = money(opts.AmountPaid)
		view.BalanceDue = money(grand - opts.AmountPaid)
	}

	return view
}
