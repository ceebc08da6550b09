package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aravalli/internal/domain"
	"aravalli/internal/pricing"
)

func TestItemTotal_FlatRate(t *testing.T) {
	assert.Equal(t, 1000.0, pricing.ItemTotal(2, 500, 0))
	assert.Equal(t, 7.5, pricing.ItemTotal(3, 2.5, 0))
}

func TestItemTotal_PerKgMultiplier(t *testing.T) {
	assert.Equal(t, 600.0, pricing.ItemTotal(3, 100, 2))
	assert.Equal(t, 375.0, pricing.ItemTotal(5, 50, 1.5))
}

func TestItemTotal_ZeroWeightEqualsFlatRate(t *testing.T) {
	qtys := []float64{1, 2, 7, 0.5}
	rates := []float64{10, 99.99, 450, 1200}
	for _, qty := range qtys {
		for _, rate := range rates {
			assert.Equal(t, qty*rate, pricing.ItemTotal(qty, rate, 0))
		}
	}
}

func TestGrandTotal_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, pricing.GrandTotal(nil))
	assert.Equal(t, 0.0, pricing.GrandTotal([]domain.InvoiceItem{}))
}

func TestGrandTotal_SumOfItemTotals(t *testing.T) {
	items := []domain.InvoiceItem{
		{Product: "Chair", Qty: 2, Rate: 500},
		{Product: "Pipe", Qty: 3, Rate: 100, PerKg: 2},
		{Product: "Sheet", Qty: 1, Rate: 49.5},
	}
	assert.Equal(t, 1000.0+600.0+49.5, pricing.GrandTotal(items))
}

func TestValidateItem(t *testing.T) {
	cases := []struct {
		name    string
		item    domain.InvoiceItem
		wantErr bool
	}{
		{"valid flat", domain.InvoiceItem{Product: "Chair", Qty: 2, Rate: 500}, false},
		{"valid per-kg", domain.InvoiceItem{Product: "Pipe", Qty: 3, Rate: 100, PerKg: 2}, false},
		{"empty product", domain.InvoiceItem{Product: "  ", Qty: 1, Rate: 10}, true},
		{"zero qty", domain.InvoiceItem{Product: "Chair", Qty: 0, Rate: 10}, true},
		{"negative qty", domain.InvoiceItem{Product: "Chair", Qty: -1, Rate: 10}, true},
		{"zero rate", domain.InvoiceItem{Product: "Chair", Qty: 1, Rate: 0}, true},
		{"negative per-kg", domain.InvoiceItem{Product: "Chair", Qty: 1, Rate: 10, PerKg: -0.5}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := pricing.ValidateItem(tc.item)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDerive_FillsTotalsAndGrandTotal(t *testing.T) {
	items := []domain.InvoiceItem{
		{Product: "Chair", Qty: 2, Rate: 500},
		{Product: "Pipe", Qty: 3, Rate: 100, PerKg: 2},
	}

	derived, grand := pricing.Derive(items)

	assert.Equal(t, 1000.0, derived[0].Total)
	assert.Equal(t, 600.0, derived[1].Total)
	assert.Equal(t, 1600.0, grand)
	// input slice stays untouched
	assert.Equal(t, 0.0, items[0].Total)
}
