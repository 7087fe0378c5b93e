package pricing

import (
	"testing"

	"github.com/Oghenetega16/audiophile-api/models"
)

func TestTotalsBreakdown(t *testing.T) {
	calc := NewCalculator()
	items := []models.CartItem{
		{Product: models.Product{ID: 1, Price: 100}, Quantity: 1},
		{Product: models.Product{ID: 2, Price: 50}, Quantity: 2},
	}

	totals := calc.Totals(items)

	if totals.Subtotal != 200 {
		t.Errorf("expected subtotal 200, got %v", totals.Subtotal)
	}
	if totals.Shipping != 50 {
		t.Errorf("expected shipping 50, got %v", totals.Shipping)
	}
	if totals.VAT != 40 {
		t.Errorf("expected vat 40, got %v", totals.VAT)
	}
	// VAT is disclosed, not charged: the grand total is subtotal +
	// shipping only.
	if totals.GrandTotal != 250 {
		t.Errorf("expected grand total 250, got %v", totals.GrandTotal)
	}
}

func TestTotalsEmptyCart(t *testing.T) {
	totals := NewCalculator().Totals(nil)

	if totals.Subtotal != 0 || totals.VAT != 0 {
		t.Errorf("expected zero subtotal and vat, got %+v", totals)
	}
	if totals.GrandTotal != DefaultShippingFee {
		t.Errorf("expected grand total %v, got %v", DefaultShippingFee, totals.GrandTotal)
	}
}

func TestTotalsOverriddenConfig(t *testing.T) {
	calc := Calculator{ShippingFee: 10, VATRate: 0.25}
	items := []models.CartItem{
		{Product: models.Product{ID: 1, Price: 100}, Quantity: 2},
	}

	totals := calc.Totals(items)

	if totals.Shipping != 10 {
		t.Errorf("expected shipping 10, got %v", totals.Shipping)
	}
	if totals.VAT != 50 {
		t.Errorf("expected vat 50, got %v", totals.VAT)
	}
	if totals.GrandTotal != 210 {
		t.Errorf("expected grand total 210, got %v", totals.GrandTotal)
	}
}
