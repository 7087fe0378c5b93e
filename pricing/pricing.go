// Package pricing computes checkout totals from a cart snapshot. It is
// pure: no state, no storage, recomputed from the live cart at
// checkout time.
package pricing

import "github.com/Oghenetega16/audiophile-api/models"

const (
	// DefaultShippingFee is the flat delivery charge per order.
	DefaultShippingFee = 50.0
	// DefaultVATRate is the disclosed tax share of the subtotal.
	DefaultVATRate = 0.20
)

// Calculator carries the overridable pricing configuration.
type Calculator struct {
	ShippingFee float64
	VATRate     float64
}

func NewCalculator() Calculator {
	return Calculator{ShippingFee: DefaultShippingFee, VATRate: DefaultVATRate}
}

// Totals is the full price breakdown shown at checkout and stored on
// the order.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	Shipping   float64 `json:"shipping"`
	VAT        float64 `json:"vat"`
	GrandTotal float64 `json:"grand_total"`
}

// Totals computes the breakdown for a cart snapshot. VAT is shown as
// "(Included)": it is a disclosure of the tax share already inside the
// subtotal, so the grand total is subtotal + shipping with no VAT
// added on top.
func (c Calculator) Totals(items []models.CartItem) Totals {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Product.Price * float64(item.Quantity)
	}
	return Totals{
		Subtotal:   subtotal,
		Shipping:   c.ShippingFee,
		VAT:        subtotal * c.VATRate,
		GrandTotal: subtotal + c.ShippingFee,
	}
}
