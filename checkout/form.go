// Package checkout validates the billing / shipping / payment form
// submitted with an order.
package checkout

import (
	"regexp"
	"strings"

	"github.com/Oghenetega16/audiophile-api/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form carries the checkout fields as submitted. The e-money fields
// are only meaningful (and only required) when the e-money payment
// method is selected.
type Form struct {
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	Phone         string               `json:"phone"`
	Address       string               `json:"address"`
	Zip           string               `json:"zip"`
	City          string               `json:"city"`
	Country       string               `json:"country"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	EMoneyNumber  string               `json:"emoney_number"`
	EMoneyPIN     string               `json:"emoney_pin"`
}

// Validate returns a field -> message map; an empty map means the form
// is valid. Values are checked after trimming whitespace. Validation
// never blocks the process: the handler surfaces the map and the
// client resubmits.
func (f Form) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Name is required"
	}

	email := strings.TrimSpace(f.Email)
	if email == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "Wrong format"
	}

	if strings.TrimSpace(f.Phone) == "" {
		errs["phone"] = "Phone is required"
	}
	if strings.TrimSpace(f.Address) == "" {
		errs["address"] = "Address is required"
	}
	if strings.TrimSpace(f.Zip) == "" {
		errs["zip"] = "ZIP code is required"
	}
	if strings.TrimSpace(f.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(f.Country) == "" {
		errs["country"] = "Country is required"
	}

	switch f.PaymentMethod {
	case models.PaymentMethodEMoney:
		if strings.TrimSpace(f.EMoneyNumber) == "" {
			errs["emoney_number"] = "e-Money Number is required"
		}
		if strings.TrimSpace(f.EMoneyPIN) == "" {
			errs["emoney_pin"] = "e-Money PIN is required"
		}
	case models.PaymentMethodCash:
	default:
		errs["payment_method"] = "Invalid payment method"
	}

	return errs
}

// ShippingAddress assembles the address fields, trimmed.
func (f Form) ShippingAddress() models.ShippingAddress {
	return models.ShippingAddress{
		Address: strings.TrimSpace(f.Address),
		City:    strings.TrimSpace(f.City),
		Zip:     strings.TrimSpace(f.Zip),
		Country: strings.TrimSpace(f.Country),
	}
}
