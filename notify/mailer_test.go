package notify

import (
	"errors"
	"strings"
	"testing"

	"github.com/Oghenetega16/audiophile-api/models"
	"github.com/Oghenetega16/audiophile-api/orders"
)

type fakeProvider struct {
	to      string
	subject string
	html    string
	calls   int
	err     error
}

func (f *fakeProvider) Send(to, subject, html string) error {
	f.calls++
	f.to, f.subject, f.html = to, subject, html
	return f.err
}

func summary() OrderSummary {
	return OrderSummary{
		OrderNumber:   "ORD-LZ3K9X-7GQ2F",
		CustomerName:  "Alexei Ward",
		CustomerEmail: "alexei@mail.com",
		Items: []orders.LineItem{
			{ProductName: "XX99 Mark II Headphones", UnitPrice: 2999, Quantity: 1},
			{ProductName: "YX1 Wireless Earphones", UnitPrice: 599, Quantity: 2},
		},
		Total: 4247,
		ShippingAddress: models.ShippingAddress{
			Address: "1137 Williams Avenue",
			City:    "New York",
			Zip:     "10001",
			Country: "United States",
		},
	}
}

func TestSendOrderConfirmation(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewService(provider)

	result := svc.SendOrderConfirmation(summary())

	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if provider.to != "alexei@mail.com" {
		t.Errorf("wrong recipient: %s", provider.to)
	}
	if provider.subject != "Order Confirmation - ORD-LZ3K9X-7GQ2F" {
		t.Errorf("wrong subject: %s", provider.subject)
	}

	for _, want := range []string{
		"ORD-LZ3K9X-7GQ2F",
		"XX99 Mark II Headphones",
		"YX1 Wireless Earphones",
		"$2,999.00",
		"$4,247.00",
		"1137 Williams Avenue",
		"New York, 10001",
		"United States",
	} {
		if !strings.Contains(provider.html, want) {
			t.Errorf("rendered email missing %q", want)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	a, err := renderConfirmation(summary())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	b, err := renderConfirmation(summary())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if a != b {
		t.Error("rendering the same summary produced different documents")
	}
}

func TestDeliveryFailureIsReturnedNotRaised(t *testing.T) {
	provider := &fakeProvider{err: errors.New("smtp unreachable")}
	svc := NewService(provider)

	result := svc.SendOrderConfirmation(summary())

	if result.Success {
		t.Fatal("expected failure result")
	}
	if !strings.Contains(result.Error, "smtp unreachable") {
		t.Errorf("expected provider error in result, got %q", result.Error)
	}
	if provider.calls != 1 {
		t.Errorf("expected exactly one delivery attempt, got %d", provider.calls)
	}
}
