// Package notify renders and delivers the transactional order
// confirmation email. Delivery is best-effort: a failure is reported
// as a result value and never unwinds the order that triggered it.
package notify

import (
	"fmt"
	"log"

	"github.com/Oghenetega16/audiophile-api/models"
	"github.com/Oghenetega16/audiophile-api/orders"
	"github.com/resend/resend-go/v2"
)

// Provider is the outbound delivery channel: an opaque
// send(to, subject, html) call.
type Provider interface {
	Send(to, subject, html string) error
}

// Result is what the checkout flow sees. Error carries the provider
// failure text when Success is false.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// OrderSummary is the slice of order data the email needs.
type OrderSummary struct {
	OrderNumber     string
	CustomerName    string
	CustomerEmail   string
	Items           []orders.LineItem
	Total           float64
	ShippingAddress models.ShippingAddress
}

type Service struct {
	provider Provider
}

func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// SendOrderConfirmation renders the confirmation document and hands it
// to the delivery provider. Any failure, render or delivery, is
// returned as Result{Success: false}: the order already exists and
// must not be affected.
func (s *Service) SendOrderConfirmation(sum OrderSummary) Result {
	html, err := renderConfirmation(sum)
	if err != nil {
		log.Printf("failed to render confirmation for %s: %v", sum.OrderNumber, err)
		return Result{Success: false, Error: err.Error()}
	}

	subject := "Order Confirmation - " + sum.OrderNumber
	if err := s.provider.Send(sum.CustomerEmail, subject, html); err != nil {
		log.Printf("failed to deliver confirmation for %s: %v", sum.OrderNumber, err)
		return Result{Success: false, Error: err.Error()}
	}
	return Result{Success: true}
}

// ResendProvider delivers through the Resend API.
type ResendProvider struct {
	client *resend.Client
	from   string
}

func NewResendProvider(apiKey, from string) *ResendProvider {
	return &ResendProvider{client: resend.NewClient(apiKey), from: from}
}

func (p *ResendProvider) Send(to, subject, html string) error {
	_, err := p.client.Emails.Send(&resend.SendEmailRequest{
		From:    p.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	return nil
}

// LogProvider stands in when no RESEND_API_KEY is configured, so local
// runs still complete checkout.
type LogProvider struct{}

func (LogProvider) Send(to, subject, html string) error {
	log.Printf("email delivery disabled, would send %q to %s", subject, to)
	return nil
}
