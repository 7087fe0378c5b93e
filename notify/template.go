package notify

import (
	"bytes"
	"html/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// formatPrice renders en-US currency, e.g. 2999 -> "$2,999.00".
func formatPrice(v float64) string {
	return usd.Sprintf("$%.2f", v)
}

var confirmationTmpl = template.Must(template.New("order-confirmation").Funcs(template.FuncMap{
	"price": formatPrice,
}).Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Order Confirmation</title>
  </head>
  <body style="font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #191919; padding: 30px; text-align: center; margin-bottom: 30px;">
      <h1 style="color: white; margin: 0; font-size: 24px; letter-spacing: 2px;">AUDIOPHILE</h1>
    </div>

    <h2 style="font-size: 28px; margin-bottom: 16px; text-transform: uppercase;">Thank you<br/>for your order</h2>

    <p style="color: #666; margin-bottom: 32px;">
      Your order has been confirmed and will be shipped soon.
    </p>

    <div style="background-color: #f5f5f5; padding: 24px; border-radius: 8px; margin-bottom: 24px;">
      <p style="margin: 0 0 8px 0; font-weight: bold;">Order Number:</p>
      <p style="margin: 0; color: #D87D4A; font-size: 18px; font-weight: bold;">{{.OrderNumber}}</p>
    </div>

    <h3 style="font-size: 18px; margin-bottom: 16px; text-transform: uppercase;">Order Details</h3>

    <table style="width: 100%; border-collapse: collapse; margin-bottom: 24px;">
      <thead>
        <tr style="background-color: #f5f5f5;">
          <th style="padding: 12px; text-align: left; font-weight: bold;">Product</th>
          <th style="padding: 12px; text-align: center; font-weight: bold;">Qty</th>
          <th style="padding: 12px; text-align: right; font-weight: bold;">Price</th>
        </tr>
      </thead>
      <tbody>
        {{range .Items}}<tr>
          <td style="padding: 12px; border-bottom: 1px solid #eee;">{{.ProductName}}</td>
          <td style="padding: 12px; border-bottom: 1px solid #eee; text-align: center;">{{.Quantity}}</td>
          <td style="padding: 12px; border-bottom: 1px solid #eee; text-align: right;">{{price .UnitPrice}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div style="background-color: #191919; color: white; padding: 24px; border-radius: 8px; margin-bottom: 24px;">
      <span>Grand Total</span>
      <span style="font-size: 20px; font-weight: bold;">{{price .Total}}</span>
    </div>

    <h3 style="font-size: 18px; margin-bottom: 16px; text-transform: uppercase;">Shipping Address</h3>

    <div style="background-color: #f5f5f5; padding: 20px; border-radius: 8px; margin-bottom: 32px;">
      <p style="margin: 0 0 4px 0; font-weight: bold;">{{.CustomerName}}</p>
      <p style="margin: 0 0 4px 0;">{{.ShippingAddress.Address}}</p>
      <p style="margin: 0;">{{.ShippingAddress.City}}, {{.ShippingAddress.Zip}}</p>
      <p style="margin: 0;">{{.ShippingAddress.Country}}</p>
    </div>

    <div style="border-top: 2px solid #eee; padding-top: 24px; text-align: center; color: #666;">
      <p style="margin: 0;">Thank you for shopping with Audiophile!</p>
      <p style="margin: 8px 0 0 0; font-size: 14px;">
        If you have any questions, please contact us at support@audiophile.com
      </p>
    </div>
  </body>
</html>
`))

// renderConfirmation produces the confirmation document for a summary.
// Rendering is deterministic: same summary, same bytes.
func renderConfirmation(sum OrderSummary) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, sum); err != nil {
		return "", err
	}
	return buf.String(), nil
}
