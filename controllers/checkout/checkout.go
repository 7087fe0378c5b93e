package checkoutcontroller

import (
	"errors"
	"net/http"

	"github.com/Oghenetega16/audiophile-api/cart"
	"github.com/Oghenetega16/audiophile-api/checkout"
	ordercontroller "github.com/Oghenetega16/audiophile-api/controllers/order"
	"github.com/Oghenetega16/audiophile-api/notify"
	"github.com/Oghenetega16/audiophile-api/orders"
	"github.com/Oghenetega16/audiophile-api/pricing"
	"github.com/gin-gonic/gin"
)

// Submit runs the whole checkout: empty-cart guard, form validation,
// totals recomputed from the live cart, order write, then best-effort
// confirmation email. The two external calls happen strictly in that
// sequence because the email needs the generated order number. There
// is no compensating transaction: a failed email never reverses the
// order.
//
// POST /checkout
func Submit(storage cart.SnapshotStorage, orderSvc *orders.Service, mailer *notify.Service) gin.HandlerFunc {
	calc := pricing.NewCalculator()
	return func(c *gin.Context) {
		store := cart.Open(storage, c.GetString("cart_key"))
		items := store.Items()
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		var form checkout.Form
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if errs := form.Validate(); len(errs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
			return
		}

		totals := calc.Totals(items)
		lineItems := make([]orders.LineItem, 0, len(items))
		for _, item := range items {
			lineItems = append(lineItems, orders.LineItem{
				ProductID:   item.Product.ID,
				ProductName: item.Product.Name,
				UnitPrice:   item.Product.Price,
				Quantity:    item.Quantity,
			})
		}

		result, err := orderSvc.CreateOrder(orders.CreateOrderInput{
			CustomerName:    form.Name,
			CustomerEmail:   form.Email,
			CustomerPhone:   form.Phone,
			ShippingAddress: form.ShippingAddress(),
			Items:           lineItems,
			Subtotal:        totals.Subtotal,
			Shipping:        totals.Shipping,
			VAT:             totals.VAT,
			Total:           totals.GrandTotal,
			PaymentMethod:   form.PaymentMethod,
		})
		if err != nil {
			// Cart stays intact so the client can retry the submission.
			if errors.Is(err, orders.ErrOrderPersistence) {
				c.JSON(http.StatusBadGateway, gin.H{"error": "Could not place order, please try again"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not place order, please try again"})
			return
		}

		emailResult := mailer.SendOrderConfirmation(notify.OrderSummary{
			OrderNumber:     result.OrderNumber,
			CustomerName:    form.Name,
			CustomerEmail:   form.Email,
			Items:           lineItems,
			Total:           totals.GrandTotal,
			ShippingAddress: form.ShippingAddress(),
		})

		store.Clear()
		ordercontroller.BroadcastOrderPlaced(result.OrderNumber, totals.GrandTotal)

		c.JSON(http.StatusCreated, gin.H{
			"order_id":     result.OrderID,
			"order_number": result.OrderNumber,
			"totals":       totals,
			"email_sent":   emailResult.Success,
		})
	}
}
