package ordercontroller

import (
	"net/http"

	"github.com/Oghenetega16/audiophile-api/orders"
	"github.com/gin-gonic/gin"
)

// GetOrderByNumber returns a single order by its public order number.
//
// GET /orders/number/:orderNumber
func GetOrderByNumber(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderNumber := c.Param("orderNumber")
		if orderNumber == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderNumber is required"})
			return
		}

		order, err := svc.GetOrderByNumber(orderNumber)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		if order == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GetOrdersByEmail returns a customer's orders, newest first.
//
// GET /orders/email/:email
func GetOrdersByEmail(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		list, err := svc.GetOrdersByEmail(email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetAllOrders returns every order, newest first (admin).
//
// GET /admin/orders
func GetAllOrders(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.GetAllOrders()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
