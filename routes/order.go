package routes

import (
	ordercontroller "github.com/Oghenetega16/audiophile-api/controllers/order"
	"github.com/Oghenetega16/audiophile-api/middleware"
	"github.com/Oghenetega16/audiophile-api/orders"
	"github.com/gin-gonic/gin"
)

// SetupOrderRoutes registers order lookups and the API-key-protected
// admin surface.
func SetupOrderRoutes(r *gin.Engine, svc *orders.Service) {
	orderGroup := r.Group("/orders")
	{
		// Look up a single order by its public number
		orderGroup.GET("/number/:orderNumber", ordercontroller.GetOrderByNumber(svc))

		// All orders for a customer email, newest first
		orderGroup.GET("/email/:email", ordercontroller.GetOrdersByEmail(svc))
	}

	admin := r.Group("/admin/orders")
	admin.Use(middleware.ValidateAPIKey)
	{
		// Fetch all orders
		admin.GET("/", ordercontroller.GetAllOrders(svc))

		// Download all orders as a spreadsheet
		admin.GET("/export", ordercontroller.ExportOrdersToExcel(svc))

		// websocket endpoint for real-time order updates
		admin.GET("/feed", ordercontroller.OrderFeedHandler)
	}
}
