package routes

import (
	"github.com/Oghenetega16/audiophile-api/cart"
	checkoutcontroller "github.com/Oghenetega16/audiophile-api/controllers/checkout"
	"github.com/Oghenetega16/audiophile-api/middleware"
	"github.com/Oghenetega16/audiophile-api/notify"
	"github.com/Oghenetega16/audiophile-api/orders"
	"github.com/gin-gonic/gin"
)

// SetupCheckoutRoutes registers the checkout submission endpoint.
func SetupCheckoutRoutes(r *gin.Engine, storage cart.SnapshotStorage, orderSvc *orders.Service, mailer *notify.Service) {
	r.POST("/checkout", middleware.ValidateCartSession, checkoutcontroller.Submit(storage, orderSvc, mailer))
}
