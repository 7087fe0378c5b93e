package routes

import (
	"github.com/Oghenetega16/audiophile-api/cart"
	"github.com/Oghenetega16/audiophile-api/notify"
	"github.com/Oghenetega16/audiophile-api/orders"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the storefront,
// checkout, and order route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, mailer *notify.Service) {
	storage := cart.NewGormStorage(db)
	orderSvc := orders.NewService(db)

	// Public catalog + token-scoped cart
	SetupStorefrontRoutes(r, storage)

	// Checkout submission (token-scoped)
	SetupCheckoutRoutes(r, storage, orderSvc, mailer)

	// Order lookups + admin surface
	SetupOrderRoutes(r, orderSvc)
}
