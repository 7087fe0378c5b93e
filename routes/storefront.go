package routes

import (
	"github.com/Oghenetega16/audiophile-api/cart"
	cartcontroller "github.com/Oghenetega16/audiophile-api/controllers/cart"
	productcontroller "github.com/Oghenetega16/audiophile-api/controllers/product"
	"github.com/Oghenetega16/audiophile-api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes registers the catalog and cart endpoints. The
// catalog is public; cart routes require a cart session token.
func SetupStorefrontRoutes(r *gin.Engine, storage cart.SnapshotStorage) {
	products := r.Group("/products")
	{
		products.GET("/", productcontroller.GetProducts())
		products.GET("/:slug", productcontroller.GetProductBySlug())
		products.GET("/:slug/related", productcontroller.GetRelatedProducts())
	}

	r.POST("/cart/session", middleware.CreateCartSession)

	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateCartSession)
	{
		cartGroup.GET("/", cartcontroller.GetCart(storage))
		cartGroup.POST("/items", cartcontroller.AddItem(storage))
		cartGroup.PUT("/items/:product_id", cartcontroller.SetItemQuantity(storage))
		cartGroup.DELETE("/items/:product_id", cartcontroller.RemoveItem(storage))
		cartGroup.DELETE("/", cartcontroller.ClearCart(storage))
	}
}
