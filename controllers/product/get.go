package productcontroller

import (
	"net/http"

	"github.com/Oghenetega16/audiophile-api/catalog"
	"github.com/gin-gonic/gin"
)

// GetProductBySlug returns a single product by its URL slug.
//
// GET /products/:slug
func GetProductBySlug() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		product, ok := catalog.BySlug(slug)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetRelatedProducts returns the "you may also like" products for a slug.
//
// GET /products/:slug/related
func GetRelatedProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		product, ok := catalog.BySlug(slug)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, catalog.Related(product))
	}
}
