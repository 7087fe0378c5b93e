package productcontroller

import (
	"net/http"

	"github.com/Oghenetega16/audiophile-api/catalog"
	"github.com/Oghenetega16/audiophile-api/models"
	"github.com/gin-gonic/gin"
)

// GetProducts returns the catalog, optionally filtered.
// Query params: category (headphones|speakers|earphones), new (true)
//
// GET /products
func GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if cat := c.Query("category"); cat != "" {
			switch models.Category(cat) {
			case models.CategoryHeadphones, models.CategorySpeakers, models.CategoryEarphones:
				products = catalog.ByCategory(models.Category(cat))
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
				return
			}
		} else {
			products = catalog.All()
		}

		if c.Query("new") == "true" {
			filtered := make([]models.Product, 0, len(products))
			for _, p := range products {
				if p.IsNew {
					filtered = append(filtered, p)
				}
			}
			products = filtered
		}

		c.JSON(http.StatusOK, products)
	}
}
