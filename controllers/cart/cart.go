package cartcontroller

import (
	"net/http"
	"strconv"

	"github.com/Oghenetega16/audiophile-api/cart"
	"github.com/Oghenetega16/audiophile-api/catalog"
	"github.com/gin-gonic/gin"
)

type AddItemInput struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

type SetQuantityInput struct {
	Quantity int `json:"quantity"`
}

// openStore loads the caller's cart from its durable slot. The cart
// key was put in the context by the session middleware.
func openStore(c *gin.Context, storage cart.SnapshotStorage) *cart.Store {
	return cart.Open(storage, c.GetString("cart_key"))
}

func cartResponse(s *cart.Store) gin.H {
	return gin.H{
		"items":            s.Items(),
		"total_item_count": s.TotalItemCount(),
		"total_price":      s.TotalPrice(),
	}
}

// GetCart returns the cart contents with derived totals.
//
// GET /cart
func GetCart(storage cart.SnapshotStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartResponse(openStore(c, storage)))
	}
}

// AddItem merges a product into the cart; quantities accumulate when
// the product is already there.
//
// POST /cart/items
func AddItem(storage cart.SnapshotStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := catalog.ByID(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		store := openStore(c, storage)
		store.Add(product, input.Quantity)
		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// SetItemQuantity overwrites an item's quantity; zero or less removes
// the item. Unknown products are a no-op, matching the store contract.
//
// PUT /cart/items/:product_id
func SetItemQuantity(storage cart.SnapshotStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store := openStore(c, storage)
		store.SetQuantity(productID, input.Quantity)
		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// RemoveItem deletes one product from the cart.
//
// DELETE /cart/items/:product_id
func RemoveItem(storage cart.SnapshotStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		store := openStore(c, storage)
		store.Remove(productID)
		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// ClearCart empties the cart.
//
// DELETE /cart
func ClearCart(storage cart.SnapshotStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := openStore(c, storage)
		store.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
