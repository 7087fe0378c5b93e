package middleware

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const cartSessionTTL = 30 * 24 * time.Hour

// CreateCartSession issues a fresh cart key and the token that scopes
// all cart and checkout calls to that key. Clients keep the token for
// the lifetime of their cart.
//
// POST /cart/session
func CreateCartSession(c *gin.Context) {
	cartKey := "cart_" + uuid.NewString()

	expiresAt := time.Now().Add(cartSessionTTL)
	claims := jwt.MapClaims{
		"cart_key": cartKey,
		"exp":      expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart_key":   cartKey,
		"token":      token,
		"expires_at": expiresAt,
	})
}

// ValidateCartSession checks the session token and puts the cart key
// in the request context for the cart and checkout handlers.
func ValidateCartSession(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}
	cartKey, ok := claims["cart_key"].(string)
	if !ok || cartKey == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	c.Set("cart_key", cartKey)
	c.Next()
}
