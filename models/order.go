package models

import "time"

type OrderStatus string
type PaymentMethod string

const (
	// Order statuses. This service only ever writes "pending";
	// later transitions belong to fulfillment, not the storefront.
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"

	// Payment methods offered at checkout
	PaymentMethodEMoney PaymentMethod = "emoney"
	PaymentMethodCash   PaymentMethod = "cash"
)

// ShippingAddress is embedded into Order rather than normalized out;
// an order keeps the address it was placed with.
type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// Order is immutable once created: line items are snapshots taken at
// checkout time, so later catalog or price changes never alter a
// placed order. Nothing in this service updates or deletes order rows.
type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	OrderNumber     string          `gorm:"uniqueIndex" json:"order_number"`
	CustomerName    string          `gorm:"not null" json:"customer_name"`
	CustomerEmail   string          `gorm:"index;not null" json:"customer_email"`
	CustomerPhone   string          `json:"customer_phone"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal        float64         `json:"subtotal"`
	Shipping        float64         `json:"shipping"`
	VAT             float64         `json:"vat"`
	Total           float64         `json:"total"`
	PaymentMethod   PaymentMethod   `gorm:"type:VARCHAR(20)" json:"payment_method"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	OrderID     uint    `gorm:"index" json:"-"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}
