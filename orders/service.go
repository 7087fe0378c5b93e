// Package orders persists checkout submissions as immutable order
// records and serves order lookups.
package orders

import (
	"errors"
	"fmt"
	"time"

	"github.com/Oghenetega16/audiophile-api/models"
	"gorm.io/gorm"
)

// ErrOrderPersistence marks a failed order write. Handlers match it
// with errors.Is and surface a generic retryable failure; the write is
// never retried here and the cart is left untouched by the caller.
var ErrOrderPersistence = errors.New("order could not be persisted")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// LineItem is a product snapshot taken at checkout time.
type LineItem struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}

// CreateOrderInput is the finalized checkout payload. Validation is
// the checkout form's contract and has already happened by the time
// this is built.
type CreateOrderInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress models.ShippingAddress
	Items           []LineItem
	Subtotal        float64
	Shipping        float64
	VAT             float64
	Total           float64
	PaymentMethod   models.PaymentMethod
}

type CreateOrderResult struct {
	OrderID     uint   `json:"order_id"`
	OrderNumber string `json:"order_number"`
}

// CreateOrder generates an order number and writes the order with its
// line items in one transaction, so a failure leaves nothing behind.
func (s *Service) CreateOrder(in CreateOrderInput) (CreateOrderResult, error) {
	items := make([]models.OrderItem, 0, len(in.Items))
	for _, li := range in.Items {
		items = append(items, models.OrderItem{
			ProductID:   li.ProductID,
			ProductName: li.ProductName,
			UnitPrice:   li.UnitPrice,
			Quantity:    li.Quantity,
		})
	}

	order := models.Order{
		OrderNumber:     GenerateOrderNumber(),
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		ShippingAddress: in.ShippingAddress,
		Items:           items,
		Subtotal:        in.Subtotal,
		Shipping:        in.Shipping,
		VAT:             in.VAT,
		Total:           in.Total,
		PaymentMethod:   in.PaymentMethod,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	})
	if err != nil {
		return CreateOrderResult{}, fmt.Errorf("%w: %v", ErrOrderPersistence, err)
	}

	return CreateOrderResult{OrderID: order.ID, OrderNumber: order.OrderNumber}, nil
}

// GetOrderByNumber returns the order for a number, or (nil, nil) when
// no order matches. A missing order is an expected outcome, not an
// error.
func (s *Service) GetOrderByNumber(orderNumber string) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items").Where("order_number = ?", orderNumber).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetOrdersByEmail returns a customer's orders, newest first. No
// matches yields an empty slice.
func (s *Service) GetOrdersByEmail(email string) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.Preload("Items").
		Where("customer_email = ?", email).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetAllOrders returns every order, newest first. Admin surface only.
func (s *Service) GetAllOrders() ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.Preload("Items").Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
