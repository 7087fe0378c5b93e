package checkoutcontroller

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Oghenetega16/audiophile-api/cart"
	"github.com/Oghenetega16/audiophile-api/catalog"
	"github.com/Oghenetega16/audiophile-api/models"
	"github.com/Oghenetega16/audiophile-api/notify"
	"github.com/Oghenetega16/audiophile-api/orders"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type memStorage struct {
	data map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{data: make(map[string][]byte)}
}

func (m *memStorage) Load(key string) ([]byte, error) {
	if payload, ok := m.data[key]; ok {
		return payload, nil
	}
	return nil, cart.ErrSnapshotNotFound
}

func (m *memStorage) Save(key string, payload []byte) error {
	m.data[key] = append([]byte(nil), payload...)
	return nil
}

type fakeProvider struct {
	calls int
	err   error
}

func (f *fakeProvider) Send(to, subject, html string) error {
	f.calls++
	return f.err
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func testRouter(storage cart.SnapshotStorage, db *gorm.DB, provider notify.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/checkout", func(c *gin.Context) {
		c.Set("cart_key", "cart_test")
	}, Submit(storage, orders.NewService(db), notify.NewService(provider)))
	return r
}

func fillCart(t *testing.T, storage cart.SnapshotStorage) {
	t.Helper()
	store := cart.Open(storage, "cart_test")
	p, ok := catalog.ByID(4)
	if !ok {
		t.Fatal("catalog product 4 missing")
	}
	store.Add(p, 1)
}

func validBody() map[string]any {
	return map[string]any{
		"name":           "Alexei Ward",
		"email":          "alexei@mail.com",
		"phone":          "+1 202-555-0136",
		"address":        "1137 Williams Avenue",
		"zip":            "10001",
		"city":           "New York",
		"country":        "United States",
		"payment_method": "cash",
	}
}

func postCheckout(r *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEmptyCartRejectedBeforeAnyCall(t *testing.T) {
	storage := newMemStorage()
	db := testDB(t)
	provider := &fakeProvider{}
	r := testRouter(storage, db, provider)

	w := postCheckout(r, validBody())

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if provider.calls != 0 {
		t.Error("delivery provider was called for an empty cart")
	}
	var count int64
	db.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no orders, found %d", count)
	}
}

func TestSuccessfulCheckoutClearsCart(t *testing.T) {
	storage := newMemStorage()
	db := testDB(t)
	provider := &fakeProvider{}
	r := testRouter(storage, db, provider)
	fillCart(t, storage)

	w := postCheckout(r, validBody())

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		OrderNumber string `json:"order_number"`
		EmailSent   bool   `json:"email_sent"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.OrderNumber == "" {
		t.Error("expected an order number")
	}
	if !resp.EmailSent {
		t.Error("expected email_sent true")
	}
	if provider.calls != 1 {
		t.Errorf("expected 1 delivery attempt, got %d", provider.calls)
	}

	order, err := orders.NewService(db).GetOrderByNumber(resp.OrderNumber)
	if err != nil || order == nil {
		t.Fatalf("order not persisted: %v", err)
	}
	// Totals snapshot: one XX99 Mark II at 2999.
	if order.Subtotal != 2999 || order.Total != 3049 {
		t.Errorf("unexpected totals: subtotal=%v total=%v", order.Subtotal, order.Total)
	}
	if math.Abs(order.VAT-599.8) > 1e-9 {
		t.Errorf("unexpected vat: %v", order.VAT)
	}

	if items := cart.Open(storage, "cart_test").Items(); len(items) != 0 {
		t.Errorf("cart not cleared after success, %d items remain", len(items))
	}
}

func TestValidationFailureKeepsCart(t *testing.T) {
	storage := newMemStorage()
	db := testDB(t)
	provider := &fakeProvider{}
	r := testRouter(storage, db, provider)
	fillCart(t, storage)

	body := validBody()
	body["email"] = "not-an-email"
	w := postCheckout(r, body)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Errors["email"] == "" {
		t.Errorf("expected per-field email error, got %v", resp.Errors)
	}

	if provider.calls != 0 {
		t.Error("delivery provider was called despite validation failure")
	}
	if items := cart.Open(storage, "cart_test").Items(); len(items) != 1 {
		t.Errorf("cart was not retained, %d items", len(items))
	}
}

func TestPersistenceFailureKeepsCart(t *testing.T) {
	storage := newMemStorage()
	db := testDB(t)
	provider := &fakeProvider{}
	r := testRouter(storage, db, provider)
	fillCart(t, storage)

	// Storage unavailable.
	if err := db.Migrator().DropTable(&models.Order{}); err != nil {
		t.Fatalf("failed to drop table: %v", err)
	}

	w := postCheckout(r, validBody())

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}
	if provider.calls != 0 {
		t.Error("confirmation must not be attempted when the order write fails")
	}
	if items := cart.Open(storage, "cart_test").Items(); len(items) != 1 {
		t.Errorf("cart was not retained after persistence failure, %d items", len(items))
	}
}

func TestFailedNotificationStillConfirmsOrder(t *testing.T) {
	storage := newMemStorage()
	db := testDB(t)
	provider := &fakeProvider{err: errors.New("delivery down")}
	r := testRouter(storage, db, provider)
	fillCart(t, storage)

	w := postCheckout(r, validBody())

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 despite failed email, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		OrderNumber string `json:"order_number"`
		EmailSent   bool   `json:"email_sent"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.OrderNumber == "" {
		t.Error("order number must still be returned to the caller")
	}
	if resp.EmailSent {
		t.Error("email_sent should be false")
	}

	order, err := orders.NewService(db).GetOrderByNumber(resp.OrderNumber)
	if err != nil || order == nil {
		t.Fatalf("order missing after failed notification: %v", err)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("order status changed by failed notification: %s", order.Status)
	}
}
