package orderControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/YannikAckermann/Vintage-Store/checkout"
	"github.com/YannikAckermann/Vintage-Store/middleware"
	"github.com/YannikAckermann/Vintage-Store/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

type fakeBroadcaster struct {
	refs []string
}

func (f *fakeBroadcaster) OrderConfirmed(ref string) {
	f.refs = append(f.refs, ref)
}

func sampleSummary() checkout.Summary {
	return checkout.Summary{
		Items: []models.CartLineItem{
			{ID: 1, Name: "Vintage Denim Jacket", Price: "Fr. 78", Image: "/images/product1.png", Quantity: 2},
			{ID: 3, Name: "Patterned Silk Scarf", Price: "Fr. 32", Image: "/images/product3.png", Quantity: 1},
		},
		Contact: checkout.Contact{
			FirstName:  "Anna",
			LastName:   "Keller",
			Email:      "anna.keller@example.ch",
			Phone:      "+41 79 555 12 34",
			Address:    "Bahnhofstrasse 12",
			City:       "Zürich",
			PostalCode: "8001",
			Canton:     "ZH",
		},
		ShippingMethod: checkout.ShippingExpress,
		PaymentMethod:  checkout.PaymentTwint,
		Subtotal:       "Fr. 188.00",
		ShippingCost:   "Fr. 12.90",
		Total:          "Fr. 200.90",
	}
}

func TestRecorderPersistsAndBroadcasts(t *testing.T) {
	db := setupTestDB(t)
	broadcaster := &fakeBroadcaster{}
	record := Recorder(db, broadcaster)

	record("session-1", sampleSummary())

	var orders []models.Order
	if err := db.Preload("Items").Find(&orders).Error; err != nil {
		t.Fatal(err)
	}
	if len(orders) != 1 {
		t.Fatalf("recorded %d orders, want 1", len(orders))
	}
	order := orders[0]
	if order.SessionID != "session-1" {
		t.Errorf("session_id = %q", order.SessionID)
	}
	if order.OrderRef == "" {
		t.Error("order ref not generated")
	}
	if len(order.Items) != 2 {
		t.Fatalf("order has %d items, want 2", len(order.Items))
	}
	if order.Items[0].ProductID != 1 || order.Items[0].Quantity != 2 {
		t.Errorf("first item = %+v", order.Items[0])
	}
	if order.Total != "Fr. 200.90" || order.ShippingMethod != "express" {
		t.Errorf("order totals = %s / %s", order.Total, order.ShippingMethod)
	}
	if len(broadcaster.refs) != 1 || broadcaster.refs[0] != order.OrderRef {
		t.Errorf("broadcast refs = %v, want [%s]", broadcaster.refs, order.OrderRef)
	}
}

func TestGetSessionOrdersScopesBySession(t *testing.T) {
	db := setupTestDB(t)
	record := Recorder(db, nil)
	record("alice", sampleSummary())
	record("alice", sampleSummary())
	record("bob", sampleSummary())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orders", middleware.EnsureSession, GetSessionOrders(db))

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set(middleware.SessionHeader, "alice")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var orders []models.Order
	if err := json.Unmarshal(w.Body.Bytes(), &orders); err != nil {
		t.Fatal(err)
	}
	if len(orders) != 2 {
		t.Fatalf("alice sees %d orders, want 2", len(orders))
	}
	for _, o := range orders {
		if o.SessionID != "alice" {
			t.Errorf("leaked order for session %q", o.SessionID)
		}
	}
}

func TestGetAllOrders(t *testing.T) {
	db := setupTestDB(t)
	record := Recorder(db, nil)
	record("alice", sampleSummary())
	record("bob", sampleSummary())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/orders", GetAllOrdersHandler(db))

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var orders []models.Order
	if err := json.Unmarshal(w.Body.Bytes(), &orders); err != nil {
		t.Fatal(err)
	}
	if len(orders) != 2 {
		t.Errorf("got %d orders, want 2", len(orders))
	}
}
