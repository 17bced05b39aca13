package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cartapp "github.com/wyfcoding/motoparts/internal/cart/application"
	cartmemory "github.com/wyfcoding/motoparts/internal/cart/infrastructure/persistence/memory"
	catalogdomain "github.com/wyfcoding/motoparts/internal/catalog/domain"
	catalogmemory "github.com/wyfcoding/motoparts/internal/catalog/infrastructure/persistence/memory"
	"github.com/wyfcoding/motoparts/internal/order/application"
	"github.com/wyfcoding/motoparts/internal/order/infrastructure/messaging"
	ordermemory "github.com/wyfcoding/motoparts/internal/order/infrastructure/persistence/memory"
	"github.com/wyfcoding/motoparts/pkg/metrics"
)

func newTestRouter(t *testing.T) (*gin.Engine, *cartapp.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products := catalogmemory.NewProductRepository()
	require.NoError(t, products.Save(context.Background(), &catalogdomain.Product{
		Name: "Raider 150 Piston Kit", Slug: "raider-150", Price: 750, InStock: true,
	}))
	carts := cartapp.NewService(cartmemory.NewCartItemRepository(), products)
	svc := application.NewService(ordermemory.NewOrderRepository(), carts, messaging.NewLogPublisher(), "storefront.order.placed")

	r := gin.New()
	NewOrderHandler(svc, metrics.New("storefront_test")).RegisterRoutes(r.Group("/api"))
	return r, carts
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func validRequest() PlaceOrderRequest {
	return PlaceOrderRequest{
		Order: application.OrderDraft{
			Email:           "rider@example.com",
			Total:           1302.5,
			ShippingAddress: "123 Mabini St, Quezon City",
			BillingAddress:  "123 Mabini St, Quezon City",
		},
		Items: []application.OrderLine{
			{ProductID: 1, Quantity: 1, Price: 750},
		},
	}
}

func TestPlaceOrderReturnsCreated(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", validRequest())
	require.Equal(t, http.StatusCreated, w.Code)

	var order struct {
		ID     uint    `json:"id"`
		Email  string  `json:"email"`
		Total  float64 `json:"total"`
		Status string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.NotZero(t, order.ID)
	assert.Equal(t, "rider@example.com", order.Email)
	assert.Equal(t, 1302.5, order.Total)
	assert.Equal(t, "pending", order.Status)
}

func TestPlaceOrderClearsCart(t *testing.T) {
	r, carts := newTestRouter(t)
	ctx := context.Background()

	_, _, err := carts.AddItem(ctx, "cart-1", 1, 2)
	require.NoError(t, err)

	req := validRequest()
	req.CartID = "cart-1"
	w := doJSON(t, r, http.MethodPost, "/api/orders", req)
	require.Equal(t, http.StatusCreated, w.Code)

	views, err := carts.ListCart(ctx, "cart-1")
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestPlaceOrderValidationFailureListsFields(t *testing.T) {
	r, _ := newTestRouter(t)

	req := validRequest()
	req.Order.Email = "not-an-email"
	req.Items = append(req.Items, application.OrderLine{ProductID: 2, Quantity: 0, Price: 110})

	w := doJSON(t, r, http.MethodPost, "/api/orders", req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Message string   `json:"message"`
		Fields  []string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "email")
	assert.Contains(t, resp.Fields, "items[1].quantity")
}

func TestPlaceOrderRejectsMalformedBody(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrder(t *testing.T) {
	r, _ := newTestRouter(t)

	created := doJSON(t, r, http.MethodPost, "/api/orders", validRequest())
	require.Equal(t, http.StatusCreated, created.Code)
	var order struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &order))

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/orders/%d", order.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, order.ID, fetched.ID)
	assert.Equal(t, "rider@example.com", fetched.Email)
}

func TestGetOrderNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/orders/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Order not found"}`, w.Body.String())
}

func TestGetOrderInvalidID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/orders/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid order id"}`, w.Body.String())
}
