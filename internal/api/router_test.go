package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-ordering/internal/apperrors"
	"restaurant-ordering/internal/logger"
	"restaurant-ordering/internal/models"
	"restaurant-ordering/internal/services/menu"
	"restaurant-ordering/internal/services/order"
)

// memOrderStore is an in-memory order.Store for HTTP-level tests
type memOrderStore struct {
	mu     sync.Mutex
	orders map[string]models.Order
}

func newMemOrderStore() *memOrderStore {
	return &memOrderStore{orders: make(map[string]models.Order)}
}

func (m *memOrderStore) InsertOrder(ctx context.Context, o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.orders[o.OrderID]; exists {
		return apperrors.ErrOrderConflict
	}
	m.orders[o.OrderID] = *o
	return nil
}

func (m *memOrderStore) GetOrderByID(ctx context.Context, orderID string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return nil, apperrors.ErrOrderNotFound
	}
	return &o, nil
}

func (m *memOrderStore) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return nil, apperrors.ErrOrderNotFound
	}
	o.Status = status
	m.orders[orderID] = o
	return &o, nil
}

func (m *memOrderStore) ListOrders(ctx context.Context, status string, limit, offset int) ([]models.Order, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []models.Order
	for _, o := range m.orders {
		if status == "" || string(o.Status) == status {
			matched = append(matched, o)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].OrderDate.After(matched[j].OrderDate)
	})

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (m *memOrderStore) Ping(ctx context.Context) error {
	return nil
}

// memMenuStore serves a fixed catalog
type memMenuStore struct {
	items []models.MenuItem
}

func (m *memMenuStore) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	return append([]models.MenuItem(nil), m.items...), nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.New("api-test")

	orderService := order.NewService(newMemOrderStore(), nil, log)
	orderHandler := order.NewHandler(orderService, log, false)

	menuService := menu.NewService(&memMenuStore{items: []models.MenuItem{
		{ID: "1", Name: "Margherita Pizza", Price: 12.99, Category: models.CategoryMains, Available: true},
		{ID: "2", Name: "Garlic Bread", Price: 4.50, Category: models.CategoryAppetizers, Available: true},
	}}, log)
	menuHandler := menu.NewHandler(menuService, log)

	srv := httptest.NewServer(NewRouter(menuHandler, orderHandler, log))
	t.Cleanup(srv.Close)
	return srv
}

const submissionJSON = `{
	"customer": {"name": "A", "email": "a@b.com", "phone": "1", "address": "X"},
	"items": [{"_id": "1", "name": "Pizza", "price": 12.99, "quantity": 2}],
	"total": 25.98
}`

func postOrder(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/orders", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestSubmitOrderEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postOrder(t, srv, submissionJSON)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result models.SubmitOrderResponse
	decodeBody(t, resp, &result)

	assert.Equal(t, "Order placed successfully", result.Message)
	assert.Contains(t, result.OrderID, "ORDER")
	require.NotNil(t, result.Order)
	assert.Equal(t, 25.98, result.Order.Total)
	assert.Equal(t, models.StatusPending, result.Order.Status)

	offset := result.EstimatedDelivery.Sub(result.Order.OrderDate)
	assert.GreaterOrEqual(t, offset, 30*time.Minute)
	assert.Less(t, offset, 45*time.Minute)
}

func TestSubmitOrderEndpointRejectsMalformedJSON(t *testing.T) {
	srv := newTestServer(t)

	resp := postOrder(t, srv, `{"customer": `)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Invalid JSON format", body["error"])
}

func TestSubmitOrderEndpointRejectsInvalidSubmission(t *testing.T) {
	srv := newTestServer(t)

	resp := postOrder(t, srv, `{
		"customer": {"name": "", "email": "a@b.com", "phone": "1", "address": "X"},
		"items": [{"_id": "1", "name": "Pizza", "price": 12.99, "quantity": 2}]
	}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Contains(t, body["error"], "customer.name")
}

func TestGetOrderEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var created models.SubmitOrderResponse
	decodeBody(t, postOrder(t, srv, submissionJSON), &created)

	resp, err := http.Get(srv.URL + "/api/orders/" + created.OrderID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched models.Order
	decodeBody(t, resp, &fetched)
	assert.Equal(t, created.OrderID, fetched.OrderID)
	assert.Equal(t, models.StatusPending, fetched.Status)
}

func TestGetOrderEndpointNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/orders/ORDER-missing")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Order not found", body["error"])
}

func TestUpdateStatusEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var created models.SubmitOrderResponse
	decodeBody(t, postOrder(t, srv, submissionJSON), &created)

	req, err := http.NewRequest(http.MethodPut,
		srv.URL+"/api/orders/"+created.OrderID+"/status",
		bytes.NewBufferString(`{"status": "confirmed"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.UpdateStatusResponse
	decodeBody(t, resp, &result)
	assert.Equal(t, "Order status updated successfully", result.Message)
	require.NotNil(t, result.Order)
	assert.Equal(t, models.StatusConfirmed, result.Order.Status)
}

func TestUpdateStatusEndpointRejectsUnknownStatus(t *testing.T) {
	srv := newTestServer(t)

	var created models.SubmitOrderResponse
	decodeBody(t, postOrder(t, srv, submissionJSON), &created)

	req, err := http.NewRequest(http.MethodPut,
		srv.URL+"/api/orders/"+created.OrderID+"/status",
		bytes.NewBufferString(`{"status": "shipped"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestListOrdersEndpoint(t *testing.T) {
	srv := newTestServer(t)

	for i := 0; i < 3; i++ {
		resp := postOrder(t, srv, submissionJSON)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp, err := http.Get(srv.URL + "/api/orders?status=pending&page=1&limit=2")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page models.OrderListResponse
	decodeBody(t, resp, &page)

	assert.Len(t, page.Orders, 2)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
}

func TestMenuEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/menu")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []map[string]interface{}
	decodeBody(t, resp, &items)

	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0]["_id"])
	assert.Equal(t, "Margherita Pizza", items[0]["name"])
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "Restaurant API is running", body["message"])
}

func TestUnknownAPIEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/no-such-endpoint")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "API endpoint not found", body["error"])
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/orders", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	resp.Body.Close()
}
