package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"foxy-admin/auth"
	"foxy-admin/controllers"
	"foxy-admin/middleware"
	"foxy-admin/models"
	"foxy-admin/pagination"
	"foxy-admin/services"
	"foxy-admin/templates"
	"foxy-admin/utils"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

type memoryUsers struct {
	users map[string]models.User
}

func (m *memoryUsers) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	u, ok := m.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memoryUsers) Create(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	user.ID = primitive.NewObjectID()
	m.users[user.Username] = user
	return user.ID, nil
}

type memoryProducts struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]models.Product
}

func (m *memoryProducts) List(ctx context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Product{}
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *memoryProducts) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memoryProducts) Create(ctx context.Context, p models.Product) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = primitive.NewObjectID()
	m.products[p.ID] = p
	return p.ID, nil
}

func (m *memoryProducts) Update(ctx context.Context, id primitive.ObjectID, u models.ProductUpdate) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return false, nil
	}
	p.Name, p.Price, p.Quantity, p.Description, p.Adoptable = u.Name, u.Price, u.Quantity, u.Description, u.Adoptable
	m.products[id] = p
	return true, nil
}

func (m *memoryProducts) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return false, nil
	}
	delete(m.products, id)
	return true, nil
}

type memoryOrders struct {
	mu     sync.Mutex
	orders []models.Order
}

func (m *memoryOrders) List(ctx context.Context, showCompleted bool) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Order(nil), m.orders...), nil
}

func (m *memoryOrders) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, nil
}

func (m *memoryOrders) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].Status = status
			return true, nil
		}
	}
	return false, nil
}

type memoryQuotes struct {
	quotes   []models.CustomBadgeQuote
	lastSkip int
}

func (m *memoryQuotes) Count(ctx context.Context, status string) (int64, error) {
	return int64(len(m.quotes)), nil
}

func (m *memoryQuotes) List(ctx context.Context, status string, skip, limit int) ([]models.CustomBadgeQuote, error) {
	m.lastSkip = skip
	return m.quotes, nil
}

func (m *memoryQuotes) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (bool, error) {
	for i := range m.quotes {
		if m.quotes[i].ID == id {
			m.quotes[i].Status = status
			return true, nil
		}
	}
	return false, nil
}

type testServer struct {
	handler  http.Handler
	provider *auth.Provider
	products *memoryProducts
	orders   *memoryOrders
	quotes   *memoryQuotes
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	tmpl := templates.NewCache()
	require.NoError(t, tmpl.Load())
	view := &controllers.View{Templates: tmpl, Sessions: sessions.NewCookieStore(testKey)}

	users := &memoryUsers{users: map[string]models.User{
		"admin": {ID: primitive.NewObjectID(), Username: "admin", PasswordHash: utils.HashPassword("s3cret"), IsAdmin: true},
		"staff": {ID: primitive.NewObjectID(), Username: "staff", PasswordHash: utils.HashPassword("s3cret")},
	}}
	provider := auth.NewProvider(users, utils.NewTokenSigner(testKey), time.Hour, false)

	badgeDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(badgeDir, "badge_fox.png"), []byte("png-bytes"), 0o644))

	s := &testServer{
		provider: provider,
		products: &memoryProducts{products: map[primitive.ObjectID]models.Product{}},
		orders:   &memoryOrders{},
		quotes:   &memoryQuotes{},
	}

	router := mux.NewRouter()
	RegisterRoutes(router, Controllers{
		Users:    controllers.NewUserController(view, provider),
		Products: controllers.NewProductController(view, services.NewProductService(s.products, services.NewImageStore(t.TempDir(), "/static/uploads/"))),
		Orders:   controllers.NewOrderController(view, services.NewOrderService(s.orders, nil)),
		Quotes:   controllers.NewQuoteController(view, services.NewQuoteService(s.quotes), &services.BadgeImages{Dir: badgeDir}),
		System:   controllers.NewSystemController(view, filepath.Join(t.TempDir(), "missing.txt"), "test"),
	}, provider, t.TempDir())
	s.handler = router
	return s
}

func (s *testServer) cookieFor(t *testing.T, user models.User) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, s.provider.Login(rec, user))
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie")
	return nil
}

func (s *testServer) admin(t *testing.T) *http.Cookie {
	return s.cookieFor(t, models.User{ID: primitive.NewObjectID(), Username: "admin", IsAdmin: true})
}

func (s *testServer) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestLoginForm(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/login?next=/orders", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="next" value="/orders"`)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		form     url.Values
		location string
		message  string
	}{
		{"empty username", url.Values{"username": {" "}, "password": {"s3cret"}}, "", "Username cannot be empty"},
		{"empty password", url.Values{"username": {"admin"}}, "", "Password cannot be empty"},
		{"wrong password", url.Values{"username": {"admin"}, "password": {"nope"}}, "", "Bad credentials"},
		{"unknown user", url.Values{"username": {"ghost"}, "password": {"s3cret"}}, "", "Bad credentials"},
		{"success", url.Values{"username": {"admin"}, "password": {"s3cret"}, "next": {"/orders"}}, "/orders", ""},
		{"unsafe next", url.Values{"username": {"admin"}, "password": {"s3cret"}, "next": {"//evil.example"}}, "/products", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			rec := s.do(postForm("/login", tt.form))

			if tt.location == "" {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), tt.message)
				return
			}
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))

			var names []string
			for _, c := range rec.Result().Cookies() {
				names = append(names, c.Name)
			}
			assert.Contains(t, names, auth.CookieName)
		})
	}
}

func TestLogoutEndsSession(t *testing.T) {
	s := newTestServer(t)
	cookie := s.admin(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/logout", nil), cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	rec = s.do(httptest.NewRequest(http.MethodGet, "/products", nil), cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code, "old cookie no longer identifies anyone")
}

func TestDashboard(t *testing.T) {
	s := newTestServer(t)
	staff := s.cookieFor(t, models.User{ID: primitive.NewObjectID(), Username: "staff"})

	rec := s.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = s.do(httptest.NewRequest(http.MethodGet, "/", nil), staff)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), middleware.AdminRequiredMessage)

	rec = s.do(httptest.NewRequest(http.MethodGet, "/", nil), s.admin(t))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/products", rec.Header().Get("Location"))
}

func TestPagesRequireAdmin(t *testing.T) {
	s := newTestServer(t)
	staff := s.cookieFor(t, models.User{ID: primitive.NewObjectID(), Username: "staff"})

	for _, path := range []string{"/products", "/products/new", "/orders", "/quotes", "/calculator"} {
		rec := s.do(httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, middleware.LoginURL(path), rec.Header().Get("Location"), path)

		rec = s.do(httptest.NewRequest(http.MethodGet, path, nil), staff)
		assert.Equal(t, http.StatusForbidden, rec.Code, path)

		rec = s.do(httptest.NewRequest(http.MethodGet, path, nil), s.admin(t))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestAPIRequiresAdmin(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(postForm("/orders/update-status", url.Values{"order_id": {primitive.NewObjectID().Hex()}, "status": {"paid"}}))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Access denied", body["message"])
}

func TestCreateProductFlashesOnNextPage(t *testing.T) {
	s := newTestServer(t)
	cookie := s.admin(t)

	rec := s.do(postForm("/products/new", url.Values{
		"name": {"Fox badge"}, "price": {" 12.50 "}, "quantity": {"3"}, "adoptable": {"on"},
	}), cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/products", rec.Header().Get("Location"))

	products, _ := s.products.List(context.Background())
	require.Len(t, products, 1)
	assert.Equal(t, "12.50", products[0].Price)
	assert.True(t, products[0].Adoptable)

	cookies := append(rec.Result().Cookies(), cookie)
	rec = s.do(httptest.NewRequest(http.MethodGet, "/products", nil), cookies...)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fox badge")
	assert.Contains(t, rec.Body.String(), "Product created successfully")
}

func TestCreateProductRejectsInvalidForm(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(postForm("/products/new", url.Values{"name": {"Fox"}, "price": {"cheap"}, "quantity": {"1"}}), s.admin(t))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Price must be a valid number")

	products, _ := s.products.List(context.Background())
	assert.Empty(t, products)
}

func TestEditProduct(t *testing.T) {
	s := newTestServer(t)
	cookie := s.admin(t)
	id, _ := s.products.Create(context.Background(), models.Product{Name: "Fox", Price: "5.00", Quantity: 1})

	rec := s.do(httptest.NewRequest(http.MethodGet, "/products/edit/"+id.Hex(), nil), cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fox")

	rec = s.do(httptest.NewRequest(http.MethodGet, "/products/edit/not-an-id", nil), cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid product ID")

	rec = s.do(httptest.NewRequest(http.MethodGet, "/products/edit/"+primitive.NewObjectID().Hex(), nil), cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(postForm("/products/edit/"+id.Hex(), url.Values{"name": {"Red fox"}, "price": {"6"}, "quantity": {"2"}}), cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	p, _ := s.products.FindByID(context.Background(), id)
	assert.Equal(t, "Red fox", p.Name)

	rec = s.do(postForm("/products/edit/"+id.Hex(), url.Values{"name": {""}, "price": {"6"}, "quantity": {"2"}}), cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product name cannot be empty")
}

func TestDeleteProduct(t *testing.T) {
	s := newTestServer(t)
	cookie := s.admin(t)
	id, _ := s.products.Create(context.Background(), models.Product{Name: "Fox"})

	rec := s.do(httptest.NewRequest(http.MethodDelete, "/products/delete/"+id.Hex(), nil), cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, id.Hex(), body["product_id"])

	rec = s.do(httptest.NewRequest(http.MethodDelete, "/products/delete/"+id.Hex(), nil), cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", decode(t, rec)["message"])

	rec = s.do(httptest.NewRequest(http.MethodDelete, "/products/delete/zzz", nil), cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrders(t *testing.T) {
	s := newTestServer(t)
	cookie := s.admin(t)
	order := models.Order{
		ID:             primitive.NewObjectID(),
		OrderReference: "FOX-1001",
		CustomerName:   "Robin",
		Status:         "pending",
		Total:          12.5,
		CreatedAt:      "2024-05-01T10:00:00Z",
	}
	s.orders.orders = []models.Order{order}

	rec := s.do(httptest.NewRequest(http.MethodGet, "/orders", nil), cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "FOX-1001")

	rec = s.do(httptest.NewRequest(http.MethodGet, "/orders?page=1000000000000000000", nil), cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No orders found.")
	assert.NotContains(t, rec.Body.String(), "Database error")

	tests := []struct {
		id, status string
		code       int
		message    string
	}{
		{order.ID.Hex(), "processing", http.StatusOK, "Order status updated to processing"},
		{order.ID.Hex(), "lost", http.StatusBadRequest, "Invalid status"},
		{"nope", "paid", http.StatusBadRequest, "Invalid order ID"},
		{primitive.NewObjectID().Hex(), "paid", http.StatusNotFound, "Order not found in either collection"},
	}
	for _, tt := range tests {
		rec := s.do(postForm("/orders/update-status", url.Values{"order_id": {tt.id}, "status": {tt.status}}), cookie)
		assert.Equal(t, tt.code, rec.Code, tt.message)
		assert.Equal(t, tt.message, decode(t, rec)["message"])
	}

	stored, _ := s.orders.FindByID(context.Background(), order.ID)
	assert.Equal(t, "processing", stored.Status)
}

func TestQuotes(t *testing.T) {
	s := newTestServer(t)
	cookie := s.admin(t)
	quote := models.CustomBadgeQuote{ID: primitive.NewObjectID(), Email: "maker@example.com", Status: "pending", CreatedAt: "2024-05-01T10:00:00Z"}
	s.quotes.quotes = []models.CustomBadgeQuote{quote}

	rec := s.do(httptest.NewRequest(http.MethodGet, "/quotes?status_filter=pending", nil), cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "maker@example.com")

	rec = s.do(httptest.NewRequest(http.MethodGet, "/quotes?page=1000000000000000000", nil), cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pagination.Skip(pagination.MaxPage, pagination.DefaultPageSize), s.quotes.lastSkip)

	rec = s.do(postForm("/quotes/update-status", url.Values{"quote_id": {quote.ID.Hex()}, "status": {"quoted"}}), cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Quote status updated to quoted", decode(t, rec)["message"])
	assert.Equal(t, "quoted", s.quotes.quotes[0].Status)

	rec = s.do(postForm("/quotes/update-status", url.Values{"quote_id": {primitive.NewObjectID().Hex()}, "status": {"quoted"}}), cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Quote not found", decode(t, rec)["message"])
}

func TestBadgeImage(t *testing.T) {
	s := newTestServer(t)
	cookie := s.admin(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/quotes/image/badge_fox.png", nil), cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, services.BadgeCacheControl, rec.Header().Get("Cache-Control"))
	assert.Equal(t, "png-bytes", rec.Body.String())

	rec = s.do(httptest.NewRequest(http.MethodGet, "/quotes/image/secret.png", nil), cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(httptest.NewRequest(http.MethodGet, "/quotes/image/badge_missing.png", nil), cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(httptest.NewRequest(http.MethodGet, "/quotes/image/badge_fox.png", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHealthAndInfo(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decode(t, rec)["status"])

	rec = s.do(httptest.NewRequest(http.MethodGet, "/info", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, services.ServiceName, body["service"])
	assert.Equal(t, "unknown", body["image"])
	assert.Equal(t, "test", body["environment"])
}
