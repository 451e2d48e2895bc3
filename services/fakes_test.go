package services

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"foxy-admin/models"
)

// memoryProducts is an in-memory ProductRepository that records writes.
type memoryProducts struct {
	products map[primitive.ObjectID]models.Product
	err      error
	writes   int
}

func newMemoryProducts(products ...models.Product) *memoryProducts {
	m := &memoryProducts{products: make(map[primitive.ObjectID]models.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *memoryProducts) List(ctx context.Context) ([]models.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Product{}
	for _, p := range m.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memoryProducts) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memoryProducts) Create(ctx context.Context, p models.Product) (primitive.ObjectID, error) {
	m.writes++
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	p.ID = primitive.NewObjectID()
	m.products[p.ID] = p
	return p.ID, nil
}

func (m *memoryProducts) Update(ctx context.Context, id primitive.ObjectID, u models.ProductUpdate) (bool, error) {
	m.writes++
	if m.err != nil {
		return false, m.err
	}
	p, ok := m.products[id]
	if !ok {
		return false, nil
	}
	p.Name, p.Price, p.Quantity, p.Description, p.Adoptable = u.Name, u.Price, u.Quantity, u.Description, u.Adoptable
	m.products[id] = p
	return true, nil
}

func (m *memoryProducts) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	m.writes++
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.products[id]; !ok {
		return false, nil
	}
	delete(m.products, id)
	return true, nil
}

// memoryOrders is an in-memory OrderRepository.
type memoryOrders struct {
	mu      sync.Mutex
	orders  []models.Order
	listErr error
	err     error
	writes  int
}

func (m *memoryOrders) List(ctx context.Context, showCompleted bool) ([]models.Order, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
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
	m.writes++
	if m.err != nil {
		return false, m.err
	}
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].Status = status
			return true, nil
		}
	}
	return false, nil
}

// memoryQuotes is an in-memory QuoteRepository that records the paging it was asked for.
type memoryQuotes struct {
	quotes   []models.CustomBadgeQuote
	countErr error
	listErr  error
	err      error
	writes   int

	lastStatus string
	lastSkip   int
	lastLimit  int
}

func (m *memoryQuotes) filtered(status string) []models.CustomBadgeQuote {
	out := []models.CustomBadgeQuote{}
	for _, q := range m.quotes {
		if status == "" || q.Status == status {
			out = append(out, q)
		}
	}
	return out
}

func (m *memoryQuotes) Count(ctx context.Context, status string) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return int64(len(m.filtered(status))), nil
}

func (m *memoryQuotes) List(ctx context.Context, status string, skip, limit int) ([]models.CustomBadgeQuote, error) {
	m.lastStatus, m.lastSkip, m.lastLimit = status, skip, limit
	if m.listErr != nil {
		return nil, m.listErr
	}
	all := m.filtered(status)
	if skip >= len(all) {
		return []models.CustomBadgeQuote{}, nil
	}
	return all[skip:min(skip+limit, len(all))], nil
}

func (m *memoryQuotes) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (bool, error) {
	m.writes++
	if m.err != nil {
		return false, m.err
	}
	for i := range m.quotes {
		if m.quotes[i].ID == id {
			m.quotes[i].Status = status
			return true, nil
		}
	}
	return false, nil
}

// recordingNotifier collects shipped notifications.
type recordingNotifier struct {
	mu      sync.Mutex
	shipped []models.Order
}

func (r *recordingNotifier) OrderShipped(order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shipped = append(r.shipped, order)
	return nil
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.shipped)
}
