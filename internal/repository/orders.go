// Package repository provides the in-memory storage backing the resource API.
// The tables are process-local and evaporate on exit; a mutex guards the maps
// because the HTTP layer invokes them concurrently.
package repository

import (
	"context"
	"sort"
	"sync"

	"orders-demo/internal/domain"
)

// OrderRepo is an in-memory keyed table of orders.
type OrderRepo struct {
	mu     sync.RWMutex
	orders map[int]domain.Order
	nextID int
}

// NewOrderRepo creates an order table seeded with the given orders. IDs for
// new orders are allocated starting at nextID.
func NewOrderRepo(seed []domain.Order, nextID int) *OrderRepo {
	r := &OrderRepo{
		orders: make(map[int]domain.Order, len(seed)),
		nextID: nextID,
	}
	for _, o := range seed {
		r.orders[o.OrderID] = o
	}
	return r
}

// List returns all orders, ordered by ID.
func (r *OrderRepo) List(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderID < out[j].OrderID })
	return out, nil
}

// ListByUser returns the orders owned by userID, ordered by ID.
func (r *OrderRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderID < out[j].OrderID })
	return out, nil
}

// GetByID returns a single order by ID.
func (r *OrderRepo) GetByID(_ context.Context, orderID int) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound("Order not found")
	}
	return &o, nil
}

// Create stores a new order, allocating its ID.
func (r *OrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o := *order
	o.OrderID = r.nextID
	r.nextID++
	r.orders[o.OrderID] = o
	return &o, nil
}

// Update applies a partial update to an existing order.
func (r *OrderRepo) Update(_ context.Context, orderID int, req domain.UpdateOrderRequest) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound("Order not found")
	}
	if req.ProductName != nil {
		o.ProductName = *req.ProductName
	}
	if req.Price != nil {
		o.Price = *req.Price
	}
	if req.Status != nil {
		o.Status = *req.Status
	}
	r.orders[orderID] = o
	return &o, nil
}

// Delete removes an order by ID.
func (r *OrderRepo) Delete(_ context.Context, orderID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[orderID]; !ok {
		return domain.ErrNotFound("Order not found")
	}
	delete(r.orders, orderID)
	return nil
}
