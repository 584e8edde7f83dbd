// Package orders provides order operations with per-principal authorization.
package orders

import (
	"context"
	"time"

	"orders-demo/internal/domain"
)

// Service exposes order CRUD guarded by the ownership policy: single-order
// operations deny with AccessDeniedError, listing filters instead of denying.
type Service struct {
	repo domain.OrderRepository
}

// NewService creates an order Service over the given repository.
func NewService(repo domain.OrderRepository) *Service {
	return &Service{repo: repo}
}

// List returns the orders visible to the principal: admins see the full
// collection, other principals exactly the subset they own. Listing never
// fails on authorization.
func (s *Service) List(ctx context.Context, principal domain.Principal) ([]domain.Order, error) {
	if principal.IsAdmin() {
		return s.repo.List(ctx)
	}
	return s.repo.ListByUser(ctx, principal.ID)
}

// Get returns a single order. Existence is checked before ownership, so a
// request for a missing order reports 404 regardless of who asks.
func (s *Service) Get(ctx context.Context, principal domain.Principal, orderID int) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !principal.OwnsOrAdmin(order.UserID) {
		return nil, domain.ErrAccessDenied("Not authorized to access this order")
	}
	return order, nil
}

// Create stores a new order owned by the principal.
func (s *Service) Create(ctx context.Context, principal domain.Principal, req domain.CreateOrderRequest) (*domain.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	order := &domain.Order{
		UserID:      principal.ID,
		ProductName: req.ProductName,
		Price:       req.Price,
		Status:      req.Status,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	return s.repo.Create(ctx, order)
}

// Update applies a partial update to an order the principal may act on.
func (s *Service) Update(ctx context.Context, principal domain.Principal, orderID int, req domain.UpdateOrderRequest) (*domain.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !principal.OwnsOrAdmin(order.UserID) {
		return nil, domain.ErrAccessDenied("Not authorized to update this order")
	}
	return s.repo.Update(ctx, orderID, req)
}

// Delete removes an order the principal may act on.
func (s *Service) Delete(ctx context.Context, principal domain.Principal, orderID int) error {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !principal.OwnsOrAdmin(order.UserID) {
		return domain.ErrAccessDenied("Not authorized to delete this order")
	}
	return s.repo.Delete(ctx, orderID)
}
