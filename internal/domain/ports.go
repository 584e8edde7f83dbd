package domain

import "context"

// OrderRepository is the storage port for orders.
type OrderRepository interface {
	List(ctx context.Context) ([]Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	GetByID(ctx context.Context, orderID int) (*Order, error)
	Create(ctx context.Context, order *Order) (*Order, error)
	Update(ctx context.Context, orderID int, req UpdateOrderRequest) (*Order, error)
	Delete(ctx context.Context, orderID int) error
}

// ProfileRepository is the storage port for user profiles.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Update(ctx context.Context, userID string, req UpdateProfileRequest) (*Profile, error)
}
