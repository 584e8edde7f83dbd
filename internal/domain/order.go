package domain

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
)

// Valid reports whether the status is one of the recognized values.
func (s OrderStatus) Valid() bool {
	return s == OrderPending || s == OrderShipped || s == OrderDelivered
}

const maxProductNameLen = 200

// Order represents a single order owned by a user.
type Order struct {
	OrderID     int         `json:"order_id"`
	UserID      string      `json:"user_id"`
	ProductName string      `json:"product_name"`
	Price       float64     `json:"price"`
	Status      OrderStatus `json:"status"`
	CreatedAt   string      `json:"created_at"`
}

// CreateOrderRequest holds parameters for creating a new order. The owner is
// always the authenticated principal, never a request field.
type CreateOrderRequest struct {
	ProductName string      `json:"product_name"`
	Price       float64     `json:"price"`
	Status      OrderStatus `json:"status"`
}

// Validate checks that the request is well-formed and applies defaults.
func (r *CreateOrderRequest) Validate() error {
	if r.ProductName == "" {
		return ErrValidation("product_name is required")
	}
	if len(r.ProductName) > maxProductNameLen {
		return ErrValidation("product_name must be at most %d characters", maxProductNameLen)
	}
	if r.Price <= 0 {
		return ErrValidation("price must be greater than zero")
	}
	if r.Status == "" {
		r.Status = OrderPending
	}
	if !r.Status.Valid() {
		return ErrValidation("status must be one of pending, shipped, delivered")
	}
	return nil
}

// UpdateOrderRequest holds the optional fields of a partial order update.
// Nil fields are left unchanged.
type UpdateOrderRequest struct {
	ProductName *string      `json:"product_name"`
	Price       *float64     `json:"price"`
	Status      *OrderStatus `json:"status"`
}

// Validate checks that every provided field is well-formed.
func (r *UpdateOrderRequest) Validate() error {
	if r.ProductName != nil {
		if *r.ProductName == "" {
			return ErrValidation("product_name must not be empty")
		}
		if len(*r.ProductName) > maxProductNameLen {
			return ErrValidation("product_name must be at most %d characters", maxProductNameLen)
		}
	}
	if r.Price != nil && *r.Price <= 0 {
		return ErrValidation("price must be greater than zero")
	}
	if r.Status != nil && !r.Status.Valid() {
		return ErrValidation("status must be one of pending, shipped, delivered")
	}
	return nil
}
