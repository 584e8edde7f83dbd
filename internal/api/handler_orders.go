package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"orders-demo/internal/domain"
)

func orderIDFromRequest(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	if err != nil {
		return 0, domain.ErrValidation("Order ID must be an integer")
	}
	return id, nil
}

// ListOrders handles GET /orders. Non-admins receive only their own orders,
// admins the full collection.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	result, err := h.orders.List(r.Context(), principal)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetOrder handles GET /orders/{orderID}.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	orderID, err := orderIDFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	order, err := h.orders.Get(r.Context(), principal, orderID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// CreateOrder handles POST /orders. The new order is owned by the
// authenticated principal.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req domain.CreateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	order, err := h.orders.Create(r.Context(), principal, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// UpdateOrder handles PUT /orders/{orderID} with a partial update.
func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	orderID, err := orderIDFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req domain.UpdateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	order, err := h.orders.Update(r.Context(), principal, orderID, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// DeleteOrder handles DELETE /orders/{orderID}.
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	orderID, err := orderIDFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.orders.Delete(r.Context(), principal, orderID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
