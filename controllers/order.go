// controllers/order.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"foxy-admin/models"
	"foxy-admin/pagination"
	"foxy-admin/services"
)

// OrderController handles order triage requests
type OrderController struct {
	*View
	Orders *services.OrderService
}

// NewOrderController creates a new OrderController
func NewOrderController(view *View, orders *services.OrderService) *OrderController {
	return &OrderController{View: view, Orders: orders}
}

// ListOrders renders one page of orders from both collections
func (oc *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := pagination.ParseQuery(q)
	showCompleted := q.Get("show_completed") == "true"

	page := oc.Orders.List(r.Context(), params, showCompleted)
	oc.Render(w, r, "order_processing.html", "Orders", map[string]interface{}{
		"Page":         page,
		"PageSize":     params.PageSize,
		"Statuses":     services.OrderStatuses,
		"ErrorMessage": page.ErrorMessage,
	})
}

// UpdateOrderStatus sets an order's status and answers with JSON
func (oc *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, models.OrderOperationResponse{Message: "Invalid form"})
		return
	}
	orderID := r.PostFormValue("order_id")
	status := r.PostFormValue("status")

	err := oc.Orders.UpdateStatus(r.Context(), orderID, status)
	if err != nil {
		writeJSON(w, operationStatus(err), models.OrderOperationResponse{Message: orderMessage(err)})
		return
	}

	writeJSON(w, http.StatusOK, models.OrderOperationResponse{
		Success: true,
		Message: fmt.Sprintf("Order status updated to %s", status),
		OrderID: orderID,
	})
}

func orderMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidStatus):
		return "Invalid status"
	case errors.Is(err, services.ErrInvalidID):
		return "Invalid order ID"
	case errors.Is(err, services.ErrNotFound):
		return "Order not found in either collection"
	default:
		return fmt.Sprintf("Database error: %v", err)
	}
}
