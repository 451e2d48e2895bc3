package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"foxy-admin/models"
	"foxy-admin/pagination"
	"foxy-admin/projection"
	"foxy-admin/store"
	"foxy-admin/utils"
)

// OrderStatuses are the statuses an admin may set on an order
var OrderStatuses = []string{"paid", "processing", "shipped", "completed", "cancelled"}

// OrderPage is one page of the order listing
type OrderPage struct {
	Orders        []models.OrderDisplay
	Pagination    pagination.Info
	ShowCompleted bool
	ErrorMessage  string
}

// OrderService triages orders across both order collections
type OrderService struct {
	repo     store.OrderRepository
	notifier utils.Notifier
}

// NewOrderService creates an OrderService. A nil notifier sends nothing.
func NewOrderService(repo store.OrderRepository, notifier utils.Notifier) *OrderService {
	if notifier == nil {
		notifier = utils.NopNotifier{}
	}
	return &OrderService{repo: repo, notifier: notifier}
}

// List returns the requested page of the merged order listing. A read fault
// yields an empty page carrying the error message.
func (s *OrderService) List(ctx context.Context, params pagination.Params, showCompleted bool) OrderPage {
	page, pageSize := pagination.Normalize(params.Page, params.PageSize)

	orders, err := s.repo.List(ctx, showCompleted)
	if err != nil {
		slog.Error("Failed to list orders", "error", err)
		return OrderPage{
			Orders:        []models.OrderDisplay{},
			Pagination:    pagination.New(1, pageSize, 0),
			ShowCompleted: showCompleted,
			ErrorMessage:  fmt.Sprintf("Database error fetching orders: %v", err),
		}
	}

	return OrderPage{
		Orders:        projection.Orders(pagination.Window(orders, page, pageSize)),
		Pagination:    pagination.New(page, pageSize, int64(len(orders))),
		ShowCompleted: showCompleted,
	}
}

// UpdateStatus sets the status of the order with id, wherever it is stored.
// Marking an order shipped emails the customer in the background.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) error {
	if !allowed(OrderStatuses, status) {
		return ErrInvalidStatus
	}
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	matched, err := s.repo.UpdateStatus(ctx, oid, status)
	if err != nil {
		slog.Error("Failed to update order status", "order_id", id, "error", err)
		return err
	}
	if !matched {
		return ErrNotFound
	}

	slog.Info("Order status updated", "order_id", id, "status", status)
	if status == "shipped" {
		go s.notifyShipped(oid)
	}
	return nil
}

func (s *OrderService) notifyShipped(id primitive.ObjectID) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	order, err := s.repo.FindByID(ctx, id)
	if err != nil || order == nil {
		slog.Warn("Could not load shipped order for notification", "order_id", id.Hex(), "error", err)
		return
	}
	if order.CustomerEmail == "" {
		return
	}
	if err := s.notifier.OrderShipped(*order); err != nil {
		slog.Error("Failed to send shipping email", "order_id", id.Hex(), "email", order.CustomerEmail, "error", err)
	}
}
