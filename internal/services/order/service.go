package order

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"restaurant-ordering/internal/apperrors"
	"restaurant-ordering/internal/logger"
	"restaurant-ordering/internal/models"
)

const (
	defaultPage     = 1
	defaultPageSize = 10

	// storeTimeout bounds every storage call; expiry surfaces as
	// ErrStorageUnavailable.
	storeTimeout = 5 * time.Second
)

// Store is the persistence contract for orders
type Store interface {
	InsertOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, orderID string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error)
	ListOrders(ctx context.Context, status string, limit, offset int) ([]models.Order, int, error)
	Ping(ctx context.Context) error
}

// Notifier publishes order notifications; failures must not fail the request
type Notifier interface {
	PublishNotification(ctx context.Context, message interface{}) error
}

// DeliveryEstimator computes the estimated delivery time for an order placed
// at the given moment. Replaceable so tests can pin the estimate and a real
// kitchen-load estimator can slot in later.
type DeliveryEstimator func(now time.Time) time.Time

// EstimateDelivery is the default estimator: a uniformly random whole-minute
// offset in [30, 45) minutes.
func EstimateDelivery(now time.Time) time.Time {
	return now.Add(time.Duration(30+rand.Intn(15)) * time.Minute)
}

// GenerateOrderID returns a new order identifier built from the current unix
// millisecond timestamp and a random suffix. Uniqueness is enforced by the
// store's constraint, not by this generator.
func GenerateOrderID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("ORDER%d%s", time.Now().UnixMilli(), suffix)
}

// ListFilter selects a page of orders. Page and PageSize are 1-indexed
// positive integers; non-positive values fall back to the defaults.
type ListFilter struct {
	Status   string
	Page     int
	PageSize int
}

// Service implements the order lifecycle
type Service struct {
	store    Store
	notifier Notifier
	logger   *logger.Logger

	generateID       func() string
	estimateDelivery DeliveryEstimator
}

// NewService creates an order service with default identifier generation and
// delivery estimation.
func NewService(store Store, notifier Notifier, log *logger.Logger) *Service {
	return &Service{
		store:            store,
		notifier:         notifier,
		logger:           log,
		generateID:       GenerateOrderID,
		estimateDelivery: EstimateDelivery,
	}
}

// SubmitOrder validates and persists a submission as a new pending order.
// The identifier is generated server-side; on a store-level collision a fresh
// identifier is tried once before surfacing ErrOrderConflict.
func (s *Service) SubmitOrder(ctx context.Context, sub *models.OrderSubmission, requestID string) (*models.Order, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &models.Order{
		Customer:          sub.Customer,
		Items:             append([]models.OrderItem(nil), sub.Items...),
		Total:             sub.CalculateTotal(),
		Status:            models.StatusPending,
		OrderDate:         now,
		EstimatedDelivery: s.estimateDelivery(now),
		Notes:             sub.Notes,
	}

	const maxAttempts = 2
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		order.OrderID = s.generateID()

		storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
		err := s.store.InsertOrder(storeCtx, order)
		cancel()

		if err == nil {
			s.logger.Info("order_created", fmt.Sprintf("New order received: %s", order.OrderID), requestID, map[string]interface{}{
				"order_id":      order.OrderID,
				"customer_name": order.Customer.Name,
				"total":         order.Total,
			})
			s.publish(ctx, models.NewOrderCreatedNotification(order), requestID)
			return order, nil
		}

		if errors.Is(err, apperrors.ErrOrderConflict) {
			s.logger.Error("order_id_conflict", "Order identifier collision, regenerating", requestID, err, map[string]interface{}{
				"order_id": order.OrderID,
				"attempt":  attempt,
			})
			continue
		}

		return nil, s.mapStoreErr(err, requestID, order.OrderID)
	}

	return nil, apperrors.ErrOrderConflict
}

// GetOrder returns the order with the given identifier
func (s *Service) GetOrder(ctx context.Context, orderID, requestID string) (*models.Order, error) {
	storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	order, err := s.store.GetOrderByID(storeCtx, orderID)
	if err != nil {
		return nil, s.mapStoreErr(err, requestID, orderID)
	}
	return order, nil
}

// UpdateStatus transitions the order to newStatus. Any member of the status
// enumeration is accepted; transitions are not restricted to a forward path.
func (s *Service) UpdateStatus(ctx context.Context, orderID, newStatus, requestID string) (*models.Order, error) {
	if !models.ValidStatus(newStatus) {
		return nil, apperrors.ValidationError{Field: "status", Message: "invalid order status"}
	}

	storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	order, err := s.store.UpdateOrderStatus(storeCtx, orderID, models.OrderStatus(newStatus))
	if err != nil {
		return nil, s.mapStoreErr(err, requestID, orderID)
	}

	s.logger.Info("order_status_updated", fmt.Sprintf("Order %s is now %s", orderID, newStatus), requestID, map[string]interface{}{
		"order_id": orderID,
		"status":   newStatus,
	})
	s.publish(ctx, models.NewStatusUpdatedNotification(order), requestID)

	return order, nil
}

// ListOrders returns a page of orders, most recent first
func (s *Service) ListOrders(ctx context.Context, filter ListFilter, requestID string) (*models.OrderListResponse, error) {
	if filter.Status != "" && !models.ValidStatus(filter.Status) {
		return nil, apperrors.ValidationError{Field: "status", Message: "invalid order status"}
	}

	page := filter.Page
	if page <= 0 {
		page = defaultPage
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	orders, total, err := s.store.ListOrders(storeCtx, filter.Status, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, s.mapStoreErr(err, requestID, "")
	}

	if orders == nil {
		orders = []models.Order{}
	}

	return &models.OrderListResponse{
		Orders:      orders,
		TotalPages:  (total + pageSize - 1) / pageSize,
		CurrentPage: page,
		Total:       total,
	}, nil
}

// HealthCheck reports whether the store is reachable
func (s *Service) HealthCheck(ctx context.Context) bool {
	storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if err := s.store.Ping(storeCtx); err != nil {
		s.logger.Error("health_check_failed", "Store ping failed", "", err, nil)
		return false
	}
	return true
}

// publish sends a notification without failing the calling operation
func (s *Service) publish(ctx context.Context, notification *models.OrderNotification, requestID string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.PublishNotification(ctx, notification); err != nil {
		s.logger.Error("notification_publish_failed", "Failed to publish order notification", requestID, err, map[string]interface{}{
			"order_id": notification.OrderID,
			"event":    notification.Event,
		})
	}
}

// mapStoreErr normalizes store failures into the error taxonomy
func (s *Service) mapStoreErr(err error, requestID, orderID string) error {
	if errors.Is(err, apperrors.ErrOrderNotFound) || errors.Is(err, apperrors.ErrOrderConflict) {
		return err
	}

	s.logger.Error("store_operation_failed", "Order store operation failed", requestID, err, map[string]interface{}{
		"order_id": orderID,
	})

	return fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
}
