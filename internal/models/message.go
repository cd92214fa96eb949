package models

import "time"

// Notification event types published to the notifications exchange.
const (
	EventOrderCreated  = "order_created"
	EventStatusUpdated = "status_updated"
)

// OrderNotification is the message published when an order is created or its
// status changes. Consumers render it for confirmation email/SMS delivery.
type OrderNotification struct {
	Event             string      `json:"event"`
	OrderID           string      `json:"order_id"`
	CustomerName      string      `json:"customer_name"`
	Status            OrderStatus `json:"status"`
	Total             float64     `json:"total"`
	EstimatedDelivery *time.Time  `json:"estimated_delivery,omitempty"`
	Timestamp         time.Time   `json:"timestamp"`
}

// NewOrderCreatedNotification builds the notification for a freshly placed order.
func NewOrderCreatedNotification(order *Order) *OrderNotification {
	estimated := order.EstimatedDelivery
	return &OrderNotification{
		Event:             EventOrderCreated,
		OrderID:           order.OrderID,
		CustomerName:      order.Customer.Name,
		Status:            order.Status,
		Total:             order.Total,
		EstimatedDelivery: &estimated,
		Timestamp:         time.Now().UTC(),
	}
}

// NewStatusUpdatedNotification builds the notification for a status change.
func NewStatusUpdatedNotification(order *Order) *OrderNotification {
	return &OrderNotification{
		Event:        EventStatusUpdated,
		OrderID:      order.OrderID,
		CustomerName: order.Customer.Name,
		Status:       order.Status,
		Total:        order.Total,
		Timestamp:    time.Now().UTC(),
	}
}
