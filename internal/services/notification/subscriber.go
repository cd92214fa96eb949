package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"restaurant-ordering/internal/logger"
	"restaurant-ordering/internal/messaging"
	"restaurant-ordering/internal/models"
)

// Subscriber consumes order notifications and renders them for the customer.
// This is where confirmation email/SMS delivery would hook in.
type Subscriber struct {
	consumer *messaging.Consumer
	logger   *logger.Logger
}

// NewSubscriber creates a new notification subscriber
func NewSubscriber(consumer *messaging.Consumer, log *logger.Logger) *Subscriber {
	return &Subscriber{
		consumer: consumer,
		logger:   log,
	}
}

// Start consumes notifications until ctx is cancelled
func (s *Subscriber) Start(ctx context.Context) error {
	requestID := logger.GenerateRequestID()
	s.logger.Info("service_started", "Notification subscriber started", requestID, nil)

	return s.consumer.StartConsuming(ctx, s.handleNotification)
}

// handleNotification processes an incoming order notification
func (s *Subscriber) handleNotification(ctx context.Context, body []byte) error {
	requestID := logger.GenerateRequestID()

	var notification models.OrderNotification
	if err := json.Unmarshal(body, &notification); err != nil {
		s.logger.Error("message_parsing_failed", "Failed to parse notification message", requestID, err, nil)
		return fmt.Errorf("failed to parse notification: %w", err)
	}

	fmt.Println(formatNotification(&notification))

	s.logger.Info("notification_displayed", "Notification displayed to user", requestID, map[string]interface{}{
		"order_id": notification.OrderID,
		"event":    notification.Event,
		"status":   notification.Status,
	})

	return nil
}

// formatNotification creates a human-readable notification message
func formatNotification(n *models.OrderNotification) string {
	timestamp := n.Timestamp.Format("2006-01-02 15:04:05")

	if n.Event == models.EventOrderCreated {
		if n.EstimatedDelivery != nil {
			return fmt.Sprintf("[%s] Order %s received for %s (total %.2f). Estimated delivery: %s",
				timestamp, n.OrderID, n.CustomerName, n.Total, n.EstimatedDelivery.Format("15:04"))
		}
		return fmt.Sprintf("[%s] Order %s received for %s (total %.2f).",
			timestamp, n.OrderID, n.CustomerName, n.Total)
	}

	switch n.Status {
	case models.StatusConfirmed:
		return fmt.Sprintf("[%s] Order %s has been confirmed.", timestamp, n.OrderID)
	case models.StatusPreparing:
		return fmt.Sprintf("[%s] Order %s is being prepared.", timestamp, n.OrderID)
	case models.StatusReady:
		return fmt.Sprintf("[%s] Order %s is ready for delivery!", timestamp, n.OrderID)
	case models.StatusDelivered:
		return fmt.Sprintf("[%s] Order %s has been delivered. Enjoy your meal!", timestamp, n.OrderID)
	case models.StatusCancelled:
		return fmt.Sprintf("[%s] Order %s has been cancelled.", timestamp, n.OrderID)
	default:
		return fmt.Sprintf("[%s] Order %s status changed to '%s'.", timestamp, n.OrderID, n.Status)
	}
}

// Close stops the subscriber
func (s *Subscriber) Close() error {
	return s.consumer.Close()
}
