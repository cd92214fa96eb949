package notification

import (
	"strings"
	"testing"
	"time"

	"restaurant-ordering/internal/models"
)

func TestFormatNotification(t *testing.T) {
	ts := time.Date(2026, 8, 1, 18, 30, 0, 0, time.UTC)
	delivery := ts.Add(35 * time.Minute)

	tests := []struct {
		name         string
		notification models.OrderNotification
		want         []string
	}{
		{
			name: "order created",
			notification: models.OrderNotification{
				Event:             models.EventOrderCreated,
				OrderID:           "ORDER123",
				CustomerName:      "Alice",
				Total:             25.98,
				EstimatedDelivery: &delivery,
				Timestamp:         ts,
			},
			want: []string{"ORDER123", "Alice", "25.98", "19:05"},
		},
		{
			name: "order created without estimate",
			notification: models.OrderNotification{
				Event:        models.EventOrderCreated,
				OrderID:      "ORDER123",
				CustomerName: "Alice",
				Total:        25.98,
				Timestamp:    ts,
			},
			want: []string{"ORDER123", "received"},
		},
		{
			name: "confirmed",
			notification: models.OrderNotification{
				Event:     models.EventStatusUpdated,
				OrderID:   "ORDER123",
				Status:    models.StatusConfirmed,
				Timestamp: ts,
			},
			want: []string{"ORDER123", "confirmed"},
		},
		{
			name: "delivered",
			notification: models.OrderNotification{
				Event:     models.EventStatusUpdated,
				OrderID:   "ORDER123",
				Status:    models.StatusDelivered,
				Timestamp: ts,
			},
			want: []string{"ORDER123", "delivered"},
		},
		{
			name: "unknown status falls back to generic message",
			notification: models.OrderNotification{
				Event:     models.EventStatusUpdated,
				OrderID:   "ORDER123",
				Status:    "archived",
				Timestamp: ts,
			},
			want: []string{"ORDER123", "archived"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatNotification(&tt.notification)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("expected %q in %q", want, got)
				}
			}
		})
	}
}
