package models

import (
	"errors"
	"testing"

	"restaurant-ordering/internal/apperrors"
)

func validSubmission() OrderSubmission {
	return OrderSubmission{
		Customer: Customer{
			Name:    "Alice Smith",
			Email:   "alice@example.com",
			Phone:   "555-0100",
			Address: "12 Main St",
		},
		Items: []OrderItem{
			{ID: "1", Name: "Margherita Pizza", Price: 12.99, Quantity: 2},
		},
	}
}

func TestOrderSubmissionValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*OrderSubmission)
		wantField string
	}{
		{
			name:   "valid",
			mutate: func(s *OrderSubmission) {},
		},
		{
			name:      "missing customer name",
			mutate:    func(s *OrderSubmission) { s.Customer.Name = "" },
			wantField: "customer.name",
		},
		{
			name:      "whitespace customer email",
			mutate:    func(s *OrderSubmission) { s.Customer.Email = "  " },
			wantField: "customer.email",
		},
		{
			name:      "no items",
			mutate:    func(s *OrderSubmission) { s.Items = nil },
			wantField: "items",
		},
		{
			name:      "missing item id",
			mutate:    func(s *OrderSubmission) { s.Items[0].ID = "" },
			wantField: "items[0]._id",
		},
		{
			name:      "missing item name",
			mutate:    func(s *OrderSubmission) { s.Items[0].Name = "" },
			wantField: "items[0].name",
		},
		{
			name:      "zero quantity",
			mutate:    func(s *OrderSubmission) { s.Items[0].Quantity = 0 },
			wantField: "items[0].quantity",
		},
		{
			name:      "negative quantity",
			mutate:    func(s *OrderSubmission) { s.Items[0].Quantity = -2 },
			wantField: "items[0].quantity",
		},
		{
			name:      "negative price",
			mutate:    func(s *OrderSubmission) { s.Items[0].Price = -1 },
			wantField: "items[0].price",
		},
		{
			name: "duplicate item id",
			mutate: func(s *OrderSubmission) {
				s.Items = append(s.Items, OrderItem{ID: "1", Name: "Again", Price: 1, Quantity: 1})
			},
			wantField: "items[1]._id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(&sub)

			err := sub.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			var ve apperrors.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, ve.Field)
			}
		})
	}
}

func TestCalculateTotalIgnoresSubmittedTotal(t *testing.T) {
	sub := validSubmission()
	sub.Total = 999.99

	if got := sub.CalculateTotal(); got != 25.98 {
		t.Errorf("expected total 25.98, got %v", got)
	}
}

func TestCalculateTotalRounds(t *testing.T) {
	sub := OrderSubmission{
		Items: []OrderItem{
			{ID: "1", Name: "A", Price: 0.1, Quantity: 1},
			{ID: "2", Name: "B", Price: 0.2, Quantity: 1},
		},
	}

	if got := sub.CalculateTotal(); got != 0.3 {
		t.Errorf("expected total 0.3, got %v", got)
	}
}

func TestRoundPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{12.994, 12.99},
		{12.996, 13.00},
		{0, 0},
		{25.98, 25.98},
	}

	for _, tt := range tests {
		if got := RoundPrice(tt.in); got != tt.want {
			t.Errorf("RoundPrice(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "preparing", "ready", "delivered", "cancelled"} {
		if !ValidStatus(s) {
			t.Errorf("expected %q to be a valid status", s)
		}
	}

	for _, s := range []string{"", "Pending", "shipped", "done"} {
		if ValidStatus(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}
