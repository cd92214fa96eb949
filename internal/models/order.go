package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"restaurant-ordering/internal/apperrors"
)

// OrderStatus represents the lifecycle status of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// ValidStatus reports whether s is a member of the status enumeration.
func ValidStatus(s string) bool {
	switch OrderStatus(s) {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// Customer holds the contact fields supplied at checkout. All fields are
// required; no validation beyond presence is applied.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderItem is a line-item snapshot of a menu item at order time.
type OrderItem struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderSubmission is the payload sent by a client when placing an order.
type OrderSubmission struct {
	Customer  Customer    `json:"customer"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	OrderDate time.Time   `json:"orderDate"`
	Notes     string      `json:"notes,omitempty"`
}

// Order is the persisted order record. The identifier is assigned by the
// server, never by the client.
type Order struct {
	OrderID           string      `json:"orderId" db:"order_id"`
	Customer          Customer    `json:"customer"`
	Items             []OrderItem `json:"items"`
	Total             float64     `json:"total" db:"total"`
	Status            OrderStatus `json:"status" db:"status"`
	OrderDate         time.Time   `json:"orderDate" db:"order_date"`
	EstimatedDelivery time.Time   `json:"estimatedDelivery" db:"estimated_delivery"`
	Notes             string      `json:"notes,omitempty" db:"notes"`
}

// SubmitOrderResponse is the success envelope for POST /api/orders.
type SubmitOrderResponse struct {
	Message           string    `json:"message"`
	OrderID           string    `json:"orderId"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
	Order             *Order    `json:"order"`
}

// UpdateStatusRequest is the body of PUT /api/orders/{orderId}/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusResponse is the success envelope for status updates.
type UpdateStatusResponse struct {
	Message string `json:"message"`
	Order   *Order `json:"order"`
}

// OrderListResponse is a page of orders for GET /api/orders.
type OrderListResponse struct {
	Orders      []Order `json:"orders"`
	TotalPages  int     `json:"totalPages"`
	CurrentPage int     `json:"currentPage"`
	Total       int     `json:"total"`
}

// Validate checks the submission for required fields.
func (s *OrderSubmission) Validate() error {
	if err := validateCustomer(s.Customer); err != nil {
		return err
	}
	return ValidateItems(s.Items)
}

// CalculateTotal recomputes the order total from the line items at display
// precision. The submitted total field is never trusted.
func (s *OrderSubmission) CalculateTotal() float64 {
	return RoundPrice(ItemsTotal(s.Items))
}

// ItemsTotal sums price x quantity over the given lines at full precision.
func ItemsTotal(items []OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// RoundPrice rounds an amount to two decimal places.
func RoundPrice(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// ValidateItems validates order line items.
func ValidateItems(items []OrderItem) error {
	if len(items) == 0 {
		return apperrors.ValidationError{Field: "items", Message: "items cannot be empty"}
	}

	seen := make(map[string]bool, len(items))
	for i, item := range items {
		if err := validateItem(item, i); err != nil {
			return err
		}
		if seen[item.ID] {
			return apperrors.ValidationError{Field: itemField(i, "_id"), Message: "duplicate item identifier"}
		}
		seen[item.ID] = true
	}
	return nil
}

func validateCustomer(c Customer) error {
	fields := []struct {
		name  string
		value string
	}{
		{"customer.name", c.Name},
		{"customer.email", c.Email},
		{"customer.phone", c.Phone},
		{"customer.address", c.Address},
	}

	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return apperrors.ValidationError{Field: f.name, Message: "field is required"}
		}
	}
	return nil
}

func validateItem(item OrderItem, index int) error {
	if strings.TrimSpace(item.ID) == "" {
		return apperrors.ValidationError{Field: itemField(index, "_id"), Message: "item id is required"}
	}
	if strings.TrimSpace(item.Name) == "" {
		return apperrors.ValidationError{Field: itemField(index, "name"), Message: "item name is required"}
	}
	if item.Quantity <= 0 {
		return apperrors.ValidationError{Field: itemField(index, "quantity"), Message: "item quantity must be greater than 0"}
	}
	if item.Price < 0 {
		return apperrors.ValidationError{Field: itemField(index, "price"), Message: "item price must not be negative"}
	}
	return nil
}

func itemField(index int, name string) string {
	return fmt.Sprintf("items[%d].%s", index, name)
}
