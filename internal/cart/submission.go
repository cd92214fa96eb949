package cart

import (
	"strings"
	"time"

	"restaurant-ordering/internal/apperrors"
	"restaurant-ordering/internal/models"
)

// BuildSubmission snapshots the cart plus customer fields into an immutable
// order submission. The total is recomputed from the lines, never taken from
// a cached aggregate, and the snapshot is a deep copy: mutating the cart
// afterwards does not affect the submission.
func BuildSubmission(customer models.Customer, c *Cart) (*models.OrderSubmission, error) {
	if c.Empty() {
		return nil, apperrors.ValidationError{Field: "items", Message: "cart is empty"}
	}

	if err := validateCustomer(customer); err != nil {
		return nil, err
	}

	lines := c.Lines()
	items := make([]models.OrderItem, 0, len(lines))
	total := 0.0
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ID:       line.Item.ID,
			Name:     line.Item.Name,
			Price:    line.Item.Price,
			Quantity: line.Quantity,
		})
		total += line.Subtotal()
	}

	return &models.OrderSubmission{
		Customer:  customer,
		Items:     items,
		Total:     models.RoundPrice(total),
		OrderDate: time.Now().UTC(),
	}, nil
}

func validateCustomer(c models.Customer) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", c.Name},
		{"email", c.Email},
		{"phone", c.Phone},
		{"address", c.Address},
	}

	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return apperrors.ValidationError{Field: "customer." + f.name, Message: "field is required"}
		}
	}
	return nil
}
