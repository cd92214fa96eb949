package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"restaurant-ordering/internal/apperrors"
	"restaurant-ordering/internal/database"
	"restaurant-ordering/internal/models"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

// PostgresStore persists orders in PostgreSQL. Line items are stored as a
// JSONB document on the order row, so an order is inserted atomically:
// partial writes are never observable.
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates an order store backed by the given database
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// InsertOrder inserts a new order. The order_id unique constraint is the
// authority on identifier uniqueness; a collision surfaces as ErrOrderConflict.
func (s *PostgresStore) InsertOrder(ctx context.Context, order *models.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}

	var notes *string
	if order.Notes != "" {
		notes = &order.Notes
	}

	_, err = s.db.Exec(ctx, database.InsertOrderSQL,
		order.OrderID,
		order.Customer.Name,
		order.Customer.Email,
		order.Customer.Phone,
		order.Customer.Address,
		items,
		order.Total,
		order.Status,
		notes,
		order.OrderDate,
		order.EstimatedDelivery,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrOrderConflict
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

// GetOrderByID returns the order with the given identifier
func (s *PostgresStore) GetOrderByID(ctx context.Context, orderID string) (*models.Order, error) {
	row := s.db.QueryRow(ctx, database.GetOrderByIDSQL, orderID)

	order, err := scanOrder(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	return order, nil
}

// UpdateOrderStatus sets the order's status in a single atomic
// read-modify-write and returns the updated order.
func (s *PostgresStore) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {
	row := s.db.QueryRow(ctx, database.UpdateOrderStatusSQL, status, orderID)

	order, err := scanOrder(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return order, nil
}

// ListOrders returns a page of orders sorted by order date descending, plus
// the total count matching the filter. An empty status matches all orders.
func (s *PostgresStore) ListOrders(ctx context.Context, status string, limit, offset int) ([]models.Order, int, error) {
	rows, err := s.db.Query(ctx, database.ListOrdersSQL, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		order, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate order rows: %w", err)
	}

	var total int
	if err := s.db.QueryRow(ctx, database.CountOrdersSQL, status).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	return orders, total, nil
}

// Ping tests the store connection
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// scanOrder scans one order row using the shared column order
func scanOrder(scan func(dest ...any) error) (*models.Order, error) {
	var order models.Order
	var items []byte
	var notes *string

	err := scan(
		&order.OrderID,
		&order.Customer.Name,
		&order.Customer.Email,
		&order.Customer.Phone,
		&order.Customer.Address,
		&items,
		&order.Total,
		&order.Status,
		&notes,
		&order.OrderDate,
		&order.EstimatedDelivery,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
	}
	if notes != nil {
		order.Notes = *notes
	}

	return &order, nil
}
