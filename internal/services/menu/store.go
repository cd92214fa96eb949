package menu

import (
	"context"
	"fmt"

	"restaurant-ordering/internal/database"
	"restaurant-ordering/internal/models"
)

// Store is the read-only persistence contract for the menu catalog
type Store interface {
	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)
}

// PostgresStore reads menu items from PostgreSQL
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates a menu store backed by the given database
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// ListMenuItems returns all menu items ordered by category and name
func (s *PostgresStore) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := s.db.Query(ctx, database.ListMenuItemsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Category,
			&item.Image,
			&item.Available,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu items: %w", err)
	}

	return items, nil
}
