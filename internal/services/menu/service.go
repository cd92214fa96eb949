package menu

import (
	"context"

	"restaurant-ordering/internal/logger"
	"restaurant-ordering/internal/models"
)

// Service reads the menu catalog. The catalog is the authoritative, read-only
// set of purchasable items; the ordering core never writes to it.
type Service struct {
	store  Store
	logger *logger.Logger
}

// NewService creates a new menu service
func NewService(store Store, log *logger.Logger) *Service {
	return &Service{
		store:  store,
		logger: log,
	}
}

// ListMenu returns all menu items
func (s *Service) ListMenu(ctx context.Context, requestID string) ([]models.MenuItem, error) {
	items, err := s.store.ListMenuItems(ctx)
	if err != nil {
		s.logger.Error("db_query_failed", "Failed to query menu items", requestID, err, nil)
		return nil, err
	}

	if items == nil {
		items = []models.MenuItem{}
	}

	return items, nil
}
