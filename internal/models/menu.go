package models

import "time"

// MenuCategory represents a menu item category
type MenuCategory string

const (
	CategoryAppetizers MenuCategory = "appetizers"
	CategoryMains      MenuCategory = "mains"
	CategoryDesserts   MenuCategory = "desserts"
	CategoryBeverages  MenuCategory = "beverages"
)

// MenuItem represents a purchasable item from the catalog. The catalog is
// read-only for the ordering core; orders keep snapshots, never references.
type MenuItem struct {
	ID          string       `json:"_id" db:"id"`
	Name        string       `json:"name" db:"name"`
	Description string       `json:"description" db:"description"`
	Price       float64      `json:"price" db:"price"`
	Category    MenuCategory `json:"category" db:"category"`
	Image       string       `json:"image" db:"image"`
	Available   bool         `json:"available" db:"available"`
	CreatedAt   time.Time    `json:"createdAt,omitempty" db:"created_at"`
}
