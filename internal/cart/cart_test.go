package cart

import (
	"testing"

	"restaurant-ordering/internal/models"
)

func testCatalog() []models.MenuItem {
	return []models.MenuItem{
		{ID: "1", Name: "Margherita Pizza", Price: 12.99, Category: models.CategoryMains},
		{ID: "2", Name: "Garlic Bread", Price: 4.50, Category: models.CategoryAppetizers},
		{ID: "3", Name: "Tiramisu", Price: 6.25, Category: models.CategoryDesserts},
	}
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	c := New(testCatalog())

	c.AddItem("1")
	c.AddItem("1")
	c.AddItem("2")

	lines := c.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Item.ID != "1" || lines[0].Quantity != 2 {
		t.Errorf("expected line for item 1 with quantity 2, got %+v", lines[0])
	}
	if lines[1].Item.ID != "2" || lines[1].Quantity != 1 {
		t.Errorf("expected line for item 2 with quantity 1, got %+v", lines[1])
	}
}

func TestAddItemNeverDuplicatesLines(t *testing.T) {
	c := New(testCatalog())

	for i := 0; i < 10; i++ {
		c.AddItem("1")
		c.AddItem("2")
	}

	seen := make(map[string]bool)
	for _, line := range c.Lines() {
		if seen[line.Item.ID] {
			t.Fatalf("found two lines for item %s", line.Item.ID)
		}
		seen[line.Item.ID] = true
	}
}

func TestAddItemIgnoresUnknownID(t *testing.T) {
	c := New(testCatalog())

	c.AddItem("no-such-item")

	if !c.Empty() {
		t.Errorf("expected empty cart after adding unknown item, got %d lines", len(c.Lines()))
	}
}

func TestChangeQuantity(t *testing.T) {
	tests := []struct {
		name         string
		start        int
		delta        int
		wantQuantity int
		wantRemoved  bool
	}{
		{name: "increase", start: 1, delta: 2, wantQuantity: 3},
		{name: "decrease", start: 2, delta: -1, wantQuantity: 1},
		{name: "decrease to zero removes line", start: 1, delta: -1, wantRemoved: true},
		{name: "decrease below zero removes line", start: 2, delta: -5, wantRemoved: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(testCatalog())
			for i := 0; i < tt.start; i++ {
				c.AddItem("1")
			}

			c.ChangeQuantity("1", tt.delta)

			lines := c.Lines()
			if tt.wantRemoved {
				if len(lines) != 0 {
					t.Fatalf("expected line removed, got %+v", lines)
				}
				return
			}
			if len(lines) != 1 || lines[0].Quantity != tt.wantQuantity {
				t.Errorf("expected quantity %d, got %+v", tt.wantQuantity, lines)
			}
		})
	}
}

func TestChangeQuantityIgnoresUnknownID(t *testing.T) {
	c := New(testCatalog())
	c.AddItem("1")

	c.ChangeQuantity("no-such-item", 5)

	lines := c.Lines()
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Errorf("cart changed after ChangeQuantity on unknown item: %+v", lines)
	}
}

func TestRemoveItem(t *testing.T) {
	c := New(testCatalog())
	c.AddItem("1")
	c.AddItem("2")

	c.RemoveItem("1")

	lines := c.Lines()
	if len(lines) != 1 || lines[0].Item.ID != "2" {
		t.Errorf("expected only item 2 to remain, got %+v", lines)
	}

	// Removing an absent item is a no-op
	c.RemoveItem("1")
	if len(c.Lines()) != 1 {
		t.Errorf("expected cart unchanged after removing absent item")
	}
}

func TestClear(t *testing.T) {
	c := New(testCatalog())
	c.AddItem("1")
	c.AddItem("2")

	c.Clear()

	if !c.Empty() {
		t.Errorf("expected empty cart after Clear, got %d lines", len(c.Lines()))
	}

	count, total := c.Aggregate()
	if count != 0 || total != 0 {
		t.Errorf("expected zero aggregate after Clear, got count=%d total=%v", count, total)
	}
}

func TestAggregate(t *testing.T) {
	c := New(testCatalog())
	c.AddItem("1") // 12.99
	c.AddItem("1") // 12.99
	c.AddItem("2") // 4.50
	c.AddItem("3") // 6.25

	count, total := c.Aggregate()

	if count != 4 {
		t.Errorf("expected item count 4, got %d", count)
	}
	if total != 36.73 {
		t.Errorf("expected total 36.73, got %v", total)
	}
}

func TestAggregateCountMatchesQuantitySum(t *testing.T) {
	c := New(testCatalog())
	c.AddItem("1")
	c.AddItem("2")
	c.ChangeQuantity("1", 4)
	c.ChangeQuantity("2", 2)

	want := 0
	for _, line := range c.Lines() {
		want += line.Quantity
	}

	count, _ := c.Aggregate()
	if count != want {
		t.Errorf("expected item count %d, got %d", want, count)
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	c := New(testCatalog())
	c.AddItem("1")

	lines := c.Lines()
	lines[0].Quantity = 99

	if got := c.Lines()[0].Quantity; got != 1 {
		t.Errorf("mutating the returned slice changed the cart: quantity=%d", got)
	}
}
