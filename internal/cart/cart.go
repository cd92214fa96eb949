package cart

import "restaurant-ordering/internal/models"

// Line is a menu item snapshot plus a quantity. The snapshot is a full field
// copy; later catalog changes do not affect lines already in the cart.
type Line struct {
	Item     models.MenuItem
	Quantity int
}

// Subtotal returns price x quantity for the line at full precision.
func (l Line) Subtotal() float64 {
	return l.Item.Price * float64(l.Quantity)
}

// Cart is the per-session collection of selected menu items. It is pure
// in-memory state owned by one session: no persistence, no locking.
type Cart struct {
	catalog map[string]models.MenuItem
	lines   []Line
}

// New creates an empty cart over a catalog snapshot.
func New(catalog []models.MenuItem) *Cart {
	byID := make(map[string]models.MenuItem, len(catalog))
	for _, item := range catalog {
		byID[item.ID] = item
	}
	return &Cart{catalog: byID}
}

// AddItem adds one unit of the identified menu item. Unknown identifiers are
// ignored. An existing line is incremented; otherwise a new line with
// quantity 1 is appended.
func (c *Cart) AddItem(menuItemID string) {
	item, ok := c.catalog[menuItemID]
	if !ok {
		return
	}

	if line := c.find(menuItemID); line != nil {
		line.Quantity++
		return
	}

	c.lines = append(c.lines, Line{Item: item, Quantity: 1})
}

// ChangeQuantity adds delta to the matching line's quantity. A resulting
// quantity of zero or below removes the line. Unknown identifiers are ignored.
func (c *Cart) ChangeQuantity(menuItemID string, delta int) {
	line := c.find(menuItemID)
	if line == nil {
		return
	}

	line.Quantity += delta
	if line.Quantity <= 0 {
		c.RemoveItem(menuItemID)
	}
}

// RemoveItem deletes the matching line if present.
func (c *Cart) RemoveItem(menuItemID string) {
	for i, line := range c.lines {
		if line.Item.ID == menuItemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Confirmation prompts belong to the presentation
// layer, not here.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Aggregate returns the total item count and the cart total at display
// precision. Line amounts are kept at full precision internally so repeated
// recomputation does not compound rounding error.
func (c *Cart) Aggregate() (itemCount int, total float64) {
	for _, line := range c.lines {
		itemCount += line.Quantity
		total += line.Subtotal()
	}
	return itemCount, models.RoundPrice(total)
}

func (c *Cart) find(menuItemID string) *Line {
	for i := range c.lines {
		if c.lines[i].Item.ID == menuItemID {
			return &c.lines[i]
		}
	}
	return nil
}
