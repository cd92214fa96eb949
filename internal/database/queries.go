package database

// Order queries
const (
	InsertOrderSQL = `
		INSERT INTO orders (order_id, customer_name, customer_email, customer_phone, customer_address,
			   items, total, status, notes, order_date, estimated_delivery)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	GetOrderByIDSQL = `
		SELECT order_id, customer_name, customer_email, customer_phone, customer_address,
			   items, total, status, notes, order_date, estimated_delivery
		FROM orders WHERE order_id = $1`

	UpdateOrderStatusSQL = `
		UPDATE orders SET status = $1, updated_at = NOW()
		WHERE order_id = $2
		RETURNING order_id, customer_name, customer_email, customer_phone, customer_address,
			   items, total, status, notes, order_date, estimated_delivery`

	ListOrdersSQL = `
		SELECT order_id, customer_name, customer_email, customer_phone, customer_address,
			   items, total, status, notes, order_date, estimated_delivery
		FROM orders
		WHERE ($1 = '' OR status = $1)
		ORDER BY order_date DESC
		LIMIT $2 OFFSET $3`

	CountOrdersSQL = `
		SELECT COUNT(*) FROM orders WHERE ($1 = '' OR status = $1)`
)

// Menu queries
const (
	ListMenuItemsSQL = `
		SELECT id, name, description, price, category, image, available, created_at
		FROM menu_items
		ORDER BY category, name`
)
