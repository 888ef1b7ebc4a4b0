package order

import "time"

// Collection is the local-store key for orders.
const Collection = "orders"

// Status is the lifecycle state of an order. The only driven transition is
// pending -> completed via the admin "process" action; "paid" is set when a
// payment is confirmed out of band.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCompleted Status = "completed"
)

// Order is a customer purchase. Amounts are tax-inclusive integer CLP.
type Order struct {
	ID         int64     `json:"id"`
	ClientID   int64     `json:"client_id"`
	ClientName string    `json:"client_name,omitempty"`
	Number     string    `json:"number"`
	Subtotal   int64     `json:"subtotal"`
	Shipping   int64     `json:"shipping"`
	Total      int64     `json:"total"`
	Address    string    `json:"address,omitempty"`
	Comuna     string    `json:"comuna,omitempty"`
	Status     Status    `json:"status"`
	Items      []*Item   `json:"items,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Item is a single line within an order. Product name and unit price are
// snapshots taken at checkout.
type Item struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"order_id"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	Subtotal    int64  `json:"subtotal"`
}

// CheckoutItem describes one cart line handed to order creation.
type CheckoutItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest is the payload for materializing a cart into an order.
type CreateOrderRequest struct {
	Email   string         `json:"email"`
	Name    string         `json:"name"`
	Phone   string         `json:"phone"`
	Address string         `json:"address"`
	Comuna  string         `json:"comuna"`
	Total   int64          `json:"total"`
	Items   []CheckoutItem `json:"items"`
}
