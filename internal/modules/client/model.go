package client

import "time"

// Collection is the local-store key for clients.
const Collection = "clients"

// Client is a customer record, keyed by email. Clients are created lazily
// the first time an email places an order or subscribes.
type Client struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Comuna    string    `json:"comuna,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
