package producer

import "time"

// Collection is the local-store key for producers.
const Collection = "producers"

// Producer is an artisan supplier whose goods are sold in the store.
type Producer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	Specialty string    `json:"specialty,omitempty"`
	History   string    `json:"history,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Patch is a partial update; nil fields are left untouched.
type Patch struct {
	Name      *string `json:"name"`
	Location  *string `json:"location"`
	Specialty *string `json:"specialty"`
	History   *string `json:"history"`
	Active    *bool   `json:"active"`
}
