package subscription

import "time"

// Local-store keys.
const (
	PackCollection = "subscription_packs"
	Collection     = "subscriptions"
)

// StatusActive is the status every new subscription starts in. There are no
// automatic transitions.
const StatusActive = "active"

// Pack is a named subscription tier a client can enroll in.
type Pack struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PackPatch is a partial update; nil fields are left untouched.
type PackPatch struct {
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}

// Subscription enrolls a client in a pack.
type Subscription struct {
	ID        int64     `json:"id"`
	ClientID  int64     `json:"client_id"`
	PackID    int64     `json:"pack_id"`
	Status    string    `json:"status"`
	StartDate time.Time `json:"start_date"`
	CreatedAt time.Time `json:"created_at"`
}

// Subscriber is the admin view of a subscription, joined with client and
// pack details at read time.
type Subscriber struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Plan      string    `json:"plan"`
	StartDate time.Time `json:"start_date"`
	Status    string    `json:"status"`
}
