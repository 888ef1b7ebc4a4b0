package settings

import (
	"context"
	"errors"
)

// Collection is the local-store key for configuration entries.
const Collection = "configuration"

// ErrNotFound is returned when a configuration key is unset.
var ErrNotFound = errors.New("setting not found")

// KnownKeys are the configuration entries the admin panel manages.
var KnownKeys = []string{
	"instagram_url",
	"facebook_url",
	"whatsapp",
	"email_contacto",
	"compra_minima",
	"envio_gratis_desde",
	"mp_public_key",
	"mp_access_token",
}

// Repository defines data access for the configuration key-value store.
type Repository interface {
	// Get returns the value for key, or ErrNotFound when unset.
	Get(ctx context.Context, key string) (string, error)

	// Set upserts the value for key: update when present, insert otherwise.
	// Keys are unique; Set never produces duplicate rows.
	Set(ctx context.Context, key, value string) error
}
