package store

import (
	"context"
)

// Driver is an interface for the preference backend.
// It contains all methods a backend implementation should provide.
type Driver interface {
	// Ping verifies the backend connection is alive.
	Ping(ctx context.Context) error

	// GetUserTheme returns the serialized preference record for a user.
	// Returns (nil, nil) when no record exists.
	GetUserTheme(ctx context.Context, userID string) ([]byte, error)

	// SetUserTheme writes the serialized preference record for a user,
	// unconditionally overwriting any prior value.
	SetUserTheme(ctx context.Context, userID string, payload []byte) error

	// CountUserThemes returns the number of stored preference records.
	CountUserThemes(ctx context.Context) (int64, error)

	Close() error
}
