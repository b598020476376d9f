// Package store provides durable per-user theme preference storage with
// validation against the theme catalog and a read-side default fallback.
package store

import (
	"context"

	"github.com/egyptofrance/naebak-theme-service/catalog"
	svcerrors "github.com/egyptofrance/naebak-theme-service/internal/errors"
)

// Store mediates access to the preference backend. It holds no mutable
// in-process state; correctness relies on the backend's atomic per-key
// set/get semantics.
type Store struct {
	driver  Driver
	catalog *catalog.Catalog
}

// New creates a new Store. The driver may be nil when the backend was
// unreachable at startup; every store operation then fails with
// BACKEND_UNAVAILABLE while catalog-only endpoints keep working.
func New(driver Driver, themeCatalog *catalog.Catalog) *Store {
	return &Store{
		driver:  driver,
		catalog: themeCatalog,
	}
}

// Catalog returns the theme catalog the store validates against.
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

// Available reports whether a backend connection was established.
func (s *Store) Available() bool {
	return s.driver != nil
}

func (s *Store) Close() error {
	if s.driver == nil {
		return nil
	}
	return s.driver.Close()
}

// GetPreference returns the stored preference for a user, or a synthesized
// default record when none exists. The synthesized record is not written
// back; defaulting is read-side only.
func (s *Store) GetPreference(ctx context.Context, userID string) (*UserThemePreference, error) {
	if s.driver == nil {
		return nil, svcerrors.BackendUnavailable("theme backend is not connected")
	}

	payload, err := s.driver.GetUserTheme(ctx, userID)
	if err != nil {
		return nil, svcerrors.Wrap(err, svcerrors.ErrCodeBackendUnavailable, "failed to read theme preference")
	}
	if payload == nil {
		preference := newPreference(userID, s.catalog.DefaultThemeName())
		preference.IsDefault = true
		return preference, nil
	}

	// Stored records are returned verbatim, with no re-validation against
	// the current catalog.
	return decodePreference(userID, payload)
}

// SetPreference validates themeName against the catalog and writes a fresh
// record for the user, overwriting any prior value. Last write wins; no
// optimistic concurrency is enforced.
func (s *Store) SetPreference(ctx context.Context, userID, themeName string) (*UserThemePreference, error) {
	if s.driver == nil {
		return nil, svcerrors.BackendUnavailable("theme backend is not connected")
	}
	if themeName == "" {
		return nil, svcerrors.MissingField("theme_name")
	}
	if !s.catalog.IsValidTheme(themeName) {
		return nil, svcerrors.InvalidTheme(themeName)
	}

	preference := newPreference(userID, themeName)
	payload, err := preference.Encode()
	if err != nil {
		return nil, svcerrors.Wrap(err, svcerrors.ErrCodeCorruptRecord, "failed to encode theme preference")
	}
	if err := s.driver.SetUserTheme(ctx, userID, payload); err != nil {
		return nil, svcerrors.Wrap(err, svcerrors.ErrCodeBackendUnavailable, "failed to write theme preference")
	}
	return preference, nil
}

// BackendHealth reports the backend status for the health endpoint.
type BackendHealth struct {
	Status       string
	StoredThemes int64
}

// Health never fails; backend problems are reported in the status string
// ("connected", "disconnected", or "error: <detail>").
func (s *Store) Health(ctx context.Context) *BackendHealth {
	if s.driver == nil {
		return &BackendHealth{Status: "disconnected"}
	}
	if err := s.driver.Ping(ctx); err != nil {
		return &BackendHealth{Status: "error: " + err.Error()}
	}
	count, err := s.driver.CountUserThemes(ctx)
	if err != nil {
		return &BackendHealth{Status: "error: " + err.Error()}
	}
	return &BackendHealth{Status: "connected", StoredThemes: count}
}
