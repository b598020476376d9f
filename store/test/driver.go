// Package test provides an in-memory backend driver for tests.
package test

import (
	"context"
	"sync"
	"testing"

	"github.com/egyptofrance/naebak-theme-service/catalog"
	"github.com/egyptofrance/naebak-theme-service/store"
)

// Driver is an in-memory store.Driver with optional failure injection.
type Driver struct {
	mu      sync.RWMutex
	themes  map[string][]byte
	failErr error
}

// NewDriver creates an empty in-memory driver.
func NewDriver() *Driver {
	return &Driver{
		themes: make(map[string][]byte),
	}
}

// Fail makes every subsequent driver call return err. Pass nil to recover.
func (d *Driver) Fail(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failErr = err
}

func (d *Driver) Ping(_ context.Context) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.failErr
}

func (d *Driver) GetUserTheme(_ context.Context, userID string) ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.failErr != nil {
		return nil, d.failErr
	}
	payload, ok := d.themes[userID]
	if !ok {
		return nil, nil
	}
	copied := make([]byte, len(payload))
	copy(copied, payload)
	return copied, nil
}

func (d *Driver) SetUserTheme(_ context.Context, userID string, payload []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.failErr != nil {
		return d.failErr
	}
	copied := make([]byte, len(payload))
	copy(copied, payload)
	d.themes[userID] = copied
	return nil
}

func (d *Driver) CountUserThemes(_ context.Context) (int64, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.failErr != nil {
		return 0, d.failErr
	}
	return int64(len(d.themes)), nil
}

func (d *Driver) Close() error {
	return nil
}

// NewTestingStore creates a store backed by an in-memory driver and the
// standard four-theme catalog with "light" as default.
func NewTestingStore(t *testing.T) (*store.Store, *Driver) {
	t.Helper()
	driver := NewDriver()
	themeCatalog := catalog.New([]string{"light", "dark", "blue", "green"}, "light")
	testingStore := store.New(driver, themeCatalog)
	t.Cleanup(func() {
		_ = testingStore.Close()
	})
	return testingStore, driver
}
