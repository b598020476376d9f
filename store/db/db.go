// Package db provides the backend driver factory.
package db

import (
	"github.com/pkg/errors"

	"github.com/egyptofrance/naebak-theme-service/internal/profile"
	"github.com/egyptofrance/naebak-theme-service/store"
	"github.com/egyptofrance/naebak-theme-service/store/db/redis"
	"github.com/egyptofrance/naebak-theme-service/store/db/sqlite"
)

// NewDriver creates a new backend driver based on profile.
//
// Redis is the production backend. SQLite is an embedded alternative for
// development and testing where no Redis instance is available.
func NewDriver(serverProfile *profile.Profile) (store.Driver, error) {
	var driver store.Driver
	var err error

	switch serverProfile.Driver {
	case "redis":
		driver, err = redis.NewDB(serverProfile)
	case "sqlite":
		driver, err = sqlite.NewDB(serverProfile)
	default:
		return nil, errors.Errorf("unknown backend driver %q: only 'redis' and 'sqlite' are supported", serverProfile.Driver)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create backend driver")
	}
	return driver, nil
}
