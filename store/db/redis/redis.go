// Package redis implements the preference backend on Redis.
// One key per user keeps reads and writes atomic without any coordination
// beyond Redis's own per-key semantics.
package redis

import (
	"context"
	"time"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"

	"github.com/egyptofrance/naebak-theme-service/internal/profile"
	"github.com/egyptofrance/naebak-theme-service/store"
)

// keyPrefix namespaces preference keys inside the shared Redis database.
const keyPrefix = "user_theme:"

// scanBatchSize is the COUNT hint for SCAN when counting stored themes.
const scanBatchSize = 100

type DB struct {
	client  *goredis.Client
	profile *profile.Profile
}

// NewDB connects to Redis using the configured URL and verifies the
// connection before returning.
func NewDB(serverProfile *profile.Profile) (store.Driver, error) {
	if serverProfile == nil {
		return nil, errors.New("profile is nil")
	}

	opts, err := goredis.ParseURL(serverProfile.RedisURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse redis url %s", serverProfile.RedisURL)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := goredis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "failed to connect to redis")
	}

	return &DB{
		client:  client,
		profile: serverProfile,
	}, nil
}

func themeKey(userID string) string {
	return keyPrefix + userID
}

func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

func (d *DB) GetUserTheme(ctx context.Context, userID string) ([]byte, error) {
	payload, err := d.client.Get(ctx, themeKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil // Not found, return nil without error
		}
		return nil, errors.Wrapf(err, "failed to get theme for user %s", userID)
	}
	return payload, nil
}

func (d *DB) SetUserTheme(ctx context.Context, userID string, payload []byte) error {
	// Preference records do not expire.
	if err := d.client.Set(ctx, themeKey(userID), payload, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to set theme for user %s", userID)
	}
	return nil
}

func (d *DB) CountUserThemes(ctx context.Context) (int64, error) {
	var count int64
	iter := d.client.Scan(ctx, 0, keyPrefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0, errors.Wrap(err, "failed to scan stored themes")
	}
	return count, nil
}

func (d *DB) Close() error {
	return d.client.Close()
}
