// Package sqlite implements the preference backend on an embedded SQLite
// database. Intended for development and testing; Redis is the production
// backend.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	// Import the cgo-free SQLite driver.
	_ "modernc.org/sqlite"

	"github.com/egyptofrance/naebak-theme-service/internal/profile"
	"github.com/egyptofrance/naebak-theme-service/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS user_theme (
	user_id TEXT PRIMARY KEY,
	payload TEXT NOT NULL,
	updated_ts BIGINT NOT NULL
)`

type DB struct {
	db      *sql.DB
	profile *profile.Profile
}

// NewDB opens the SQLite database at the configured DSN and ensures the
// preference table exists.
func NewDB(serverProfile *profile.Profile) (store.Driver, error) {
	if serverProfile == nil {
		return nil, errors.New("profile is nil")
	}

	db, err := sql.Open("sqlite", serverProfile.DSN)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database: %s", serverProfile.DSN)
	}

	// SQLite supports a single writer; serialize access through one connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create user_theme table")
	}

	return &DB{
		db:      db,
		profile: serverProfile,
	}, nil
}

func (d *DB) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DB) GetUserTheme(ctx context.Context, userID string) ([]byte, error) {
	var payload []byte
	err := d.db.QueryRowContext(ctx,
		"SELECT payload FROM user_theme WHERE user_id = ?", userID,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found, return nil without error
		}
		return nil, errors.Wrapf(err, "failed to get theme for user %s", userID)
	}
	return payload, nil
}

func (d *DB) SetUserTheme(ctx context.Context, userID string, payload []byte) error {
	stmt := `INSERT INTO user_theme (user_id, payload, updated_ts)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			payload = excluded.payload,
			updated_ts = excluded.updated_ts`
	if _, err := d.db.ExecContext(ctx, stmt, userID, payload, time.Now().Unix()); err != nil {
		return errors.Wrapf(err, "failed to set theme for user %s", userID)
	}
	return nil
}

func (d *DB) CountUserThemes(ctx context.Context) (int64, error) {
	var count int64
	if err := d.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM user_theme").Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count stored themes")
	}
	return count, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}
