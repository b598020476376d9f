package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egyptofrance/naebak-theme-service/catalog"
	svcerrors "github.com/egyptofrance/naebak-theme-service/internal/errors"
	"github.com/egyptofrance/naebak-theme-service/store"
	storetest "github.com/egyptofrance/naebak-theme-service/store/test"
)

func TestGetPreferenceDefault(t *testing.T) {
	ctx := context.Background()
	s, driver := storetest.NewTestingStore(t)

	preference, err := s.GetPreference(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, "u1", preference.UserID)
	assert.Equal(t, "light", preference.ThemeName)
	assert.True(t, preference.IsDefault)
	assert.NotEmpty(t, preference.LastUpdated)

	// Defaulting is read-side only: nothing is written back.
	count, err := driver.CountUserThemes(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSetPreferenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := storetest.NewTestingStore(t)

	written, err := s.SetPreference(ctx, "u1", "dark")
	require.NoError(t, err)
	assert.Equal(t, "u1", written.UserID)
	assert.Equal(t, "dark", written.ThemeName)
	assert.False(t, written.IsDefault)

	_, err = time.Parse(time.RFC3339, written.LastUpdated)
	require.NoError(t, err, "last_updated should be RFC 3339")

	read, err := s.GetPreference(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, written, read)
	assert.False(t, read.IsDefault)
}

func TestSetPreferenceLastWriteWins(t *testing.T) {
	ctx := context.Background()
	s, _ := storetest.NewTestingStore(t)

	_, err := s.SetPreference(ctx, "u1", "dark")
	require.NoError(t, err)
	_, err = s.SetPreference(ctx, "u1", "light")
	require.NoError(t, err)

	preference, err := s.GetPreference(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "light", preference.ThemeName)
	assert.False(t, preference.IsDefault)
}

func TestSetPreferenceInvalidTheme(t *testing.T) {
	ctx := context.Background()
	s, _ := storetest.NewTestingStore(t)

	_, err := s.SetPreference(ctx, "u1", "blue")
	require.NoError(t, err)

	_, err = s.SetPreference(ctx, "u1", "neon")
	require.Error(t, err)
	assert.True(t, svcerrors.IsCode(err, svcerrors.ErrCodeInvalidTheme))

	// Prior stored value is unchanged.
	preference, err := s.GetPreference(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "blue", preference.ThemeName)
}

func TestSetPreferenceMissingTheme(t *testing.T) {
	ctx := context.Background()
	s, _ := storetest.NewTestingStore(t)

	_, err := s.SetPreference(ctx, "u1", "")
	require.Error(t, err)
	assert.True(t, svcerrors.IsCode(err, svcerrors.ErrCodeMissingField))
}

func TestNilDriver(t *testing.T) {
	ctx := context.Background()
	themeCatalog := catalog.New([]string{"light", "dark"}, "light")
	s := store.New(nil, themeCatalog)

	assert.False(t, s.Available())

	_, err := s.GetPreference(ctx, "u1")
	assert.True(t, svcerrors.IsCode(err, svcerrors.ErrCodeBackendUnavailable))

	_, err = s.SetPreference(ctx, "u1", "dark")
	assert.True(t, svcerrors.IsCode(err, svcerrors.ErrCodeBackendUnavailable))

	// Unavailability is reported before input validation.
	_, err = s.SetPreference(ctx, "u1", "")
	assert.True(t, svcerrors.IsCode(err, svcerrors.ErrCodeBackendUnavailable))

	health := s.Health(ctx)
	assert.Equal(t, "disconnected", health.Status)
	assert.NoError(t, s.Close())
}

func TestDriverFailure(t *testing.T) {
	ctx := context.Background()
	s, driver := storetest.NewTestingStore(t)
	driver.Fail(errors.New("connection refused"))

	_, err := s.GetPreference(ctx, "u1")
	require.Error(t, err)
	assert.True(t, svcerrors.IsCode(err, svcerrors.ErrCodeBackendUnavailable))

	_, err = s.SetPreference(ctx, "u1", "dark")
	require.Error(t, err)
	assert.True(t, svcerrors.IsCode(err, svcerrors.ErrCodeBackendUnavailable))

	health := s.Health(ctx)
	assert.Equal(t, "error: connection refused", health.Status)
}

func TestCorruptRecord(t *testing.T) {
	ctx := context.Background()
	s, driver := storetest.NewTestingStore(t)

	require.NoError(t, driver.SetUserTheme(ctx, "u1", []byte("{not json")))

	_, err := s.GetPreference(ctx, "u1")
	require.Error(t, err)
	assert.True(t, svcerrors.IsCode(err, svcerrors.ErrCodeCorruptRecord))
}

func TestHealthConnected(t *testing.T) {
	ctx := context.Background()
	s, _ := storetest.NewTestingStore(t)

	_, err := s.SetPreference(ctx, "u1", "dark")
	require.NoError(t, err)
	_, err = s.SetPreference(ctx, "u2", "blue")
	require.NoError(t, err)

	health := s.Health(ctx)
	assert.Equal(t, "connected", health.Status)
	assert.Equal(t, int64(2), health.StoredThemes)
}
