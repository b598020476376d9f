package store

import (
	"encoding/json"
	"time"

	svcerrors "github.com/egyptofrance/naebak-theme-service/internal/errors"
)

// UserThemePreference is the persisted association of a user to a theme.
//
// ThemeName was valid against the catalog at the time the record was written;
// it is returned verbatim on read even if the catalog changed since.
// IsDefault is set only on synthesized fallback records and is never persisted.
type UserThemePreference struct {
	UserID      string `json:"user_id"`
	ThemeName   string `json:"theme_name"`
	LastUpdated string `json:"last_updated"`
	IsDefault   bool   `json:"is_default,omitempty"`
}

// newPreference constructs a fresh record stamped with the current UTC time.
func newPreference(userID, themeName string) *UserThemePreference {
	return &UserThemePreference{
		UserID:      userID,
		ThemeName:   themeName,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}
}

// Encode serializes the record for backend storage.
func (p *UserThemePreference) Encode() ([]byte, error) {
	return json.Marshal(p)
}

// decodePreference deserializes a stored record. A payload that fails to
// decode is a corrupt record, not an absent one.
func decodePreference(userID string, payload []byte) (*UserThemePreference, error) {
	preference := &UserThemePreference{}
	if err := json.Unmarshal(payload, preference); err != nil {
		return nil, svcerrors.CorruptRecord(userID, err)
	}
	return preference, nil
}
