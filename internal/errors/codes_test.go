package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceErrorFormat(t *testing.T) {
	err := InvalidTheme("neon")
	assert.Equal(t, "[INVALID_THEME] invalid theme name: neon", err.Error())

	cause := fmt.Errorf("unexpected end of JSON input")
	wrapped := CorruptRecord("u1", cause)
	assert.Contains(t, wrapped.Error(), "CORRUPT_RECORD")
	assert.Contains(t, wrapped.Error(), "unexpected end of JSON input")
	assert.Equal(t, cause, wrapped.Unwrap())
}

func TestIsCode(t *testing.T) {
	assert.True(t, IsCode(BackendUnavailable("down"), ErrCodeBackendUnavailable))
	assert.False(t, IsCode(BackendUnavailable("down"), ErrCodeInvalidTheme))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrCodeInvalidTheme))
	assert.False(t, IsCode(nil, ErrCodeInvalidTheme))
}

func TestGetCodeFromError(t *testing.T) {
	assert.Equal(t, ErrCodeMissingField, GetCodeFromError(MissingField("theme_name"), ErrCodeBackendUnavailable))
	assert.Equal(t, ErrCodeBackendUnavailable, GetCodeFromError(fmt.Errorf("plain"), ErrCodeBackendUnavailable))
}
