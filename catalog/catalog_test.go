package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svcerrors "github.com/egyptofrance/naebak-theme-service/internal/errors"
)

func newTestCatalog() *Catalog {
	return New([]string{"light", "dark", "blue", "green"}, "light")
}

func TestIsValidTheme(t *testing.T) {
	c := newTestCatalog()

	tests := []struct {
		name  string
		theme string
		want  bool
	}{
		{"configured theme", "light", true},
		{"another configured theme", "green", true},
		{"unknown theme", "neon", false},
		{"empty name", "", false},
		{"case sensitive", "Light", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsValidTheme(tt.theme))
		})
	}
}

func TestListThemes(t *testing.T) {
	c := newTestCatalog()
	summaries := c.ListThemes()

	require.Len(t, summaries, 4)

	defaultCount := 0
	for _, summary := range summaries {
		if summary.IsDefault {
			defaultCount++
		}
	}
	assert.Equal(t, 1, defaultCount, "exactly one theme should be the default")

	assert.Equal(t, "light", summaries[0].Name)
	assert.True(t, summaries[0].IsDefault)
	assert.Equal(t, "Light", summaries[0].DisplayName)
	assert.Equal(t, "/api/themes/preview/light", summaries[0].PreviewURL)

	assert.Equal(t, "dark", summaries[1].Name)
	assert.False(t, summaries[1].IsDefault)
}

func TestListThemesEmptyCatalog(t *testing.T) {
	c := New(nil, "light")
	assert.Empty(t, c.ListThemes())
}

func TestListThemesDisplayName(t *testing.T) {
	c := New([]string{"high_contrast", "naebak_classic"}, "high_contrast")
	summaries := c.ListThemes()

	require.Len(t, summaries, 2)
	assert.Equal(t, "High Contrast", summaries[0].DisplayName)
	assert.Equal(t, "Naebak Classic", summaries[1].DisplayName)
}

func TestDescribeThemeUnknown(t *testing.T) {
	c := newTestCatalog()

	descriptor, err := c.DescribeTheme("neon")
	require.Error(t, err)
	assert.Nil(t, descriptor)
	assert.True(t, svcerrors.IsCode(err, svcerrors.ErrCodeThemeNotFound))
}

func TestDescribeThemeColors(t *testing.T) {
	c := newTestCatalog()

	light, err := c.DescribeTheme("light")
	require.NoError(t, err)
	assert.Equal(t, "#1976d2", light.Colors.Primary)
	assert.Equal(t, "#ffffff", light.Colors.Background)

	dark, err := c.DescribeTheme("dark")
	require.NoError(t, err)
	assert.Equal(t, "#90caf9", dark.Colors.Primary)
	assert.Equal(t, "#121212", dark.Colors.Background)

	// every non-light theme shares the dark-leaning palette
	blue, err := c.DescribeTheme("blue")
	require.NoError(t, err)
	assert.Equal(t, dark.Colors, blue.Colors)
}

func TestDescribeThemeAccessibility(t *testing.T) {
	c := New([]string{"light", "high_contrast"}, "light")

	highContrast, err := c.DescribeTheme("high_contrast")
	require.NoError(t, err)
	assert.Equal(t, "7:1", highContrast.Accessibility.ContrastRatio)
	assert.True(t, highContrast.Accessibility.ScreenReaderOptimized)

	light, err := c.DescribeTheme("light")
	require.NoError(t, err)
	assert.Equal(t, "4.5:1", light.Accessibility.ContrastRatio)
	assert.False(t, light.Accessibility.ScreenReaderOptimized)
	assert.True(t, light.Accessibility.FocusIndicators)
	assert.False(t, light.Accessibility.ReducedMotion)
}

func TestDescribeThemeSharedMetadata(t *testing.T) {
	c := newTestCatalog()

	light, err := c.DescribeTheme("light")
	require.NoError(t, err)
	dark, err := c.DescribeTheme("dark")
	require.NoError(t, err)

	assert.Equal(t, light.Typography, dark.Typography)
	assert.Equal(t, light.Components, dark.Components)
	assert.Equal(t, "Roboto, Arial, sans-serif", light.Typography.FontFamily)
	assert.Equal(t, "4px", light.Components.ButtonRadius)
}

func TestDescription(t *testing.T) {
	c := newTestCatalog()

	assert.Equal(t, "Clean and bright theme optimized for daytime use", c.Description("light"))
	assert.Equal(t, "Custom theme variant", c.Description("blue"))
	assert.Equal(t, "Custom theme variant", c.Description("does_not_exist"))
}

func TestDefaultThemeName(t *testing.T) {
	assert.Equal(t, "light", newTestCatalog().DefaultThemeName())
}

func TestNewDeduplicatesNames(t *testing.T) {
	c := New([]string{"light", "dark", "light"}, "light")
	assert.Equal(t, []string{"light", "dark"}, c.Names())
}
