// Package catalog defines the closed set of valid UI themes, the system
// default, and the derived presentation metadata for each theme. The catalog
// is immutable after construction and performs no I/O.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	svcerrors "github.com/egyptofrance/naebak-theme-service/internal/errors"
)

// ThemeSummary describes one catalog entry for theme discovery.
type ThemeSummary struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	PreviewURL  string `json:"preview_url"`
	IsDefault   bool   `json:"is_default"`
}

// Colors is the color palette of a theme.
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
}

// Typography is the font configuration of a theme.
type Typography struct {
	FontFamily       string `json:"font_family"`
	FontSizeBase     string `json:"font_size_base"`
	LineHeight       string `json:"line_height"`
	FontWeightNormal string `json:"font_weight_normal"`
	FontWeightBold   string `json:"font_weight_bold"`
}

// Components is the component styling of a theme.
type Components struct {
	ButtonRadius  string `json:"button_radius"`
	CardElevation string `json:"card_elevation"`
	InputBorder   string `json:"input_border"`
	NavbarHeight  string `json:"navbar_height"`
}

// Accessibility lists the accessibility attributes of a theme.
type Accessibility struct {
	ContrastRatio         string `json:"contrast_ratio"`
	FocusIndicators       bool   `json:"focus_indicators"`
	ReducedMotion         bool   `json:"reduced_motion"`
	ScreenReaderOptimized bool   `json:"screen_reader_optimized"`
}

// ThemeDescriptor is the full derived metadata for a single theme.
// All fields are a pure function of the theme name.
type ThemeDescriptor struct {
	Name          string        `json:"theme_name"`
	DisplayName   string        `json:"display_name"`
	Description   string        `json:"description"`
	Colors        Colors        `json:"colors"`
	Typography    Typography    `json:"typography"`
	Components    Components    `json:"components"`
	Accessibility Accessibility `json:"accessibility"`
}

// descriptions maps known theme names to their human-readable descriptions.
var descriptions = map[string]string{
	"light":          "Clean and bright theme optimized for daytime use",
	"dark":           "Dark theme designed for low-light environments and reduced eye strain",
	"high_contrast":  "High contrast theme for improved accessibility",
	"naebak_classic": "Official Naebak platform theme with brand colors",
	"government":     "Formal government styling for official communications",
}

// Catalog is an immutable registry of known theme names.
type Catalog struct {
	names       []string
	nameSet     map[string]struct{}
	defaultName string
}

// New creates a catalog from the configured theme names and default theme.
// Order of names is preserved for listing.
func New(names []string, defaultName string) *Catalog {
	nameSet := make(map[string]struct{}, len(names))
	ordered := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := nameSet[name]; ok {
			continue
		}
		nameSet[name] = struct{}{}
		ordered = append(ordered, name)
	}
	return &Catalog{
		names:       ordered,
		nameSet:     nameSet,
		defaultName: defaultName,
	}
}

// Names returns the configured theme names in order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// DefaultThemeName returns the configured default theme.
func (c *Catalog) DefaultThemeName() string {
	return c.defaultName
}

// IsValidTheme reports whether name is a member of the configured set.
func (c *Catalog) IsValidTheme(name string) bool {
	_, ok := c.nameSet[name]
	return ok
}

// Description returns the static description for a theme name, or a generic
// fallback for unrecognized names. Unknown names are not an error here.
func (c *Catalog) Description(name string) string {
	if description, ok := descriptions[name]; ok {
		return description
	}
	return "Custom theme variant"
}

// ListThemes returns a summary for every configured theme in configured order.
func (c *Catalog) ListThemes() []ThemeSummary {
	summaries := make([]ThemeSummary, 0, len(c.names))
	for _, name := range c.names {
		summaries = append(summaries, ThemeSummary{
			Name:        name,
			DisplayName: displayName(name),
			Description: c.Description(name),
			PreviewURL:  "/api/themes/preview/" + name,
			IsDefault:   name == c.defaultName,
		})
	}
	return summaries
}

// DescribeTheme returns the derived metadata for a configured theme.
// Fails with a THEME_NOT_FOUND error for names outside the configured set.
func (c *Catalog) DescribeTheme(name string) (*ThemeDescriptor, error) {
	if !c.IsValidTheme(name) {
		return nil, svcerrors.ThemeNotFound(name)
	}
	return &ThemeDescriptor{
		Name:          name,
		DisplayName:   displayName(name),
		Description:   c.Description(name),
		Colors:        themeColors(name),
		Typography:    themeTypography(),
		Components:    themeComponents(),
		Accessibility: themeAccessibility(name),
	}, nil
}

// displayName derives the human-readable form of a theme name.
func displayName(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

// themeColors returns the palette for a theme. Only the light theme has a
// dedicated palette; every other theme shares the dark-leaning one.
func themeColors(name string) Colors {
	if name == "light" {
		return Colors{
			Primary:    "#1976d2",
			Secondary:  "#dc004e",
			Background: "#ffffff",
			Surface:    "#f5f5f5",
		}
	}
	return Colors{
		Primary:    "#90caf9",
		Secondary:  "#f48fb1",
		Background: "#121212",
		Surface:    "#1e1e1e",
	}
}

func themeTypography() Typography {
	return Typography{
		FontFamily:       "Roboto, Arial, sans-serif",
		FontSizeBase:     "16px",
		LineHeight:       "1.5",
		FontWeightNormal: "400",
		FontWeightBold:   "700",
	}
}

func themeComponents() Components {
	return Components{
		ButtonRadius:  "4px",
		CardElevation: "2px",
		InputBorder:   "1px solid #ccc",
		NavbarHeight:  "64px",
	}
}

func themeAccessibility(name string) Accessibility {
	contrastRatio := "4.5:1"
	if name == "high_contrast" {
		contrastRatio = "7:1"
	}
	return Accessibility{
		ContrastRatio:         contrastRatio,
		FocusIndicators:       true,
		ReducedMotion:         false,
		ScreenReaderOptimized: name == "high_contrast",
	}
}
