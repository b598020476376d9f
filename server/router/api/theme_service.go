// Package api contains the HTTP handlers for the theme service.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/egyptofrance/naebak-theme-service/catalog"
	svcerrors "github.com/egyptofrance/naebak-theme-service/internal/errors"
	"github.com/egyptofrance/naebak-theme-service/internal/observability"
	"github.com/egyptofrance/naebak-theme-service/internal/profile"
	"github.com/egyptofrance/naebak-theme-service/store"
)

const serviceName = "naebak-theme-service"

// ThemeService bundles the dependencies of the HTTP handlers.
type ThemeService struct {
	Profile *profile.Profile
	Store   *store.Store
	Catalog *catalog.Catalog
	Logger  *slog.Logger
}

func NewThemeService(serverProfile *profile.Profile, themeStore *store.Store, themeCatalog *catalog.Catalog, logger *slog.Logger) *ThemeService {
	return &ThemeService{
		Profile: serverProfile,
		Store:   themeStore,
		Catalog: themeCatalog,
		Logger:  logger,
	}
}

// RegisterRoutes mounts all handlers on the echo instance. writeLimit is
// applied to the preference write endpoint only.
func (s *ThemeService) RegisterRoutes(e *echo.Echo, writeLimit echo.MiddlewareFunc) {
	e.GET("/health", s.HealthCheck)

	themes := e.Group("/api/themes")
	themes.GET("/available", s.GetAvailableThemes)
	themes.GET("/preview/:theme_name", s.GetThemePreview)
	themes.GET("/user/:user_id", s.GetUserTheme)
	if writeLimit != nil {
		themes.POST("/user/:user_id", s.SetUserTheme, writeLimit)
	} else {
		themes.POST("/user/:user_id", s.SetUserTheme)
	}
}

// HealthCheckResponse reports service and backend status.
type HealthCheckResponse struct {
	Status            string   `json:"status"`
	Service           string   `json:"service"`
	Version           string   `json:"version"`
	RedisStatus       string   `json:"redis_status"`
	StoredThemesCount int64    `json:"stored_themes_count"`
	AvailableThemes   []string `json:"available_themes"`
	Timestamp         string   `json:"timestamp"`
}

// HealthCheck reports service health including backend connectivity.
// GET /health
func (s *ThemeService) HealthCheck(c echo.Context) error {
	health := s.Store.Health(c.Request().Context())
	return c.JSON(http.StatusOK, HealthCheckResponse{
		Status:            "ok",
		Service:           serviceName,
		Version:           s.Profile.Version,
		RedisStatus:       health.Status,
		StoredThemesCount: health.StoredThemes,
		AvailableThemes:   s.Catalog.Names(),
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
	})
}

// GetUserTheme returns the stored preference for a user, or the system
// default when no preference exists.
// GET /api/themes/user/:user_id
func (s *ThemeService) GetUserTheme(c echo.Context) error {
	userID := c.Param("user_id")
	reqCtx := observability.NewRequestContext(s.Logger, userID)

	preference, err := s.Store.GetPreference(c.Request().Context(), userID)
	if err != nil {
		switch svcerrors.GetCodeFromError(err, svcerrors.ErrCodeCorruptRecord) {
		case svcerrors.ErrCodeBackendUnavailable:
			reqCtx.Warn("theme backend unavailable",
				slog.String(observability.LogFieldErrorCode, string(svcerrors.ErrCodeBackendUnavailable)))
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"error":          "Theme service temporarily unavailable",
				"fallback_theme": s.Catalog.DefaultThemeName(),
			})
		default:
			reqCtx.Error("failed to retrieve theme", err,
				slog.String(observability.LogFieldErrorCode, string(svcerrors.ErrCodeCorruptRecord)))
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error":          "Failed to retrieve theme",
				"fallback_theme": s.Catalog.DefaultThemeName(),
			})
		}
	}

	reqCtx.Info("retrieved user theme",
		slog.String("theme_name", preference.ThemeName),
		slog.Bool("is_default", preference.IsDefault),
		slog.Int64(observability.LogFieldDuration, reqCtx.DurationMs()))
	return c.JSON(http.StatusOK, preference)
}

// SetUserThemeRequest is the body of a preference write.
// PreviousTheme is an audit echo only; it never affects the stored state.
type SetUserThemeRequest struct {
	ThemeName     string `json:"theme_name"`
	PreviousTheme string `json:"previous_theme"`
}

// SetUserThemeResponse confirms a preference write.
type SetUserThemeResponse struct {
	Message       string                     `json:"message"`
	Theme         *store.UserThemePreference `json:"theme"`
	PreviousTheme string                     `json:"previous_theme"`
}

// SetUserTheme validates and stores a theme preference for a user.
// POST /api/themes/user/:user_id
func (s *ThemeService) SetUserTheme(c echo.Context) error {
	userID := c.Param("user_id")
	reqCtx := observability.NewRequestContext(s.Logger, userID)

	// Backend availability is checked before any input validation.
	if !s.Store.Available() {
		reqCtx.Warn("theme backend unavailable",
			slog.String(observability.LogFieldErrorCode, string(svcerrors.ErrCodeBackendUnavailable)))
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error":          "Theme service temporarily unavailable",
			"fallback_theme": s.Catalog.DefaultThemeName(),
		})
	}

	body := &SetUserThemeRequest{}
	if c.Request().ContentLength == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":           "Request body is required",
			"required_fields": []string{"theme_name"},
		})
	}
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":           "Request body is required",
			"required_fields": []string{"theme_name"},
		})
	}

	preference, err := s.Store.SetPreference(c.Request().Context(), userID, body.ThemeName)
	if err != nil {
		switch svcerrors.GetCodeFromError(err, svcerrors.ErrCodeBackendUnavailable) {
		case svcerrors.ErrCodeMissingField:
			return c.JSON(http.StatusBadRequest, map[string]any{
				"error":            "Missing theme_name",
				"available_themes": s.Catalog.Names(),
			})
		case svcerrors.ErrCodeInvalidTheme:
			return c.JSON(http.StatusBadRequest, map[string]any{
				"error":            "Invalid theme_name",
				"provided":         body.ThemeName,
				"available_themes": s.Catalog.Names(),
			})
		default:
			reqCtx.Error("failed to update theme", err,
				slog.String(observability.LogFieldErrorCode, string(svcerrors.ErrCodeBackendUnavailable)))
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"error":          "Theme service temporarily unavailable",
				"fallback_theme": s.Catalog.DefaultThemeName(),
			})
		}
	}

	previousTheme := body.PreviousTheme
	if previousTheme == "" {
		previousTheme = "unknown"
	}

	reqCtx.Info("user theme updated",
		slog.String("theme_name", preference.ThemeName),
		slog.Int64(observability.LogFieldDuration, reqCtx.DurationMs()))
	return c.JSON(http.StatusOK, SetUserThemeResponse{
		Message:       "Theme updated successfully",
		Theme:         preference,
		PreviousTheme: previousTheme,
	})
}

// AvailableThemesResponse lists every configured theme with metadata.
type AvailableThemesResponse struct {
	AvailableThemes []catalog.ThemeSummary `json:"available_themes"`
	DefaultTheme    string                 `json:"default_theme"`
	TotalCount      int                    `json:"total_count"`
}

// GetAvailableThemes returns the theme catalog for discovery.
// GET /api/themes/available
func (s *ThemeService) GetAvailableThemes(c echo.Context) error {
	summaries := s.Catalog.ListThemes()
	return c.JSON(http.StatusOK, AvailableThemesResponse{
		AvailableThemes: summaries,
		DefaultTheme:    s.Catalog.DefaultThemeName(),
		TotalCount:      len(summaries),
	})
}

// GetThemePreview returns the derived presentation metadata for one theme.
// GET /api/themes/preview/:theme_name
func (s *ThemeService) GetThemePreview(c echo.Context) error {
	themeName := c.Param("theme_name")

	descriptor, err := s.Catalog.DescribeTheme(themeName)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{
			"error":            "Theme not found",
			"available_themes": s.Catalog.Names(),
		})
	}
	return c.JSON(http.StatusOK, descriptor)
}
