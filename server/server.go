// Package server assembles the echo HTTP server for the theme service.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/egyptofrance/naebak-theme-service/catalog"
	"github.com/egyptofrance/naebak-theme-service/internal/profile"
	"github.com/egyptofrance/naebak-theme-service/server/middleware"
	"github.com/egyptofrance/naebak-theme-service/server/router/api"
	"github.com/egyptofrance/naebak-theme-service/store"
)

// Write rate limit per user. Theme switches are interactive; anything past
// this is a misbehaving client.
const (
	writeRatePerSecond = 10
	writeBurst         = 20
)

type Server struct {
	echoServer *echo.Echo
	profile    *profile.Profile
	store      *store.Store
	logger     *slog.Logger
}

func New(serverProfile *profile.Profile, themeStore *store.Store, themeCatalog *catalog.Catalog, logger *slog.Logger) *Server {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true

	echoServer.Use(echomw.Recover())
	echoServer.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: serverProfile.CORSAllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	echoServer.Use(middleware.RequestLogger(logger))

	themeService := api.NewThemeService(serverProfile, themeStore, themeCatalog, logger)
	writeLimiter := middleware.NewRateLimiter(writeRatePerSecond, writeBurst)
	themeService.RegisterRoutes(echoServer, writeLimiter.Middleware("user_id"))

	return &Server{
		echoServer: echoServer,
		profile:    serverProfile,
		store:      themeStore,
		logger:     logger,
	}
}

// Start blocks serving HTTP until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.profile.Addr, s.profile.Port)
	s.logger.Info("theme service listening",
		slog.String("addr", addr),
		slog.String("mode", s.profile.Mode),
		slog.String("version", s.profile.Version))
	return s.echoServer.Start(addr)
}

// Shutdown drains in-flight requests and closes the backend connection.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echoServer.Shutdown(ctx); err != nil {
		return err
	}
	return s.store.Close()
}
