package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/egyptofrance/naebak-theme-service/catalog"
	"github.com/egyptofrance/naebak-theme-service/internal/observability"
	"github.com/egyptofrance/naebak-theme-service/internal/profile"
	"github.com/egyptofrance/naebak-theme-service/server"
	"github.com/egyptofrance/naebak-theme-service/store"
	"github.com/egyptofrance/naebak-theme-service/store/db"
)

const version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "naebak-theme-service",
	Short: "User interface theme preference service for the Naebak platform",
	Run: func(_ *cobra.Command, _ []string) {
		serverProfile := &profile.Profile{
			Mode:    viper.GetString("mode"),
			Addr:    viper.GetString("addr"),
			Port:    viper.GetInt("port"),
			Driver:  viper.GetString("driver"),
			DSN:     viper.GetString("dsn"),
			Version: version,
		}
		serverProfile.FromEnv()
		if err := serverProfile.Validate(); err != nil {
			slog.Error("invalid configuration", slog.String("error", err.Error()))
			os.Exit(1)
		}

		logger := observability.NewLogger(serverProfile.Debug)
		slog.SetDefault(logger)

		themeCatalog := catalog.New(serverProfile.AvailableThemes, serverProfile.DefaultTheme)

		driver, err := db.NewDriver(serverProfile)
		if err != nil {
			// Backend connectivity failure is non-fatal: health and catalog
			// endpoints stay up; store-dependent endpoints report 503.
			logger.Error("could not connect to theme backend",
				slog.String("driver", serverProfile.Driver),
				slog.String("error", err.Error()))
			driver = nil
		} else {
			logger.Info("connected to theme backend",
				slog.String("driver", serverProfile.Driver))
		}

		themeStore := store.New(driver, themeCatalog)
		srv := server.New(serverProfile, themeStore, themeCatalog, logger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server failed", slog.String("error", err.Error()))
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("theme service stopped")
	},
}

func init() {
	viper.SetEnvPrefix("naebak")
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().String("mode", "dev", `mode of server, can be "prod" or "dev"`)
	rootCmd.PersistentFlags().String("addr", "", "address of server")
	rootCmd.PersistentFlags().Int("port", 8014, "port of server")
	rootCmd.PersistentFlags().String("driver", "redis", `backend driver, can be "redis" or "sqlite"`)
	rootCmd.PersistentFlags().String("dsn", "", "database source name for the sqlite driver")

	for _, flag := range []string{"mode", "addr", "port", "driver", "dsn"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
