// Package app configures and runs the service.
package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/device-management-toolkit/oneview-redfish/config"
	httpctrl "github.com/device-management-toolkit/oneview-redfish/internal/controller/http"
	"github.com/device-management-toolkit/oneview-redfish/internal/usecase/inventory"
	"github.com/device-management-toolkit/oneview-redfish/internal/usecase/networkport"
	"github.com/device-management-toolkit/oneview-redfish/internal/usecase/sqldb"
	"github.com/device-management-toolkit/oneview-redfish/pkg/db"
	"github.com/device-management-toolkit/oneview-redfish/pkg/logger"
	"github.com/device-management-toolkit/oneview-redfish/pkg/schema"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 5 * time.Second
	readTimeout     = 10 * time.Second
	writeTimeout    = 10 * time.Second
)

// Run creates objects via constructors and serves until SIGINT or SIGTERM.
func Run(cfg *config.Config) {
	l := logger.New(cfg.Log.Level)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	database, err := db.Open(ctx, cfg.DB.Path)
	if err != nil {
		l.Fatal(err, "app - Run - db.Open")
	}
	defer database.Close()

	repo := sqldb.NewServerHardwareRepo(database)
	if err := repo.Migrate(); err != nil {
		l.Fatal(err, "app - Run - repo.Migrate")
	}

	inv := inventory.New(repo, l)

	if cfg.Inventory.SeedDir != "" {
		if _, err := inv.Seed(ctx, cfg.Inventory.SeedDir); err != nil {
			l.Fatal(err, "app - Run - inventory.Seed")
		}
	}

	validator, err := schema.New(cfg.Redfish.SchemaDir)
	if err != nil {
		l.Fatal(err, "app - Run - schema.New")
	}

	l.Info("app - Run - loaded schemas %v", validator.Names())

	handler := gin.New()
	httpctrl.NewRouter(handler, cfg, l, inv, networkport.New(validator))

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	serverErr := make(chan error, 1)

	go func() {
		l.Info("app - Run - listening on %s", server.Addr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}

		close(serverErr)
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err := <-serverErr:
		if err != nil {
			l.Error(err, "app - Run - server.ListenAndServe")
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		l.Error(err, "app - Run - server.Shutdown")
	}
}
