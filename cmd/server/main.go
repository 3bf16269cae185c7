package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/DuyPhong1504/duyphong-app/internal/config"
	"github.com/DuyPhong1504/duyphong-app/internal/db"
	"github.com/DuyPhong1504/duyphong-app/internal/httpapi"
	"github.com/DuyPhong1504/duyphong-app/internal/logging"
	"github.com/DuyPhong1504/duyphong-app/internal/repository"
	"github.com/DuyPhong1504/duyphong-app/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:          "hr-service",
		Short:        "HR service for departments, employees, tasks and lunch logs",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (defaults to ./.env when present)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), envFile)
		},
	})

	return root
}

func serve(parent context.Context, envFile string) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// -- Configs preload --
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// -- Logger --
	logger, release, err := logging.New(logging.Options{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	if err != nil {
		return fmt.Errorf("logger error: %w", err)
	}
	defer release()

	// -- Connect to DB --
	database, closeDB, err := db.Connect(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Error("database connection error")
		return err
	}
	defer closeDB()

	if cfg.AutoMigrate {
		if err := db.Migrate(database); err != nil {
			logger.WithError(err).Error("database migration error")
			return err
		}
	}

	store := repository.NewStore(database)
	services := httpapi.Services{
		Departments: service.NewDepartmentService(store, logger),
		Employees:   service.NewEmployeeService(store, logger),
		Tasks:       service.NewTaskService(store, logger),
		LunchLogs:   service.NewLunchLogService(store, logger),
	}

	// -- Router --
	gin.SetMode(cfg.GinMode)
	var middleware []gin.HandlerFunc
	if len(cfg.CORSAllowOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
		middleware = append(middleware, cors.New(corsConfig))
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpapi.NewHandler(services, logger, middleware...),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// -- Startup --
	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("starting server, listening to port %s...", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.WithError(err).Error("server failed")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	// -- Shutdown --
	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
		return err
	}
	return nil
}
