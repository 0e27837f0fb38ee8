// @title Ifrit Ticket API
// @version 1.0
// @description Ticket tracker REST API with cookie-based JWT sessions.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/Sahindou/ifrit-ticket/internal/api/middleware"
	"github.com/Sahindou/ifrit-ticket/internal/api/routes"
	"github.com/Sahindou/ifrit-ticket/internal/application"
	"github.com/Sahindou/ifrit-ticket/internal/config"
	"github.com/Sahindou/ifrit-ticket/internal/config/db"
	"github.com/Sahindou/ifrit-ticket/internal/cron"
	"github.com/Sahindou/ifrit-ticket/internal/migrations"
	"github.com/Sahindou/ifrit-ticket/internal/notify"
	"github.com/Sahindou/ifrit-ticket/internal/realtime"
	"github.com/Sahindou/ifrit-ticket/internal/storage"
	"github.com/spf13/pflag"
)

func main() {
	flagSet := pflag.NewFlagSet("ifrit-api", pflag.ExitOnError)
	envFiles := flagSet.StringSlice("env-file", nil, "dotenv files to load (default: .env)")
	migrateOnly := flagSet.Bool("migrate-only", false, "apply database migrations and exit")
	_ = flagSet.Parse(os.Args[1:])

	// Load configuration from environment variables and .env file
	config.LoadConfig(*envFiles...)

	// Initialize JWT signing keys
	middleware.Init()

	db.Init()
	defer db.Close()

	if err := migrations.Run(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if *migrateOnly {
		return
	}

	deps := routes.Dependencies{Hub: realtime.NewHub()}
	defer deps.Hub.Close()

	if config.MinioEndpoint != "" {
		store, err := storage.NewMinioStore(context.Background(), storage.Config{
			Endpoint:  config.MinioEndpoint,
			AccessKey: config.MinioAccessKey,
			SecretKey: config.MinioSecretKey,
			UseSSL:    config.MinioUseSSL,
			Bucket:    config.MinioBucket,
		})
		if err != nil {
			log.Printf("Warning: attachment storage disabled: %v", err)
		} else {
			deps.Storage = store
		}
	} else {
		log.Println("MINIO_ENDPOINT not set, attachment storage disabled")
	}

	if config.SendgridAPIKey != "" {
		deps.Notifier = notify.NewSendGridNotifier(config.SendgridAPIKey, notify.Sender{
			Email: config.SendgridFromEmail,
			Name:  config.SendgridFromName,
		})
	} else {
		deps.Notifier = notify.LogNotifier{}
	}

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	svc := routes.RegisterRoutes(router, db.DB, deps)
	seedTicketTypes(svc)

	scheduler, err := cron.StartCleanupTasks(svc.Auth, svc.Audit, config.AuditRetentionDays)
	if err != nil {
		log.Fatalf("Failed to schedule cleanup tasks: %v", err)
	}
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:         ":" + config.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("Starting API server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down API server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}

func seedTicketTypes(svc *application.Services) {
	n, err := svc.TicketType.SeedFromFile(config.SeedFile)
	if err != nil {
		log.Printf("Warning: failed to seed ticket types from %s: %v", config.SeedFile, err)
		return
	}
	if n > 0 {
		log.Printf("Seeded %d ticket types from %s", n, config.SeedFile)
	}
}
