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

	"frota/internal/config"
	"frota/internal/database"
	"frota/internal/events"
	"frota/internal/logger"
	"frota/internal/scheduler"
	"frota/internal/server"
	"frota/internal/validator"

	_ "frota/internal/docs" // Import swagger docs
)

// @title           Frota API
// @version         1.0
// @description     Back office for a vehicle rental fleet: recurring expenses, accounts payable, the cost ledger, payroll and fleet events.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey PipelineKey
// @in header
// @name X-API-Key

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	var bus events.Bus = events.NopBus{}
	if appConfig.NATSURL != "" {
		nc, err := events.Connect(appConfig.NATSURL)
		if err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		defer nc.Close()
		bus = events.NewNATSBus(nc)
		log.Infow("realtime change feed enabled", "nats_url", appConfig.NATSURL)
	} else {
		log.Warn("NATS_URL not set, realtime change feed disabled")
	}

	validator.Register()

	svc := server.NewServices(dbManager.DB(), bus)
	svc.Ping = dbManager.Ping
	router := server.NewRouter(appConfig, svc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if appConfig.SchedulerEnabled {
		sched := scheduler.New(svc.Users, appConfig.SchedulerHour,
			scheduler.RecurringExpenseJob(svc.RecurringExpense),
			scheduler.SalaryJob(svc.Salaries),
		)
		go sched.Start(ctx)
	}

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Frota backend server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
