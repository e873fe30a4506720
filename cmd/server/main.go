package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"starquest/internal/config"
	"starquest/internal/database"
	"starquest/internal/handlers"
	"starquest/internal/repository"
	"starquest/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	store := repository.NewStore(db)
	reportService := service.NewReportService(store)

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL, cfg.LinkSecret)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	reportHandler := handlers.NewReportHandler(reportService, emailService)
	emailLimiter := handlers.NewEmailRateLimiter(5, time.Hour)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /families/{familyID}/report", handlers.RequestID(reportHandler.DownloadReport))
	mux.HandleFunc("GET /families/{familyID}/report/periods", handlers.RequestID(reportHandler.ListPeriods))
	mux.HandleFunc("POST /families/{familyID}/report/email", handlers.RequestID(emailLimiter.Limit(reportHandler.EmailWeeklyReport)))
	mux.HandleFunc("POST /families/{familyID}/settlement/email", handlers.RequestID(emailLimiter.Limit(reportHandler.EmailSettlementNotice)))

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: mux,
	}

	go func() {
		log.Printf("Report engine listening on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
