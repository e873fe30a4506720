// Command reportmail assembles a family's report for the last completed
// week and either prints the Markdown or emails it. An external
// scheduler (cron, etc.) is expected to drive it; this binary does not
// schedule anything itself.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"starquest/internal/config"
	"starquest/internal/database"
	"starquest/internal/models"
	"starquest/internal/period"
	"starquest/internal/render"
	"starquest/internal/repository"
	"starquest/internal/service"
)

func main() {
	familyID := flag.Int64("family", 0, "Family ID (required)")
	settlementFile := flag.String("settlement", "", "Path to a settlement result JSON; sends a settlement notice instead of the weekly report")
	dryRun := flag.Bool("dry-run", false, "Print the rendered output instead of sending email")
	flag.Parse()

	if *familyID == 0 {
		fmt.Println("Error: -family flag is required")
		flag.PrintDefaults()
		os.Exit(1)
	}

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	store := repository.NewStore(db)
	reports := service.NewReportService(store)

	emails, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL, cfg.LinkSecret)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	ctx := context.Background()

	family, err := reports.Family(ctx, *familyID)
	if err != nil {
		log.Fatalf("Failed to load family %d: %v", *familyID, err)
	}

	if *settlementFile != "" {
		sendSettlement(ctx, emails, family, *settlementFile, *dryRun)
		return
	}

	week := period.LastCompletedWeek(time.Now().UTC())
	report, err := reports.AssembleReport(ctx, *familyID, period.Weekly, week.Start, week.End, family.Locale, true)
	if err != nil {
		log.Fatalf("Failed to assemble report: %v", err)
	}

	if *dryRun {
		fmt.Print(render.Markdown(report))
		return
	}

	if err := emails.SendWeeklyReport(ctx, family.Email, report); err != nil {
		log.Fatalf("Failed to send weekly report: %v", err)
	}
	log.Printf("Weekly report sent to %s for week %s", family.Email, week.Label)
}

func sendSettlement(ctx context.Context, emails *service.EmailService, family *models.Family, path string, dryRun bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read settlement file: %v", err)
	}

	var result models.SettlementResult
	if err := json.Unmarshal(data, &result); err != nil {
		log.Fatalf("Failed to parse settlement file: %v", err)
	}
	if result.FamilyID != family.ID {
		log.Fatalf("Settlement file is for family %d, not %d", result.FamilyID, family.ID)
	}

	if dryRun {
		fmt.Print(render.SettlementEmailHTML(&result, family.Locale, ""))
		return
	}

	if err := emails.SendSettlementNotice(ctx, family.Email, &result, family.Locale); err != nil {
		log.Fatalf("Failed to send settlement notice: %v", err)
	}
	log.Printf("Settlement notice sent to %s", family.Email)
}
