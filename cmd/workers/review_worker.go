package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"wedding-bazaar/partner-portal/partner-portal-backend/internal/config"
	"wedding-bazaar/partner-portal/partner-portal-backend/internal/onboarding"
)

// ReviewWorker flags partner submissions that have been sitting in PENDING
// longer than the configured window so admins can follow up.
type ReviewWorker struct {
	service    *onboarding.Service
	logger     *zap.Logger
	staleAfter time.Duration
	batchSize  int
}

// NewReviewWorker creates a review reminder worker
func NewReviewWorker(service *onboarding.Service, logger *zap.Logger, staleAfter time.Duration) *ReviewWorker {
	return &ReviewWorker{
		service:    service,
		logger:     logger,
		staleAfter: staleAfter,
		batchSize:  100,
	}
}

// Run performs one reminder sweep.
func (w *ReviewWorker) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().UTC().Add(-w.staleAfter)
	stale, err := w.service.StalePending(ctx, cutoff, w.batchSize)
	if err != nil {
		w.logger.Error("Failed to fetch stale pending submissions", zap.Error(err))
		return
	}

	if len(stale) == 0 {
		w.logger.Debug("No stale pending submissions")
		return
	}

	w.logger.Warn("Submissions awaiting review past the reminder window",
		zap.Int("count", len(stale)),
		zap.Duration("stale_after", w.staleAfter))

	for _, s := range stale {
		name := ""
		if s.BusinessName != nil {
			name = *s.BusinessName
		}
		w.logger.Info("Pending submission needs review",
			zap.String("submission_id", s.ID.String()),
			zap.String("business_type", s.BusinessType),
			zap.String("business_name", name),
			zap.Time("created_at", s.CreatedAt))
	}
}

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := sqlx.Connect("postgres", cfg.Database.GetDatabaseURL())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repo := onboarding.NewPostgresRepository(db)
	service := onboarding.NewService(repo, logger)

	staleAfter := time.Duration(cfg.Onboarding.StalePendingAfterDays) * 24 * time.Hour
	worker := NewReviewWorker(service, logger, staleAfter)

	c := cron.New()
	if _, err := c.AddFunc(cfg.Onboarding.ReviewReminderCron, worker.Run); err != nil {
		logger.Fatal("Invalid review reminder cron spec", zap.Error(err),
			zap.String("spec", cfg.Onboarding.ReviewReminderCron))
	}

	logger.Info("Review worker starting",
		zap.String("cron", cfg.Onboarding.ReviewReminderCron),
		zap.Duration("stale_after", staleAfter))
	c.Start()

	// Run one sweep immediately so a restart never delays reminders a day
	worker.Run()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Review worker shutting down")
	<-c.Stop().Done()
}
