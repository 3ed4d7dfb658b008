package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"noticeboard/db"
	"noticeboard/internal/config"
	"noticeboard/internal/repository"

	"github.com/redis/go-redis/v9"
)

func main() {

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	const popTimeout = 5 * time.Second

	storage, err := config.LoadStorage()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = db.ConnectRedis(ctx, storage.RedisURL)
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	err = db.Connect(storage.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	reportRepository := repository.NewReportRepository(db.DB)

	err = reportRepository.EnsureSchema()
	if err != nil {
		log.Fatalf("error creating schema: %v", err)
	}

	backlog, err := db.GetQueueLength(ctx, db.ReportQueueKey)
	if err != nil {
		slog.Warn("error reading queue length", "error", err)
	}
	slog.Info("recorder started", "queue", db.ReportQueueKey, "backlog", backlog)

	for ctx.Err() == nil {
		data, err := db.PopFromQueue(ctx, db.ReportQueueKey, popTimeout)
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			slog.Error("error popping from Redis queue", "error", err)
			time.Sleep(popTimeout)
			continue
		}

		report, err := repository.DecodeReport(data)
		if err != nil {
			slog.Error("invalid report in queue", "error", err)
			deadLetter(ctx, data)
			continue
		}

		saved, err := reportRepository.SaveReport(report)
		if err != nil {
			slog.Error("error saving report", "error", err, "report_id", report.ID)
			deadLetter(ctx, data)
			continue
		}

		if !saved {
			slog.Info("duplicate report skipped", "report_id", report.ID)
			continue
		}

		slog.Info("report recorded", "report_id", report.ID, "component", report.Component, "outcome", report.Outcome)
	}

	slog.Info("recorder stopped")
}

func deadLetter(ctx context.Context, data string) {
	if err := db.PushToQueue(ctx, db.DeadLetterKey, data); err != nil {
		slog.Error("error pushing to dead letter queue", "error", err)
	}
}
