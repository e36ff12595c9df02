package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"potager/app"
	"potager/config"
	"potager/database"
	"potager/pkg/logger"
)

func main() {
	// 1) Config + logger
	cfg := config.Load()
	log := logger.New("server", cfg.LogLevel, cfg.LogFormat)
	if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
		time.Local = loc
	} else {
		log.WithError(err).Warnf("unknown TZ %q, keeping system zone", cfg.Timezone)
	}
	log.WithField("config", cfg.Redacted()).Debug("configuration loaded")

	// 2) DB + migrations
	db, err := database.Open(cfg)
	if err != nil {
		log.WithError(err).Fatal("open database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Warn("close database")
		}
	}()

	// 3) Wiring + seed
	a := app.New(cfg, db, log)
	if err := a.Seed(context.Background(), cfg, log); err != nil {
		log.WithError(err).Fatal("seed")
	}

	// 4) Reminder
	if err := a.Reminder.Start(cfg.ReminderCron); err != nil {
		log.WithError(err).Fatalf("invalid REMINDER_CRON %q", cfg.ReminderCron)
	}

	// 5) Start
	go func() {
		log.Infof("listening on :%s", cfg.Port)
		if err := a.Echo.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.Echo.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}
	a.Reminder.Stop()
}
