package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/repofleet/compliance-bot/internal/action"
	"github.com/repofleet/compliance-bot/internal/config"
	"github.com/repofleet/compliance-bot/internal/evaluator"
	"github.com/repofleet/compliance-bot/internal/github"
	"github.com/repofleet/compliance-bot/internal/jobs"
	"github.com/repofleet/compliance-bot/internal/orchestrator"
	"github.com/repofleet/compliance-bot/internal/policy"
	"github.com/repofleet/compliance-bot/internal/service"
	"github.com/repofleet/compliance-bot/internal/store"
	"github.com/repofleet/compliance-bot/internal/webhook"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("loading config")
	}

	privateKey, err := cfg.PrivateKeyPEM()
	if err != nil {
		log.WithError(err).Fatal("loading app private key")
	}

	ghClient, err := github.New(cfg.GithubAppID, cfg.GithubInstallationID, privateKey, cfg.GithubOrg, cfg.BotLogin, log)
	if err != nil {
		log.WithError(err).Fatal("building github client")
	}

	st, err := store.Open(cfg.DatabaseDSN)
	if err != nil {
		log.WithError(err).Fatal("opening database")
	}

	loader := policy.NewLoader(ghClient, cfg.ConfigRepo, cfg.ConfigPath, log)

	registry := evaluator.NewRegistry(
		evaluator.NewFilePresent(ghClient),
		evaluator.NewFileField(ghClient),
		evaluator.NewRepoSetting(ghClient),
	)
	engine := evaluator.NewEngine(registry, log)
	executor := action.NewExecutor(st, ghClient, loader, log)

	pool := jobs.NewWorkerPool(log)
	scanner := orchestrator.NewScanner(st, ghClient, loader, engine, executor, pool, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool.Start(ctx, cfg.WorkerCount)

	scanJob := func() jobs.Job {
		return jobs.NewFunc("fleet_scan", scanner.Run)
	}
	jobs.NewScheduler(pool, cfg.ScanInterval, scanJob, log).Start(ctx)
	if cfg.ScanOnStart {
		pool.Enqueue(scanJob())
	}

	handler := webhook.NewHandler([]byte(cfg.WebhookSecret), pool, st, loader, engine, executor, log)
	stats := service.NewStatsService(st)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: webhook.NewRouter(handler, stats, log),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("http shutdown")
		}
	}()

	log.WithField("addr", cfg.ListenAddr).Info("listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("http server")
	}

	pool.Close()
	log.Info("shut down cleanly")
}
