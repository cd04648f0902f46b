package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"prodcheck/internal/db"
	"prodcheck/internal/modules/verify/domain"
	"prodcheck/internal/modules/verify/infra"
	pg "prodcheck/internal/modules/verify/infra/pg"
	"prodcheck/internal/platform/config"
	phttp "prodcheck/internal/platform/http"
	"prodcheck/internal/platform/logging"
	"prodcheck/internal/platform/security"

	verifyhttp "prodcheck/internal/modules/verify/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	catalog := infra.NewStaticCatalog(domain.CodeLists{Fresh: cfg.Codes.Fresh, Expired: cfg.Codes.Expired})
	if cfg.PGDSN != "" {
		pool, err := db.Open(ctx, cfg.PGDSN)
		if err != nil {
			return err
		}
		defer pool.Close()
		catalog = pg.NewCatalogRepo(pool)
	}
	lists, err := catalog.Lists(ctx)
	if err != nil {
		return err
	}
	logger.Info("code catalog loaded",
		zap.Int("fresh", len(lists.Fresh)),
		zap.Int("expired", len(lists.Expired)),
		zap.Bool("postgres", cfg.PGDSN != ""),
	)

	validator := domain.NewValidator(domain.ValidatorConfig{
		FreshCodes:   lists.Fresh,
		ExpiredCodes: lists.Expired,
		MinLength:    cfg.Codes.MinLength,
		MaxLength:    cfg.Codes.MaxLength,
	})
	verifier := domain.NewVerifier(validator, cfg.VerificationDelay)
	store := infra.NewMemoryHandoffStore(cfg.SessionTTL)
	defer store.Close()

	module := verifyhttp.NewModule(validator, verifier, store).
		WithPages(cfg.EntryPageURL, cfg.ResultPageURL).
		WithLogger(logger)
	sessions := security.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL)
	app := phttp.NewServer(phttp.Options{
		AppName:    "prodcheck",
		Logger:     logger,
		Middleware: []fiber.Handler{phttp.BrowsingSession(sessions, cfg.Env == "prod")},
	}, module)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
		return app.Listen(cfg.HTTPAddr)
	})
	g.Go(func() error {
		return store.RunJanitor(gctx, cfg.SessionTTL/2, func(n int) {
			logger.Debug("expired sessions swept", zap.Int("count", n))
		})
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
