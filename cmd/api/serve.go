package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wichananm65/social-backend/internal/infrastructure/config"
	"github.com/wichananm65/social-backend/internal/infrastructure/database/inmemory"
	"github.com/wichananm65/social-backend/internal/infrastructure/logging"
	"github.com/wichananm65/social-backend/internal/infrastructure/seed"
	"github.com/wichananm65/social-backend/internal/interface/http/router"
	"github.com/wichananm65/social-backend/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				cfg.Addr = addr
			}
			if path, _ := cmd.Flags().GetString("seed"); path != "" {
				cfg.MemberTypesSeed = path
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cmd.Flags().String("addr", "", "listen address (overrides SOCIAL_ADDR)")
	cmd.Flags().String("seed", "", "member type seed file (overrides MEMBER_TYPES_SEED)")
	return cmd
}

// serve wires the store, facade and HTTP surface, then blocks until ctx is
// cancelled or the listener fails.
func serve(ctx context.Context, cfg config.Config) error {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	store := inmemory.NewStore()

	seedFile, err := seed.Load(cfg.MemberTypesSeed)
	if err != nil {
		return err
	}
	result, err := seed.NewSeeder(store.MemberTypes).Seed(ctx, seedFile)
	if err != nil {
		return err
	}
	logger.Info("member types seeded", zap.Strings("added", result.Added), zap.Int("total", result.Total))

	opts, err := facadeOptions(cfg)
	if err != nil {
		return err
	}
	facade := usecase.NewFacade(store, logger, opts)
	app, err := router.New(facade, router.Options{
		CORSOrigins:       cfg.CORSOrigins,
		SubscriptionDepth: cfg.SubscriptionDepth,
		Logger:            logger,
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	return run(ctx, app, cfg.Addr, logger)
}

// facadeOptions maps the raw config onto use case options.
func facadeOptions(cfg config.Config) (usecase.Options, error) {
	policy, err := usecase.ParseCompositePolicy(cfg.CompositePolicy)
	if err != nil {
		return usecase.Options{}, fmt.Errorf("config: %w", err)
	}
	return usecase.Options{
		CompositePolicy:      policy,
		MaxSubscriptionDepth: cfg.MaxSubscriptionDepth,
	}, nil
}

func run(ctx context.Context, app *fiber.App, addr string, logger *zap.Logger) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", zap.String("addr", addr))
		return app.Listen(addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		return app.ShutdownWithTimeout(shutdownTimeout)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
