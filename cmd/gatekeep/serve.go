package main

import (
	"context"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/gatekeep/modules/orders"
	"github.com/dmitrymomot/gatekeep/pkg/auth/mongostore"
	"github.com/dmitrymomot/gatekeep/pkg/httpserver"
	"github.com/dmitrymomot/gatekeep/pkg/logger"
	"github.com/dmitrymomot/gatekeep/pkg/metrics"
	"github.com/dmitrymomot/gatekeep/pkg/mongo"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Connect to MongoDB, ensure indexes and serve the API until SIGINT
or SIGTERM, then shut down gracefully.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := loadConfig(env.Options{})
	if err != nil {
		return err
	}

	log := newLogger(cfg)
	logger.SetAsDefault(log)
	cfg.logStartupWarnings(log)

	client, err := mongo.New(ctx, cfg.Mongo)
	if err != nil {
		log.Error("mongo connection failed", logger.Error(err))
		return oops.Code("DB_CONNECT_FAILED").With("operation", "connect to mongo").Wrap(err)
	}
	defer func() {
		if err := client.Disconnect(context.WithoutCancel(ctx)); err != nil {
			log.Error("mongo disconnect failed", logger.Error(err))
		}
	}()
	db := client.Database(cfg.Mongo.Database)

	store := mongostore.New(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		return oops.Code("DB_INDEX_FAILED").With("collection", mongostore.DefaultCollection).Wrap(err)
	}
	repo := orders.NewMongoRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		return oops.Code("DB_INDEX_FAILED").With("collection", orders.DefaultCollection).Wrap(err)
	}

	a, err := newApp(cfg, log, metrics.New(), store, repo, httpserver.CheckFunc(mongo.Healthcheck(client)))
	if err != nil {
		return oops.Code("STARTUP_FAILED").Wrap(err)
	}

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger, addr string) {
			l.Info("listening", slog.String("addr", addr), logger.Component("http"))
		}),
	)
	if err := srv.Run(ctx, a.router()); err != nil {
		return oops.Code("SERVER_FAILED").Wrap(err)
	}
	return nil
}
