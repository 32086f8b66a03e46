package main

import (
	"context"
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/gatekeep/modules/orders"
	"github.com/dmitrymomot/gatekeep/pkg/auth"
	"github.com/dmitrymomot/gatekeep/pkg/auth/mongostore"
	"github.com/dmitrymomot/gatekeep/pkg/mongo"
	"github.com/dmitrymomot/gatekeep/pkg/sanitizer"
)

// Default timeout for seed command.
const defaultSeedTimeout = 30 * time.Second

type seedConfig struct {
	email   string
	count   int
	timeout time.Duration
}

// NewSeedCmd creates the seed subcommand.
func NewSeedCmd() *cobra.Command {
	cfg := &seedConfig{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo orders for an existing account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.email, "email", "", "email of the account that owns the orders")
	cmd.Flags().IntVar(&cfg.count, "count", 8, "number of orders to insert")
	cmd.Flags().DurationVar(&cfg.timeout, "timeout", defaultSeedTimeout, "timeout for database operations (e.g., 30s, 1m)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func runSeed(cmd *cobra.Command, sc *seedConfig) error {
	if sc.count <= 0 {
		return oops.Code("CONFIG_INVALID").With("count", sc.count).Errorf("--count must be positive")
	}

	cfg, err := loadConfig(env.Options{})
	if err != nil {
		return err
	}

	// cmd.Context() carries SIGINT/SIGTERM cancellation.
	ctx, cancel := context.WithTimeout(cmd.Context(), sc.timeout)
	defer cancel()

	cmd.Println("Connecting to database...")
	client, err := mongo.New(ctx, cfg.Mongo)
	if err != nil {
		return oops.Code("DB_CONNECT_FAILED").With("operation", "connect to mongo").Wrap(err)
	}
	defer func() { _ = client.Disconnect(context.WithoutCancel(ctx)) }()
	db := client.Database(cfg.Mongo.Database)

	acc, err := mongostore.New(db).AccountByEmail(ctx, sanitizer.NormalizeEmail(sc.email))
	if err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			return oops.Code("ACCOUNT_NOT_FOUND").With("email", sc.email).Errorf("no account with this email")
		}
		return oops.Code("SEED_FAILED").With("operation", "lookup account").Wrap(err)
	}

	seeded, err := orders.Seed(ctx, orders.NewMongoRepository(db), acc.ID, sc.count, time.Now())
	if err != nil {
		return oops.Code("SEED_FAILED").With("operation", "insert orders").Wrap(err)
	}

	cmd.Printf("Seeded %d orders for %s\n", len(seeded), acc.Email)
	return nil
}
