// Package mongo connects to MongoDB with bounded retries and exposes a
// readiness check.
//
// Config is parsed from MONGODB_* environment variables. New retries the
// connect-and-ping handshake RetryAttempts times with a constant
// RetryInterval using github.com/sethvargo/go-retry, and applies Timeout as
// the client-wide per-operation deadline so a stalled server surfaces as an
// error instead of a hung request:
//
//	client, err := mongo.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	db := client.Database(cfg.Database)
//	ready := mongo.Healthcheck(client)
package mongo
