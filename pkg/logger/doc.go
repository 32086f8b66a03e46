// Package logger builds log/slog loggers for the service.
//
// New applies functional options over production-safe defaults (JSON output,
// INFO level) and wraps the handler with a decorator that pulls request
// scoped values, such as the request id, out of the context on every call.
// WithEnvironment switches to a readable text handler at DEBUG level during
// development.
//
// Attribute helpers (Error, AccountID, Component, Event, ...) keep keys
// consistent across packages:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "gatekeep"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "account created", logger.AccountID(id), logger.Component("auth"))
package logger
