// Package logger builds *slog.Logger instances with functional options and a
// handler decorator that copies request-scoped values from context.Context
// into every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "signupd"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LogExtractor()),
//	)
//	log.InfoContext(ctx, "sign-up accepted", logger.Component("form"))
//
// Attribute helpers (Error, RequestID, Component, Field, Masked, ...) keep key
// names consistent. Error and RequestID return an empty Attr for nil or empty
// input, which slog drops, so no nil check is needed at the call site.
package logger
