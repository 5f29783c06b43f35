// Package httpserver runs an http.Handler with sane timeouts and graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run returns after ctx is cancelled or SIGINT/SIGTERM arrives, once in-flight
// requests finish or the shutdown timeout elapses. Errors wrap ErrStart or
// ErrShutdown.
//
// HealthCheckHandler serves liveness (no checks) and readiness (with checks) probes.
package httpserver
