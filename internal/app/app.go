// Package app assembles the sign-up service from configuration.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/medsignup/internal/catalog"
	"github.com/dmitrymomot/medsignup/internal/signup"
	"github.com/dmitrymomot/medsignup/internal/web"
	"github.com/dmitrymomot/medsignup/pkg/clientip"
	"github.com/dmitrymomot/medsignup/pkg/logger"
	"github.com/dmitrymomot/medsignup/pkg/ratelimiter"
	"github.com/dmitrymomot/medsignup/pkg/requestid"
	"github.com/dmitrymomot/medsignup/pkg/sanitizer"
)

// Validate checks values env tags cannot express.
func (c Config) Validate() error {
	switch c.Env {
	case logger.EnvDevelopment, logger.EnvStaging, logger.EnvProduction:
		return nil
	}
	return fmt.Errorf("%w: got %q", ErrInvalidEnv, c.Env)
}

// NewLogger builds the process logger. LOG_LEVEL overrides the environment default.
func NewLogger(cfg Config) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LogExtractor(), clientip.LogExtractor()),
	)
}

// NewHandler loads the catalog, builds the validator and returns the routed
// service. The returned func releases background resources.
func NewHandler(cfg Config, log *slog.Logger) (http.Handler, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	c, err := catalog.Load(cfg.SpecializationsFile)
	if err != nil {
		return nil, nil, err
	}

	var opts []signup.Option
	if cfg.StrictSpecialization {
		opts = append(opts, signup.WithSpecializations(c.Values()...))
	}
	v := signup.New(opts...)

	svcOpts := []web.Option{
		web.WithLogger(log),
		web.WithOnAccepted(logAccepted(log)),
	}
	cleanup := func() {}
	if cfg.RateLimit.Burst > 0 {
		store := ratelimiter.NewMemoryStore()
		bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
			Capacity:       cfg.RateLimit.Burst,
			RefillRate:     cfg.RateLimit.Refill,
			RefillInterval: cfg.RateLimit.Interval,
		})
		if err != nil {
			store.Close()
			return nil, nil, err
		}
		svcOpts = append(svcOpts, web.WithRateLimiter(bucket))
		cleanup = store.Close
	}
	svc := web.NewSignupService(v, c, svcOpts...)

	log.Info("sign-up service ready",
		logger.Component("app"),
		slog.Int("specializations", c.Len()),
		slog.Bool("strict_specialization", cfg.StrictSpecialization),
		slog.Int("rate_limit_burst", cfg.RateLimit.Burst),
	)

	return web.NewRouter(svc, log), cleanup, nil
}

// logAccepted stands in for the registration backend.
func logAccepted(log *slog.Logger) func(context.Context, signup.FormValues) {
	return func(ctx context.Context, v signup.FormValues) {
		log.InfoContext(ctx, "registration accepted",
			logger.Component("app"),
			logger.Masked("email", sanitizer.MaskEmail(v.Email)),
			slog.String("specialization", v.Specialization),
		)
	}
}
