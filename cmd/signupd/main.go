// Command signupd serves the doctor sign-up form. It stops on SIGINT or SIGTERM.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/medsignup/internal/app"
	"github.com/dmitrymomot/medsignup/pkg/config"
	"github.com/dmitrymomot/medsignup/pkg/httpserver"
	"github.com/dmitrymomot/medsignup/pkg/logger"
)

func main() {
	cfg, err := config.Load[app.Config]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "signupd: %v\n", err)
		os.Exit(1)
	}

	log := app.NewLogger(cfg)
	logger.SetAsDefault(log)

	h, cleanup, err := app.NewHandler(cfg, log)
	if err != nil {
		log.Error("failed to build service", logger.Error(err))
		os.Exit(1)
	}
	defer cleanup()

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), h); err != nil {
		log.Error("server stopped", logger.Error(err))
		cleanup()
		os.Exit(1)
	}
}
