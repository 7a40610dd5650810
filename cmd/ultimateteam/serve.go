package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/mpalomar/ultimateteam/internal/app"
	"github.com/mpalomar/ultimateteam/internal/config"
)

func newServeCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP tool server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "address", Aliases: []string{"a"}, Usage: "address to listen on", Value: cfg.Address},
		},
		Action: func(c *cli.Context) error {
			cfg.DatabaseURI = c.String("db-uri")
			cfg.Address = c.String("address")

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			application := app.New(cfg)
			if err := application.Start(ctx); err != nil {
				zap.L().Error("Failed to start application", zap.Error(err))
				return fail(err)
			}
			if err := application.Wait(ctx, cancel); err != nil {
				zap.L().Error("Application stopped with error", zap.Error(err))
				return fail(err)
			}
			return nil
		},
	}
}
