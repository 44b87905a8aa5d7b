package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/PuntiNugget/Simple-app/internal/app"
	"github.com/PuntiNugget/Simple-app/internal/config"
	"github.com/PuntiNugget/Simple-app/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "chat-server",
		Short:         "Real-time chat relay with moderation controls",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newServeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var (
		cfgPath       string
		addr          string
		logLevel      string
		adminPassword string
		muteDuration  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the chat server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bootstrap := log.New(logLevel)
			cfg, path, err := config.Load(bootstrap, cfgPath)
			if err != nil {
				return err
			}

			// CLI flags win over config file and env vars.
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("admin-password") {
				cfg.AdminPassword = adminPassword
			}
			if cmd.Flags().Changed("mute-duration") {
				cfg.MuteDuration = muteDuration
			}

			logger := log.New(cfg.LogLevel)
			logger.Info().Str("config", path).Str("addr", cfg.Addr).Msg("starting chat server")

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			application := app.New(cfg, logger)
			if err := application.Run(ctx); err != nil {
				logger.Error().Err(err).Msg("server exited with error")
				return err
			}
			logger.Info().Msg("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&adminPassword, "admin-password", "", "shared admin secret")
	cmd.Flags().DurationVar(&muteDuration, "mute-duration", 5*time.Minute, "how long an admin mute lasts")
	return cmd
}
