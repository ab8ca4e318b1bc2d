package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/janisto/huma-greeter/internal/platform/config"
	applog "github.com/janisto/huma-greeter/internal/platform/logging"
	"github.com/janisto/huma-greeter/internal/server"
)

func newServeCmd() *cobra.Command {
	flags := &serveFlags{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the greeting API. Configuration is read from defaults, the YAML file
named by GREETER_CONFIG, a .env file, GREETER_* environment variables and flags,
in increasing order of precedence.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, flags)
		},
	}
	addServeFlags(cmd, flags)
	return cmd
}

func runServe(cmd *cobra.Command, flags *serveFlags) error {
	cfg, err := config.Load(flags.overrides(cmd))
	if err != nil {
		return err
	}
	if err := applog.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, cfg, Version)
}
