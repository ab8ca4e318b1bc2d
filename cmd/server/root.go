package main

import (
	"github.com/spf13/cobra"
)

// serveFlags holds the command-line overrides accepted by serve and the root command.
type serveFlags struct {
	host     string
	port     int
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &serveFlags{}
	rootCmd := &cobra.Command{
		Use:   "greeter",
		Short: "Greeter - a tiny greeting HTTP API",
		Long: `Greeter serves plain-text and JSON greetings together with a generated
OpenAPI document and docs UI. Running it without a subcommand starts the server.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, flags)
		},
	}
	rootCmd.SetVersionTemplate("greeter version {{.Version}}\n")
	addServeFlags(rootCmd, flags)

	rootCmd.AddCommand(newServeCmd(), newOpenAPICmd())
	return rootCmd
}

func addServeFlags(cmd *cobra.Command, flags *serveFlags) {
	cmd.Flags().StringVar(&flags.host, "host", "", "Host to bind to (default 0.0.0.0)")
	cmd.Flags().IntVar(&flags.port, "port", 0, "Port to listen on (default 3000)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// overrides returns only the flags set on the command line, keyed by config key,
// so unset flags never mask file or environment values.
func (f *serveFlags) overrides(cmd *cobra.Command) map[string]any {
	out := map[string]any{}
	if cmd.Flags().Changed("host") {
		out["host"] = f.host
	}
	if cmd.Flags().Changed("port") {
		out["port"] = f.port
	}
	if cmd.Flags().Changed("log-level") {
		out["log_level"] = f.logLevel
	}
	return out
}
