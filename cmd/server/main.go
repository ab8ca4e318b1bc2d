package main

import (
	"context"
	"os"

	applog "github.com/janisto/huma-greeter/internal/platform/logging"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	ctx := context.Background()
	if err := applog.Err(); err != nil {
		applog.LogError(ctx, "logger init error", err)
	}

	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		applog.LogError(ctx, "command failed", err)
	}
	// Sync fails with EINVAL on stdout for some platforms.
	_ = applog.Sync()
	if err != nil {
		os.Exit(1)
	}
}
