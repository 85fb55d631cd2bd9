// page3ctl is a small operator CLI over the storefront SDK. It is
// mainly a smoke-test surface: every subcommand builds real clients and
// hits the live backends with the credentials from the environment.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/page3life/storefront-go/core"
	"github.com/page3life/storefront-go/legacy"
	"github.com/page3life/storefront-go/telemetry"
	"github.com/page3life/storefront-go/transport"
	"github.com/page3life/storefront-go/woocommerce"
)

var rootCmd = &cobra.Command{
	Use:          "page3ctl",
	Short:        "Operator CLI for the Page3Life storefront APIs",
	SilenceUsage: true,
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// clients builds both API clients from environment configuration. The
// legacy client reads its bearer token from PAGE3_TOKEN.
func clients(ctx context.Context) (*legacy.Client, *woocommerce.Client, func(), error) {
	cfg, err := core.NewConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	logger := core.NewProductionLogger(os.Stderr, cfg.Logging.Service, core.ParseLogLevel(cfg.Logging.Level))

	var tel core.Telemetry = &core.NoOpTelemetry{}
	shutdown := func() {}
	if cfg.Telemetry.Enabled {
		provider, err := telemetry.NewProvider(cfg.Logging.Service, cfg.Telemetry)
		if err != nil {
			return nil, nil, nil, err
		}
		tel = provider
		shutdown = func() { _ = provider.Shutdown(context.Background()) }
	}

	cache, err := transport.NewCacheFromConfig(ctx, cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	t := transport.New(cfg, logger, cache)
	tokens := core.StaticToken(os.Getenv("PAGE3_TOKEN"))

	return legacy.NewClient(cfg, t, logger, tel, tokens),
		woocommerce.NewClient(cfg, t, logger, tel),
		shutdown, nil
}
