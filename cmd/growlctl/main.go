// Command growlctl renders growl widget definitions and polls notification endpoints.
//
// Usage:
//
//	growlctl render -f widget.yaml [-part all|template|script|assets|html]
//	growlctl poll -url https://app.example.com/notifications [-interval 5000] [-method GET]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/growlkit/pkg/config"
	"github.com/dmitrymomot/growlkit/pkg/growl"
	"github.com/dmitrymomot/growlkit/pkg/logger"
)

// Config is read from the environment.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	growl.Defaults
}

var errUsage = errors.New("usage: growlctl <render|poll> [flags]")

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithOutput(os.Stderr),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithLevelName(cfg.LogLevel),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, cfg, log); err != nil {
		log.Error("growlctl failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer, cfg Config, log *slog.Logger) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "render":
		return runRender(args[1:], stdout, cfg.Defaults.Options()...)
	case "poll":
		return runPoll(ctx, args[1:], stdout, log)
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}
