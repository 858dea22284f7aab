// Command growl-demo serves a page that shows growl notifications pushed inline,
// over DataStar SSE and through a polling endpoint.
package main

import (
	"context"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/growlkit/pkg/config"
	"github.com/dmitrymomot/growlkit/pkg/growl"
	"github.com/dmitrymomot/growlkit/pkg/httpserver"
	"github.com/dmitrymomot/growlkit/pkg/inbox"
	"github.com/dmitrymomot/growlkit/pkg/logger"
)

// Config is read from the environment.
type Config struct {
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string        `env:"LOG_FORMAT" envDefault:"json"`
	PollInterval int           `env:"GROWL_POLL_INTERVAL" envDefault:"5000"`
	InboxTTL     time.Duration `env:"INBOX_TTL" envDefault:"10m"`
	HTTP         httpserver.Config
	Growl        growl.Defaults
}

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithAttr(logger.Component("growl-demo")),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	)

	ctx := context.Background()
	box := inbox.NewManager(inbox.NewMemoryStore(), inbox.WithTTL(cfg.InboxTTL), inbox.WithLogger(log))
	go box.RunPurge(ctx, time.Minute)

	app := &app{
		log:          log,
		inbox:        box,
		pollInterval: cfg.PollInterval,
		growlOpts:    append(cfg.Growl.Options(), growl.WithLogger(log)),
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, app.routes()); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
