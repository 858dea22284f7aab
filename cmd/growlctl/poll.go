package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/growlkit/pkg/growl"
	"github.com/dmitrymomot/growlkit/pkg/logger"
	"github.com/dmitrymomot/growlkit/pkg/poller"
)

func runPoll(ctx context.Context, args []string, stdout io.Writer, log *slog.Logger) error {
	fs := flag.NewFlagSet("poll", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	spec := growl.Polling{}
	fs.StringVar(&spec.URL, "url", "", "notification endpoint")
	fs.StringVar(&spec.Method, "method", growl.DefaultPollingMethod, "HTTP method")
	fs.IntVar(&spec.Interval, "interval", 0, "milliseconds between requests, 0 polls once")
	baseURL := fs.String("base-url", "", "base URL for relative endpoints")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := poller.New(spec, growl.Settings{}, func(_ context.Context, s growl.Settings) {
		fmt.Fprintf(stdout, "%s: %s\n", s.Title, s.Message)
	},
		poller.WithBaseURL(*baseURL),
		poller.WithLogger(log),
		poller.WithOnFail(func(ctx context.Context, err error) {
			log.WarnContext(ctx, "poll failed", logger.Error(err))
		}),
	)
	if err != nil {
		return err
	}
	return p.Run(ctx)
}
