// Command server is a small web application keeping a visit counter and a
// cart total in file-backed sessions.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/filesession/pkg/cookie"
	"github.com/dmitrymomot/filesession/pkg/httpserver"
	"github.com/dmitrymomot/filesession/pkg/logger"
	"github.com/dmitrymomot/filesession/pkg/requestid"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.NewFromConfig(cfg.Log, logger.WithContextExtractors(requestid.LoggerExtractor))
	logger.SetAsDefault(log)

	cookies, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		return err
	}

	settings := cfg.settings()
	log.InfoContext(ctx, "sessions configured",
		logger.Component("server"),
		logger.Path(settings.Session.ResolveDirectory(settings.BasePath)),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, newRouter(settings, cookies, log))
}
