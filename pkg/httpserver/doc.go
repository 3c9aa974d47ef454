// Package httpserver runs an http.Handler with timeouts from Config and a
// graceful shutdown on context cancellation, SIGINT or SIGTERM.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness and readiness probes; WritableDir is the
// readiness check used for the session storage directory.
package httpserver
