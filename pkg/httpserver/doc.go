// Package httpserver wraps http.Server with graceful shutdown and
// structured logging. The server stops cleanly on context cancellation
// or SIGINT/SIGTERM, draining in-flight requests up to a configurable
// shutdown timeout.
//
//	srv := httpserver.New(
//		httpserver.WithAddr(cfg.Addr),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
package httpserver
