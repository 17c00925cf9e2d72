package middleware

import (
	"github.com/rise-and-shine/docview/http/server"
	"github.com/rise-and-shine/docview/observability/logger"
)

// Stack returns the global middleware chain of an HTTP service built from cfg.
func Stack(log logger.Logger, cfg server.Config) []server.Middleware {
	return []server.Middleware{
		NewRecoveryMW(log),
		NewTracingMW(),
		NewTimeoutMW(cfg.HandleTimeout),
		NewMetaInjectMW(),
		NewLoggerMW(log),
		NewErrorHandlerMW(cfg.HideErrorDetails),
	}
}
