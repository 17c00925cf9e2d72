package middleware

import (
	"runtime"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"

	"github.com/rise-and-shine/docview/http/server"
	"github.com/rise-and-shine/docview/observability/logger"
)

const stackTraceSize = 4096

// NewRecoveryMW creates a middleware that recovers from panics in the request
// handling chain and converts them to internal errors.
func NewRecoveryMW(log logger.Logger) server.Middleware {
	return server.Middleware{
		Priority: 1000,
		Handler: func(c *fiber.Ctx) (err error) {
			defer func() {
				if r := recover(); r != nil {
					stackTrace := make([]byte, stackTraceSize)
					stackTrace = stackTrace[:runtime.Stack(stackTrace, false)]

					log.Named("middleware.recovery").
						WithContext(c.UserContext()).
						With("stack_trace", string(stackTrace)).
						With("panic_message", r).
						Error("recovered from panic")

					err = errx.New("panic recovered", errx.WithDetails(errx.D{
						"panic_message": r,
					}))
				}
			}()

			return c.Next()
		},
	}
}
