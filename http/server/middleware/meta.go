package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rise-and-shine/docview/http/server"
	"github.com/rise-and-shine/docview/meta"
	"github.com/rise-and-shine/docview/observability/tracing"
)

const headerTraceID = "X-Trace-ID"

// NewMetaInjectMW creates a middleware that injects request metadata into the context.
//
// The trace id comes from the active span, or is generated when tracing is off,
// and is echoed in the X-Trace-ID response header. Caller identity keys are left
// to the auth middleware.
func NewMetaInjectMW() server.Middleware {
	return server.Middleware{
		Priority: 700,
		Handler: func(c *fiber.Ctx) error {
			ctx := c.UserContext()
			traceID := tracing.GetStartingTraceID(ctx)
			serviceName, serviceVersion := meta.ServiceInfo()

			ctx = meta.InjectMetaToContext(ctx, map[meta.ContextKey]string{
				meta.TraceID:        traceID,
				meta.IPAddress:      c.IP(),
				meta.UserAgent:      c.Get(fiber.HeaderUserAgent),
				meta.ServiceName:    serviceName,
				meta.ServiceVersion: serviceVersion,
				meta.AcceptLanguage: c.Get(fiber.HeaderAcceptLanguage),
			})
			c.SetUserContext(ctx)
			c.Set(headerTraceID, traceID)

			return c.Next()
		},
	}
}
