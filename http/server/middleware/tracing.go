package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.23.1"
	"go.opentelemetry.io/otel/trace"

	"github.com/rise-and-shine/docview/http/server"
)

// NewTracingMW creates a middleware that starts a server span per request.
//
// Incoming trace context headers are honoured. The span is renamed after the
// matched route once the handler has run, and failed requests are recorded.
func NewTracingMW() server.Middleware {
	return server.Middleware{
		Priority: 900,
		Handler: func(c *fiber.Ctx) error {
			carrier := propagation.HeaderCarrier{}
			c.Request().Header.VisitAll(func(k, v []byte) {
				carrier.Set(string(k), string(v))
			})
			ctx := otel.GetTextMapPropagator().Extract(c.UserContext(), carrier)

			ctx, span := otel.Tracer("http-server").Start(
				ctx,
				fmt.Sprintf("%s %s", c.Method(), "/"),
				trace.WithSpanKind(trace.SpanKindServer),
			)
			defer span.End()

			c.SetUserContext(ctx)

			err := c.Next()

			routerPattern := c.Route().Path
			if routerPattern != "" && routerPattern != "/" {
				span.SetName(fmt.Sprintf("%s %s", c.Method(), routerPattern))
			}

			span.SetAttributes(
				semconv.HTTPMethodKey.String(c.Method()),
				semconv.HTTPRouteKey.String(routerPattern),
				semconv.HTTPURLKey.String(c.OriginalURL()),
				semconv.HTTPStatusCodeKey.Int(c.Response().StatusCode()),
			)

			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}

			return err
		},
	}
}
