package server

import (
	"slices"

	"github.com/gofiber/fiber/v2"
)

// Middleware represents an HTTP middleware with a priority for ordering.
//
// Priority determines the order in which middlewares are applied: higher values are applied first.
// Handler is the Fiber-compatible middleware function.
type Middleware struct {
	Priority int
	Handler  fiber.Handler
}

// applyMiddlewares registers the provided middlewares to the Fiber app in priority order.
//
// Middlewares with higher Priority are applied before those with lower Priority. Nil handlers are skipped.
func applyMiddlewares(app *fiber.App, middlewares []Middleware) {
	slices.SortStableFunc(middlewares, func(a, b Middleware) int {
		return b.Priority - a.Priority
	})
	for _, mw := range middlewares {
		if mw.Handler == nil {
			continue
		}
		app.Use(mw.Handler)
	}
}
