package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rise-and-shine/docview/http/server"
)

// NewErrorHandlerMW creates a middleware that converts handler errors to the
// standard JSON error response. When hideDetails is false, the error trace and
// details are included.
func NewErrorHandlerMW(hideDetails bool) server.Middleware {
	return server.Middleware{
		Priority: 400,
		Handler: func(c *fiber.Ctx) error {
			err := c.Next()
			if err == nil {
				return nil
			}

			// if error already handled, skip processing.
			if c.Response() != nil && c.Response().StatusCode() >= fiber.StatusBadRequest {
				return err
			}

			return server.WriteErrorResponse(c, err, hideDetails)
		},
	}
}
