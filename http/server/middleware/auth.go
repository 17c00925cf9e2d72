package middleware

import (
	"strings"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"

	"github.com/rise-and-shine/docview/http/server"
	"github.com/rise-and-shine/docview/meta"
	"github.com/rise-and-shine/docview/token"
)

const (
	CodeUnauthenticated = "UNAUTHENTICATED"

	bearerPrefix = "Bearer "
)

// TokenVerifier resolves a bearer token to its claims.
type TokenVerifier interface {
	VerifyToken(token string) (*token.Payload, error)
}

// NewAuthMW creates a middleware that requires a valid bearer token.
//
// The token subject becomes the caller id, stored as meta.ActorID in both the
// request context and fiber locals. Missing or invalid tokens fail with T_Authentication.
func NewAuthMW(verifier TokenVerifier) server.Middleware {
	return server.Middleware{
		Priority: 300,
		Handler: func(c *fiber.Ctx) error {
			header := c.Get(fiber.HeaderAuthorization)
			if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
				return errx.New(
					"missing bearer token",
					errx.WithCode(CodeUnauthenticated),
					errx.WithType(errx.T_Authentication),
				)
			}

			payload, err := verifier.VerifyToken(strings.TrimSpace(header[len(bearerPrefix):]))
			if err != nil {
				return errx.Wrap(err, errx.WithType(errx.T_Authentication))
			}

			ctx := meta.InjectMetaToContext(c.UserContext(), map[meta.ContextKey]string{
				meta.ActorType: meta.ActorTypeUser,
				meta.ActorID:   payload.Subject,
			})
			c.SetUserContext(ctx)
			c.Locals(meta.ActorType, meta.ActorTypeUser)
			c.Locals(meta.ActorID, payload.Subject)

			return c.Next()
		},
	}
}
